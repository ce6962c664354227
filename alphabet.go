package levenshtein

import "sort"

// alphabetBytes returns the distinct bytes appearing across strings,
// in ascending order, via a 256-entry presence bitmap compacted into
// a dense list.
func alphabetBytes(strings [][]byte) []byte {
	var present [256]bool
	for _, s := range strings {
		for _, b := range s {
			present[b] = true
		}
	}
	out := make([]byte, 0, 256)
	for c := 0; c < 256; c++ {
		if present[c] {
			out = append(out, byte(c))
		}
	}
	return out
}

// alphabetRunes returns the distinct runes appearing across strings,
// in ascending order. A plain Go set takes the place of the original
// 256-bucket chained hash: simpler, and no less correct for a set
// whose only required property is membership, not insertion order.
func alphabetRunes(strings [][]rune) []rune {
	set := make(map[rune]struct{})
	for _, s := range strings {
		for _, r := range s {
			set[r] = struct{}{}
		}
	}
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
