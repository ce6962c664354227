package levenshtein

import "github.com/cristaloleg/levdist/internal/munkres"

// elementCost is the per-element substitution cost used by SeqDistance:
// twice the edit distance between a and b, normalized by their
// combined length (0 when both are empty, so identical elements and
// two empty elements alike cost nothing).
func elementCost(a, b string) float64 {
	n := len(a) + len(b)
	if n == 0 {
		return 0
	}
	return 2 * float64(Distance(a, b, true)) / float64(n)
}

func elementCostRunes(a, b []rune) float64 {
	n := len(a) + len(b)
	if n == 0 {
		return 0
	}
	return 2 * float64(DistanceRunes(a, b, true)) / float64(n)
}

// seqDistanceCost runs single-row Levenshtein DP over real-valued
// per-element costs ("double Levenshtein"): insertion and deletion of
// a whole element cost 1, substitution costs elementCost. Common
// prefix/suffix of identical elements is stripped first and the
// longer sequence is moved onto the inner axis, exactly as distanceSeq
// does for symbol sequences.
func seqDistanceCost(s1, s2 []string) float64 {
	for len(s1) > 0 && len(s2) > 0 && s1[0] == s2[0] {
		s1, s2 = s1[1:], s2[1:]
	}
	for len(s1) > 0 && len(s2) > 0 && s1[len(s1)-1] == s2[len(s2)-1] {
		s1, s2 = s1[:len(s1)-1], s2[:len(s2)-1]
	}
	if len(s1) == 0 {
		return float64(len(s2))
	}
	if len(s2) == 0 {
		return float64(len(s1))
	}
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}
	n, m := len(s1), len(s2)
	prev := make([]float64, m+1)
	cur := make([]float64, m+1)
	for j := range prev {
		prev[j] = float64(j)
	}
	for i := 1; i <= n; i++ {
		cur[0] = float64(i)
		for j := 1; j <= m; j++ {
			best := prev[j] + 1
			if v := cur[j-1] + 1; v < best {
				best = v
			}
			if v := prev[j-1] + elementCost(s1[i-1], s2[j-1]); v < best {
				best = v
			}
			cur[j] = best
		}
		prev, cur = cur, prev
	}
	return prev[m]
}

func seqDistanceCostRunes(s1, s2 [][]rune) float64 {
	eq := func(a, b []rune) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	for len(s1) > 0 && len(s2) > 0 && eq(s1[0], s2[0]) {
		s1, s2 = s1[1:], s2[1:]
	}
	for len(s1) > 0 && len(s2) > 0 && eq(s1[len(s1)-1], s2[len(s2)-1]) {
		s1, s2 = s1[:len(s1)-1], s2[:len(s2)-1]
	}
	if len(s1) == 0 {
		return float64(len(s2))
	}
	if len(s2) == 0 {
		return float64(len(s1))
	}
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}
	n, m := len(s1), len(s2)
	prev := make([]float64, m+1)
	cur := make([]float64, m+1)
	for j := range prev {
		prev[j] = float64(j)
	}
	for i := 1; i <= n; i++ {
		cur[0] = float64(i)
		for j := 1; j <= m; j++ {
			best := prev[j] + 1
			if v := cur[j-1] + 1; v < best {
				best = v
			}
			if v := prev[j-1] + elementCostRunes(s1[i-1], s2[j-1]); v < best {
				best = v
			}
			cur[j] = best
		}
		prev, cur = cur, prev
	}
	return prev[m]
}

// setDistanceCost treats s1/s2 as sets (order irrelevant), matching
// each element of the smaller set to a distinct element of the larger
// one at minimum total ratio cost via the assignment solver, then
// charges 1 per unmatched element of the larger set.
func setDistanceCost(s1, s2 []string) float64 {
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}
	n1, n2 := len(s1), len(s2)
	if n1 == 0 {
		return float64(n2)
	}
	cost := make([][]float64, n2)
	for i := range cost {
		cost[i] = make([]float64, n1)
		for j := 0; j < n1; j++ {
			l := len(s2[i]) + len(s1[j])
			if l == 0 {
				continue
			}
			cost[i][j] = float64(Distance(s2[i], s1[j], true)) / float64(l)
		}
	}
	assign := munkres.Solve(cost)
	sum := float64(n2 - n1)
	for j := 0; j < n1; j++ {
		i := assign[j]
		if l := len(s1[j]) + len(s2[i]); l > 0 {
			sum += 2 * float64(Distance(s1[j], s2[i], true)) / float64(l)
		}
	}
	return sum
}

func setDistanceCostRunes(s1, s2 [][]rune) float64 {
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}
	n1, n2 := len(s1), len(s2)
	if n1 == 0 {
		return float64(n2)
	}
	cost := make([][]float64, n2)
	for i := range cost {
		cost[i] = make([]float64, n1)
		for j := 0; j < n1; j++ {
			l := len(s2[i]) + len(s1[j])
			if l == 0 {
				continue
			}
			cost[i][j] = float64(DistanceRunes(s2[i], s1[j], true)) / float64(l)
		}
	}
	assign := munkres.Solve(cost)
	sum := float64(n2 - n1)
	for j := 0; j < n1; j++ {
		i := assign[j]
		if l := len(s1[j]) + len(s2[i]); l > 0 {
			sum += 2 * float64(DistanceRunes(s1[j], s2[i], true)) / float64(l)
		}
	}
	return sum
}

// SeqDistance computes the "double Levenshtein" distance between two
// sequences of strings: the cost of turning s1 into s2 by inserting,
// deleting, or substituting whole elements, where substituting a for
// b costs 2·Distance(a,b)/(|a|+|b|).
func SeqDistance(s1, s2 []string) float64 {
	return seqDistanceCost(s1, s2)
}

// SeqDistanceRunes is SeqDistance's wide-symbol counterpart, operating
// on sequences of rune slices.
func SeqDistanceRunes(s1, s2 [][]rune) float64 {
	return seqDistanceCostRunes(s1, s2)
}

// SeqRatio returns a similarity score in [0,1] derived from
// SeqDistance. Two empty sequences are perfectly similar.
func SeqRatio(s1, s2 []string) float64 {
	n1, n2 := len(s1), len(s2)
	if n1+n2 == 0 {
		return 1
	}
	return (float64(n1+n2) - seqDistanceCost(s1, s2)) / float64(n1+n2)
}

// SeqRatioRunes is SeqRatio's wide-symbol counterpart.
func SeqRatioRunes(s1, s2 [][]rune) float64 {
	n1, n2 := len(s1), len(s2)
	if n1+n2 == 0 {
		return 1
	}
	return (float64(n1+n2) - seqDistanceCostRunes(s1, s2)) / float64(n1+n2)
}

// SetDistance computes the distance between two sets of strings
// (order irrelevant), matching elements via the assignment solver
// rather than by position. See setDistanceCost.
func SetDistance(s1, s2 []string) float64 {
	return setDistanceCost(s1, s2)
}

// SetDistanceRunes is SetDistance's wide-symbol counterpart.
func SetDistanceRunes(s1, s2 [][]rune) float64 {
	return setDistanceCostRunes(s1, s2)
}

// SetRatio returns a similarity score in [0,1] derived from
// SetDistance. Two empty sets are perfectly similar.
func SetRatio(s1, s2 []string) float64 {
	n1, n2 := len(s1), len(s2)
	if n1+n2 == 0 {
		return 1
	}
	return (float64(n1+n2) - setDistanceCost(s1, s2)) / float64(n1+n2)
}

// SetRatioRunes is SetRatio's wide-symbol counterpart.
func SetRatioRunes(s1, s2 [][]rune) float64 {
	n1, n2 := len(s1), len(s2)
	if n1+n2 == 0 {
		return 1
	}
	return (float64(n1+n2) - setDistanceCostRunes(s1, s2)) / float64(n1+n2)
}
