package levenshtein

// GreedyMedian builds an approximate generalized median string for
// strings, weighted by weights (one weight per string, same order),
// minimizing the weighted sum of Levenshtein distances to every
// input. It is a greedy approximation, not an exact solver: it need
// not find the true minimum, only a short string close to it.
func GreedyMedian(strings []string, weights []float64) string {
	targets := make([][]byte, len(strings))
	for i, s := range strings {
		targets[i] = []byte(s)
	}
	return string(greedyMedianSeq(targets, weights, alphabetBytes(targets)))
}

// GreedyMedianRunes is GreedyMedian's wide-symbol counterpart.
func GreedyMedianRunes(strings [][]rune, weights []float64) []rune {
	return greedyMedianSeq(strings, weights, alphabetRunes(strings))
}

// MedianImprove perturbs candidate by single-symbol replace, insert,
// or delete operations, committing at each position whichever of them
// lowers the weighted total distance the most (if any does). It never
// returns a string with a greater weighted
// total distance to strings than candidate's.
func MedianImprove(candidate string, strings []string, weights []float64) string {
	targets := make([][]byte, len(strings))
	for i, s := range strings {
		targets[i] = []byte(s)
	}
	return string(medianImproveSeq([]byte(candidate), targets, weights, alphabetBytes(targets)))
}

// MedianImproveRunes is MedianImprove's wide-symbol counterpart.
func MedianImproveRunes(candidate []rune, strings [][]rune, weights []float64) []rune {
	return medianImproveSeq(candidate, strings, weights, alphabetRunes(strings))
}

// SetMedian returns whichever of strings minimizes the weighted sum
// of its Levenshtein distances to all the others: unlike GreedyMedian,
// the result is always one of the inputs, verbatim.
func SetMedian(strings []string, weights []float64) string {
	targets := make([][]byte, len(strings))
	for i, s := range strings {
		targets[i] = []byte(s)
	}
	return string(setMedianSeq(targets, weights))
}

// SetMedianRunes is SetMedian's wide-symbol counterpart.
func SetMedianRunes(strings [][]rune, weights []float64) []rune {
	return setMedianSeq(strings, weights)
}
