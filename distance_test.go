package levenshtein_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	levenshtein "github.com/cristaloleg/levdist"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		name     string
		s1, s2   string
		xcost    bool
		expected int
	}{
		{"identical", "kitten", "kitten", false, 0},
		{"classic", "kitten", "sitting", false, 3},
		{"readme-1", "Levenshtein", "Lenvinsten", false, 4},
		{"readme-2", "Levenshtein", "Levensthein", false, 2},
		{"empty both", "", "", false, 0},
		{"empty s1", "", "abc", false, 3},
		{"empty s2", "abc", "", false, 3},
		{"xcost substitution", "a", "b", true, 2},
		{"no xcost substitution", "a", "b", false, 1},
		{"singleton found", "a", "xaz", false, 2},
		{"singleton missing", "a", "xyz", false, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, levenshtein.Distance(tc.s1, tc.s2, tc.xcost))
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{{"spam", "park"}, {"horse", "arose"}, {"flaw", "lawn"}}
	for _, p := range pairs {
		require.Equal(t, levenshtein.Distance(p[0], p[1], false), levenshtein.Distance(p[1], p[0], false))
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	a, b, c := "kitten", "sitting", "sitter"
	ab := levenshtein.Distance(a, b, false)
	ac := levenshtein.Distance(a, c, false)
	bc := levenshtein.Distance(b, c, false)
	diff := ab - ac
	if diff < 0 {
		diff = -diff
	}
	assert.LessOrEqual(t, diff, bc)
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 1.0, levenshtein.Ratio("", ""))
	assert.Equal(t, 1.0, levenshtein.Ratio("same", "same"))
	r := levenshtein.Ratio("Levenshtein", "Lenvinsten")
	assert.Greater(t, r, 0.0)
	assert.Less(t, r, 1.0)
}
