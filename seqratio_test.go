package levenshtein_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	levenshtein "github.com/cristaloleg/levdist"
)

func TestSeqDistanceIdentical(t *testing.T) {
	assert.Equal(t, 0.0, levenshtein.SeqDistance([]string{"a", "b"}, []string{"a", "b"}))
	assert.Equal(t, 1.0, levenshtein.SeqRatio([]string{"a", "b"}, []string{"a", "b"}))
}

func TestSeqDistanceBothEmpty(t *testing.T) {
	assert.Equal(t, 0.0, levenshtein.SeqDistance(nil, nil))
	assert.Equal(t, 1.0, levenshtein.SeqRatio(nil, nil))
}

func TestSeqDistanceOneSidedInsert(t *testing.T) {
	assert.Equal(t, 1.0, levenshtein.SeqDistance([]string{"abc"}, nil))
	assert.Equal(t, 1.0, levenshtein.SeqDistance(nil, []string{"abc"}))
}

func TestSetDistanceOrderIrrelevant(t *testing.T) {
	assert.Equal(t, 0.0, levenshtein.SetDistance([]string{"a", "b"}, []string{"b", "a"}))
}

func TestSetDistanceUnmatchedElement(t *testing.T) {
	assert.Equal(t, 1.0, levenshtein.SetDistance([]string{"a"}, []string{"a", "x"}))
}

func TestSeqRatioRunesIdentical(t *testing.T) {
	a := [][]rune{[]rune("α"), []rune("β")}
	assert.Equal(t, 0.0, levenshtein.SeqDistanceRunes(a, a))
	assert.Equal(t, 1.0, levenshtein.SeqRatioRunes(a, a))
}

func TestSetRatioBounded(t *testing.T) {
	r := levenshtein.SetRatio([]string{"kitten", "sitting"}, []string{"mitten", "sitting"})
	assert.Greater(t, r, 0.0)
	assert.LessOrEqual(t, r, 1.0)
}
