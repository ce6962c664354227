package levenshtein_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	levenshtein "github.com/cristaloleg/levdist"
)

func TestFindEditOpsSpamPark(t *testing.T) {
	ops := levenshtein.FindEditOps("spam", "park")
	want := []levenshtein.EditOp{
		{Type: levenshtein.Delete, Spos: 0, Dpos: 0},
		{Type: levenshtein.Insert, Spos: 3, Dpos: 2},
		{Type: levenshtein.Replace, Spos: 3, Dpos: 3},
	}
	assert.Equal(t, want, ops)
}

func TestApplyEditOpsRoundTrip(t *testing.T) {
	pairs := [][2]string{{"spam", "park"}, {"horse", "arose"}, {"", "abc"}, {"abc", ""}}
	for _, p := range pairs {
		ops := levenshtein.FindEditOps(p[0], p[1])
		assert.Equal(t, p[1], levenshtein.ApplyEditOps(p[0], p[1], ops))

		inv := levenshtein.InverseEditOps(ops)
		assert.Equal(t, p[0], levenshtein.ApplyEditOps(p[1], p[0], inv))
	}
}

func TestInverseInverseIsIdentity(t *testing.T) {
	ops := levenshtein.FindEditOps("kitten", "sitting")
	assert.Equal(t, ops, levenshtein.InverseEditOps(levenshtein.InverseEditOps(ops)))

	bops := levenshtein.FindOpCodes("kitten", "sitting")
	assert.Equal(t, bops, levenshtein.InverseOpCodes(levenshtein.InverseOpCodes(bops)))
}

func TestEditOpsToOpCodesPassesCheck(t *testing.T) {
	pairs := [][2]string{{"spam", "park"}, {"kitten", "sitting"}, {"", ""}, {"abc", "abc"}}
	for _, p := range pairs {
		ops := levenshtein.FindEditOps(p[0], p[1])
		bops := levenshtein.EditOpsToOpCodes(ops, len(p[0]), len(p[1]))
		require.NoError(t, levenshtein.CheckOpCodes(len(p[0]), len(p[1]), bops))
	}
}

func TestOpCodesToEditOpsRoundTrip(t *testing.T) {
	ops := levenshtein.FindEditOps("spam", "park")
	bops := levenshtein.EditOpsToOpCodes(ops, 4, 4)
	back := levenshtein.OpCodesToEditOps(bops, true)
	bopsAgain := levenshtein.EditOpsToOpCodes(back, 4, 4)
	assert.Equal(t, bops, bopsAgain)
}

func TestMatchingBlocksCoverSharedRuns(t *testing.T) {
	s1, s2 := "spam", "park"
	ops := levenshtein.FindEditOps(s1, s2)
	mbs := levenshtein.MatchingBlocksFromEditOps(len(s1), len(s2), ops)
	for _, mb := range mbs[:len(mbs)-1] {
		assert.Equal(t, s1[mb.Spos:mb.Spos+mb.Len], s2[mb.Dpos:mb.Dpos+mb.Len])
	}
	last := mbs[len(mbs)-1]
	assert.Equal(t, levenshtein.MatchingBlock{Spos: len(s1), Dpos: len(s2), Len: 0}, last)
}

func TestCheckEditOpsRejectsBadOrder(t *testing.T) {
	ops := []levenshtein.EditOp{
		{Type: levenshtein.Replace, Spos: 2, Dpos: 2},
		{Type: levenshtein.Replace, Spos: 1, Dpos: 1},
	}
	err := levenshtein.CheckEditOps(4, 4, ops)
	require.Error(t, err)
	assert.True(t, errors.Is(err, levenshtein.ErrOrder))
}

func TestCheckOpCodesRejectsBadSpan(t *testing.T) {
	bops := []levenshtein.OpCode{
		{Type: levenshtein.Keep, Sbeg: 1, Send: 4, Dbeg: 1, Dend: 4},
	}
	err := levenshtein.CheckOpCodes(4, 4, bops)
	require.Error(t, err)
	assert.True(t, errors.Is(err, levenshtein.ErrSpan))
}

func TestCheckOpCodesRejectsBadBlock(t *testing.T) {
	bops := []levenshtein.OpCode{
		{Type: levenshtein.Insert, Sbeg: 0, Send: 1, Dbeg: 0, Dend: 1},
	}
	err := levenshtein.CheckOpCodes(1, 1, bops)
	require.Error(t, err)
	assert.True(t, errors.Is(err, levenshtein.ErrBlock))
}

func TestCheckErrorIsComparesOnlyCode(t *testing.T) {
	err := &levenshtein.CheckError{Code: 0, Index: 7}
	// intentionally construct another CheckError with the same Code as ErrType
	assert.True(t, errors.Is(err, levenshtein.ErrType))
}
