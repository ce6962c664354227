package levenshtein

// FindEditOps returns the minimal edit script transforming s1 into
// s2, as a sequence of single-byte operations. Keep is never emitted;
// consumers that want explicit Keep records should route the result
// through EditOpsToOpCodes and back via OpCodesToEditOps(true).
func FindEditOps(s1, s2 string) []EditOp {
	return findEditOpsSeq([]byte(s1), []byte(s2))
}

// FindEditOpsRunes is FindEditOps's wide-symbol counterpart.
func FindEditOpsRunes(s1, s2 []rune) []EditOp {
	return findEditOpsSeq(s1, s2)
}

// FindOpCodes returns the minimal edit script transforming s1 into
// s2, grouped into gap-free blocks including explicit Keep runs.
func FindOpCodes(s1, s2 string) []OpCode {
	return editOpsToOpCodesSlice(findEditOpsSeq([]byte(s1), []byte(s2)), len(s1), len(s2))
}

// FindOpCodesRunes is FindOpCodes's wide-symbol counterpart.
func FindOpCodesRunes(s1, s2 []rune) []OpCode {
	return editOpsToOpCodesSlice(findEditOpsSeq(s1, s2), len(s1), len(s2))
}

// EditOpsToOpCodes groups ops into opcode blocks spanning a source of
// length len1 and a destination of length len2.
func EditOpsToOpCodes(ops []EditOp, len1, len2 int) []OpCode {
	return editOpsToOpCodesSlice(ops, len1, len2)
}

// OpCodesToEditOps flattens bops into a per-symbol edit script.
// keepKeep controls whether Keep positions are emitted explicitly.
func OpCodesToEditOps(bops []OpCode, keepKeep bool) []EditOp {
	return opCodesToEditOpsSlice(bops, keepKeep)
}

// CheckEditOps validates ops against strings of length len1 and len2,
// returning a *CheckError (testable with errors.Is against the Err*
// sentinels) or nil.
func CheckEditOps(len1, len2 int, ops []EditOp) error {
	return checkEditOpsSlice(len1, len2, ops)
}

// CheckOpCodes validates bops against strings of length len1 and
// len2, returning a *CheckError or nil.
func CheckOpCodes(len1, len2 int, bops []OpCode) error {
	return checkOpCodesSlice(len1, len2, bops)
}

// InverseEditOps swaps the source/destination roles of ops.
func InverseEditOps(ops []EditOp) []EditOp {
	return inverseEditOpsSlice(ops)
}

// InverseOpCodes swaps the source/destination roles of bops.
func InverseOpCodes(bops []OpCode) []OpCode {
	return inverseOpCodesSlice(bops)
}

// ApplyEditOps applies ops to s1, using s2 as the source of any
// inserted or replaced bytes.
func ApplyEditOps(s1, s2 string, ops []EditOp) string {
	return string(applyEditOpsSeq([]byte(s1), []byte(s2), ops))
}

// ApplyEditOpsRunes is ApplyEditOps's wide-symbol counterpart.
func ApplyEditOpsRunes(s1, s2 []rune, ops []EditOp) []rune {
	return applyEditOpsSeq(s1, s2, ops)
}

// ApplyOpCodes applies bops to s1, using s2 as the source of any
// inserted or replaced bytes.
func ApplyOpCodes(s1, s2 string, bops []OpCode) string {
	return string(applyOpCodesSeq([]byte(s1), []byte(s2), bops))
}

// ApplyOpCodesRunes is ApplyOpCodes's wide-symbol counterpart.
func ApplyOpCodesRunes(s1, s2 []rune, bops []OpCode) []rune {
	return applyOpCodesSeq(s1, s2, bops)
}

// MatchingBlocksFromEditOps derives the maximal shared runs between a
// source of length len1 and a destination of length len2 implied by
// ops, with a trailing Len==0 sentinel at (len1, len2).
func MatchingBlocksFromEditOps(len1, len2 int, ops []EditOp) []MatchingBlock {
	return matchingBlocksFromEditOpsSlice(len1, len2, ops)
}

// MatchingBlocksFromOpCodes derives the maximal shared runs directly
// from bops's explicit Keep blocks.
func MatchingBlocksFromOpCodes(bops []OpCode) []MatchingBlock {
	return matchingBlocksFromOpCodesSlice(bops)
}
