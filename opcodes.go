package levenshtein

// editOpsToOpCodesSlice groups a (possibly empty) edit script into
// gap-free opcode blocks spanning [0,len1) x [0,len2). Consecutive ops
// of the same type, and the implicit Keep runs between them, are
// merged into single blocks. Explicit Keep entries are skipped: Keep
// blocks are derived from the position gaps between the other ops.
func editOpsToOpCodesSlice(ops []EditOp, len1, len2 int) []OpCode {
	var out []OpCode
	spos, dpos := 0, 0
	i := 0
	for i < len(ops) {
		if ops[i].Type == Keep {
			i++
			continue
		}
		if ops[i].Spos > spos || ops[i].Dpos > dpos {
			send, dend := ops[i].Spos, ops[i].Dpos
			out = append(out, OpCode{Type: Keep, Sbeg: spos, Send: send, Dbeg: dpos, Dend: dend})
			spos, dpos = send, dend
		}
		typ := ops[i].Type
		sbeg, dbeg := spos, dpos
		for i < len(ops) && ops[i].Type == typ && ops[i].Spos == spos && ops[i].Dpos == dpos {
			switch typ {
			case Replace:
				spos++
				dpos++
			case Insert:
				dpos++
			case Delete:
				spos++
			}
			i++
		}
		out = append(out, OpCode{Type: typ, Sbeg: sbeg, Send: spos, Dbeg: dbeg, Dend: dpos})
	}
	if spos < len1 || dpos < len2 {
		out = append(out, OpCode{Type: Keep, Sbeg: spos, Send: len1, Dbeg: dpos, Dend: len2})
	}
	return out
}

// opCodesToEditOpsSlice flattens an opcode list back into a
// per-symbol edit script. keepKeep controls whether Keep positions are
// emitted as explicit EditOp{Type: Keep} records or silently omitted,
// matching FindEditOps's convention.
func opCodesToEditOpsSlice(bops []OpCode, keepKeep bool) []EditOp {
	var out []EditOp
	for _, b := range bops {
		switch b.Type {
		case Keep:
			if !keepKeep {
				continue
			}
			for k := 0; k < b.Send-b.Sbeg; k++ {
				out = append(out, EditOp{Type: Keep, Spos: b.Sbeg + k, Dpos: b.Dbeg + k})
			}
		case Replace:
			for k := 0; k < b.Send-b.Sbeg; k++ {
				out = append(out, EditOp{Type: Replace, Spos: b.Sbeg + k, Dpos: b.Dbeg + k})
			}
		case Insert:
			for k := 0; k < b.Dend-b.Dbeg; k++ {
				out = append(out, EditOp{Type: Insert, Spos: b.Sbeg, Dpos: b.Dbeg + k})
			}
		case Delete:
			for k := 0; k < b.Send-b.Sbeg; k++ {
				out = append(out, EditOp{Type: Delete, Spos: b.Sbeg + k, Dpos: b.Dbeg})
			}
		}
	}
	return out
}

// checkEditOpsSlice validates an edit script against the strings it
// is meant to transform, returning the first violation found in the
// order: out-of-range Type, out-of-range position, then non-monotone
// ordering across consecutive records.
func checkEditOpsSlice(len1, len2 int, ops []EditOp) error {
	for i, op := range ops {
		switch op.Type {
		case Keep, Replace, Insert, Delete:
		default:
			return &CheckError{Code: codeType, Index: i}
		}
		if op.Spos > len1 || op.Dpos > len2 {
			return &CheckError{Code: codeOut, Index: i}
		}
		if op.Spos == len1 && op.Type != Insert {
			return &CheckError{Code: codeOut, Index: i}
		}
		if op.Dpos == len2 && op.Type != Delete {
			return &CheckError{Code: codeOut, Index: i}
		}
	}
	for i := 1; i < len(ops); i++ {
		if ops[i].Spos < ops[i-1].Spos || ops[i].Dpos < ops[i-1].Dpos {
			return &CheckError{Code: codeOrder, Index: i}
		}
	}
	return nil
}

// checkOpCodesSlice validates an opcode list against the lengths of
// the strings it spans, returning the first violation found in the
// order: span coverage, out-of-range position, block-length
// constraints (and, within that, bad Type), then chain continuity.
func checkOpCodesSlice(len1, len2 int, bops []OpCode) error {
	if len(bops) == 0 {
		if len1 == 0 && len2 == 0 {
			return nil
		}
		return &CheckError{Code: codeSpan, Index: 0}
	}
	first, last := bops[0], bops[len(bops)-1]
	if first.Sbeg != 0 || first.Dbeg != 0 || last.Send != len1 || last.Dend != len2 {
		return &CheckError{Code: codeSpan, Index: 0}
	}
	for i, b := range bops {
		if b.Send > len1 || b.Dend > len2 {
			return &CheckError{Code: codeOut, Index: i}
		}
		switch b.Type {
		case Keep, Replace:
			if b.Send-b.Sbeg != b.Dend-b.Dbeg || b.Send == b.Sbeg {
				return &CheckError{Code: codeBlock, Index: i}
			}
		case Insert:
			if b.Dend-b.Dbeg == 0 || b.Send != b.Sbeg {
				return &CheckError{Code: codeBlock, Index: i}
			}
		case Delete:
			if b.Send-b.Sbeg == 0 || b.Dend != b.Dbeg {
				return &CheckError{Code: codeBlock, Index: i}
			}
		default:
			return &CheckError{Code: codeType, Index: i}
		}
	}
	for i := 1; i < len(bops); i++ {
		if bops[i].Sbeg != bops[i-1].Send || bops[i].Dbeg != bops[i-1].Dend {
			return &CheckError{Code: codeOrder, Index: i}
		}
	}
	return nil
}

// inverseEditOpsSlice swaps the source/destination roles of an edit
// script, turning "s1 into s2" into "s2 into s1". List order is
// preserved: since Spos and Dpos were both non-decreasing in the
// original, they remain so after the field swap.
func inverseEditOpsSlice(ops []EditOp) []EditOp {
	out := make([]EditOp, len(ops))
	for i, op := range ops {
		out[i] = EditOp{Type: op.Type.inverse(), Spos: op.Dpos, Dpos: op.Spos}
	}
	return out
}

// inverseOpCodesSlice is inverseEditOpsSlice's block-level counterpart.
func inverseOpCodesSlice(bops []OpCode) []OpCode {
	out := make([]OpCode, len(bops))
	for i, b := range bops {
		out[i] = OpCode{Type: b.Type.inverse(), Sbeg: b.Dbeg, Send: b.Dend, Dbeg: b.Sbeg, Dend: b.Send}
	}
	return out
}

// matchingBlocksFromEditOpsSlice derives the maximal shared runs
// implied by an edit script that omits Keep entries (as FindEditOps
// does), appending a Len==0 sentinel at (len1, len2).
func matchingBlocksFromEditOpsSlice(len1, len2 int, ops []EditOp) []MatchingBlock {
	var out []MatchingBlock
	spos, dpos := 0, 0
	for _, op := range ops {
		if op.Type == Keep {
			continue
		}
		if op.Spos > spos {
			out = append(out, MatchingBlock{Spos: spos, Dpos: dpos, Len: op.Spos - spos})
		}
		spos, dpos = op.Spos, op.Dpos
		switch op.Type {
		case Replace:
			spos++
			dpos++
		case Insert:
			dpos++
		case Delete:
			spos++
		}
	}
	if spos < len1 || dpos < len2 {
		n := len1 - spos
		if m := len2 - dpos; m < n {
			n = m
		}
		if n > 0 {
			out = append(out, MatchingBlock{Spos: spos, Dpos: dpos, Len: n})
		}
	}
	out = append(out, MatchingBlock{Spos: len1, Dpos: len2, Len: 0})
	return out
}

// matchingBlocksFromOpCodesSlice reads the maximal shared runs
// directly off an opcode list's explicit Keep blocks. Unlike the
// edit-script form, no sentinel is appended: the last opcode already
// ends at (len1, len2) by construction.
func matchingBlocksFromOpCodesSlice(bops []OpCode) []MatchingBlock {
	var out []MatchingBlock
	for _, b := range bops {
		if b.Type == Keep {
			out = append(out, MatchingBlock{Spos: b.Sbeg, Dpos: b.Dbeg, Len: b.Send - b.Sbeg})
		}
	}
	return out
}
