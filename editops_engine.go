package levenshtein

// findEditOpsSeq recovers a minimal edit script transforming s1 into
// s2. It strips the common prefix (remembering its length as an
// offset added back into every recovered position) and common suffix,
// builds the full cost matrix over what remains, and backtraces from
// the bottom-right cell under a direction-preserving tie-break: dir
// records whether the last emitted step was an insert (-1), a delete
// (+1), or neither yet (0). Continuing the current direction is
// preferred over any other transition; failing that, a diagonal match
// (silently consumed, never emitted) is preferred, then a diagonal
// replace; only then may dir flip, and a direct flip from -1 to +1 (or
// back) is never taken — the same diagonal preference applies there
// too, which the case ordering below enforces by construction.
func findEditOpsSeq[T comparable](s1, s2 []T) []EditOp {
	off := 0
	for len(s1) > 0 && len(s2) > 0 && s1[0] == s2[0] {
		s1 = s1[1:]
		s2 = s2[1:]
		off++
	}
	for len(s1) > 0 && len(s2) > 0 && s1[len(s1)-1] == s2[len(s2)-1] {
		s1 = s1[:len(s1)-1]
		s2 = s2[:len(s2)-1]
	}
	n, m := len(s1), len(s2)

	matrix := make([][]int, n+1)
	for i := range matrix {
		matrix[i] = make([]int, m+1)
	}
	for j := 0; j <= m; j++ {
		matrix[0][j] = j
	}
	for i := 1; i <= n; i++ {
		matrix[i][0] = i
	}
	for i := 1; i <= n; i++ {
		c1 := s1[i-1]
		row, prev := matrix[i], matrix[i-1]
		for j := 1; j <= m; j++ {
			cost := 0
			if c1 != s2[j-1] {
				cost = 1
			}
			x := prev[j-1] + cost
			if v := row[j-1] + 1; v < x {
				x = v
			}
			if v := prev[j] + 1; v < x {
				x = v
			}
			row[j] = x
		}
	}

	var rev []EditOp
	i, j, dir := n, m, 0
	for i > 0 || j > 0 {
		switch {
		case dir < 0 && j > 0 && matrix[i][j] == matrix[i][j-1]+1:
			j--
			rev = append(rev, EditOp{Type: Insert, Spos: i + off, Dpos: j + off})
		case dir > 0 && i > 0 && matrix[i][j] == matrix[i-1][j]+1:
			i--
			rev = append(rev, EditOp{Type: Delete, Spos: i + off, Dpos: j + off})
		case i > 0 && j > 0 && matrix[i][j] == matrix[i-1][j-1] && s1[i-1] == s2[j-1]:
			i--
			j--
			dir = 0
		case i > 0 && j > 0 && matrix[i][j] == matrix[i-1][j-1]+1:
			i--
			j--
			rev = append(rev, EditOp{Type: Replace, Spos: i + off, Dpos: j + off})
			dir = 0
		case dir == 0 && j > 0 && matrix[i][j] == matrix[i][j-1]+1:
			j--
			rev = append(rev, EditOp{Type: Insert, Spos: i + off, Dpos: j + off})
			dir = -1
		case dir == 0 && i > 0 && matrix[i][j] == matrix[i-1][j]+1:
			i--
			rev = append(rev, EditOp{Type: Delete, Spos: i + off, Dpos: j + off})
			dir = 1
		default:
			panic("levenshtein: lost in the cost matrix")
		}
	}

	ops := make([]EditOp, len(rev))
	for k, op := range rev {
		ops[len(rev)-1-k] = op
	}
	return ops
}

// applyEditOpsSeq applies a (possibly partial) edit script to s1,
// producing the result of transforming it with ops. Any source range
// the script does not mention is copied verbatim, so a prefix of the
// full script reproduces only a prefix of the transformation.
func applyEditOpsSeq[T comparable](s1, s2 []T, ops []EditOp) []T {
	out := make([]T, 0, len(s1)+len(ops))
	scur := 0
	for _, op := range ops {
		end := op.Spos
		if op.Type == Keep {
			end++
		}
		if end > scur {
			out = append(out, s1[scur:end]...)
			scur = end
		}
		switch op.Type {
		case Delete:
			scur = op.Spos + 1
		case Replace:
			out = append(out, s2[op.Dpos])
			scur = op.Spos + 1
		case Insert:
			out = append(out, s2[op.Dpos])
		}
	}
	out = append(out, s1[scur:]...)
	return out
}

// applyOpCodesSeq applies a block opcode list to s1/s2.
func applyOpCodesSeq[T comparable](s1, s2 []T, bops []OpCode) []T {
	out := make([]T, 0, len(s1)+len(s2))
	for _, b := range bops {
		switch b.Type {
		case Keep:
			out = append(out, s1[b.Sbeg:b.Send]...)
		case Insert, Replace:
			out = append(out, s2[b.Dbeg:b.Dend]...)
		case Delete:
			// emits nothing
		}
	}
	return out
}
