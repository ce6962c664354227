// Package munkres solves the rectangular linear assignment problem by
// the Kuhn-Munkres (Hungarian) algorithm: given a cost matrix with at
// least as many rows as columns, find the minimum-cost way to match
// every column to a distinct row.
package munkres

import "math"

// epsilon snaps near-zero reduced costs to exactly zero, the same
// tolerance the reference implementation uses to keep floating-point
// noise from hiding a true zero from the zero-search steps.
const epsilon = 1e-14

// Solve returns assign, where assign[j] is the row matched to column
// j. cost must have at least as many rows as columns and at least one
// column; Solve panics otherwise. cost is modified in place by the
// reduction steps — pass a copy if the original matrix is needed
// afterward.
func Solve(cost [][]float64) []int {
	rows := len(cost)
	if rows == 0 {
		panic("munkres: empty cost matrix")
	}
	cols := len(cost[0])
	if cols == 0 || cols > rows {
		panic("munkres: cost matrix must have 1 <= cols <= rows")
	}

	starRow := make([]int, cols) // starRow[j]: row starred in column j, or -1
	starCol := make([]int, rows) // starCol[i]: column starred in row i, or -1
	primeCol := make([]int, rows)
	for j := range starRow {
		starRow[j] = -1
	}
	for i := range starCol {
		starCol[i] = -1
	}

	reduceColumns(cost, starRow, starCol)

	coveredRow := make([]bool, rows)
	coveredCol := make([]bool, cols)

	for {
		nCovered := 0
		for j, r := range starRow {
			coveredCol[j] = r != -1
			if coveredCol[j] {
				nCovered++
			}
		}
		if nCovered == cols {
			break
		}
		for i := range coveredRow {
			coveredRow[i] = false
		}
		for i := range primeCol {
			primeCol[i] = -1
		}

		row, col := findAugmentingPath(cost, starRow, starCol, primeCol, coveredRow, coveredCol)
		augment(starRow, starCol, primeCol, row, col)
	}

	return starRow
}

// reduceColumns subtracts each column's minimum from every entry in
// that column (so every column contains at least one zero) and stars
// one zero per column, preferring the row the minimum came from but
// falling back to any other available zero in the column.
func reduceColumns(cost [][]float64, starRow, starCol []int) {
	rows, cols := len(cost), len(starRow)
	for j := 0; j < cols; j++ {
		minRow := 0
		min := cost[0][j]
		for i := 1; i < rows; i++ {
			if cost[i][j] < min {
				min = cost[i][j]
				minRow = i
			}
		}
		for i := 0; i < rows; i++ {
			cost[i][j] -= min
			if cost[i][j] < epsilon {
				cost[i][j] = 0
			}
		}
		if starRow[j] == -1 && starCol[minRow] == -1 {
			starRow[j] = minRow
			starCol[minRow] = j
			continue
		}
		for i := 0; i < rows; i++ {
			if i != minRow && cost[i][j] == 0 && starRow[j] == -1 && starCol[i] == -1 {
				starRow[j] = i
				starCol[i] = j
				break
			}
		}
	}
}

// findAugmentingPath primes uncovered zeroes, displacing the covered
// star row/uncovered star column of any primed zero whose row already
// carries a star, until it reaches a zero in a row with no star.
// When no uncovered zero remains, it manufactures one (adds the
// smallest uncovered entry to every covered row, subtracts it from
// every uncovered column) and resumes. Returns the terminal
// (row, column) pair: a prime with no star in its row.
func findAugmentingPath(cost [][]float64, starRow, starCol, primeCol []int, coveredRow, coveredCol []bool) (int, int) {
	for {
		i, j, found := findUncoveredZero(cost, coveredRow, coveredCol)
		if !found {
			manufactureZero(cost, coveredRow, coveredCol)
			continue
		}
		primeCol[i] = j
		if starCol[i] == -1 {
			return i, j
		}
		coveredRow[i] = true
		coveredCol[starCol[i]] = false
	}
}

func findUncoveredZero(cost [][]float64, coveredRow, coveredCol []bool) (int, int, bool) {
	rows, cols := len(coveredRow), len(coveredCol)
	for j := 0; j < cols; j++ {
		if coveredCol[j] {
			continue
		}
		for i := 0; i < rows; i++ {
			if !coveredRow[i] && cost[i][j] == 0 {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func manufactureZero(cost [][]float64, coveredRow, coveredCol []bool) {
	rows, cols := len(coveredRow), len(coveredCol)
	min := math.MaxFloat64
	for j := 0; j < cols; j++ {
		if coveredCol[j] {
			continue
		}
		for i := 0; i < rows; i++ {
			if !coveredRow[i] && cost[i][j] < min {
				min = cost[i][j]
			}
		}
	}
	for i := 0; i < rows; i++ {
		if !coveredRow[i] {
			continue
		}
		for j := 0; j < cols; j++ {
			cost[i][j] += min
		}
	}
	for j := 0; j < cols; j++ {
		if coveredCol[j] {
			continue
		}
		for i := 0; i < rows; i++ {
			cost[i][j] -= min
			if cost[i][j] < epsilon {
				cost[i][j] = 0
			}
		}
	}
}

// augment walks the alternating path backward from (row, col) — a
// prime with no star in its row — flipping each prime to a star and,
// where a column's previous star owner exists, displacing that row to
// the column it was primed at, and repeating until a row with no
// previous star terminates the chain.
func augment(starRow, starCol, primeCol []int, row, col int) {
	for {
		prevRow := starRow[col]
		starRow[col] = row
		starCol[row] = col
		if prevRow == -1 {
			return
		}
		row = prevRow
		col = primeCol[row]
	}
}
