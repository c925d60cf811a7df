package spmat

import (
	"fmt"
	"math"
	"sort"
)

// entry is one stored element of a working row, ordered by column.
type entry struct {
	col int
	val float64
}

// sparseRow is a column-sorted slice of stored entries.
type sparseRow []entry

// at returns the value at the given column, zero if absent.
func (r sparseRow) at(col int) float64 {
	pos := sort.Search(len(r), func(i int) bool { return r[i].col >= col })
	if pos < len(r) && r[pos].col == col {
		return r[pos].val
	}

	return 0
}

// LU holds a factored system: combined L\U rows (columns below the pivot
// hold the unit-lower-triangular multipliers, the pivot and columns after it
// hold U) plus the row permutation chosen by pivoting.
type LU struct {
	n    int
	perm []int // perm[k] = original row index eliminated at step k
	rows []sparseRow
}

// Factor computes the sparse LU decomposition of the matrix with partial
// (column-maximum) row pivoting. Fill-in is created as needed; exact zeros
// produced by cancellation are dropped to preserve sparsity.
//
// Returns ErrSingular, wrapped with the failing step, when no nonzero pivot
// exists in a column — the structural signature of a degenerate system.
// Complexity: O(n·f) where f is the average factored-row length.
func (m *CSR) Factor() (*LU, error) {
	lu := &LU{
		n:    m.n,
		perm: make([]int, m.n),
		rows: make([]sparseRow, m.n),
	}
	for i := 0; i < m.n; i++ {
		lu.perm[i] = i
		lo, hi := m.rowPtr[i], m.rowPtr[i+1]
		row := make(sparseRow, 0, hi-lo)
		for p := lo; p < hi; p++ {
			row = append(row, entry{col: m.colInd[p], val: m.vals[p]})
		}
		lu.rows[i] = row
	}

	for k := 0; k < lu.n; k++ {
		// Pivot search: largest magnitude in column k at or below the
		// diagonal.
		pivotRow, pivotMag := -1, 0.0
		for r := k; r < lu.n; r++ {
			if mag := math.Abs(lu.rows[r].at(k)); mag > pivotMag {
				pivotRow, pivotMag = r, mag
			}
		}
		if pivotRow < 0 {
			return nil, fmt.Errorf("%w: no pivot in column %d", ErrSingular, k)
		}
		if pivotRow != k {
			lu.rows[k], lu.rows[pivotRow] = lu.rows[pivotRow], lu.rows[k]
			lu.perm[k], lu.perm[pivotRow] = lu.perm[pivotRow], lu.perm[k]
		}
		pivot := lu.rows[k].at(k)

		for r := k + 1; r < lu.n; r++ {
			target := lu.rows[r].at(k)
			if target == 0 {
				continue
			}
			lu.rows[r] = eliminate(lu.rows[r], lu.rows[k], target/pivot, k)
		}
	}

	return lu, nil
}

// eliminate returns target − mult·pivot over columns > k, keeping the L part
// (columns < k) untouched and storing mult at column k as the L factor.
func eliminate(target, pivot sparseRow, mult float64, k int) sparseRow {
	out := make(sparseRow, 0, len(target)+len(pivot))

	// L multipliers from earlier steps stay as they are.
	ti := 0
	for ti < len(target) && target[ti].col < k {
		out = append(out, target[ti])
		ti++
	}
	out = append(out, entry{col: k, val: mult})
	if ti < len(target) && target[ti].col == k {
		ti++ // consumed: replaced by the multiplier
	}

	// Merge the U parts: columns strictly greater than k.
	pi := sort.Search(len(pivot), func(i int) bool { return pivot[i].col > k })
	for ti < len(target) || pi < len(pivot) {
		switch {
		case pi >= len(pivot) || (ti < len(target) && target[ti].col < pivot[pi].col):
			out = append(out, target[ti])
			ti++
		case ti >= len(target) || pivot[pi].col < target[ti].col:
			out = append(out, entry{col: pivot[pi].col, val: -mult * pivot[pi].val})
			pi++
		default:
			if v := target[ti].val - mult*pivot[pi].val; v != 0 {
				out = append(out, entry{col: target[ti].col, val: v})
			}
			ti++
			pi++
		}
	}

	return out
}

// Solve computes x for A·x = b using the factored form: forward elimination
// through L, backward substitution through U, then the permutation
// unscramble back to the caller's row order.
//
// The factored form is read-only here; Solve may be called any number of
// times with different right-hand sides.
// Complexity: O(nnz(L)+nnz(U)).
func (lu *LU) Solve(b []float64) ([]float64, error) {
	if len(b) != lu.n {
		return nil, fmt.Errorf("%w: rhs length %d, matrix size %d",
			ErrDimensionMismatch, len(b), lu.n)
	}

	// Forward elimination: L·y = P·b, unit diagonal implicit.
	y := make([]float64, lu.n)
	for k := 0; k < lu.n; k++ {
		sum := b[lu.perm[k]]
		for _, e := range lu.rows[k] {
			if e.col >= k {
				break
			}
			sum -= e.val * y[e.col]
		}
		y[k] = sum
	}

	// Backward substitution: U·x = y.
	x := make([]float64, lu.n)
	for k := lu.n - 1; k >= 0; k-- {
		sum := y[k]
		diag := 0.0
		row := lu.rows[k]
		pos := sort.Search(len(row), func(i int) bool { return row[i].col >= k })
		for _, e := range row[pos:] {
			if e.col == k {
				diag = e.val
				continue
			}
			sum -= e.val * x[e.col]
		}
		if diag == 0 {
			return nil, fmt.Errorf("%w: zero pivot in row %d", ErrSingular, k)
		}
		x[k] = sum / diag
	}

	return x, nil
}
