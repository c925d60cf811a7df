package spmat

import (
	"fmt"
	"sort"
)

// COO is a square sparse matrix under assembly, stored as parallel triplet
// lists (row, col, value). Append is O(1); duplicates are legal and sum
// during Compress.
type COO struct {
	n    int
	rows []int
	cols []int
	vals []float64
}

// NewCOO returns an empty n×n triplet accumulator.
// n must be positive; Compress reports the error otherwise.
func NewCOO(n int) *COO {
	return &COO{n: n}
}

// Dims returns the matrix dimension n.
func (c *COO) Dims() int {
	return c.n
}

// Append records the triplet (i, j, v). Exact zeros are recorded too; they
// are pruned during compression.
func (c *COO) Append(i, j int, v float64) {
	c.rows = append(c.rows, i)
	c.cols = append(c.cols, j)
	c.vals = append(c.vals, v)
}

// Compress validates all triplets and converts them into a compressed
// sparse row matrix, summing duplicate coordinates and dropping exact
// zeros. The accumulator is left untouched.
// Complexity: O(nnz log nnz).
func (c *COO) Compress() (*CSR, error) {
	if c.n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNonPositiveSize, c.n)
	}
	for k := range c.rows {
		if c.rows[k] < 0 || c.rows[k] >= c.n || c.cols[k] < 0 || c.cols[k] >= c.n {
			return nil, fmt.Errorf("%w: triplet (%d,%d) in %d×%d matrix",
				ErrIndexOutOfRange, c.rows[k], c.cols[k], c.n, c.n)
		}
	}

	// Sort triplet order by (row, col) through an index permutation.
	order := make([]int, len(c.rows))
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if c.rows[ka] != c.rows[kb] {
			return c.rows[ka] < c.rows[kb]
		}

		return c.cols[ka] < c.cols[kb]
	})

	m := &CSR{
		n:      c.n,
		rowPtr: make([]int, c.n+1),
		colInd: make([]int, 0, len(order)),
		vals:   make([]float64, 0, len(order)),
	}

	for idx := 0; idx < len(order); {
		k := order[idx]
		row, col := c.rows[k], c.cols[k]
		sum := 0.0
		for idx < len(order) && c.rows[order[idx]] == row && c.cols[order[idx]] == col {
			sum += c.vals[order[idx]]
			idx++
		}
		if sum == 0 {
			continue
		}
		m.colInd = append(m.colInd, col)
		m.vals = append(m.vals, sum)
		m.rowPtr[row+1]++
	}
	for r := 0; r < c.n; r++ {
		m.rowPtr[r+1] += m.rowPtr[r]
	}

	return m, nil
}

// CSR is an immutable square matrix in compressed sparse row form.
type CSR struct {
	n      int
	rowPtr []int
	colInd []int
	vals   []float64
}

// Dims returns the matrix dimension n.
func (m *CSR) Dims() int {
	return m.n
}

// NonZero returns the number of stored entries.
func (m *CSR) NonZero() int {
	return len(m.vals)
}

// At returns the entry at (i, j); entries not stored are zero.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("%w: (%d,%d) in %d×%d matrix", ErrIndexOutOfRange, i, j, m.n, m.n)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	pos := lo + sort.SearchInts(m.colInd[lo:hi], j)
	if pos < hi && m.colInd[pos] == j {
		return m.vals[pos], nil
	}

	return 0, nil
}
