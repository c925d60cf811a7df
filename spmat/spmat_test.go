package spmat_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanonetlab/randomnwn/spmat"
)

// TestCompress_SumsDuplicates verifies duplicate coordinates accumulate and
// exact zeros are pruned.
func TestCompress_SumsDuplicates(t *testing.T) {
	coo := spmat.NewCOO(3)
	coo.Append(0, 0, 1.5)
	coo.Append(0, 0, 2.5)
	coo.Append(1, 2, -1)
	coo.Append(1, 2, 1) // cancels to zero, must be pruned
	coo.Append(2, 1, 4)

	m, err := coo.Compress()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Dims())
	assert.Equal(t, 2, m.NonZero())

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
	v, err = m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	v, err = m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

// TestCompress_Validation rejects bad sizes and out-of-range triplets.
func TestCompress_Validation(t *testing.T) {
	_, err := spmat.NewCOO(0).Compress()
	assert.ErrorIs(t, err, spmat.ErrNonPositiveSize)

	coo := spmat.NewCOO(2)
	coo.Append(0, 5, 1)
	_, err = coo.Compress()
	assert.ErrorIs(t, err, spmat.ErrIndexOutOfRange)
}

// TestAt_Bounds rejects out-of-range reads.
func TestAt_Bounds(t *testing.T) {
	m, err := spmat.NewCOO(2).Compress()
	require.NoError(t, err)
	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, spmat.ErrIndexOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, spmat.ErrIndexOutOfRange)
}

// TestFactorSolve_Known solves a 3×3 system with known solution x = (1,1,1).
func TestFactorSolve_Known(t *testing.T) {
	coo := spmat.NewCOO(3)
	coo.Append(0, 0, 2)
	coo.Append(0, 1, 1)
	coo.Append(1, 0, 1)
	coo.Append(1, 1, 3)
	coo.Append(1, 2, 1)
	coo.Append(2, 1, 1)
	coo.Append(2, 2, 2)

	m, err := coo.Compress()
	require.NoError(t, err)
	lu, err := m.Factor()
	require.NoError(t, err)

	x, err := lu.Solve([]float64{3, 5, 3})
	require.NoError(t, err)
	require.Len(t, x, 3)
	for i, want := range []float64{1, 1, 1} {
		assert.InDelta(t, want, x[i], 1e-12, "x[%d]", i)
	}
}

// TestFactorSolve_NeedsPivot exercises a zero leading diagonal, which a
// pivot-free elimination could not factor.
func TestFactorSolve_NeedsPivot(t *testing.T) {
	coo := spmat.NewCOO(2)
	coo.Append(0, 1, 1)
	coo.Append(1, 0, 1)

	m, err := coo.Compress()
	require.NoError(t, err)
	lu, err := m.Factor()
	require.NoError(t, err)

	x, err := lu.Solve([]float64{2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, x[0], 1e-12)
	assert.InDelta(t, 2.0, x[1], 1e-12)
}

// TestFactor_Singular surfaces ErrSingular for rank-deficient input.
func TestFactor_Singular(t *testing.T) {
	cases := []struct {
		name string
		fill func(*spmat.COO)
	}{
		{"AllZero", func(*spmat.COO) {}},
		{"DuplicateRows", func(c *spmat.COO) {
			c.Append(0, 0, 1)
			c.Append(0, 1, 1)
			c.Append(1, 0, 1)
			c.Append(1, 1, 1)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			coo := spmat.NewCOO(2)
			tc.fill(coo)
			m, err := coo.Compress()
			require.NoError(t, err)
			_, err = m.Factor()
			assert.ErrorIs(t, err, spmat.ErrSingular)
		})
	}
}

// TestSolve_DimensionMismatch rejects a wrong-length right-hand side.
func TestSolve_DimensionMismatch(t *testing.T) {
	coo := spmat.NewCOO(2)
	coo.Append(0, 0, 1)
	coo.Append(1, 1, 1)
	m, err := coo.Compress()
	require.NoError(t, err)
	lu, err := m.Factor()
	require.NoError(t, err)

	_, err = lu.Solve([]float64{1, 2, 3})
	assert.ErrorIs(t, err, spmat.ErrDimensionMismatch)
}

// TestFactorSolve_RandomResidual factors a random diagonally dominant sparse
// system and checks the residual A·x − b.
func TestFactorSolve_RandomResidual(t *testing.T) {
	const n = 40
	rng := rand.New(rand.NewSource(11))

	coo := spmat.NewCOO(n)
	dense := make([][]float64, n)
	for i := range dense {
		dense[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for k := 0; k < 4; k++ {
			j := rng.Intn(n)
			if j == i {
				continue
			}
			v := rng.Float64()*2 - 1
			coo.Append(i, j, v)
			dense[i][j] += v
		}
		diag := 5 + rng.Float64() // strict dominance keeps the system well-posed
		coo.Append(i, i, diag)
		dense[i][i] += diag
	}

	b := make([]float64, n)
	for i := range b {
		b[i] = rng.Float64()
	}

	m, err := coo.Compress()
	require.NoError(t, err)
	lu, err := m.Factor()
	require.NoError(t, err)
	x, err := lu.Solve(b)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		got := 0.0
		for j := 0; j < n; j++ {
			got += dense[i][j] * x[j]
		}
		assert.InDelta(t, b[i], got, 1e-9, "residual row %d", i)
	}
}

// TestSolve_Repeatable verifies the factored form is read-only across
// repeated right-hand sides.
func TestSolve_Repeatable(t *testing.T) {
	coo := spmat.NewCOO(2)
	coo.Append(0, 0, 4)
	coo.Append(0, 1, 1)
	coo.Append(1, 0, 1)
	coo.Append(1, 1, 3)
	m, err := coo.Compress()
	require.NoError(t, err)
	lu, err := m.Factor()
	require.NoError(t, err)

	x1, err := lu.Solve([]float64{5, 4})
	require.NoError(t, err)
	_, err = lu.Solve([]float64{0, 1})
	require.NoError(t, err)
	x2, err := lu.Solve([]float64{5, 4})
	require.NoError(t, err)
	assert.Equal(t, x1, x2)
}
