// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewSquare(-1)                        // negative order
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return the requested shape.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.False(t, m.IsSquare())
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the finite-value policy of Set.
func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 1, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, v, "rejected writes must not modify storage")
}

// TestSetSymmetric writes both triangles in one call.
func TestSetSymmetric(t *testing.T) {
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)

	require.NoError(t, m.SetSymmetric(0, 2, 7.5))

	a, err := m.At(0, 2)
	require.NoError(t, err)
	b, err := m.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 7.5, a)
	require.Equal(t, a, b)

	r, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, r.SetSymmetric(0, 1, 1), matrix.ErrNonSquare)
}

// TestCloneAndRowAreIndependent verifies deep copies.
func TestCloneAndRowAreIndependent(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 4))

	c := m.Clone()
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 4}, row)

	require.NoError(t, m.Set(1, 1, 9))
	v, err := c.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
	require.Equal(t, 4.0, row[1])
	require.Equal(t, "[0, 0]\n[0, 9]\n", m.String())
}
