// Package matrix_test contains unit tests for the RowMatrix implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/primer/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewRowMatrixInvalidDimensions ensures that negative dimensions and
// shapes whose element count overflows int are rejected.
func TestNewRowMatrixInvalidDimensions(t *testing.T) {
	_, err := matrix.NewRowMatrix[float64](-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewRowMatrix[float64](5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	for _, shape := range [][2]int{{2, math.MaxInt/2 + 1}, {math.MaxInt/2 + 1, 2}, {math.MaxInt, math.MaxInt}} {
		require.NotPanics(t, func() {
			m, err := matrix.NewRowMatrix[float64](shape[0], shape[1])
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %v", shape)
			require.Nil(t, m)
		})
	}
}

// TestNewRowMatrixZeroFilled verifies shape and zero initialization.
func TestNewRowMatrixZeroFilled(t *testing.T) {
	m := MustRowMatrix(t, 3, 4)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 12, m.Len())
	for _, v := range m.Data() {
		require.Zero(t, v)
	}
}

// TestZeroAreaShapes checks that 0×N and N×0 matrices have no addressable elements.
func TestZeroAreaShapes(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {0, 3}, {3, 0}} {
		m := MustRowMatrix(t, shape[0], shape[1])

		require.Equal(t, shape[0], m.Rows())
		require.Equal(t, shape[1], m.Cols())
		require.Zero(t, m.Len())

		m.Set(0, 0, 7)
		require.Zero(t, m.At(0, 0))
		require.Empty(t, m.Data())
		require.Empty(t, m.Row(0))

		require.NoError(t, m.Import(nil))
		_, err := m.AtChecked(0, 0)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
}

// TestSetAt validates Set followed by At on valid indices.
func TestSetAt(t *testing.T) {
	m := MustRowMatrix(t, 2, 3)
	m.Set(1, 2, 7.89)

	require.Equal(t, 7.89, m.At(1, 2))
	require.Equal(t, []float64{0, 0, 0, 0, 0, 7.89}, m.Data())
}

// TestOutOfRangeIsSilent covers the weak contract: zero reads, dropped writes.
func TestOutOfRangeIsSilent(t *testing.T) {
	m := MustFromRows(t, rowsA)
	before := m.Data()

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {2, 2}} {
		require.Zero(t, m.At(ij[0], ij[1]), "At%v", ij)
		m.Set(ij[0], ij[1], 42)
	}
	require.Equal(t, before, m.Data())
}

// TestCheckedAccessors ensures the strict twins report ErrOutOfRange.
func TestCheckedAccessors(t *testing.T) {
	m := MustRowMatrix(t, 2, 2)

	_, err := m.AtChecked(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorContains(t, err, "RowMatrix.At(-1,0)")

	err = m.SetChecked(0, 2, 1.5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Equal(t, []float64{0, 0, 0, 0}, m.Data())

	require.NoError(t, m.SetChecked(1, 0, 1.5))
	v, err := m.AtChecked(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)
}

// TestImportRowMajor checks At(i,j) == arr[i*cols+j] and idempotence.
func TestImportRowMajor(t *testing.T) {
	arr := []int{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewRowMatrix[int](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Import(arr))
	first := m.Data()
	require.NoError(t, m.Import(arr))
	require.Equal(t, first, m.Data())

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, arr[i*3+j], m.At(i, j))
			require.Equal(t, arr[i*3+j], m.Row(i)[j])
		}
	}
}

// TestImportLongAndShort ignores surplus input and rejects short input untouched.
func TestImportLongAndShort(t *testing.T) {
	m := MustRowMatrix(t, 2, 2)

	require.NoError(t, m.Import([]float64{1, 2, 3, 4, 5}))
	require.Equal(t, []float64{1, 2, 3, 4}, m.Data())

	err := m.Import([]float64{9, 9, 9})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, []float64{1, 2, 3, 4}, m.Data())
}

// TestRowViewsAliasLinearBuffer verifies the single-buffer invariant.
func TestRowViewsAliasLinearBuffer(t *testing.T) {
	m := MustRowMatrix(t, 2, 3)

	m.Row(1)[2] = 9
	require.Equal(t, 9.0, m.At(1, 2))
	require.Equal(t, 9.0, m.Data()[1*3+2])

	m.Set(0, 1, 4)
	require.Equal(t, 4.0, m.Row(0)[1])

	// Capacity is clamped: appending to row 0 must not overwrite row 1.
	r0 := m.Row(0)
	require.Equal(t, len(r0), cap(r0))
	_ = append(r0, 99)
	require.Zero(t, m.At(1, 0))

	require.Nil(t, m.Row(-1))
	require.Nil(t, m.Row(2))
}

// TestCloneIndependence ensures Clone returns a deep copy with its own rows.
func TestCloneIndependence(t *testing.T) {
	m := MustFromRows(t, rowsA)
	clone := m.Clone()

	clone.Set(0, 0, 3)
	clone.Row(1)[1] = 8

	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, 4.0, m.At(1, 1))
	require.Equal(t, 3.0, clone.At(0, 0))
	require.Equal(t, 8.0, clone.At(1, 1))
}

// TestReleaseIsIdempotent covers the destruction analogue.
func TestReleaseIsIdempotent(t *testing.T) {
	m := MustFromRows(t, rowsA)
	require.False(t, m.Released())

	m.Release()
	m.Release()

	require.True(t, m.Released())
	require.Zero(t, m.Rows())
	require.Zero(t, m.Cols())
	require.Zero(t, m.At(0, 0))
	require.Nil(t, m.Row(0))

	var nilM *matrix.RowMatrix[float64]
	require.NotPanics(t, nilM.Release)
}

// TestStringOutput checks that String() formats the matrix row by row.
func TestStringOutput(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	empty := MustRowMatrix(t, 0, 0)
	require.Equal(t, "", empty.String())
}

// TestFromRows covers literal construction and ragged input.
func TestFromRows(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data())

	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	empty, err := matrix.FromRows[float64](nil)
	require.NoError(t, err)
	require.Zero(t, empty.Rows())
	require.Zero(t, empty.Cols())
}

// TestIdentityAndZerosLike covers the constructor facades.
func TestIdentityAndZerosLike(t *testing.T) {
	id, err := matrix.NewIdentity[int](3)
	require.NoError(t, err)
	RequireRows(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	z, err := matrix.ZerosLike[float64](MustRowMatrix(t, 2, 5))
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 5, z.Cols())

	_, err = matrix.ZerosLike[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.NewZeros[float32](-2, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestEqual checks shape and element comparison through the contract.
func TestEqual(t *testing.T) {
	a := MustFromRows(t, rowsA)
	require.True(t, matrix.Equal[float64](a, a.Clone()))
	require.True(t, matrix.Equal[float64](a, hide{a.Clone()}))
	require.False(t, matrix.Equal[float64](a, MustFromRows(t, rowsB)))
	require.False(t, matrix.Equal[float64](a, MustRowMatrix(t, 2, 3)))
	require.False(t, matrix.Equal[float64](a, nil))
}
