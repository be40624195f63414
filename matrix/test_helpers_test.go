// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the kernel and storage tests.
//   • Keep helpers fatal on setup errors so test bodies stay focused on behavior.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/primer/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the pure interface path (no Releaser, no AtChecked).
type hide struct{ matrix.Matrix[float64] }

// oversized reports one more row than its storage holds.
// Reads of the phantom row fall through to the silent At contract unless the
// kernel runs under WithStrictBounds.
type oversized struct{ *matrix.RowMatrix[float64] }

func (o oversized) Rows() int { return o.RowMatrix.Rows() + 1 }

// rowPtr is a foreign pointer implementation of Matrix and Releaser.
// A (*rowPtr)(nil) is a typed-nil operand that is not a *RowMatrix.
type rowPtr struct{ *matrix.RowMatrix[float64] }

// MustRowMatrix allocates an r×c float64 RowMatrix or fails the test.
func MustRowMatrix(t testing.TB, r, c int) *matrix.RowMatrix[float64] {
	t.Helper()
	m, err := matrix.NewRowMatrix[float64](r, c)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a RowMatrix from literal rows or fails the test.
func MustFromRows[T matrix.Element](t testing.TB, rows [][]T) *matrix.RowMatrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// RequireRows asserts that m has exactly the given rows.
func RequireRows[T matrix.Element](t testing.TB, want [][]T, m matrix.Matrix[T]) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, want, matrix.ToRows(m))
}

// Fixtures used across kernel tests.
var (
	rowsA = [][]float64{{1, 2}, {3, 4}}
	rowsB = [][]float64{{5, 6}, {7, 8}}
	rowsI = [][]float64{{1, 0}, {0, 1}}
	rowsZ = [][]float64{{0, 0}, {0, 0}}
)
