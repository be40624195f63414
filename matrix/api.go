// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing constructors and helpers.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.

package matrix

import (
	"fmt"

	"github.com/samber/lo"
)

// NewZeros returns a new zero-initialized rows×cols RowMatrix.
// Thin alias of NewRowMatrix with an intention-revealing name.
func NewZeros[T Element](rows, cols int) (*RowMatrix[T], error) {
	return NewRowMatrix[T](rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Element](n int) (*RowMatrix[T], error) {
	id, err := NewRowMatrix[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.Set(i, i, T(1))
	}

	return id, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Element](m Matrix[T]) (*RowMatrix[T], error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewRowMatrix[T](m.Rows(), m.Cols())
}

// FromRows builds a RowMatrix from a slice of equally long rows.
// MAIN DESCRIPTION:
//   - Copy literal row data into fresh storage (the input is not retained).
//
// Implementation:
//   - Stage 1: cols is len(rows[0]); any row of a different length is ragged.
//   - Stage 2: allocate, flatten row-major, Import.
//
// Errors:
//   - ErrDimensionMismatch for ragged input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Element](rows [][]T) (*RowMatrix[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	if lo.SomeBy(rows, func(r []T) bool { return len(r) != cols }) {
		return nil, fmt.Errorf("FromRows: ragged rows: %w", ErrDimensionMismatch)
	}

	m, err := NewRowMatrix[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	if err = m.Import(lo.Flatten(rows)); err != nil {
		return nil, err
	}

	return m, nil
}

// Equal reports whether a and b have the same shape and equal elements.
// Uses == on T, so NaN never equals NaN. Nil operands are never equal.
func Equal[T Element](a, b Matrix[T]) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if a.At(i, j) != b.At(i, j) {
				return false
			}
		}
	}

	return true
}

// ToRows copies m into a fresh [][]T (row-major). Nil or released input yields nil.
func ToRows[T Element](m Matrix[T]) [][]T {
	if ValidateLive(m) != nil {
		return nil
	}
	rows, cols := m.Rows(), m.Cols()

	return lo.Times(rows, func(i int) []T {
		return lo.Times(cols, func(j int) T { return m.At(i, j) })
	})
}
