// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage variants and kernels.
// This file contains ONLY the element constraint and the public interfaces.
// Storage lives in linear.go / impl_row_matrix.go, errors in errors.go and
// options in options.go.
package matrix

import "golang.org/x/exp/constraints"

// Element is the set of element types a matrix can hold.
// Every member is zero-initialized by make() and supports + and *.
type Element interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Matrix is the capability contract every storage variant satisfies.
// Kernels read operands through At and write results through Set only, so any
// layout that implements this interface is interchangeable with RowMatrix.
//
// Complexity notes: all methods are expected O(1) except Import (O(r*c)).
type Matrix[T Element] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Out-of-range coordinates return the zero value of T; this is a
	// defined fallback, not a failure signal.
	At(i, j int) T

	// Set assigns v at position (i, j).
	// Out-of-range coordinates silently discard the write.
	Set(i, j int, v T)

	// Import bulk-loads Rows()*Cols() elements from arr in row-major order,
	// overwriting all storage. Returns ErrDimensionMismatch when arr is short.
	Import(arr []T) error
}

// Releaser is implemented by matrices that own storage which can be dropped.
// Operations that consume their operands call Release on them before returning.
type Releaser interface {
	// Release drops the storage; the matrix reports a 0×0 shape afterwards.
	// Calling it more than once is a no-op.
	Release()

	// Released reports whether Release has been called.
	Released() bool
}

// checkedReader is the strict read path used under WithStrictBounds.
type checkedReader[T Element] interface {
	AtChecked(i, j int) (T, error)
}
