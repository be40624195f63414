// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with an operation tag and
// tests MUST check them via errors.Is. Nothing in the package panics on
// user-triggered error conditions; panics are reserved for invalid Option
// values (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap at the detection site with matrixErrorf or
// rowErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> released operand -> dimension mismatch -> out of range.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative or
	// that rows*cols overflows int.
	// Zero rows or zero columns are legal and produce an empty matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0 and rows*cols must fit in int")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Only the strict accessors (AtChecked/SetChecked) and strict-bounds kernels
	// report it; At/Set follow the silent contract.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add on different shapes, Mul where a.Cols != b.Rows, or an import
	// buffer shorter than rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (or a typed-nil pointer behind one) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrReleased indicates that a matrix was used after its storage was
	// released, either explicitly or by being consumed by an operation.
	ErrReleased = errors.New("matrix: matrix already released")
)

