// SPDX-License-Identifier: MIT
// Package matrix: centralized validators.
//
// Purpose:
//   - Single source of truth for operand checks shared by every kernel.
//   - Return sentinels wrapped with the validator name; callers add the op tag.
//
// Order of checks (stable, tested):
//   nil -> released -> shape.

package matrix

import (
	"fmt"

	"github.com/samber/lo"
)

// validatorErrorf wraps err with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports a nil interface or an interface holding a nil pointer
// (or other nil-able value) of any Matrix implementation.
func isNil[T Element](m Matrix[T]) bool {
	if m == nil {
		return true
	}
	if rm, ok := m.(*RowMatrix[T]); ok {
		return rm == nil
	}

	return lo.IsNil(m)
}

// ValidateNotNil rejects nil operands, including typed-nil pointers of any implementation.
func ValidateNotNil[T Element](m Matrix[T]) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateLive rejects nil operands and operands whose storage was released.
// Operands that do not implement Releaser are always live.
func ValidateLive[T Element](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateLive", err)
	}
	if r, ok := m.(Releaser); ok && r.Released() {
		return validatorErrorf("ValidateLive", ErrReleased)
	}

	return nil
}

// ValidateSameShape requires identical Rows() and Cols().
// Both operands are assumed non-nil; use ValidateBinarySameShape otherwise.
func ValidateSameShape[T Element](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinarySameShape is the full precondition of element-wise addition.
func ValidateBinarySameShape[T Element](a, b Matrix[T]) error {
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible is the full precondition of a×b: a.Cols() == b.Rows().
func ValidateMulCompatible[T Element](a, b Matrix[T]) error {
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("inner %d vs %d: %w", a.Cols(), b.Rows(), ErrDimensionMismatch))
	}

	return nil
}
