// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over any Matrix
// implementation: element-wise addition, matrix multiplication and the
// simplified GEMM (a×b + c). All kernels perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Purpose:
//   - Read operands through At only and write results through Set only, so any
//     storage layout satisfying Matrix is interchangeable with RowMatrix.
//   - Never mutate operands; every result is a freshly allocated RowMatrix.
//
// Notes:
//   - These kernels borrow their operands. The consuming entry points
//     (AddMatrices, MultiplyMatrices, GemmMatrices) live in operations.go.

package matrix

import (
	"fmt"

	"go.uber.org/zap"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd  = "Add"
	opMul  = "Mul"
	opGemm = "Gemm"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// readAt loads m(i,j) through the strict path when requested and available.
func readAt[T Element](m Matrix[T], i, j int, strict bool) (T, error) {
	if strict {
		if cr, ok := m.(checkedReader[T]); ok {
			return cr.AtChecked(i, j)
		}
	}

	return m.At(i, j), nil
}

// add computes out = a + b with resolved options.
// MAIN DESCRIPTION:
//   - Element-wise sum into a fresh RowMatrix of the common shape.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b) (nil → released → shape).
//   - Stage 2: allocate the result; fixed i→j loop via At/Set.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch, ErrOutOfRange (strict only).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func add[T Element](a, b Matrix[T], o Options) (*RowMatrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		o.logger.Debug("operands rejected", zap.String("op", opAdd), zap.Error(err))
		return nil, matrixErrorf(opAdd, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewRowMatrix[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	var (
		i, j   int
		av, bv T
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = readAt(a, i, j, o.strict); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = readAt(b, i, j, o.strict); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			res.Set(i, j, av+bv)
		}
	}
	o.logger.Debug("matrices added", zap.String("op", opAdd), zap.Int("rows", rows), zap.Int("cols", cols))

	return res, nil
}

// mul computes a×b with resolved options.
// MAIN DESCRIPTION:
//   - Fold the inner dimension per o.reduction into a fresh r×c RowMatrix.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (nil → released → inner dims).
//   - Stage 2: fixed i→j→k loop; accumulator starts at the zero value of T.
//     ReduceProduct adds a[i,k]*b[k,j]; ReduceLegacySum adds a[i,k]+b[k,j].
//
// Behavior highlights:
//   - No zero-skipping: 0*Inf must still yield NaN for floating T.
//   - An inner dimension of 0 yields an all-zero r×c result.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func mul[T Element](a, b Matrix[T], o Options) (*RowMatrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		o.logger.Debug("operands rejected", zap.String("op", opMul), zap.Error(err))
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewRowMatrix[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	legacy := o.reduction == ReduceLegacySum
	var (
		i, j, k     int
		av, bv, acc T
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			var zero T
			acc = zero
			for k = 0; k < inner; k++ {
				if av, err = readAt(a, i, k, o.strict); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = readAt(b, k, j, o.strict); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if legacy {
					acc += av + bv
				} else {
					acc += av * bv
				}
			}
			res.Set(i, j, acc)
		}
	}
	o.logger.Debug("matrices multiplied",
		zap.String("op", opMul),
		zap.Int("rows", aRows),
		zap.Int("inner", inner),
		zap.Int("cols", bCols),
		zap.Stringer("reduction", o.reduction))

	return res, nil
}

// gemm computes a×b + c with resolved options.
// The intermediate product is owned here and released once the sum exists.
func gemm[T Element](a, b, c Matrix[T], o Options) (*RowMatrix[T], error) {
	prod, err := mul(a, b, o)
	if err != nil {
		return nil, matrixErrorf(opGemm, err)
	}
	defer prod.Release()

	res, err := add[T](prod, c, o)
	if err != nil {
		return nil, matrixErrorf(opGemm, err)
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh RowMatrix.
// Operands are borrowed: they are neither mutated nor released.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrReleased (released input),
//     ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Element](a, b Matrix[T], opts ...Option) (*RowMatrix[T], error) {
	return add(a, b, gatherOptions(opts...))
}

// Mul performs the matrix product C = A × B (reduction per WithReduction).
// Operands are borrowed: they are neither mutated nor released.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (A.Cols != B.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Element](a, b Matrix[T], opts ...Option) (*RowMatrix[T], error) {
	return mul(a, b, gatherOptions(opts...))
}

// Gemm computes A × B + C. Either sub-step failing yields (nil, err);
// the dimension sentinel of the failing step is preserved for errors.Is.
// Operands are borrowed.
func Gemm[T Element](a, b, c Matrix[T], opts ...Option) (*RowMatrix[T], error) {
	return gemm(a, b, c, gatherOptions(opts...))
}
