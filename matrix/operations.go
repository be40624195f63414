// SPDX-License-Identifier: MIT

// Package matrix - consuming operations.
//
// AddMatrices, MultiplyMatrices and GemmMatrices take ownership of their
// operands: once the call returns, successfully or not, every operand that
// implements Releaser has been released and any later use of it fails with
// ErrReleased. Callers that need to keep an operand pass a Clone, or use the
// borrowing kernels Add, Mul and Gemm instead.
//
// Failure contract: a dimension mismatch yields (nil, err) with
// errors.Is(err, ErrDimensionMismatch); no partial result is ever returned.

package matrix

// consume releases every non-nil operand that owns storage.
// Passing the same matrix twice is fine: Release is idempotent.
func consume[T Element](ms ...Matrix[T]) {
	for _, m := range ms {
		if isNil(m) {
			continue
		}
		if r, ok := m.(Releaser); ok {
			r.Release()
		}
	}
}

// AddMatrices computes mat1 + mat2 and consumes both operands.
// Returns (nil, ErrDimensionMismatch) when shapes differ.
func AddMatrices[T Element](mat1, mat2 Matrix[T], opts ...Option) (*RowMatrix[T], error) {
	defer consume(mat1, mat2)

	return add(mat1, mat2, gatherOptions(opts...))
}

// MultiplyMatrices computes mat1 × mat2 and consumes both operands.
// Returns (nil, ErrDimensionMismatch) when mat1.Cols() != mat2.Rows().
// The reduction defaults to ReduceProduct; see WithReduction.
func MultiplyMatrices[T Element](mat1, mat2 Matrix[T], opts ...Option) (*RowMatrix[T], error) {
	defer consume(mat1, mat2)

	return mul(mat1, mat2, gatherOptions(opts...))
}

// GemmMatrices computes matA × matB + matC and consumes all three operands.
// A failed multiply short-circuits; a failed add (product shape != matC shape)
// is propagated. Both surface as ErrDimensionMismatch.
func GemmMatrices[T Element](matA, matB, matC Matrix[T], opts ...Option) (*RowMatrix[T], error) {
	defer consume(matA, matB, matC)

	return gemm(matA, matB, matC, gatherOptions(opts...))
}
