// Package matrix offers a minimal generic dense matrix and GEMM-style kernels.
//
// The matrix package provides:
//
//   - Matrix[T], the capability contract (Rows, Cols, At, Set, Import) that
//     every kernel programs against.
//   - RowMatrix[T], a row-major matrix owning one flat buffer and exposing each
//     row as an addressable slice over that same buffer.
//   - Borrowing kernels Add, Mul and Gemm, and their consuming counterparts
//     AddMatrices, MultiplyMatrices and GemmMatrices, which release their
//     operands once the call returns.
//
// Out-of-range At/Set follow a silent contract (zero value / dropped write);
// AtChecked, SetChecked and WithStrictBounds surface ErrOutOfRange instead.
// Dimension mismatches are reported as (nil, err) with
// errors.Is(err, ErrDimensionMismatch).
//
// Mul folds the inner dimension with ReduceProduct by default. The historical
// additive kernel is available as ReduceLegacySum for compatibility checks.
//
// See the examples in this package for usage patterns.
package matrix
