// Package primer is a small in-memory dense matrix toolkit: a generic
// row-major matrix and the three kernels most code needs first.
//
// What is inside:
//
//	• Capability contract: Matrix[T] (Rows, Cols, At, Set, Import)
//	• Storage: RowMatrix[T], one flat buffer with per-row slice views
//	• Kernels: Add, Mul, Gemm (borrow operands)
//	• Ownership: AddMatrices, MultiplyMatrices, GemmMatrices (consume operands)
//
// Why it looks the way it does:
//
//   - One buffer: row views alias it, so there is nothing to keep in sync
//   - Explicit failures: dimension mismatches return ErrDimensionMismatch
//   - Generic: any integer, float or complex element type
//
// Everything lives in a single subpackage:
//
//	matrix/  contract, RowMatrix, kernels, options and sentinels
//
// Quick ASCII example:
//
//	[1 2]   [1 0]   [0 0]   [1 2]
//	[3 4] × [0 1] + [0 0] = [3 4]
//
//	go get github.com/katalvlaran/primer/matrix
package primer
