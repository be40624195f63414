// SPDX-License-Identifier: MIT

// Package matrix - RowMatrix: linear storage plus a row-indexed view.
//
// Purpose:
//   - Implement the Matrix contract over the embedded linear buffer.
//   - Expose every row as an addressable []T without a second copy of the data.
//   - Keep the silent out-of-range contract on At/Set and offer strict twins.
//
// Storage invariant:
//   - rows[i] is data[i*c : (i+1)*c : (i+1)*c]; capacity is clamped so an
//     append on a row view never bleeds into the next row.
//   - Hence rows[i][j] == data[i*c+j] holds structurally for every valid (i,j);
//     mutators write once and both views observe the change.
//
// Complexity quicksheet:
//   - NewRowMatrix: O(r*c); At/Set/Row: O(1); Import/Clone/String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxImport = "Import" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// rowErrorf wraps an error with a uniform RowMatrix context and callsite indices.
func rowErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("RowMatrix.%s(%d,%d): %w", method, row, col, err)
}

// RowMatrix is the concrete row-oriented matrix.
//   - linear holds shape and the single flat buffer.
//   - rows is the row-pointer table; each entry is a window over linear.data.
type RowMatrix[T Element] struct {
	linear[T]
	rows [][]T
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64]        = (*RowMatrix[float64])(nil)
	_ Releaser               = (*RowMatrix[float64])(nil)
	_ checkedReader[float64] = (*RowMatrix[float64])(nil)
	_ fmt.Stringer           = (*RowMatrix[int])(nil)
	_ Matrix[complex128]     = (*RowMatrix[complex128])(nil)
)

// NewRowMatrix creates a rows×cols zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor; allocates one linear buffer and the row table over it.
//
// Implementation:
//   - Stage 1: newLinear validates rows>=0 && cols>=0, bounds rows*cols and zero-fills.
//   - Stage 2: bindRows slices the buffer into per-row windows.
//
// Behavior highlights:
//   - Zero-area shapes (0×N, N×0) are legal: no addressable elements,
//     At/Set behave per the out-of-range policy.
//
// Errors:
//   - ErrInvalidDimensions on negative rows or cols, or when rows*cols overflows int.
//
// Complexity:
//   - Time O(r*c), Space O(r*c + r).
func NewRowMatrix[T Element](rows, cols int) (*RowMatrix[T], error) {
	l, err := newLinear[T](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NewRowMatrix(%d,%d): %w", rows, cols, err)
	}
	m := &RowMatrix[T]{linear: l}
	m.bindRows()

	return m, nil
}

// bindRows rebuilds the row-pointer table over the current linear buffer.
func (m *RowMatrix[T]) bindRows() {
	m.rows = make([][]T, m.r)
	var lo, hi int
	for i := 0; i < m.r; i++ {
		lo, hi = i*m.c, (i+1)*m.c
		m.rows[i] = m.data[lo:hi:hi] // full slice expression clamps cap
	}
}

// At returns the element at (i, j), or the zero value of T when out of range.
// The fallback masks indexing mistakes; use AtChecked to surface them.
func (m *RowMatrix[T]) At(i, j int) T {
	var zero T
	if _, ok := m.offset(i, j); !ok {
		return zero
	}

	return m.rows[i][j]
}

// Set stores v at (i, j). Out-of-range writes are silently discarded.
func (m *RowMatrix[T]) Set(i, j int, v T) {
	if _, ok := m.offset(i, j); !ok {
		return
	}
	m.rows[i][j] = v // visible through data[i*c+j] as well
}

// AtChecked is the strict twin of At.
// Returns ErrOutOfRange (wrapped with coordinates) instead of a zero value.
func (m *RowMatrix[T]) AtChecked(i, j int) (T, error) {
	var zero T
	off, ok := m.offset(i, j)
	if !ok {
		return zero, rowErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[off], nil
}

// SetChecked is the strict twin of Set.
// Returns ErrOutOfRange (wrapped with coordinates) and leaves storage untouched.
func (m *RowMatrix[T]) SetChecked(i, j int, v T) error {
	off, ok := m.offset(i, j)
	if !ok {
		return rowErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[off] = v

	return nil
}

// Import overwrites all storage from arr in row-major order.
// MAIN DESCRIPTION:
//   - Element (i,j) receives arr[i*cols+j]; arr is consumed sequentially.
//
// Implementation:
//   - Stage 1: require len(arr) >= rows*cols; a short slice is rejected before
//     any write so storage is never left half-imported.
//   - Stage 2: single copy into the linear buffer; row views alias it.
//
// Behavior highlights:
//   - Elements past rows*cols are ignored.
//   - Idempotent: importing the same arr twice yields the same state.
//
// Errors:
//   - ErrDimensionMismatch when len(arr) < rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *RowMatrix[T]) Import(arr []T) error {
	n := len(m.data)
	if len(arr) < n {
		return fmt.Errorf("RowMatrix.%s: len %d < %d: %w", ctxImport, len(arr), n, ErrDimensionMismatch)
	}
	copy(m.data, arr[:n])

	return nil
}

// Row returns the addressable view of row i, or nil when i is out of range.
// Writes through the returned slice are visible via At and Data.
func (m *RowMatrix[T]) Row(i int) []T {
	if i < 0 || i >= m.r {
		return nil
	}

	return m.rows[i]
}

// Data returns a row-major copy of the linear buffer.
func (m *RowMatrix[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy with its own buffer and row table.
// Complexity: O(r*c).
func (m *RowMatrix[T]) Clone() *RowMatrix[T] {
	cp := &RowMatrix[T]{linear: linear[T]{r: m.r, c: m.c}}
	if len(m.data) > 0 {
		cp.data = make([]T, len(m.data))
		copy(cp.data, m.data)
	}
	cp.bindRows()

	return cp
}

// Release drops the row table, then the linear buffer.
// The matrix reports 0×0 afterwards and operations reject it with ErrReleased.
// Safe on a nil receiver and when called repeatedly.
func (m *RowMatrix[T]) Release() {
	if m == nil {
		return
	}
	m.rows = nil
	m.linear.release()
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Not for hot paths. Complexity: O(r*c).
func (m *RowMatrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j, v := range m.rows[i] {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%v", v)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
