// SPDX-License-Identifier: MIT

// Package matrix - linear storage shared by every concrete variant.
//
// Purpose:
//   - Own exactly one contiguous row-major buffer of rows*cols elements.
//   - Answer shape queries and offset math (i*cols + j) for embedding types.
//   - Do NOT implement element access: indexing is the concrete variant's job.
//
// Complexity quicksheet:
//   - newLinear: O(r*c) zero-init; Rows/Cols/Shape/Len/offset: O(1); release: O(1).

package matrix

import "math"

// linear is the embeddable base of every storage variant.
//   - r,c hold dimensions (>=0).
//   - data is the flat buffer, len == r*c, nil when r*c == 0.
//   - released flips once storage was dropped (consumed or released explicitly).
type linear[T Element] struct {
	r, c     int // row and column counts
	data     []T // contiguous row-major storage
	released bool
}

// newLinear allocates a zero-filled r×c buffer.
// MAIN DESCRIPTION:
//   - Validate non-negative dimensions and allocate a single buffer.
//
// Implementation:
//   - Stage 1: reject negative rows/cols, and shapes whose rows*cols does
//     not fit in int, with ErrInvalidDimensions.
//   - Stage 2: leave data nil for zero-area shapes; otherwise make() zero-fills.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func newLinear[T Element](rows, cols int) (linear[T], error) {
	if rows < 0 || cols < 0 {
		return linear[T]{}, ErrInvalidDimensions
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return linear[T]{}, ErrInvalidDimensions
	}
	l := linear[T]{r: rows, c: cols}
	if n := rows * cols; n > 0 {
		l.data = make([]T, n)
	}

	return l, nil
}

// Rows returns the row count. No side effects.
func (l *linear[T]) Rows() int { return l.r }

// Cols returns the column count. No side effects.
func (l *linear[T]) Cols() int { return l.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (l *linear[T]) Shape() (rows, cols int) { return l.r, l.c }

// Len returns the number of stored elements (rows*cols).
func (l *linear[T]) Len() int { return len(l.data) }

// Released reports whether the storage has been dropped.
func (l *linear[T]) Released() bool { return l.released }

// offset computes the row-major offset of (i, j) and reports whether it is in range.
func (l *linear[T]) offset(i, j int) (int, bool) {
	if i < 0 || j < 0 || i >= l.r || j >= l.c {
		return 0, false
	}

	return i*l.c + j, true
}

// release drops the buffer and collapses the shape to 0×0. Idempotent.
func (l *linear[T]) release() {
	l.data = nil
	l.r, l.c = 0, 0
	l.released = true
}
