// SPDX-License-Identifier: MIT

// Package view - ND: read-only n-dimensional strided windows.
//
// Purpose:
//   - Describe an arbitrary-rank window over a flat slice via shape, per-axis
//     strides and a starting offset: element (i0,...,ik) lives at
//     data[offset + Σ id*strides[d]].
//   - Defaults are row-major (last axis fastest, stride 1 on the last axis);
//     non-contiguous layouts come in through functional options.
//   - Traversal order in ForEach is logical index order and therefore
//     deterministic for a fixed shape, whatever the storage layout.

package view

// ND is a read-only n-dimensional view. A rank-0 ND describes a single
// scalar at the offset. The zero value is an empty rank-0 view over no data
// and must not be used; build NDs through FromSliceND or NewND.
type ND[T any] struct {
	data    []T
	shape   []int
	strides []int // per-axis, in elements, all non-negative
	offset  int   // index of element (0,...,0)
}

// FromSliceND returns a row-major view of data with the given shape.
//
// Errors: ErrBadShape (negative dimension), ErrShortBuffer (len(data) is
// smaller than the shape's element count).
// Complexity: O(rank).
func FromSliceND[T any](data []T, shape ...int) (ND[T], error) {
	return NewND(data, shape)
}

// NewND returns a view of data with the given shape, honoring WithStrides
// and WithOffset. Without options the layout is row-major at offset 0.
//
// Errors: ErrBadShape, ErrBadStride, ErrShortBuffer (see package doc).
// Complexity: O(rank).
func NewND[T any](data []T, shape []int, opts ...NDOption) (ND[T], error) {
	cfg := gatherNDOptions(opts)

	size := 1
	for _, dim := range shape {
		if dim < 0 {
			return ND[T]{}, ErrBadShape
		}
		size *= dim
	}

	strides := cfg.strides
	if strides == nil {
		strides = rowMajorStrides(shape)
	} else if len(strides) != len(shape) {
		return ND[T]{}, ErrBadShape
	}
	for _, s := range strides {
		if s < 0 {
			return ND[T]{}, ErrBadStride
		}
	}
	if cfg.offset < 0 {
		return ND[T]{}, ErrOutOfRange
	}

	// The empty view touches no storage; any buffer (including nil) fits.
	if size == 0 {
		return ND[T]{shape: append([]int(nil), shape...), strides: strides, offset: cfg.offset}, nil
	}

	// Index of the last reachable element under non-negative strides.
	last := cfg.offset
	for d, dim := range shape {
		last += (dim - 1) * strides[d]
	}
	if last >= len(data) {
		return ND[T]{}, ErrShortBuffer
	}

	return ND[T]{
		data:    data,
		shape:   append([]int(nil), shape...),
		strides: strides,
		offset:  cfg.offset,
	}, nil
}

// rowMajorStrides computes contiguous strides: last axis 1, each preceding
// axis the product of the dimensions after it.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= shape[d]
	}

	return strides
}

// Shape returns a copy of the view's dimensions.
func (a ND[T]) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Size returns the number of elements (product of dimensions; 1 for rank 0).
func (a ND[T]) Size() int {
	size := 1
	for _, dim := range a.shape {
		size *= dim
	}

	return size
}

// At returns the element at the given logical index.
//
// Errors: ErrDimensionMismatch when len(idx) != rank, ErrOutOfRange when any
// index falls outside its dimension.
func (a ND[T]) At(idx ...int) (T, error) {
	var zero T
	if len(idx) != len(a.shape) {
		return zero, ErrDimensionMismatch
	}
	pos := a.offset
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			return zero, ErrOutOfRange
		}
		pos += i * a.strides[d]
	}

	return a.data[pos], nil
}

// ForEach calls fn once per element, in logical index order (last axis
// fastest). The pointer aliases the backing storage; callers performing
// read-only traversals must not write through it.
//
// Complexity: O(size), no allocation beyond the rank-sized odometer.
func (a ND[T]) ForEach(fn func(*T)) {
	if a.Size() == 0 {
		return
	}
	idx := make([]int, len(a.shape))
	pos := a.offset
	for {
		fn(&a.data[pos])

		// Odometer increment: bump the last axis, carry leftward on overflow.
		d := len(idx) - 1
		for ; d >= 0; d-- {
			idx[d]++
			pos += a.strides[d]
			if idx[d] < a.shape[d] {
				break
			}
			idx[d] = 0
			pos -= a.shape[d] * a.strides[d]
		}
		if d < 0 {
			return
		}
	}
}
