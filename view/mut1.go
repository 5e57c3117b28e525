// SPDX-License-Identifier: MIT

// Package view - Mut1: mutable one-dimensional strided windows.
//
// Purpose:
//   - Give in-place algorithms (partitioning, swapping) a no-copy handle on
//     n elements spaced stride apart inside a caller-owned slice.
//   - Keep the flat index formula explicit: element i lives at data[i*stride].
//   - Validate once at construction; keep the hot accessors check-free like
//     stdlib slice indexing (they panic on programmer error, never corrupt).

package view

// Mut1 is a mutable one-dimensional view of n elements at a fixed stride.
// The zero value is a valid empty view.
type Mut1[T any] struct {
	data   []T // backing storage, trimmed to the window
	n      int // number of elements
	stride int // distance between consecutive elements, in elements
}

// FromSlice returns a contiguous view over all of s (stride 1).
// It cannot fail: any slice, including nil, describes a valid window.
func FromSlice[T any](s []T) Mut1[T] {
	return Mut1[T]{data: s, n: len(s), stride: 1}
}

// NewMut1 returns a view of n elements of data spaced stride apart,
// starting at data[0].
//
// Errors: ErrBadShape (n < 0), ErrBadStride (stride < 1), ErrShortBuffer
// (data cannot hold element (n-1)*stride).
// Complexity: O(1); the backing slice is re-sliced, never copied.
func NewMut1[T any](data []T, n, stride int) (Mut1[T], error) {
	if n < 0 {
		return Mut1[T]{}, ErrBadShape
	}
	if stride < 1 {
		return Mut1[T]{}, ErrBadStride
	}
	if n == 0 {
		return Mut1[T]{stride: stride}, nil
	}
	last := (n-1)*stride // index of the final element
	if last >= len(data) {
		return Mut1[T]{}, ErrShortBuffer
	}

	return Mut1[T]{data: data[:last+1], n: n, stride: stride}, nil
}

// Len returns the number of elements in the window.
func (v Mut1[T]) Len() int {
	return v.n
}

// Stride returns the distance between consecutive elements, in elements.
func (v Mut1[T]) Stride() int {
	return v.stride
}

// Data returns the raw backing slice trimmed to the window, including the
// stride gaps. Mutating it mutates the viewed storage.
func (v Mut1[T]) Data() []T {
	return v.data
}

// Get returns element i. Panics when i is outside [0, Len), exactly as
// indexing the backing slice would.
func (v Mut1[T]) Get(i int) T {
	return v.data[i*v.stride]
}

// At returns a pointer to element i, aliasing the backing storage.
func (v Mut1[T]) At(i int) *T {
	return &v.data[i*v.stride]
}

// Set assigns element i.
func (v Mut1[T]) Set(i int, val T) {
	v.data[i*v.stride] = val
}

// Swap exchanges elements i and j in place.
func (v Mut1[T]) Swap(i, j int) {
	a, b := i*v.stride, j*v.stride
	v.data[a], v.data[b] = v.data[b], v.data[a]
}

// Slice returns the no-copy sub-view of elements [lo, hi).
// Panics when the bounds are invalid (programmer error, like s[lo:hi]).
func (v Mut1[T]) Slice(lo, hi int) Mut1[T] {
	if lo < 0 || hi < lo || hi > v.n {
		panic("view: Mut1.Slice bounds out of range")
	}
	if hi == lo {
		return Mut1[T]{stride: v.stride}
	}
	base := lo * v.stride
	last := base + (hi-lo-1)*v.stride

	return Mut1[T]{data: v.data[base : last+1], n: hi - lo, stride: v.stride}
}

// Values copies the window's elements into a fresh contiguous slice.
// Intended for tests and debugging; the view itself never copies.
func (v Mut1[T]) Values() []T {
	out := make([]T, v.n)
	for i := 0; i < v.n; i++ {
		out[i] = v.data[i*v.stride]
	}

	return out
}

// ND returns a read-only one-dimensional ND adapter over the same window.
func (v Mut1[T]) ND() ND[T] {
	return ND[T]{data: v.data, shape: []int{v.n}, strides: []int{v.stride}}
}
