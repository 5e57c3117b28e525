// SPDX-License-Identifier: MIT

// Package maybenan - the audited reinterpretation step.
//
// This file holds ALL unsafe code in the module. Both helpers retype storage
// between a maybe-NaN element type V and its non-NaN counterpart N, which is
// sound only because every supported pair shares an exact memory layout:
//
//   float64 <-> notnan.F64            (single-field struct)
//   float32 <-> notnan.F32            (single-field struct)
//   option.Option[T] <-> option.NotNone[T]  (single-field struct)
//
// layout_test.go asserts size and alignment equality for each pair. Do not
// call these helpers with any other pair.

package maybenan

import (
	"unsafe"

	"github.com/katalvlaran/nanview/view"
)

// castPtr reinterprets a single element pointer from V to N (or back).
// The result aliases p's storage.
func castPtr[V, N any](p *V) *N {
	return (*N)(unsafe.Pointer(p))
}

// castMut1 retypes a 1-D window's element type from V to N without moving
// or copying data. Length and stride carry over unchanged: element sizes are
// equal, so element-granular strides mean the same thing on both sides.
func castMut1[V, N any](v view.Mut1[V]) view.Mut1[N] {
	if v.Len() == 0 {
		return view.Mut1[N]{}
	}
	data := v.Data()
	retyped := unsafe.Slice((*N)(unsafe.Pointer(&data[0])), len(data))

	w, err := view.NewMut1(retyped, v.Len(), v.Stride())
	if err != nil {
		// Unreachable: the input view already satisfied these bounds.
		panic("maybenan: castMut1 produced an invalid view: " + err.Error())
	}

	return w
}
