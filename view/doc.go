// Package view provides non-owning windows over caller-owned slices: a
// mutable one-dimensional strided view (Mut1) and a read-only n-dimensional
// strided view (ND).
//
// What:
//
//   - Mut1[T] describes n elements at a fixed positive stride inside a slice;
//     Get/Set/Swap/Slice operate on the window without copying.
//   - ND[T] describes an n-dimensional window via shape, per-axis strides and
//     a starting offset; At reads single elements, ForEach traverses all of
//     them in deterministic logical order (last axis fastest).
//   - Constructors validate shape, stride and buffer length and return
//     sentinel errors; they never panic on user input.
//
// Why:
//
//   - Algorithms that rearrange or reduce data (see package maybenan) should
//     work against a window abstraction, not a concrete slice, so the same
//     code serves contiguous and strided storage.
//   - Views borrow from caller-owned storage: no allocation, no hidden
//     copies, no independent lifecycle.
//
// Concurrency:
//
//   - A view is a plain value; copying it is cheap and safe. Mutating through
//     a Mut1 requires the same exclusive-access discipline as mutating the
//     backing slice directly. ND is read-only and may be shared by readers.
//
// Errors:
//
//   - ErrBadShape: negative length, nil/negative shape entries, or an
//     options/shape arity mismatch.
//   - ErrBadStride: stride < 1 (Mut1) or a negative axis stride (ND).
//   - ErrShortBuffer: the backing slice cannot hold the described window.
//   - ErrOutOfRange: an element index outside the window (ND.At).
//   - ErrDimensionMismatch: ND.At called with the wrong number of indices.
//
// Complexity:
//
//   - All constructors and accessors are O(1) except ND validation and
//     ForEach, which are O(rank) and O(size) respectively.
package view
