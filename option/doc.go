// Package option provides a generic optional value and a zero-cost wrapper
// that statically records "this optional is present".
//
// What:
//
//   - Option[T] holds either a value of T or nothing, without pointer tricks.
//   - NotNone[T] wraps an Option[T] whose presence has already been proven;
//     Unwrap never fails and performs no runtime check.
//
// Why:
//
//   - Absent discrete values play the role of NaN for integer-like data:
//     an Option[int64] slice is "maybe-NaN", a NotNone[int64] slice is not.
//   - Proving presence once and carrying the proof in the type is cheaper
//     and safer than re-checking at every use site.
//
// Invariants:
//
//   - NotNone is only constructible through checked paths (Wrap, WrapValue)
//     or through maybenan's audited reinterpretation of partitioned storage.
//   - Option[T] and NotNone[T] share memory layout: NotNone wraps exactly one
//     Option[T] field. maybenan's layout tests pin this equivalence.
//
// Errors:
//
//   - ErrNone: Wrap was handed an absent option.
//
// Complexity: every operation is O(1).
package option
