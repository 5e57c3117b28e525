// Package notnan provides float wrappers that are guaranteed free of NaN.
//
// What:
//
//   - F64 and F32 wrap float64/float32 with the invariant "never NaN".
//   - Construction is checked: New64/New32 reject NaN with ErrNaN.
//   - Raw returns the plain float for further arithmetic.
//
// Why:
//
//   - Downstream numeric code (sorting, ranking, reductions) is simpler and
//     faster when NaN has been excluded once, at the type level, instead of
//     being re-checked inside every comparison.
//   - F64/F32 are single-field wrappers with the same memory layout as their
//     raw floats, so maybenan can retype partitioned storage without copying.
//
// Errors:
//
//   - ErrNaN: New64/New32 received a NaN input.
//
// The wrappers deliberately carry no arithmetic surface: results of float
// math can be NaN again (0/0, Inf-Inf), so values re-enter computation via
// Raw and are re-validated on the way back in.
package notnan
