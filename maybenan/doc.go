// Package maybenan separates "possibly-NaN" element types from their
// "guaranteed non-NaN" counterparts and provides the two primitives built on
// that split: an in-place NaN-removing partition and a NaN-skipping fold.
//
// What:
//
//   - Kind[V, N] is the capability describing, for a maybe-NaN type V, its
//     non-NaN counterpart N: the NaN predicate, bit-identical conversions in
//     both directions, and the partition entry point.
//   - Float64/Float32 implement Kind for raw floats, whose counterpart is a
//     notnan.F64/F32 wrapper.
//   - Optional[T] implements Kind for option.Option[T], where "NaN" means
//     "absent" and the counterpart is option.NotNone[T]. One generic
//     implementation covers every discrete element type, including
//     option.Option[notnan.F64].
//   - RemoveNaNMut rearranges a mutable 1-D view so the non-NaN elements form
//     a prefix, and returns that prefix retyped to N over the same memory.
//   - FoldSkipNaN reduces an n-D read-only view, silently skipping NaN.
//
// Why:
//
//   - Statistics kernels (quantiles, ranking, histograms) want to run on data
//     with NaN already gone; encoding "gone" in the element type makes that a
//     compile-time fact instead of a per-element recheck.
//
// Guarantees:
//
//   - The partition is linear time, performs at most len/2 swaps, allocates
//     nothing, keeps every non-NaN element exactly once, and is idempotent.
//     The surviving order is unspecified but deterministic: identical input
//     produces identical output, and re-partitioning the output is a no-op.
//   - Conversions round-trip bit-for-bit for non-NaN values; absent inputs
//     map to the canonical NaN (quiet NaN for floats, None for options).
//
// Kinds are zero-size values passed as generic parameters, so dispatch
// resolves at compile time; there is no runtime type switching.
//
// The only unsafe code in the module lives in cast.go: the slice-level
// reinterpretation between V and N after the partition has proven the prefix
// NaN-free. Layout equivalence for every supported family is pinned by
// layout_test.go. Implementations of Kind added outside this package must
// uphold the same contract: N shares V's exact memory layout.
//
// No operation here fails: views are validated at construction in package
// view, and NaN elements are skipped or compacted away, never reported as
// errors.
package maybenan
