package maybenan

import (
	"github.com/katalvlaran/nanview/option"
	"github.com/katalvlaran/nanview/view"
)

// Kind describes, for a maybe-NaN element type V, its guaranteed non-NaN
// counterpart N and the conversions between the two.
//
// Contract for implementations:
//   - N must share V's exact memory layout; the partition retypes storage
//     in place on that assumption.
//   - Exactly one of IsNaN(v) == true and TryNotNaN(&v) != nil holds for
//     every v, and on success the pointer aliases v's storage.
//   - FromNotNaN is total and bit-preserving; the Opt/RefOpt variants map
//     absence to the canonical NaN value of V.
//
// Kinds are stateless zero-size structs; pass them by value.
type Kind[V, N any] interface {
	// IsNaN reports whether v is in the NaN/absent state.
	IsNaN(v V) bool

	// TryNotNaN returns v's storage reinterpreted as non-NaN, or nil when v
	// is NaN. Callers must not write a NaN-producing value through the
	// result; the underlying storage still belongs to the V view.
	TryNotNaN(v *V) *N

	// FromNotNaN converts back to the maybe-NaN representation. Total;
	// the result has the same bits as n.
	FromNotNaN(n N) V

	// FromNotNaNOpt converts an optional non-NaN value; absence yields the
	// canonical NaN value of V.
	FromNotNaNOpt(n option.Option[N]) V

	// FromNotNaNRefOpt mirrors FromNotNaNOpt at pointer granularity; nil
	// yields a pointer to the canonical NaN value.
	FromNotNaNRefOpt(n *N) *V

	// RemoveNaNMut partitions the view in place so that non-NaN elements
	// occupy a prefix, and returns that prefix retyped to N over the same
	// memory. The surviving order is unspecified but deterministic, and the
	// operation is idempotent. Never fails.
	RemoveNaNMut(v view.Mut1[V]) view.Mut1[N]
}
