package maybenan

import (
	"github.com/katalvlaran/nanview/option"
	"github.com/katalvlaran/nanview/view"
)

// Optional is the Kind implementation for option.Option[T] elements, where
// the NaN state is absence and the non-NaN counterpart is option.NotNone[T].
// One generic implementation covers every discrete element type, including
// option.Option[notnan.F64] for floats that already exclude NaN.
type Optional[T any] struct{}

// IsNaN reports absence.
func (Optional[T]) IsNaN(v option.Option[T]) bool {
	return v.IsNone()
}

// TryNotNaN reinterprets v's storage as the non-absent wrapper, or nil when
// v is absent.
func (Optional[T]) TryNotNaN(v *option.Option[T]) *option.NotNone[T] {
	if v.IsNone() {
		return nil
	}

	return castPtr[option.Option[T], option.NotNone[T]](v)
}

// FromNotNaN returns the wrapped option, which is always present.
func (Optional[T]) FromNotNaN(n option.NotNone[T]) option.Option[T] {
	return n.IntoInner()
}

// FromNotNaNOpt flattens one optional level; absence maps to None.
func (Optional[T]) FromNotNaNOpt(n option.Option[option.NotNone[T]]) option.Option[T] {
	if w, ok := n.Get(); ok {
		return w.IntoInner()
	}

	return option.None[T]()
}

// FromNotNaNRefOpt mirrors FromNotNaNOpt at pointer granularity; nil maps
// to a pointer holding the canonical absent option.
func (Optional[T]) FromNotNaNRefOpt(n *option.NotNone[T]) *option.Option[T] {
	if n == nil {
		absent := option.None[T]()

		return &absent
	}

	return castPtr[option.NotNone[T], option.Option[T]](n)
}

// RemoveNaNMut partitions v in place and retypes the surviving prefix.
func (k Optional[T]) RemoveNaNMut(v view.Mut1[option.Option[T]]) view.Mut1[option.NotNone[T]] {
	return castMut1[option.Option[T], option.NotNone[T]](removeNaN[option.Option[T], option.NotNone[T]](k, v))
}
