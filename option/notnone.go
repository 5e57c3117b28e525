package option

import "errors"

// ErrNone indicates that Wrap was handed an absent option.
var ErrNone = errors.New("option: option is none")

// NotNone wraps an Option[T] that is known to be present.
//
// The wrapper adds no storage and no runtime checks: presence is established
// once, by a checked constructor, and carried in the type from then on.
// NotNone[T] has the same memory layout as Option[T].
type NotNone[T any] struct {
	opt Option[T]
}

// Wrap converts an option into its non-absent form.
// Returns ErrNone when o is absent; this is the only public checked path
// from an arbitrary option into NotNone.
func Wrap[T any](o Option[T]) (NotNone[T], error) {
	if o.IsNone() {
		return NotNone[T]{}, ErrNone
	}

	return NotNone[T]{opt: o}, nil
}

// WrapValue wraps a plain value, which is trivially present.
func WrapValue[T any](v T) NotNone[T] {
	return NotNone[T]{opt: Some(v)}
}

// IntoInner returns the underlying option.
// The result is always present; it is returned as an option for symmetry
// with the maybe-NaN conversion surface.
func (n NotNone[T]) IntoInner() Option[T] {
	return n.opt
}

// Unwrap moves the value out of the wrapper.
//
// Unwrap performs no presence check: the constructors guarantee the invariant,
// so for a wrapper obtained through the public API this never misbehaves. A
// zero-value NotNone bypasses the constructors and yields the zero value of T.
func (n NotNone[T]) Unwrap() T {
	return n.opt.value
}
