package option

// Option holds either a value of T (present) or nothing (absent).
// The zero value is the absent option.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns a present option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns the absent option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the option is absent.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the held value and whether it is present.
// For an absent option the returned value is the zero value of T.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the held value, or fallback when the option is absent.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}

	return fallback
}

// Equal reports whether two options are both absent or hold equal values.
func Equal[T comparable](a, b Option[T]) bool {
	if a.present != b.present {
		return false
	}
	if !a.present {
		return true
	}

	return a.value == b.value
}

// Map returns Some(f(v)) when o holds v, and the absent option otherwise.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}

	return Some(f(o.value))
}
