package notnan

import (
	"errors"
	"math"
)

// ErrNaN indicates that a checked constructor received a NaN input.
var ErrNaN = errors.New("notnan: value is NaN")

// F64 is a float64 that is never NaN.
// The zero value is a valid F64 holding 0.
type F64 struct {
	v float64
}

// New64 wraps v, rejecting NaN with ErrNaN. ±Inf is accepted: it is an
// ordered, well-defined float value.
func New64(v float64) (F64, error) {
	if math.IsNaN(v) {
		return F64{}, ErrNaN
	}

	return F64{v: v}, nil
}

// Raw returns the wrapped float64.
func (f F64) Raw() float64 {
	return f.v
}

// Less reports whether f orders before g. Total, since neither side can be NaN.
func (f F64) Less(g F64) bool {
	return f.v < g.v
}

// Equal reports whether f and g hold the same value.
func (f F64) Equal(g F64) bool {
	return f.v == g.v
}

// F32 is a float32 that is never NaN.
// The zero value is a valid F32 holding 0.
type F32 struct {
	v float32
}

// New32 wraps v, rejecting NaN with ErrNaN.
func New32(v float32) (F32, error) {
	if v != v {
		return F32{}, ErrNaN
	}

	return F32{v: v}, nil
}

// Raw returns the wrapped float32.
func (f F32) Raw() float32 {
	return f.v
}

// Less reports whether f orders before g. Total, since neither side can be NaN.
func (f F32) Less(g F32) bool {
	return f.v < g.v
}

// Equal reports whether f and g hold the same value.
func (f F32) Equal(g F32) bool {
	return f.v == g.v
}
