package maybenan

import (
	"math"

	"github.com/katalvlaran/nanview/notnan"
	"github.com/katalvlaran/nanview/option"
	"github.com/katalvlaran/nanview/view"
)

// Canonical NaN values returned by reference when converting an absent
// optional back to the maybe-NaN representation. Package-level so the
// returned pointer is process-wide, not per-call.
var (
	canonicalNaN64 = math.NaN()
	canonicalNaN32 = float32(math.NaN())
)

// Float64 is the Kind implementation for raw float64 elements; the non-NaN
// counterpart is notnan.F64.
type Float64 struct{}

// IsNaN reports the hardware NaN state.
func (Float64) IsNaN(v float64) bool {
	return math.IsNaN(v)
}

// TryNotNaN reinterprets v's storage as notnan.F64, or nil for NaN.
func (Float64) TryNotNaN(v *float64) *notnan.F64 {
	if math.IsNaN(*v) {
		return nil
	}

	return castPtr[float64, notnan.F64](v)
}

// FromNotNaN returns the wrapped float unchanged.
func (Float64) FromNotNaN(n notnan.F64) float64 {
	return n.Raw()
}

// FromNotNaNOpt unwraps, mapping absence to quiet NaN.
func (Float64) FromNotNaNOpt(n option.Option[notnan.F64]) float64 {
	if w, ok := n.Get(); ok {
		return w.Raw()
	}

	return math.NaN()
}

// FromNotNaNRefOpt unwraps at pointer granularity; nil maps to the
// process-wide canonical NaN.
func (Float64) FromNotNaNRefOpt(n *notnan.F64) *float64 {
	if n == nil {
		return &canonicalNaN64
	}

	return castPtr[notnan.F64, float64](n)
}

// RemoveNaNMut partitions v in place and retypes the surviving prefix.
func (k Float64) RemoveNaNMut(v view.Mut1[float64]) view.Mut1[notnan.F64] {
	return castMut1[float64, notnan.F64](removeNaN[float64, notnan.F64](k, v))
}

// Float32 is the Kind implementation for raw float32 elements; the non-NaN
// counterpart is notnan.F32.
type Float32 struct{}

// IsNaN reports the hardware NaN state.
func (Float32) IsNaN(v float32) bool {
	return v != v
}

// TryNotNaN reinterprets v's storage as notnan.F32, or nil for NaN.
func (Float32) TryNotNaN(v *float32) *notnan.F32 {
	if *v != *v {
		return nil
	}

	return castPtr[float32, notnan.F32](v)
}

// FromNotNaN returns the wrapped float unchanged.
func (Float32) FromNotNaN(n notnan.F32) float32 {
	return n.Raw()
}

// FromNotNaNOpt unwraps, mapping absence to quiet NaN.
func (Float32) FromNotNaNOpt(n option.Option[notnan.F32]) float32 {
	if w, ok := n.Get(); ok {
		return w.Raw()
	}

	return canonicalNaN32
}

// FromNotNaNRefOpt unwraps at pointer granularity; nil maps to the
// process-wide canonical NaN.
func (Float32) FromNotNaNRefOpt(n *notnan.F32) *float32 {
	if n == nil {
		return &canonicalNaN32
	}

	return castPtr[notnan.F32, float32](n)
}

// RemoveNaNMut partitions v in place and retypes the surviving prefix.
func (k Float32) RemoveNaNMut(v view.Mut1[float32]) view.Mut1[notnan.F32] {
	return castMut1[float32, notnan.F32](removeNaN[float32, notnan.F32](k, v))
}

// RemoveNaN64 is the slice-level convenience: partitions s in place and
// returns the surviving prefix as NaN-free wrappers backed by s's memory.
func RemoveNaN64(s []float64) []notnan.F64 {
	return Float64{}.RemoveNaNMut(view.FromSlice(s)).Data()
}

// RemoveNaN32 is the float32 counterpart of RemoveNaN64.
func RemoveNaN32(s []float32) []notnan.F32 {
	return Float32{}.RemoveNaNMut(view.FromSlice(s)).Data()
}
