package maybenan_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nanview/maybenan"
	"github.com/katalvlaran/nanview/notnan"
	"github.com/katalvlaran/nanview/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFloat64_RoundTrip verifies TryNotNaN -> FromNotNaN reproduces the
// input bit-for-bit for non-NaN values, including signed zero and ±Inf.
func TestFloat64_RoundTrip(t *testing.T) {
	kind := maybenan.Float64{}
	inputs := []float64{0, math.Copysign(0, -1), 1.5, -2.75, math.Inf(1), math.Inf(-1), math.SmallestNonzeroFloat64}

	for _, in := range inputs {
		v := in
		w := kind.TryNotNaN(&v)
		require.NotNil(t, w, "non-NaN value %v must convert", in)

		back := kind.FromNotNaN(*w)
		assert.Equal(t, math.Float64bits(in), math.Float64bits(back), "round-trip must be bit-identical for %v", in)
	}
}

// TestFloat64_TryNotNaN_NaN verifies the NaN branch and predicate agreement:
// exactly one of IsNaN / TryNotNaN-success holds.
func TestFloat64_TryNotNaN_NaN(t *testing.T) {
	kind := maybenan.Float64{}

	nan := math.NaN()
	assert.True(t, kind.IsNaN(nan))
	assert.Nil(t, kind.TryNotNaN(&nan), "NaN must not convert")

	val := 4.0
	assert.False(t, kind.IsNaN(val))
	assert.NotNil(t, kind.TryNotNaN(&val))
}

// TestFloat64_TryNotNaN_Aliases verifies the reference-level contract:
// the returned pointer views the same storage as the input.
func TestFloat64_TryNotNaN_Aliases(t *testing.T) {
	kind := maybenan.Float64{}
	v := 9.0

	w := kind.TryNotNaN(&v)
	require.NotNil(t, w)

	v = 10.0 // write through the original; the view must observe it
	assert.Equal(t, 10.0, w.Raw())
}

// TestFloat64_CanonicalNaNOnAbsent verifies that absent options map to the
// canonical NaN at both value and reference granularity.
func TestFloat64_CanonicalNaNOnAbsent(t *testing.T) {
	kind := maybenan.Float64{}

	assert.True(t, math.IsNaN(kind.FromNotNaNOpt(option.None[notnan.F64]())))

	p := kind.FromNotNaNRefOpt(nil)
	require.NotNil(t, p)
	assert.True(t, math.IsNaN(*p))

	q := kind.FromNotNaNRefOpt(nil)
	assert.Same(t, p, q, "the canonical NaN reference is process-wide")
}

// TestFloat64_FromNotNaNOpt_Present verifies the present branch.
func TestFloat64_FromNotNaNOpt_Present(t *testing.T) {
	kind := maybenan.Float64{}
	w, err := notnan.New64(2.5)
	require.NoError(t, err)

	assert.Equal(t, 2.5, kind.FromNotNaNOpt(option.Some(w)))
	assert.Equal(t, 2.5, *kind.FromNotNaNRefOpt(&w))
}

// TestFloat32_Family spot-checks the float32 kind end to end.
func TestFloat32_Family(t *testing.T) {
	kind := maybenan.Float32{}
	nan32 := float32(math.NaN())

	assert.True(t, kind.IsNaN(nan32))
	assert.Nil(t, kind.TryNotNaN(&nan32))
	assert.True(t, math.IsNaN(float64(kind.FromNotNaNOpt(option.None[notnan.F32]()))))

	v := float32(1.25)
	w := kind.TryNotNaN(&v)
	require.NotNil(t, w)
	assert.Equal(t, float32(1.25), kind.FromNotNaN(*w))
}

// TestOptional_Conversions verifies the optional-discrete family: absence is
// the NaN state and maps back to None through every conversion.
func TestOptional_Conversions(t *testing.T) {
	kind := maybenan.Optional[int64]{}

	absent := option.None[int64]()
	assert.True(t, kind.IsNaN(absent))
	assert.Nil(t, kind.TryNotNaN(&absent))

	present := option.Some(int64(12))
	assert.False(t, kind.IsNaN(present))
	w := kind.TryNotNaN(&present)
	require.NotNil(t, w)
	assert.Equal(t, int64(12), w.Unwrap())

	// Round-trip.
	back := kind.FromNotNaN(*w)
	assert.True(t, option.Equal(present, back))

	// Canonical absent on None, value and reference granularity.
	assert.True(t, kind.FromNotNaNOpt(option.None[option.NotNone[int64]]()).IsNone())
	p := kind.FromNotNaNRefOpt(nil)
	require.NotNil(t, p)
	assert.True(t, p.IsNone())

	// Present branch of the opt conversions.
	assert.True(t, option.Equal(present, kind.FromNotNaNOpt(option.Some(*w))))
	assert.True(t, option.Equal(present, *kind.FromNotNaNRefOpt(w)))
}

// TestOptional_OfNotNaNFloats verifies the composed type: optional-wrapped
// floats that already exclude NaN by construction.
func TestOptional_OfNotNaNFloats(t *testing.T) {
	kind := maybenan.Optional[notnan.F64]{}
	f, err := notnan.New64(3.0)
	require.NoError(t, err)

	present := option.Some(f)
	w := kind.TryNotNaN(&present)
	require.NotNil(t, w)
	assert.Equal(t, 3.0, w.Unwrap().Raw())

	absent := option.None[notnan.F64]()
	assert.True(t, kind.IsNaN(absent))
}
