package view_test

import (
	"testing"

	"github.com/katalvlaran/nanview/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromSlice_Contiguous verifies the whole-slice constructor.
func TestFromSlice_Contiguous(t *testing.T) {
	s := []float64{1, 2, 3}
	v := view.FromSlice(s)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 1, v.Stride())
	assert.Equal(t, []float64{1, 2, 3}, v.Values())

	// Mutation through the view is visible in the backing slice.
	v.Set(1, 42)
	assert.Equal(t, 42.0, s[1], "views share storage with the caller's slice")
}

// TestFromSlice_NilAndEmpty verifies that nil and empty slices yield valid
// empty views.
func TestFromSlice_NilAndEmpty(t *testing.T) {
	assert.Equal(t, 0, view.FromSlice[int](nil).Len())
	assert.Equal(t, 0, view.FromSlice([]int{}).Len())
}

// TestNewMut1_Validation walks the sentinel error set.
func TestNewMut1_Validation(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5}

	_, err := view.NewMut1(data, -1, 1)
	assert.ErrorIs(t, err, view.ErrBadShape, "negative length must error")

	_, err = view.NewMut1(data, 2, 0)
	assert.ErrorIs(t, err, view.ErrBadStride, "zero stride must error")

	_, err = view.NewMut1(data, 4, 2)
	assert.ErrorIs(t, err, view.ErrShortBuffer, "element 3*2=6 is out of the buffer")

	v, err := view.NewMut1(data, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, v.Values(), "stride 2 picks every other element")
}

// TestNewMut1_EmptyWindow verifies that a zero-length window needs no buffer.
func TestNewMut1_EmptyWindow(t *testing.T) {
	v, err := view.NewMut1[int](nil, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 3, v.Stride(), "stride survives on the empty window")
}

// TestMut1_SwapStrided verifies Swap against a strided window: only viewed
// elements move, the gap elements stay put.
func TestMut1_SwapStrided(t *testing.T) {
	data := []int{10, 11, 20, 21, 30, 31}
	v, err := view.NewMut1(data, 3, 2) // views 10, 20, 30
	require.NoError(t, err)

	v.Swap(0, 2)

	assert.Equal(t, []int{30, 20, 10}, v.Values())
	assert.Equal(t, []int{30, 11, 20, 21, 10, 31}, data, "gap elements 11, 21, 31 untouched")
}

// TestMut1_Slice verifies no-copy sub-views, including the empty one.
func TestMut1_Slice(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4}
	v := view.FromSlice(data)

	sub := v.Slice(1, 4)
	assert.Equal(t, []float64{1, 2, 3}, sub.Values())

	sub.Set(0, 99)
	assert.Equal(t, 99.0, data[1], "sub-views share storage")

	empty := v.Slice(2, 2)
	assert.Equal(t, 0, empty.Len())

	assert.Panics(t, func() { v.Slice(3, 6) }, "out-of-range bounds are programmer error")
	assert.Panics(t, func() { v.Slice(-1, 2) }, "negative bounds are programmer error")
}

// TestMut1_AtAliases verifies that At returns a pointer into the backing
// storage.
func TestMut1_AtAliases(t *testing.T) {
	data := []int{7, 8, 9}
	v := view.FromSlice(data)

	*v.At(2) = -9
	assert.Equal(t, -9, data[2])
}

// TestMut1_ND verifies the read-only 1-D adapter.
func TestMut1_ND(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5}
	v, err := view.NewMut1(data, 3, 2)
	require.NoError(t, err)

	nd := v.ND()
	assert.Equal(t, []int{3}, nd.Shape())

	var got []int
	nd.ForEach(func(p *int) { got = append(got, *p) })
	assert.Equal(t, []int{0, 2, 4}, got)
}
