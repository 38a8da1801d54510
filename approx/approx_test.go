package approx

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual64(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		a, b float64
		exp  bool
	}{
		{0.1 + 0.2, 0.3, true},
		{1.0, 1.0, true},
		{0.0, 0.0, true},
		{0.0, math.Copysign(0, -1), true},
		{1.0, 1.0001, false},
		{1.0, -1.0, false},
		{math.NaN(), math.NaN(), false},
		{math.NaN(), 1.0, false},
		{math.Inf(1), math.Inf(1), false},
		{math.Inf(1), math.Inf(-1), false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("tc_%v_%v", tc.a, tc.b), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, Equal(tc.a, tc.b))
		})
	}
}

func TestEqual32(t *testing.T) {
	t.Parallel()
	assert.True(t, Equal(float32(0.1)+float32(0.2), float32(0.3)))
	assert.False(t, Equal(float32(1.0), float32(1.001)))
	assert.False(t, Equal(float32(math.NaN()), float32(math.NaN())))
}

func TestEqualNamedFloatTypes(t *testing.T) {
	t.Parallel()
	type celsius float32
	type meters float64

	// One float32 ULP apart at 0.25: within the float32 epsilon, far
	// outside the float64 one.
	next := math.Nextafter32(0.25, 1)
	assert.True(t, Equal(float32(0.25), next))
	assert.True(t, Equal(celsius(0.25), celsius(next)),
		"named ~float32 types must get the float32 epsilon")
	assert.False(t, Equal(celsius(1.0), celsius(1.001)))

	assert.True(t, Equal(meters(0.1)+meters(0.2), meters(0.3)))
	assert.False(t, Equal(meters(1), meters(1)+meters(1e-9)),
		"named ~float64 types must keep the float64 epsilon")
}

func TestEqualTol(t *testing.T) {
	t.Parallel()
	assert.True(t, EqualTol(1.0, 1.05, 0.1))
	assert.False(t, EqualTol(1.0, 1.2, 0.1))
	assert.False(t, EqualTol(1.0, 1.1, 0.1), "the bound is exclusive")
}

func TestEqualSlices(t *testing.T) {
	t.Parallel()
	assert.True(t, EqualSlices([]float64{0.1 + 0.2, 1}, []float64{0.3, 1}))
	assert.False(t, EqualSlices([]float64{1}, []float64{1, 2}))
	assert.False(t, EqualSlices([]float64{1}, []float64{2}))
	assert.True(t, EqualSlices(nil, []float64{}))
}
