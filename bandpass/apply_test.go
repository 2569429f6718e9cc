package bandpass_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlsmooth/bandpass"
	"github.com/katalvlaran/lvlsmooth/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lowpass builds the low-pass form the smoothing facade uses for a given
// maximum passed wavenumber kmax.
func lowpass(t *testing.T, kmax float64) *bandpass.Filter {
	t.Helper()
	kdelta := 0.5 - kmax
	f, err := bandpass.New(0, kmax+0.5*kdelta, kdelta, 0.01)
	require.NoError(t, err)
	f.SetExtrapolation(bandpass.ExtrapolateZeroSlope)

	return f
}

// TestApply1_PreservesConstant verifies DC gain 1 under zero-slope
// extrapolation: a constant signal passes unchanged.
func TestApply1_PreservesConstant(t *testing.T) {
	f := lowpass(t, 0.25)
	x := make([]float32, 17)
	for i := range x {
		x[i] = 3.5
	}
	y := make([]float32, 17)
	require.NoError(t, f.Apply1(x, y))
	for i := range y {
		assert.InDelta(t, 3.5, y[i], 1e-4)
	}
}

// TestApply1_PassesLowFrequency verifies a wavenumber well inside the
// passband survives nearly unchanged.
func TestApply1_PassesLowFrequency(t *testing.T) {
	f := lowpass(t, 0.25)
	const n = 64
	x := make([]float32, n)
	for i := range x {
		// Whole number of periods over the mirror-extended length keeps
		// the spectrum on a single bin.
		x[i] = float32(math.Cos(2 * math.Pi * 4 * float64(i) / (2 * n)))
	}
	y := make([]float32, n)
	require.NoError(t, f.Apply1(x, y))
	for i := range y {
		assert.InDelta(t, float64(x[i]), float64(y[i]), 2e-2)
	}
}

// TestApply1_AttenuatesNyquist verifies the alternating-sign signal is
// strongly attenuated by the facade's low-pass form.
func TestApply1_AttenuatesNyquist(t *testing.T) {
	f := lowpass(t, 0.25)
	const n = 64
	x := make([]float32, n)
	for i := range x {
		x[i] = float32(1 - 2*(i%2))
	}
	y := make([]float32, n)
	require.NoError(t, f.Apply1(x, y))

	var in, out float64
	for i := n / 4; i < 3*n/4; i++ { // interior, away from mirror seams
		in += float64(x[i]) * float64(x[i])
		out += float64(y[i]) * float64(y[i])
	}
	assert.Less(t, out, 0.08*in, "interior Nyquist energy must collapse")
}

// TestApply2_PreservesConstant verifies isotropic DC handling in 2D,
// including in-place application.
func TestApply2_PreservesConstant(t *testing.T) {
	f := lowpass(t, 0.3)
	x := field.New2D(9, 12)
	field.Fill2(-1.25, x)
	require.NoError(t, f.Apply2(x, x), "x and y may alias")
	for i2 := range x {
		for i1 := range x[i2] {
			assert.InDelta(t, -1.25, x[i2][i1], 1e-4)
		}
	}
}

// TestApply3_PreservesConstant verifies DC handling in 3D.
func TestApply3_PreservesConstant(t *testing.T) {
	f := lowpass(t, 0.3)
	x := field.New3D(5, 6, 7)
	field.Fill3(0.75, x)
	y := field.New3D(5, 6, 7)
	require.NoError(t, f.Apply3(x, y))
	for i3 := range y {
		for i2 := range y[i3] {
			for i1 := range y[i3][i2] {
				assert.InDelta(t, 0.75, y[i3][i2][i1], 1e-4)
			}
		}
	}
}

// TestApply_ShapeErrors verifies precondition validation fails fast.
func TestApply_ShapeErrors(t *testing.T) {
	f := lowpass(t, 0.25)
	assert.ErrorIs(t, f.Apply1(nil, nil), field.ErrEmptyGrid)
	assert.ErrorIs(t, f.Apply1(make([]float32, 4), make([]float32, 5)), field.ErrShapeMismatch)
	assert.ErrorIs(t, f.Apply2(field.New2D(2, 3), field.New2D(3, 2)), field.ErrShapeMismatch)
	assert.ErrorIs(t, f.Apply3(field.New3D(2, 2, 2), field.New3D(2, 2, 3)), field.ErrShapeMismatch)
}

// TestApply1_ZeroValueExtrapolation sanity-checks the zero-padding mode:
// interior samples of a smooth signal survive, boundaries roll off.
func TestApply1_ZeroValueExtrapolation(t *testing.T) {
	f, err := bandpass.New(0, 0.4, 0.1, 0.01)
	require.NoError(t, err)
	f.SetExtrapolation(bandpass.ExtrapolateZeroValue)

	const n = 32
	x := make([]float32, n)
	for i := range x {
		x[i] = 1
	}
	y := make([]float32, n)
	require.NoError(t, f.Apply1(x, y))
	assert.InDelta(t, 1.0, float64(y[n/2]), 0.1, "interior approximately preserved")
	assert.Less(t, float64(y[n-1]), 0.95, "boundary rolls off under zero padding")
}
