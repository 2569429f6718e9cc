package smoothing_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlsmooth/field"
	"github.com/katalvlaran/lvlsmooth/smoothing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// newSmoother builds a Smoother with defaults for tests that do not care
// about solver configuration.
func newSmoother(t *testing.T) *smoothing.Smoother {
	t.Helper()
	sm, err := smoothing.New(smoothing.DefaultOptions())
	require.NoError(t, err)

	return sm
}

// denseSolve1 solves the same tridiagonal system with a dense float64
// factorization, as an independent reference.
func denseSolve1(t *testing.T, c float64, s, x []float32) []float32 {
	t.Helper()
	n := len(x)
	e := make([]float64, n+1)
	for i := 1; i < n; i++ {
		if s != nil {
			e[i] = -0.5 * c * float64(s[i]+s[i-1])
		} else {
			e[i] = -c
		}
	}
	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1-e[i]-e[i+1])
		if i > 0 {
			a.Set(i, i-1, e[i])
			a.Set(i-1, i, e[i])
		}
		b.SetVec(i, float64(x[i]))
	}
	var v mat.VecDense
	require.NoError(t, v.SolveVec(a, b))

	y := make([]float32, n)
	for i := range y {
		y[i] = float32(v.AtVec(i))
	}

	return y
}

// TestApply1_MatchesDenseSolve compares the Thomas sweep against a dense
// reference solve, with and without a per-sample scale grid.
func TestApply1_MatchesDenseSolve(t *testing.T) {
	sm := newSmoother(t)
	const n = 23
	x := make([]float32, n)
	s := make([]float32, n)
	for i := range x {
		x[i] = float32(math.Sin(0.7*float64(i))) + 0.2*float32(i%5)
		s[i] = 0.5 + 0.1*float32(i%7)
	}

	for _, scale := range [][]float32{nil, s} {
		y := make([]float32, n)
		require.NoError(t, sm.Apply1(0.8, scale, x, y))
		want := denseSolve1(t, 0.8, scale, x)
		for i := range y {
			assert.InDelta(t, float64(want[i]), float64(y[i]), 1e-5, "sample %d", i)
		}
	}
}

// TestApply1_ImpulseResponse verifies the smoothed impulse: unit sum
// (rows of the operator sum to one), positive and strictly decaying away
// from the impulse.
func TestApply1_ImpulseResponse(t *testing.T) {
	sm := newSmoother(t)
	const n = 16
	x := make([]float32, n)
	x[0] = 1
	y := make([]float32, n)
	require.NoError(t, sm.Apply1(1, nil, x, y))

	var sum float64
	for i := range y {
		sum += float64(y[i])
	}
	assert.InDelta(t, 1.0, sum, 1e-5, "smoothing must preserve total mass")
	assert.Less(t, y[0], float32(1), "impulse must spread")
	for i := 1; i < n; i++ {
		assert.Greater(t, y[i], float32(0))
		assert.Less(t, y[i], y[i-1], "response must decay monotonically")
	}
}

// TestApply1_SingleSample covers the degenerate length-1 system.
func TestApply1_SingleSample(t *testing.T) {
	sm := newSmoother(t)
	x := []float32{2.5}
	y := []float32{0}
	require.NoError(t, sm.Apply1(3, nil, x, y))
	assert.Equal(t, float32(2.5), y[0], "length-1 system is the identity")
}

// TestApply1_InPlace verifies x and y may share storage.
func TestApply1_InPlace(t *testing.T) {
	sm := newSmoother(t)
	x := []float32{1, 0, 2, -1, 0.5, 3}
	want := make([]float32, len(x))
	require.NoError(t, sm.Apply1(0.6, nil, x, want))
	require.NoError(t, sm.Apply1(0.6, nil, x, x))
	assert.Equal(t, want, x)
}

// TestApply1_ShapeErrors covers fail-fast precondition checks.
func TestApply1_ShapeErrors(t *testing.T) {
	sm := newSmoother(t)
	assert.ErrorIs(t, sm.Apply1(1, nil, nil, nil), field.ErrEmptyGrid)
	assert.ErrorIs(t, sm.Apply1(1, nil, make([]float32, 3), make([]float32, 4)), field.ErrShapeMismatch)
	assert.ErrorIs(t, sm.Apply1(1, make([]float32, 2), make([]float32, 3), make([]float32, 3)), field.ErrShapeMismatch)
}
