package smoothing_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlsmooth/diffusion"
	"github.com/katalvlaran/lvlsmooth/field"
	"github.com/katalvlaran/lvlsmooth/reduce"
	"github.com/katalvlaran/lvlsmooth/smoothing"
	"github.com/katalvlaran/lvlsmooth/tensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wavy2 fills a deterministic non-trivial 2D grid.
func wavy2(n2, n1 int) [][]float32 {
	x := field.New2D(n2, n1)
	for i2 := range x {
		for i1 := range x[i2] {
			x[i2][i1] = float32(math.Sin(0.3*float64(i1)) * math.Cos(0.5*float64(i2)))
		}
	}

	return x
}

// wavy3 fills a deterministic non-trivial 3D grid.
func wavy3(n3, n2, n1 int) [][][]float32 {
	x := field.New3D(n3, n2, n1)
	for i3 := range x {
		for i2 := range x[i3] {
			for i1 := range x[i3][i2] {
				x[i3][i2][i1] = float32(math.Sin(0.3*float64(i1)+0.4*float64(i2)) * math.Cos(0.5*float64(i3)))
			}
		}
	}

	return x
}

// TestNew_Validation covers the Options sentinels.
func TestNew_Validation(t *testing.T) {
	opts := smoothing.DefaultOptions()
	opts.Small = 0
	_, err := smoothing.New(opts)
	assert.ErrorIs(t, err, smoothing.ErrBadSmall)

	opts = smoothing.DefaultOptions()
	opts.Small = 1
	_, err = smoothing.New(opts)
	assert.ErrorIs(t, err, smoothing.ErrBadSmall)

	opts = smoothing.DefaultOptions()
	opts.MaxIter = 0
	_, err = smoothing.New(opts)
	assert.ErrorIs(t, err, smoothing.ErrBadMaxIter)

	opts = smoothing.DefaultOptions()
	opts.Stencil = diffusion.Stencil(99)
	_, err = smoothing.New(opts)
	assert.ErrorIs(t, err, smoothing.ErrBadStencil)
}

// TestApply2_ZeroGain verifies c=0 reduces the system to the identity:
// the initial estimate y=x already solves it and no iteration runs.
func TestApply2_ZeroGain(t *testing.T) {
	sm := newSmoother(t)
	x := wavy2(7, 9)
	y := field.New2D(7, 9)
	require.NoError(t, sm.Apply2(tensors.IdentityTensors2{}, 0, nil, x, y))
	for i2 := range x {
		assert.Equal(t, x[i2], y[i2])
	}
}

// TestApply3_ZeroGain is the rank-3 twin of TestApply2_ZeroGain.
func TestApply3_ZeroGain(t *testing.T) {
	sm := newSmoother(t)
	x := wavy3(4, 5, 6)
	y := field.New3D(4, 5, 6)
	require.NoError(t, sm.Apply3(tensors.IdentityTensors3{}, 0, nil, x, y))
	for i3 := range x {
		for i2 := range x[i3] {
			assert.Equal(t, x[i3][i2], y[i3][i2])
		}
	}
}

// TestApply2_MatchesDirect1D exploits the two-point stencil with a
// diagonal tensor field D = diag(1, 0): rows decouple into independent
// tridiagonal systems, so a tightly converged CG solve must agree with
// the direct 1D solver row by row.
func TestApply2_MatchesDirect1D(t *testing.T) {
	opts := smoothing.DefaultOptions()
	opts.Stencil = diffusion.StencilTwoPoint
	opts.Small = 1e-6
	opts.MaxIter = 1000
	sm, err := smoothing.New(opts)
	require.NoError(t, err)

	const n2, n1 = 4, 20
	const c = 0.9
	x := wavy2(n2, n1)
	y := field.New2D(n2, n1)
	require.NoError(t, sm.Apply2(tensors.NewConstantTensors2(1, 0, 0), c, nil, x, y))

	want := make([]float32, n1)
	for i2 := 0; i2 < n2; i2++ {
		require.NoError(t, sm.Apply1(c, nil, x[i2], want))
		for i1 := 0; i1 < n1; i1++ {
			assert.InDelta(t, float64(want[i1]), float64(y[i2][i1]), 1e-4,
				"row %d sample %d", i2, i1)
		}
	}
}

// TestApply2_Converges verifies the stopping criterion through the
// iteration hook: with a generous cap, the final squared residual must
// fall below small² times the squared input norm.
func TestApply2_Converges(t *testing.T) {
	var deltas []float64
	opts := smoothing.DefaultOptions()
	opts.Small = 0.01
	opts.MaxIter = 500
	opts.OnIteration = func(iter int, delta, ratio float64) {
		require.Equal(t, len(deltas), iter, "hook must see consecutive iterations")
		deltas = append(deltas, delta)
	}
	sm, err := smoothing.New(opts)
	require.NoError(t, err)

	x := wavy2(16, 16)
	y := field.New2D(16, 16)
	require.NoError(t, sm.Apply2(tensors.IdentityTensors2{}, 4, nil, x, y))

	require.GreaterOrEqual(t, len(deltas), 2, "a non-trivial solve must iterate")
	first, last := deltas[0], deltas[len(deltas)-1]
	assert.Less(t, last, first, "residual must shrink overall")

	bb := float64(reduce.Dot2(x, x))
	assert.LessOrEqual(t, last, 0.01*0.01*bb, "stopping criterion must be met")
}

// TestApply3_ParallelMatchesSerial verifies both execution modes reach
// the same answer up to reduction rounding.
func TestApply3_ParallelMatchesSerial(t *testing.T) {
	build := func(mode reduce.ExecMode) *smoothing.Smoother {
		opts := smoothing.DefaultOptions()
		opts.Mode = mode
		opts.Small = 1e-4
		opts.MaxIter = 500
		sm, err := smoothing.New(opts)
		require.NoError(t, err)

		return sm
	}

	x := wavy3(8, 9, 10)
	ys := field.New3D(8, 9, 10)
	yp := field.New3D(8, 9, 10)
	require.NoError(t, build(reduce.Serial).Apply3(tensors.IdentityTensors3{}, 2, nil, x, ys))
	require.NoError(t, build(reduce.Parallel).Apply3(tensors.IdentityTensors3{}, 2, nil, x, yp))

	for i3 := range ys {
		for i2 := range ys[i3] {
			for i1 := range ys[i3][i2] {
				assert.InDelta(t, float64(ys[i3][i2][i1]), float64(yp[i3][i2][i1]), 5e-3)
			}
		}
	}
}

// TestApply2_ScaleGrid verifies s=nil and an all-ones scale grid agree,
// and that a zero scale grid disables smoothing entirely.
func TestApply2_ScaleGrid(t *testing.T) {
	sm := newSmoother(t)
	x := wavy2(8, 8)

	ones := field.New2D(8, 8)
	field.Fill2(1, ones)
	yNil := field.New2D(8, 8)
	yOne := field.New2D(8, 8)
	require.NoError(t, sm.Apply2(tensors.IdentityTensors2{}, 2, nil, x, yNil))
	require.NoError(t, sm.Apply2(tensors.IdentityTensors2{}, 2, ones, x, yOne))
	for i2 := range yNil {
		assert.Equal(t, yNil[i2], yOne[i2], "unit scale grid must equal nil scale")
	}

	zeros := field.New2D(8, 8)
	yZero := field.New2D(8, 8)
	require.NoError(t, sm.Apply2(tensors.IdentityTensors2{}, 2, zeros, x, yZero))
	for i2 := range x {
		assert.Equal(t, x[i2], yZero[i2], "zero scale must pass input through")
	}
}

// TestApply_Preconditions covers the facade's sentinel errors.
func TestApply_Preconditions(t *testing.T) {
	sm := newSmoother(t)
	x := wavy2(4, 4)
	y := field.New2D(4, 4)

	assert.ErrorIs(t, sm.Apply2(nil, 1, nil, x, y), smoothing.ErrNilTensors)
	assert.ErrorIs(t, sm.Apply2(tensors.IdentityTensors2{}, 1, nil, x, x), smoothing.ErrAliasedGrids)
	assert.ErrorIs(t, sm.Apply2(tensors.IdentityTensors2{}, 1, field.New2D(3, 4), x, y), field.ErrShapeMismatch)
	assert.ErrorIs(t, sm.Apply2(tensors.IdentityTensors2{}, 1, nil, x, field.New2D(4, 5)), field.ErrShapeMismatch)

	x3 := wavy3(3, 3, 3)
	y3 := field.New3D(3, 3, 3)
	assert.ErrorIs(t, sm.Apply3(nil, 1, nil, x3, y3), smoothing.ErrNilTensors)
	assert.ErrorIs(t, sm.Apply3(tensors.IdentityTensors3{}, 1, nil, x3, x3), smoothing.ErrAliasedGrids)
	assert.ErrorIs(t, sm.Apply3(tensors.IdentityTensors3{}, 1, nil, x3, field.New3D(3, 3, 4)), field.ErrShapeMismatch)
}
