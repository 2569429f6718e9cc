package smoothing

import (
	"context"
	"log/slog"
	"sync"

	"github.com/katalvlaran/lvlsmooth/bandpass"
	"github.com/katalvlaran/lvlsmooth/diffusion"
	"github.com/katalvlaran/lvlsmooth/field"
	"github.com/katalvlaran/lvlsmooth/reduce"
	"github.com/katalvlaran/lvlsmooth/tensors"
)

// Smoother applies local anisotropic smoothing to grids. Construct with
// New; one Smoother may be reused across calls and grids. Solver work
// arrays live only for the duration of one call; the cached low-pass
// filter is the only state retained between calls.
type Smoother struct {
	small   float32
	maxIter int
	mode    reduce.ExecMode
	kernel  *diffusion.Kernel
	onIter  func(iter int, delta, ratio float64)
	logger  *slog.Logger

	mu   sync.Mutex // guards lpf and kmax
	lpf  *bandpass.Filter
	kmax float64
}

// New validates opts and returns a configured Smoother.
func New(opts Options) (*Smoother, error) {
	if opts.Small <= 0 || opts.Small >= 1 {
		return nil, ErrBadSmall
	}
	if opts.MaxIter < 1 {
		return nil, ErrBadMaxIter
	}
	switch opts.Stencil {
	case diffusion.StencilTwoPoint, diffusion.StencilCellCentered, diffusion.StencilCentralDifference:
	default:
		return nil, ErrBadStencil
	}

	return &Smoother{
		small:   float32(opts.Small),
		maxIter: opts.MaxIter,
		mode:    opts.Mode,
		kernel:  diffusion.NewKernel(opts.Stencil),
		onIter:  opts.OnIteration,
		logger:  opts.Logger,
	}, nil
}

// Apply2 smooths a 2D grid: solves (I + c·GᵗDG)y = x for the given tensor
// field d, gain c, and optional per-sample scale grid s (nil = unit).
// x and y must be distinct, identically shaped grids.
func (sm *Smoother) Apply2(d tensors.Tensors2, c float32, s, x, y [][]float32) error {
	if d == nil {
		return ErrNilTensors
	}
	if err := sm.checkPair2(s, x, y); err != nil {
		return err
	}

	a := &lhsOperator2{kernel: sm.kernel, d: d, c: c, s: s}
	reduce.Copy2(x, y) // seed the CG iteration with y = x
	sm.solve2(a, x, y)

	return nil
}

// Apply3 smooths a 3D grid: solves (I + c·GᵗDG)y = x for the given tensor
// field d, gain c, and optional per-sample scale grid s (nil = unit).
// x and y must be distinct, identically shaped grids.
func (sm *Smoother) Apply3(d tensors.Tensors3, c float32, s, x, y [][][]float32) error {
	if d == nil {
		return ErrNilTensors
	}
	if err := sm.checkPair3(s, x, y); err != nil {
		return err
	}

	a := &lhsOperator3{kernel: sm.kernel, d: d, c: c, s: s, mode: sm.mode}
	reduce.Copy3(sm.mode, x, y)
	sm.solve3(a, x, y)

	return nil
}

// SmoothS2 applies the simple 3×3 weighted-average smoothing filter S'S.
// x and y may be the same grid.
func (sm *Smoother) SmoothS2(x, y [][]float32) error {
	if err := sm.checkAliasable2(x, y); err != nil {
		return err
	}
	smoothS2(x, y)

	return nil
}

// SmoothS3 applies the simple 3×3×3 weighted-average smoothing filter S'S.
// x and y may be the same grid.
func (sm *Smoother) SmoothS3(x, y [][][]float32) error {
	if err := sm.checkAliasable3(x, y); err != nil {
		return err
	}
	smoothS3(x, y)

	return nil
}

// SmoothL2 applies the isotropic low-pass filter L passing wavenumbers up
// to kmax cycles/sample. x and y may be the same grid.
func (sm *Smoother) SmoothL2(kmax float64, x, y [][]float32) error {
	if err := sm.checkAliasable2(x, y); err != nil {
		return err
	}
	lpf, err := sm.lowpass(kmax)
	if err != nil {
		return err
	}

	return lpf.Apply2(x, y)
}

// SmoothL3 applies the isotropic low-pass filter L passing wavenumbers up
// to kmax cycles/sample. x and y may be the same grid.
func (sm *Smoother) SmoothL3(kmax float64, x, y [][][]float32) error {
	if err := sm.checkAliasable3(x, y); err != nil {
		return err
	}
	lpf, err := sm.lowpass(kmax)
	if err != nil {
		return err
	}

	return lpf.Apply3(x, y)
}

// lowpass returns the cached derived low-pass filter, rebuilding it only
// when kmax changed since the previous call. Filter caching inside the
// band-pass collaborator stays disabled to bound memory growth across
// calls with varying grid shapes.
func (sm *Smoother) lowpass(kmax float64) (*bandpass.Filter, error) {
	if kmax < 0 || kmax > 0.5 {
		return nil, ErrBadKmax
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.lpf == nil || sm.kmax != kmax {
		kdelta := 0.5 - kmax
		lpf, err := bandpass.New(0, kmax+0.5*kdelta, kdelta, lowpassRipple)
		if err != nil {
			return nil, err
		}
		lpf.SetExtrapolation(bandpass.ExtrapolateZeroSlope)
		lpf.SetFilterCaching(false)
		sm.kmax, sm.lpf = kmax, lpf
	}

	return sm.lpf, nil
}

// checkPair2 validates solver grid preconditions (distinct storage).
func (sm *Smoother) checkPair2(s, x, y [][]float32) error {
	if err := sm.checkAliasable2(x, y); err != nil {
		return err
	}
	if s != nil {
		if err := field.SameShape2(x, s); err != nil {
			return err
		}
	}
	if &x[0][0] == &y[0][0] {
		return ErrAliasedGrids
	}

	return nil
}

// checkPair3 validates solver grid preconditions (distinct storage).
func (sm *Smoother) checkPair3(s, x, y [][][]float32) error {
	if err := sm.checkAliasable3(x, y); err != nil {
		return err
	}
	if s != nil {
		if err := field.SameShape3(x, s); err != nil {
			return err
		}
	}
	if &x[0][0][0] == &y[0][0][0] {
		return ErrAliasedGrids
	}

	return nil
}

// checkAliasable2 validates shapes for operations that permit aliasing.
func (sm *Smoother) checkAliasable2(x, y [][]float32) error {
	if err := field.Check2(x); err != nil {
		return err
	}
	if err := field.Check2(y); err != nil {
		return err
	}

	return field.SameShape2(x, y)
}

// checkAliasable3 validates shapes for operations that permit aliasing.
func (sm *Smoother) checkAliasable3(x, y [][][]float32) error {
	if err := field.Check3(x); err != nil {
		return err
	}
	if err := field.Check3(y); err != nil {
		return err
	}

	return field.SameShape3(x, y)
}

// logFine emits a per-solve diagnostic line.
func (sm *Smoother) logFine(msg string, args ...any) {
	if sm.logger != nil {
		sm.logger.Log(context.Background(), LevelFine, msg, args...)
	}
}

// logFiner emits a per-iteration diagnostic line.
func (sm *Smoother) logFiner(msg string, args ...any) {
	if sm.logger != nil {
		sm.logger.Log(context.Background(), LevelFiner, msg, args...)
	}
}
