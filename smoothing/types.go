package smoothing

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/lvlsmooth/diffusion"
	"github.com/katalvlaran/lvlsmooth/reduce"
)

// Documented defaults (single source of truth for DefaultOptions).
const (
	// DefaultSmall stops iterations when the residual norm is below this
	// factor times the input norm.
	DefaultSmall = 0.01
	// DefaultMaxIter caps the number of CG iterations.
	DefaultMaxIter = 100
	// DefaultStencil is the central-difference stencil (7-point in 3D).
	DefaultStencil = diffusion.StencilCentralDifference
	// DefaultMode parallelizes 3D reduction primitives.
	DefaultMode = reduce.Parallel
)

// Diagnostic verbosity levels for Options.Logger.
const (
	// LevelFine logs one summary line per solve.
	LevelFine = slog.LevelDebug
	// LevelFiner additionally logs one line per CG iteration.
	LevelFiner = slog.Level(int(slog.LevelDebug) - 4)
)

// lowpassRipple is the tolerance of the derived low-pass filter L.
const lowpassRipple = 0.01

// Sentinel errors for facade configuration and preconditions.
var (
	// ErrBadSmall indicates Options.Small outside (0, 1).
	ErrBadSmall = errors.New("smoothing: Small must lie in (0, 1)")
	// ErrBadMaxIter indicates Options.MaxIter below 1.
	ErrBadMaxIter = errors.New("smoothing: MaxIter must be at least 1")
	// ErrBadStencil indicates an unknown Options.Stencil variant.
	ErrBadStencil = errors.New("smoothing: unknown stencil variant")
	// ErrNilTensors indicates a nil tensor field.
	ErrNilTensors = errors.New("smoothing: tensor field must be non-nil")
	// ErrAliasedGrids indicates solver input and output share storage.
	ErrAliasedGrids = errors.New("smoothing: solver input and output must not alias")
	// ErrBadKmax indicates a low-pass cutoff outside [0, 0.5].
	ErrBadKmax = errors.New("smoothing: kmax must lie in [0, 0.5]")
)

// Options configures a Smoother. Zero values are invalid; start from
// DefaultOptions and override fields as needed.
type Options struct {
	// Small stops iterations when the residual norm is less than this
	// factor times the norm of the input grid. Must lie in (0, 1).
	Small float64
	// MaxIter stops iterations when their count exceeds this limit.
	MaxIter int
	// Stencil selects the diffusion stencil variant.
	Stencil diffusion.Stencil
	// Mode selects serial or parallel execution of 3D reductions.
	Mode reduce.ExecMode
	// OnIteration, when non-nil, observes every CG iteration with the
	// iteration index, squared residual norm delta, and delta relative
	// to the starting residual. Observational only.
	OnIteration func(iter int, delta, ratio float64)
	// Logger, when non-nil, receives solver diagnostics at LevelFine and
	// LevelFiner. Observational only.
	Logger *slog.Logger
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Small:   DefaultSmall,
		MaxIter: DefaultMaxIter,
		Stencil: DefaultStencil,
		Mode:    DefaultMode,
	}
}
