package bandpass

import (
	"errors"
	"sync"
)

// Sentinel errors for filter construction.
var (
	// ErrBadCutoff indicates band edges outside 0 ≤ klower ≤ kupper ≤ 0.5.
	ErrBadCutoff = errors.New("bandpass: cutoffs must satisfy 0 <= klower <= kupper <= 0.5")
	// ErrBadWidth indicates a negative transition width.
	ErrBadWidth = errors.New("bandpass: transition width must be non-negative")
	// ErrBadRipple indicates a ripple tolerance outside (0, 1).
	ErrBadRipple = errors.New("bandpass: ripple must lie in (0, 1)")
)

// Extrapolation selects how grids are extended beyond their boundaries
// before transforming.
type Extrapolation int

const (
	// ExtrapolateZeroValue extends with zeros.
	ExtrapolateZeroValue Extrapolation = iota
	// ExtrapolateZeroSlope extends with the mirror image of the grid, so
	// the extension leaves boundary derivatives near zero.
	ExtrapolateZeroSlope
)

// Filter is a frequency-domain band-pass filter. Construct with New;
// a Filter is safe for concurrent use once configured.
type Filter struct {
	klower float64 // lower band edge, cycles/sample
	kupper float64 // upper band edge, cycles/sample
	kwidth float64 // transition width
	ripple float64 // passband/stopband tolerance

	extrap  Extrapolation
	caching bool

	mu    sync.Mutex
	cache map[[3]int][]float64 // transfer arrays keyed by extended shape
}

// New constructs a band-pass filter with the given band edges, transition
// width, and ripple tolerance. Defaults: zero-value extrapolation, no
// transfer caching.
func New(klower, kupper, kwidth, ripple float64) (*Filter, error) {
	if klower < 0 || kupper < klower || kupper > 0.5 {
		return nil, ErrBadCutoff
	}
	if kwidth < 0 {
		return nil, ErrBadWidth
	}
	if ripple <= 0 || ripple >= 1 {
		return nil, ErrBadRipple
	}

	return &Filter{
		klower: klower,
		kupper: kupper,
		kwidth: kwidth,
		ripple: ripple,
		cache:  make(map[[3]int][]float64),
	}, nil
}

// SetExtrapolation selects the boundary extension mode.
func (f *Filter) SetExtrapolation(e Extrapolation) {
	f.extrap = e
}

// SetFilterCaching toggles per-shape transfer-array caching. Disabling
// also drops any arrays cached so far.
func (f *Filter) SetFilterCaching(enabled bool) {
	f.mu.Lock()
	f.caching = enabled
	if !enabled {
		f.cache = make(map[[3]int][]float64)
	}
	f.mu.Unlock()
}
