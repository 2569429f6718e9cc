package bandpass

import "math"

// transfer returns the amplitude response at radial wavenumber k
// (cycles/sample): 1 inside the band, 0 outside, raised-cosine taper of
// width kwidth across each band edge. klower = 0 degenerates to a pure
// low-pass response.
func (f *Filter) transfer(k float64) float64 {
	g := edge(k, f.kupper, f.kwidth)
	if f.klower > 0 {
		g *= 1 - edge(k, f.klower, f.kwidth)
	}

	return g
}

// edge is a raised-cosine step from 1 (k ≤ e−w/2) down to 0 (k ≥ e+w/2).
// Zero width degenerates to a hard cutoff at e.
func edge(k, e, w float64) float64 {
	if w <= 0 {
		if k <= e {
			return 1
		}

		return 0
	}
	lo, hi := e-0.5*w, e+0.5*w
	switch {
	case k <= lo:
		return 1
	case k >= hi:
		return 0
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(k-lo)/w))
	}
}

// waveNumber maps complex-FFT bin j of an m-point transform to its
// absolute wavenumber in cycles/sample.
func waveNumber(j, m int) float64 {
	k := float64(j) / float64(m)
	if 2*j > m {
		k--
	}

	return math.Abs(k)
}

// transferGrid2 returns the flattened m2×m1 radial transfer array,
// served from the cache when caching is enabled.
func (f *Filter) transferGrid2(m2, m1 int) []float64 {
	key := [3]int{0, m2, m1}
	if tr := f.cached(key); tr != nil {
		return tr
	}
	tr := make([]float64, m2*m1)
	for j2 := 0; j2 < m2; j2++ {
		k2 := waveNumber(j2, m2)
		for j1 := 0; j1 < m1; j1++ {
			k1 := waveNumber(j1, m1)
			tr[j2*m1+j1] = f.transfer(math.Hypot(k1, k2))
		}
	}
	f.store(key, tr)

	return tr
}

// transferGrid3 returns the flattened m3×m2×m1 radial transfer array.
func (f *Filter) transferGrid3(m3, m2, m1 int) []float64 {
	key := [3]int{m3, m2, m1}
	if tr := f.cached(key); tr != nil {
		return tr
	}
	tr := make([]float64, m3*m2*m1)
	for j3 := 0; j3 < m3; j3++ {
		k3 := waveNumber(j3, m3)
		for j2 := 0; j2 < m2; j2++ {
			k2 := waveNumber(j2, m2)
			for j1 := 0; j1 < m1; j1++ {
				k1 := waveNumber(j1, m1)
				k := math.Sqrt(k1*k1 + k2*k2 + k3*k3)
				tr[(j3*m2+j2)*m1+j1] = f.transfer(k)
			}
		}
	}
	f.store(key, tr)

	return tr
}

// cached fetches a transfer array for the given extended shape, or nil.
func (f *Filter) cached(key [3]int) []float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.caching {
		return nil
	}

	return f.cache[key]
}

// store retains a transfer array when caching is enabled.
func (f *Filter) store(key [3]int, tr []float64) {
	f.mu.Lock()
	if f.caching {
		f.cache[key] = tr
	}
	f.mu.Unlock()
}
