package reduce

// Rank-3 primitives: mode-dispatched over the outer (i3) dimension.
// Slices are disjoint, so workers never write the same index.

// Zero3 sets every sample of x to zero.
func Zero3(mode ExecMode, x [][][]float32) {
	if mode == Parallel {
		forEachOuter(len(x), func(i3 int) { Zero2(x[i3]) })
		return
	}
	for i3 := range x {
		Zero2(x[i3])
	}
}

// Copy3 copies x into y.
func Copy3(mode ExecMode, x, y [][][]float32) {
	if mode == Parallel {
		forEachOuter(len(x), func(i3 int) { Copy2(x[i3], y[i3]) })
		return
	}
	for i3 := range x {
		Copy2(x[i3], y[i3])
	}
}

// Dot3 returns the dot product xᵗy. Serial accumulation order is fixed
// i3→i2→i1; parallel order is unspecified (see package doc).
func Dot3(mode ExecMode, x, y [][][]float32) float32 {
	if mode == Parallel {
		return dotOuter(len(x), func(i3 int) float32 { return Dot2(x[i3], y[i3]) })
	}
	var d float32
	for i3 := range x {
		d += Dot2(x[i3], y[i3])
	}

	return d
}

// Axpy3 computes y += a·x.
func Axpy3(mode ExecMode, a float32, x, y [][][]float32) {
	if mode == Parallel {
		forEachOuter(len(x), func(i3 int) { Axpy2(a, x[i3], y[i3]) })
		return
	}
	for i3 := range x {
		Axpy2(a, x[i3], y[i3])
	}
}

// Xpay3 computes y = x + a·y.
func Xpay3(mode ExecMode, a float32, x, y [][][]float32) {
	if mode == Parallel {
		forEachOuter(len(x), func(i3 int) { Xpay2(a, x[i3], y[i3]) })
		return
	}
	for i3 := range x {
		Xpay2(a, x[i3], y[i3])
	}
}
