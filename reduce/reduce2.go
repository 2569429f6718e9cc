package reduce

// Rank-2 primitives. Always serial: a 2D grid is one unit of work, and
// parallelizing below the outer dimension of rank-3 data does not pay.

// Zero2 sets every sample of x to zero.
func Zero2(x [][]float32) {
	for i2 := range x {
		x2 := x[i2]
		for i1 := range x2 {
			x2[i1] = 0
		}
	}
}

// Copy2 copies x into y.
func Copy2(x, y [][]float32) {
	for i2 := range x {
		copy(y[i2], x[i2])
	}
}

// Dot2 returns the dot product xᵗy, accumulated in fixed i2→i1 order.
func Dot2(x, y [][]float32) float32 {
	var d float32
	for i2 := range x {
		x2, y2 := x[i2], y[i2]
		for i1 := range x2 {
			d += x2[i1] * y2[i1]
		}
	}

	return d
}

// Axpy2 computes y += a·x.
func Axpy2(a float32, x, y [][]float32) {
	for i2 := range x {
		x2, y2 := x[i2], y[i2]
		for i1 := range x2 {
			y2[i1] += a * x2[i1]
		}
	}
}

// Xpay2 computes y = x + a·y.
func Xpay2(a float32, x, y [][]float32) {
	for i2 := range x {
		x2, y2 := x[i2], y[i2]
		for i1 := range x2 {
			y2[i1] = x2[i1] + a*y2[i1]
		}
	}
}
