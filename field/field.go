package field

// New2D allocates a rank-2 grid with n2 rows of n1 samples, all zero.
// The backing row storage is allocated in one block for cache locality.
func New2D(n2, n1 int) [][]float32 {
	flat := make([]float32, n2*n1)
	x := make([][]float32, n2)
	for i2 := 0; i2 < n2; i2++ {
		x[i2] = flat[i2*n1 : (i2+1)*n1 : (i2+1)*n1]
	}

	return x
}

// New3D allocates a rank-3 grid with n3 planes of n2 rows of n1 samples,
// all zero. Each plane shares one contiguous block.
func New3D(n3, n2, n1 int) [][][]float32 {
	x := make([][][]float32, n3)
	for i3 := 0; i3 < n3; i3++ {
		x[i3] = New2D(n2, n1)
	}

	return x
}

// Zero1 sets every sample of x to zero.
func Zero1(x []float32) {
	for i1 := range x {
		x[i1] = 0
	}
}

// Zero2 sets every sample of x to zero.
func Zero2(x [][]float32) {
	for i2 := range x {
		Zero1(x[i2])
	}
}

// Zero3 sets every sample of x to zero.
func Zero3(x [][][]float32) {
	for i3 := range x {
		Zero2(x[i3])
	}
}

// Copy1 copies x into y. Lengths must agree (caller-validated).
func Copy1(x, y []float32) {
	copy(y, x)
}

// Copy2 copies x into y row by row. Shapes must agree (caller-validated).
func Copy2(x, y [][]float32) {
	for i2 := range x {
		copy(y[i2], x[i2])
	}
}

// Copy3 copies x into y plane by plane. Shapes must agree (caller-validated).
func Copy3(x, y [][][]float32) {
	for i3 := range x {
		Copy2(x[i3], y[i3])
	}
}

// Fill2 sets every sample of x to v.
func Fill2(v float32, x [][]float32) {
	for i2 := range x {
		for i1 := range x[i2] {
			x[i2][i1] = v
		}
	}
}

// Fill3 sets every sample of x to v.
func Fill3(v float32, x [][][]float32) {
	for i3 := range x {
		Fill2(v, x[i3])
	}
}
