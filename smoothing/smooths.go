package smoothing

import "github.com/katalvlaran/lvlsmooth/field"

// smoothS2 computes y = S'Sx for the 3×3 weighted-average filter. Each
// 2×2 corner sum is scattered back onto its four corners, which realizes
// the separable [1/4 1/2 1/4] smoother per axis. A two-row rolling copy
// of x makes in-place application (y == x) safe.
func smoothS2(x, y [][]float32) {
	n2, n1 := len(x), len(x[0])
	t := field.New2D(2, n1)
	field.Copy1(x[0], t[0])
	field.Zero1(y[0])
	for i2 := 1; i2 < n2; i2++ {
		i2m := i2 - 1
		j2, j2m := i2%2, i2m%2
		field.Copy1(x[i2], t[j2])
		field.Zero1(y[i2])
		x0, x1 := t[j2], t[j2m]
		y0, y1 := y[i2], y[i2m]
		for i1 := 1; i1 < n1; i1++ {
			i1m := i1 - 1
			xs := 0.0625 * (x0[i1] + x0[i1m] + x1[i1] + x1[i1m])
			y0[i1] += xs
			y0[i1m] += xs
			y1[i1] += xs
			y1[i1m] += xs
		}
	}
}

// smoothS3 computes y = S'Sx for the 3×3×3 weighted-average filter, the
// rank-3 twin of smoothS2 with a two-plane rolling copy of x.
func smoothS3(x, y [][][]float32) {
	n3, n2, n1 := len(x), len(x[0]), len(x[0][0])
	t := [2][][]float32{field.New2D(n2, n1), field.New2D(n2, n1)}
	field.Copy2(x[0], t[0])
	field.Zero2(y[0])
	for i3 := 1; i3 < n3; i3++ {
		i3m := i3 - 1
		j3, j3m := i3%2, i3m%2
		field.Copy2(x[i3], t[j3])
		field.Zero2(y[i3])
		for i2 := 1; i2 < n2; i2++ {
			i2m := i2 - 1
			x00, x01 := t[j3][i2], t[j3][i2m]
			x10, x11 := t[j3m][i2], t[j3m][i2m]
			y00, y01 := y[i3][i2], y[i3][i2m]
			y10, y11 := y[i3m][i2], y[i3m][i2m]
			for i1 := 1; i1 < n1; i1++ {
				i1m := i1 - 1
				xs := 0.015625 * (x00[i1] + x00[i1m] + x01[i1] + x01[i1m] +
					x10[i1] + x10[i1m] + x11[i1] + x11[i1m])
				y00[i1] += xs
				y00[i1m] += xs
				y01[i1] += xs
				y01[i1m] += xs
				y10[i1] += xs
				y10[i1m] += xs
				y11[i1] += xs
				y11[i1m] += xs
			}
		}
	}
}
