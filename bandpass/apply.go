package bandpass

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/lvlsmooth/field"
)

// Apply1 filters a 1D grid: y = filter(x). x and y may be the same slice.
func (f *Filter) Apply1(x, y []float32) error {
	if err := field.Check1(x); err != nil {
		return err
	}
	if err := field.SameShape1(x, y); err != nil {
		return err
	}

	n := len(x)
	m := 2 * n
	ext := make([]float64, m)
	for i := 0; i < n; i++ {
		ext[i] = float64(x[i])
	}
	if f.extrap == ExtrapolateZeroSlope {
		for i := n; i < m; i++ {
			ext[i] = float64(x[m-1-i])
		}
	}

	fft := fourier.NewFFT(m)
	coeff := fft.Coefficients(nil, ext)
	for j := range coeff {
		coeff[j] *= complex(f.transfer(float64(j)/float64(m)), 0)
	}
	seq := fft.Sequence(nil, coeff)
	scale := 1 / float64(m)
	for i := 0; i < n; i++ {
		y[i] = float32(seq[i] * scale)
	}

	return nil
}

// Apply2 filters a 2D grid: y = filter(x). x and y may be the same grid.
func (f *Filter) Apply2(x, y [][]float32) error {
	if err := field.Check2(x); err != nil {
		return err
	}
	if err := field.SameShape2(x, y); err != nil {
		return err
	}

	n2, n1 := len(x), len(x[0])
	m2, m1 := 2*n2, 2*n1

	// Extend both dimensions into a complex work grid.
	w := make([][]complex128, m2)
	for j2 := 0; j2 < m2; j2++ {
		w[j2] = make([]complex128, m1)
		i2 := reflect(j2, n2, m2, f.extrap)
		if i2 < 0 {
			continue // zero padding
		}
		row := x[i2]
		for j1 := 0; j1 < m1; j1++ {
			if i1 := reflect(j1, n1, m1, f.extrap); i1 >= 0 {
				w[j2][j1] = complex(float64(row[i1]), 0)
			}
		}
	}

	fft1 := fourier.NewCmplxFFT(m1)
	fft2 := fourier.NewCmplxFFT(m2)

	// Forward transforms: axis 1 then axis 2.
	for j2 := 0; j2 < m2; j2++ {
		w[j2] = fft1.Coefficients(nil, w[j2])
	}
	col := make([]complex128, m2)
	for j1 := 0; j1 < m1; j1++ {
		for j2 := 0; j2 < m2; j2++ {
			col[j2] = w[j2][j1]
		}
		out := fft2.Coefficients(nil, col)
		for j2 := 0; j2 < m2; j2++ {
			w[j2][j1] = out[j2]
		}
	}

	// Radial transfer multiplication.
	tr := f.transferGrid2(m2, m1)
	for j2 := 0; j2 < m2; j2++ {
		for j1 := 0; j1 < m1; j1++ {
			w[j2][j1] *= complex(tr[j2*m1+j1], 0)
		}
	}

	// Inverse transforms (unnormalized) and truncation.
	for j1 := 0; j1 < m1; j1++ {
		for j2 := 0; j2 < m2; j2++ {
			col[j2] = w[j2][j1]
		}
		out := fft2.Sequence(nil, col)
		for j2 := 0; j2 < m2; j2++ {
			w[j2][j1] = out[j2]
		}
	}
	scale := 1 / float64(m1*m2)
	for i2 := 0; i2 < n2; i2++ {
		row := fft1.Sequence(nil, w[i2])
		for i1 := 0; i1 < n1; i1++ {
			y[i2][i1] = float32(real(row[i1]) * scale)
		}
	}

	return nil
}

// Apply3 filters a 3D grid: y = filter(x). x and y may be the same grid.
func (f *Filter) Apply3(x, y [][][]float32) error {
	if err := field.Check3(x); err != nil {
		return err
	}
	if err := field.SameShape3(x, y); err != nil {
		return err
	}

	n3, n2, n1 := len(x), len(x[0]), len(x[0][0])
	m3, m2, m1 := 2*n3, 2*n2, 2*n1

	w := make([][][]complex128, m3)
	for j3 := 0; j3 < m3; j3++ {
		w[j3] = make([][]complex128, m2)
		i3 := reflect(j3, n3, m3, f.extrap)
		for j2 := 0; j2 < m2; j2++ {
			w[j3][j2] = make([]complex128, m1)
			if i3 < 0 {
				continue
			}
			i2 := reflect(j2, n2, m2, f.extrap)
			if i2 < 0 {
				continue
			}
			row := x[i3][i2]
			for j1 := 0; j1 < m1; j1++ {
				if i1 := reflect(j1, n1, m1, f.extrap); i1 >= 0 {
					w[j3][j2][j1] = complex(float64(row[i1]), 0)
				}
			}
		}
	}

	fft1 := fourier.NewCmplxFFT(m1)
	fft2 := fourier.NewCmplxFFT(m2)
	fft3 := fourier.NewCmplxFFT(m3)

	// Forward transforms along each axis.
	for j3 := 0; j3 < m3; j3++ {
		for j2 := 0; j2 < m2; j2++ {
			w[j3][j2] = fft1.Coefficients(nil, w[j3][j2])
		}
	}
	col2 := make([]complex128, m2)
	for j3 := 0; j3 < m3; j3++ {
		for j1 := 0; j1 < m1; j1++ {
			for j2 := 0; j2 < m2; j2++ {
				col2[j2] = w[j3][j2][j1]
			}
			out := fft2.Coefficients(nil, col2)
			for j2 := 0; j2 < m2; j2++ {
				w[j3][j2][j1] = out[j2]
			}
		}
	}
	col3 := make([]complex128, m3)
	for j2 := 0; j2 < m2; j2++ {
		for j1 := 0; j1 < m1; j1++ {
			for j3 := 0; j3 < m3; j3++ {
				col3[j3] = w[j3][j2][j1]
			}
			out := fft3.Coefficients(nil, col3)
			for j3 := 0; j3 < m3; j3++ {
				w[j3][j2][j1] = out[j3]
			}
		}
	}

	// Radial transfer multiplication.
	tr := f.transferGrid3(m3, m2, m1)
	for j3 := 0; j3 < m3; j3++ {
		for j2 := 0; j2 < m2; j2++ {
			base := (j3*m2 + j2) * m1
			for j1 := 0; j1 < m1; j1++ {
				w[j3][j2][j1] *= complex(tr[base+j1], 0)
			}
		}
	}

	// Inverse transforms along each axis (unnormalized), then truncate.
	for j2 := 0; j2 < m2; j2++ {
		for j1 := 0; j1 < m1; j1++ {
			for j3 := 0; j3 < m3; j3++ {
				col3[j3] = w[j3][j2][j1]
			}
			out := fft3.Sequence(nil, col3)
			for j3 := 0; j3 < m3; j3++ {
				w[j3][j2][j1] = out[j3]
			}
		}
	}
	for j3 := 0; j3 < m3; j3++ {
		for j1 := 0; j1 < m1; j1++ {
			for j2 := 0; j2 < m2; j2++ {
				col2[j2] = w[j3][j2][j1]
			}
			out := fft2.Sequence(nil, col2)
			for j2 := 0; j2 < m2; j2++ {
				w[j3][j2][j1] = out[j2]
			}
		}
	}
	scale := 1 / float64(m1*m2*m3)
	for i3 := 0; i3 < n3; i3++ {
		for i2 := 0; i2 < n2; i2++ {
			row := fft1.Sequence(nil, w[i3][i2])
			for i1 := 0; i1 < n1; i1++ {
				y[i3][i2][i1] = float32(real(row[i1]) * scale)
			}
		}
	}

	return nil
}

// reflect maps extended index j of a dimension of original length n
// (extended length m = 2n) back to a source index, or -1 for zero padding.
func reflect(j, n, m int, e Extrapolation) int {
	if j < n {
		return j
	}
	if e == ExtrapolateZeroSlope {
		return m - 1 - j
	}

	return -1
}
