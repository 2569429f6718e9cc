package diffusion

import (
	"github.com/katalvlaran/lvlsmooth/field"
	"github.com/katalvlaran/lvlsmooth/tensors"
)

// Apply3 accumulates y += c·(GᵗDG)x over a 3D grid.
// The scale grid s may be nil (unit scale). x and y must be distinct,
// identically shaped rectangular grids; violations panic.
// Complexity: O(n3·n2·n1) with one tensor query per stencil application.
func (k *Kernel) Apply3(t tensors.Tensors3, c float32, s, x, y [][][]float32) {
	check3(t, s, x, y)
	switch k.stencil {
	case StencilTwoPoint:
		apply3TwoPoint(t, c, s, x, y)
	case StencilCellCentered:
		apply3CellCentered(t, c, s, x, y)
	case StencilCentralDifference:
		apply3Central(t, c, s, x, y)
	}
}

// check3 enforces the Apply3 preconditions.
func check3(t tensors.Tensors3, s, x, y [][][]float32) {
	if t == nil {
		panic(panicNilTensors)
	}
	if field.Check3(x) != nil || field.Check3(y) != nil {
		panic(panicBadGrid)
	}
	if field.SameShape3(x, y) != nil || s != nil && field.SameShape3(x, s) != nil {
		panic(panicShape)
	}
	if &x[0][0][0] == &y[0][0][0] {
		panic(panicAliased)
	}
}

// apply3TwoPoint handles axis edges with averaged diagonal tensor
// entries d11, d22, d33; cross terms are ignored by this variant.
func apply3TwoPoint(t tensors.Tensors3, c float32, s, x, y [][][]float32) {
	n3, n2, n1 := len(x), len(x[0]), len(x[0][0])
	da := make([]float32, 6)
	db := make([]float32, 6)

	// Axis 1: weight d11.
	for i3 := 0; i3 < n3; i3++ {
		for i2 := 0; i2 < n2; i2++ {
			for i1 := 1; i1 < n1; i1++ {
				t.GetTensor(i3, i2, i1, da)
				t.GetTensor(i3, i2, i1-1, db)
				wa, wb := da[0], db[0]
				if s != nil {
					wa *= s[i3][i2][i1]
					wb *= s[i3][i2][i1-1]
				}
				f := 0.5 * c * (wa + wb) * (x[i3][i2][i1] - x[i3][i2][i1-1])
				y[i3][i2][i1] += f
				y[i3][i2][i1-1] -= f
			}
		}
	}

	// Axis 2: weight d22.
	for i3 := 0; i3 < n3; i3++ {
		for i2 := 1; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				t.GetTensor(i3, i2, i1, da)
				t.GetTensor(i3, i2-1, i1, db)
				wa, wb := da[3], db[3]
				if s != nil {
					wa *= s[i3][i2][i1]
					wb *= s[i3][i2-1][i1]
				}
				f := 0.5 * c * (wa + wb) * (x[i3][i2][i1] - x[i3][i2-1][i1])
				y[i3][i2][i1] += f
				y[i3][i2-1][i1] -= f
			}
		}
	}

	// Axis 3: weight d33.
	for i3 := 1; i3 < n3; i3++ {
		for i2 := 0; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				t.GetTensor(i3, i2, i1, da)
				t.GetTensor(i3-1, i2, i1, db)
				wa, wb := da[5], db[5]
				if s != nil {
					wa *= s[i3][i2][i1]
					wb *= s[i3-1][i2][i1]
				}
				f := 0.5 * c * (wa + wb) * (x[i3][i2][i1] - x[i3-1][i2][i1])
				y[i3][i2][i1] += f
				y[i3-1][i2][i1] -= f
			}
		}
	}
}

// apply3CellCentered accumulates GᵗDG cell by cell over 2×2×2 corner
// gradients; tensor and scale sampled at the cell's upper corner.
func apply3CellCentered(t tensors.Tensors3, c float32, s, x, y [][][]float32) {
	n3, n2, n1 := len(x), len(x[0]), len(x[0][0])
	d := make([]float32, 6)
	for i3 := 1; i3 < n3; i3++ {
		for i2 := 1; i2 < n2; i2++ {
			for i1 := 1; i1 < n1; i1++ {
				t.GetTensor(i3, i2, i1, d)
				cs := c
				if s != nil {
					cs *= s[i3][i2][i1]
				}
				e11, e12, e13 := cs*d[0], cs*d[1], cs*d[2]
				e22, e23, e33 := cs*d[3], cs*d[4], cs*d[5]

				x000 := x[i3-1][i2-1][i1-1]
				x001 := x[i3-1][i2-1][i1]
				x010 := x[i3-1][i2][i1-1]
				x011 := x[i3-1][i2][i1]
				x100 := x[i3][i2-1][i1-1]
				x101 := x[i3][i2-1][i1]
				x110 := x[i3][i2][i1-1]
				x111 := x[i3][i2][i1]

				g1 := 0.25 * (x001 - x000 + x011 - x010 + x101 - x100 + x111 - x110)
				g2 := 0.25 * (x010 - x000 + x011 - x001 + x110 - x100 + x111 - x101)
				g3 := 0.25 * (x100 - x000 + x101 - x001 + x110 - x010 + x111 - x011)

				f1 := e11*g1 + e12*g2 + e13*g3
				f2 := e12*g1 + e22*g2 + e23*g3
				f3 := e13*g1 + e23*g2 + e33*g3

				// Adjoint scatter: sign of fk per corner follows the sign
				// of that corner's contribution to gk.
				y[i3][i2][i1] += 0.25 * (f1 + f2 + f3)
				y[i3][i2][i1-1] += 0.25 * (-f1 + f2 + f3)
				y[i3][i2-1][i1] += 0.25 * (f1 - f2 + f3)
				y[i3][i2-1][i1-1] += 0.25 * (-f1 - f2 + f3)
				y[i3-1][i2][i1] += 0.25 * (f1 + f2 - f3)
				y[i3-1][i2][i1-1] += 0.25 * (-f1 + f2 - f3)
				y[i3-1][i2-1][i1] += 0.25 * (f1 - f2 - f3)
				y[i3-1][i2-1][i1-1] += 0.25 * (-f1 - f2 - f3)
			}
		}
	}
}

// apply3Central is the default 7-point variant: central differences per
// axis at interior samples, adjoint scatter to the six axis neighbors.
func apply3Central(t tensors.Tensors3, c float32, s, x, y [][][]float32) {
	n3, n2, n1 := len(x), len(x[0]), len(x[0][0])
	d := make([]float32, 6)
	for i3 := 1; i3 < n3-1; i3++ {
		for i2 := 1; i2 < n2-1; i2++ {
			for i1 := 1; i1 < n1-1; i1++ {
				t.GetTensor(i3, i2, i1, d)
				cs := c
				if s != nil {
					cs *= s[i3][i2][i1]
				}
				e11, e12, e13 := cs*d[0], cs*d[1], cs*d[2]
				e22, e23, e33 := cs*d[3], cs*d[4], cs*d[5]

				g1 := 0.5 * (x[i3][i2][i1+1] - x[i3][i2][i1-1])
				g2 := 0.5 * (x[i3][i2+1][i1] - x[i3][i2-1][i1])
				g3 := 0.5 * (x[i3+1][i2][i1] - x[i3-1][i2][i1])

				f1 := e11*g1 + e12*g2 + e13*g3
				f2 := e12*g1 + e22*g2 + e23*g3
				f3 := e13*g1 + e23*g2 + e33*g3

				y[i3][i2][i1+1] += 0.5 * f1
				y[i3][i2][i1-1] -= 0.5 * f1
				y[i3][i2+1][i1] += 0.5 * f2
				y[i3][i2-1][i1] -= 0.5 * f2
				y[i3+1][i2][i1] += 0.5 * f3
				y[i3-1][i2][i1] -= 0.5 * f3
			}
		}
	}
}
