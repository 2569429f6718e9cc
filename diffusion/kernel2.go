package diffusion

import (
	"github.com/katalvlaran/lvlsmooth/field"
	"github.com/katalvlaran/lvlsmooth/tensors"
)

// Apply2 accumulates y += c·(GᵗDG)x over a 2D grid.
// The scale grid s may be nil (unit scale). x and y must be distinct,
// identically shaped rectangular grids; violations panic.
// Complexity: O(n2·n1) with one tensor query per stencil application.
func (k *Kernel) Apply2(t tensors.Tensors2, c float32, s, x, y [][]float32) {
	check2(t, s, x, y)
	switch k.stencil {
	case StencilTwoPoint:
		apply2TwoPoint(t, c, s, x, y)
	case StencilCellCentered:
		apply2CellCentered(t, c, s, x, y)
	case StencilCentralDifference:
		apply2Central(t, c, s, x, y)
	}
}

// check2 enforces the Apply2 preconditions.
func check2(t tensors.Tensors2, s, x, y [][]float32) {
	if t == nil {
		panic(panicNilTensors)
	}
	if field.Check2(x) != nil || field.Check2(y) != nil {
		panic(panicBadGrid)
	}
	if field.SameShape2(x, y) != nil || s != nil && field.SameShape2(x, s) != nil {
		panic(panicShape)
	}
	if &x[0][0] == &y[0][0] {
		panic(panicAliased)
	}
}

// apply2TwoPoint handles edges between axis neighbors, averaging the
// diagonal tensor entries (and scales) of the two samples of each edge.
// With a diagonal tensor field this reproduces, row by row and column by
// column, the tridiagonal operator of the direct 1D solver.
func apply2TwoPoint(t tensors.Tensors2, c float32, s, x, y [][]float32) {
	n2, n1 := len(x), len(x[0])
	da := make([]float32, 3)
	db := make([]float32, 3)

	// Axis 1: edges (i2, i1-1)—(i2, i1), weight d11.
	for i2 := 0; i2 < n2; i2++ {
		for i1 := 1; i1 < n1; i1++ {
			t.GetTensor(i2, i1, da)
			t.GetTensor(i2, i1-1, db)
			wa, wb := da[0], db[0]
			if s != nil {
				wa *= s[i2][i1]
				wb *= s[i2][i1-1]
			}
			f := 0.5 * c * (wa + wb) * (x[i2][i1] - x[i2][i1-1])
			y[i2][i1] += f
			y[i2][i1-1] -= f
		}
	}

	// Axis 2: edges (i2-1, i1)—(i2, i1), weight d22.
	for i2 := 1; i2 < n2; i2++ {
		for i1 := 0; i1 < n1; i1++ {
			t.GetTensor(i2, i1, da)
			t.GetTensor(i2-1, i1, db)
			wa, wb := da[2], db[2]
			if s != nil {
				wa *= s[i2][i1]
				wb *= s[i2-1][i1]
			}
			f := 0.5 * c * (wa + wb) * (x[i2][i1] - x[i2-1][i1])
			y[i2][i1] += f
			y[i2-1][i1] -= f
		}
	}
}

// apply2CellCentered accumulates GᵗDG cell by cell: the 2×2 corner
// gradient (g1, g2), the tensor flux (f1, f2), and the adjoint scatter
// back onto the four corners. Tensor and scale sampled at (i2, i1).
func apply2CellCentered(t tensors.Tensors2, c float32, s, x, y [][]float32) {
	n2, n1 := len(x), len(x[0])
	d := make([]float32, 3)
	for i2 := 1; i2 < n2; i2++ {
		for i1 := 1; i1 < n1; i1++ {
			t.GetTensor(i2, i1, d)
			cs := c
			if s != nil {
				cs *= s[i2][i1]
			}
			e11, e12, e22 := cs*d[0], cs*d[1], cs*d[2]
			x00 := x[i2-1][i1-1]
			x01 := x[i2-1][i1]
			x10 := x[i2][i1-1]
			x11 := x[i2][i1]
			g1 := 0.5 * (x01 + x11 - x00 - x10)
			g2 := 0.5 * (x10 + x11 - x00 - x01)
			f1 := e11*g1 + e12*g2
			f2 := e12*g1 + e22*g2
			fa := 0.5 * (f1 + f2)
			fb := 0.5 * (f1 - f2)
			y[i2][i1] += fa
			y[i2-1][i1-1] -= fa
			y[i2-1][i1] += fb
			y[i2][i1-1] -= fb
		}
	}
}

// apply2Central is the 5-point variant: central differences per axis at
// interior samples, adjoint scatter to the four axis neighbors. Boundary
// samples receive no flux.
func apply2Central(t tensors.Tensors2, c float32, s, x, y [][]float32) {
	n2, n1 := len(x), len(x[0])
	d := make([]float32, 3)
	for i2 := 1; i2 < n2-1; i2++ {
		for i1 := 1; i1 < n1-1; i1++ {
			t.GetTensor(i2, i1, d)
			cs := c
			if s != nil {
				cs *= s[i2][i1]
			}
			e11, e12, e22 := cs*d[0], cs*d[1], cs*d[2]
			g1 := 0.5 * (x[i2][i1+1] - x[i2][i1-1])
			g2 := 0.5 * (x[i2+1][i1] - x[i2-1][i1])
			f1 := e11*g1 + e12*g2
			f2 := e12*g1 + e22*g2
			y[i2][i1+1] += 0.5 * f1
			y[i2][i1-1] -= 0.5 * f1
			y[i2+1][i1] += 0.5 * f2
			y[i2-1][i1] -= 0.5 * f2
		}
	}
}
