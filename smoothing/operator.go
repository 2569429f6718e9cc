package smoothing

import (
	"github.com/katalvlaran/lvlsmooth/diffusion"
	"github.com/katalvlaran/lvlsmooth/reduce"
	"github.com/katalvlaran/lvlsmooth/tensors"
)

// operator2 is the matrix-free linear operator the CG solver iterates
// against: apply computes y = Ax without ever forming A.
type operator2 interface {
	apply(x, y [][]float32)
}

type operator3 interface {
	apply(x, y [][][]float32)
}

// lhsOperator2 realizes A = I + c·GᵗDG: the identity contributes a copy,
// the diffusion kernel accumulates the scaled second term on top.
type lhsOperator2 struct {
	kernel *diffusion.Kernel
	d      tensors.Tensors2
	c      float32
	s      [][]float32
}

func (a *lhsOperator2) apply(x, y [][]float32) {
	reduce.Copy2(x, y)
	a.kernel.Apply2(a.d, a.c, a.s, x, y)
}

type lhsOperator3 struct {
	kernel *diffusion.Kernel
	d      tensors.Tensors3
	c      float32
	s      [][][]float32
	mode   reduce.ExecMode
}

func (a *lhsOperator3) apply(x, y [][][]float32) {
	reduce.Copy3(a.mode, x, y)
	a.kernel.Apply3(a.d, a.c, a.s, x, y)
}
