package smoothing

import (
	"github.com/katalvlaran/lvlsmooth/field"
	"github.com/katalvlaran/lvlsmooth/reduce"
)

// solve2 runs unpreconditioned CG on a·y = b, refining y in place from
// its initial estimate. Stops when the squared residual drops below
// small²·(b·b) or after maxIter iterations, whichever comes first.
func (sm *Smoother) solve2(a operator2, b, y [][]float32) {
	n2, n1 := len(b), len(b[0])
	d := field.New2D(n2, n1)
	q := field.New2D(n2, n1)
	r := field.New2D(n2, n1)

	// r = b - Ay; d = r.
	reduce.Copy2(b, r)
	a.apply(y, q)
	reduce.Axpy2(-1, q, r)
	reduce.Copy2(r, d)

	delta := float64(reduce.Dot2(r, r))
	deltaBegin := delta
	deltaSmall := float64(reduce.Dot2(b, b)) * float64(sm.small) * float64(sm.small)
	sm.logFine("solve2 begin", "delta", delta, "deltaSmall", deltaSmall)

	iter := 0
	for ; iter < sm.maxIter && delta > deltaSmall; iter++ {
		sm.observe(iter, delta, deltaBegin)
		a.apply(d, q)
		alpha := float32(delta / float64(reduce.Dot2(d, q)))
		reduce.Axpy2(alpha, d, y)
		reduce.Axpy2(-alpha, q, r)
		deltaOld := delta
		delta = float64(reduce.Dot2(r, r))
		reduce.Xpay2(float32(delta/deltaOld), r, d)
	}
	sm.observe(iter, delta, deltaBegin)
	sm.logFine("solve2 done", "iterations", iter, "delta", delta)
}

// solve3 is the rank-3 twin of solve2, with reductions dispatched by the
// smoother's execution mode.
func (sm *Smoother) solve3(a operator3, b, y [][][]float32) {
	n3, n2, n1 := len(b), len(b[0]), len(b[0][0])
	d := field.New3D(n3, n2, n1)
	q := field.New3D(n3, n2, n1)
	r := field.New3D(n3, n2, n1)
	mode := sm.mode

	reduce.Copy3(mode, b, r)
	a.apply(y, q)
	reduce.Axpy3(mode, -1, q, r)
	reduce.Copy3(mode, r, d)

	delta := float64(reduce.Dot3(mode, r, r))
	deltaBegin := delta
	deltaSmall := float64(reduce.Dot3(mode, b, b)) * float64(sm.small) * float64(sm.small)
	sm.logFine("solve3 begin", "delta", delta, "deltaSmall", deltaSmall)

	iter := 0
	for ; iter < sm.maxIter && delta > deltaSmall; iter++ {
		sm.observe(iter, delta, deltaBegin)
		a.apply(d, q)
		alpha := float32(delta / float64(reduce.Dot3(mode, d, q)))
		reduce.Axpy3(mode, alpha, d, y)
		reduce.Axpy3(mode, -alpha, q, r)
		deltaOld := delta
		delta = float64(reduce.Dot3(mode, r, r))
		reduce.Xpay3(mode, float32(delta/deltaOld), r, d)
	}
	sm.observe(iter, delta, deltaBegin)
	sm.logFine("solve3 done", "iterations", iter, "delta", delta)
}

// observe reports one iteration to the hook and the finer log level.
func (sm *Smoother) observe(iter int, delta, deltaBegin float64) {
	ratio := 0.0
	if deltaBegin > 0 {
		ratio = delta / deltaBegin
	}
	if sm.onIter != nil {
		sm.onIter(iter, delta, ratio)
	}
	sm.logFiner("iteration", "iter", iter, "delta", delta, "ratio", ratio)
}
