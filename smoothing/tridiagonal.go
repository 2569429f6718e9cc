package smoothing

import "github.com/katalvlaran/lvlsmooth/field"

// Apply1 smooths a 1D signal: solves (I + c·GᵗDG)y = x exactly with one
// tridiagonal forward elimination and back substitution. The optional
// per-sample scale s (nil = unit) multiplies the gain c at each interior
// edge. x and y may be the same slice.
func (sm *Smoother) Apply1(c float32, s, x, y []float32) error {
	if err := field.Check1(x); err != nil {
		return err
	}
	if err := field.Check1(y); err != nil {
		return err
	}
	if err := field.SameShape1(x, y); err != nil {
		return err
	}
	if s != nil {
		if err := field.SameShape1(x, s); err != nil {
			return err
		}
	}
	n1 := len(x)

	// Sub-diagonal e of the symmetric tridiagonal system; e[0] and e[n1]
	// stay zero so boundary rows need no special casing.
	e := make([]float32, n1+1)
	if s != nil {
		c *= 0.5
		for i1 := 1; i1 < n1; i1++ {
			e[i1] = -c * (s[i1] + s[i1-1])
		}
	} else {
		for i1 := 1; i1 < n1; i1++ {
			e[i1] = -c
		}
	}

	// Forward elimination. w reuses e's storage: w[i1] is only written
	// after e[i1] was last read.
	w := e
	t := 1 - e[0] - e[1]
	y[0] = x[0] / t
	for i1 := 1; i1 < n1; i1++ {
		di := 1 - e[i1] - e[i1+1]
		ei := e[i1]
		w[i1] = ei / t
		t = di - ei*w[i1]
		y[i1] = (x[i1] - ei*y[i1-1]) / t
	}

	// Back substitution.
	for i1 := n1 - 1; i1 > 0; i1-- {
		y[i1-1] -= w[i1] * y[i1]
	}

	return nil
}
