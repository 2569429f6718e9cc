package diffusion

// Stencil selects the finite-difference approximation of the gradient
// operator G used by a Kernel.
type Stencil int

const (
	// StencilTwoPoint uses two-point half-sample differences per axis;
	// diagonal tensors only (cross terms ignored).
	StencilTwoPoint Stencil = iota
	// StencilCellCentered uses 2×2 (2D) / 2×2×2 (3D) cell-centered gradients.
	StencilCellCentered
	// StencilCentralDifference uses central differences: a 5-point stencil
	// in 2D and a 7-point stencil in 3D. This is the facade default.
	StencilCentralDifference
)

// Stable panic messages (programmer-error preconditions; no magic strings).
const (
	panicNilTensors = "diffusion: tensor field must be non-nil"
	panicBadGrid    = "diffusion: grids must be non-empty and rectangular"
	panicShape      = "diffusion: input, output, and scale grids must have identical shapes"
	panicAliased    = "diffusion: input and output grids must not alias"
	panicStencil    = "diffusion: unknown stencil variant"
)

// Kernel applies the stencil operator for one fixed Stencil variant.
// A Kernel is stateless beyond its variant and may be shared freely.
type Kernel struct {
	stencil Stencil
}

// NewKernel returns a Kernel for the given stencil variant.
func NewKernel(s Stencil) *Kernel {
	if s != StencilTwoPoint && s != StencilCellCentered && s != StencilCentralDifference {
		panic(panicStencil)
	}

	return &Kernel{stencil: s}
}

// Variant reports the stencil variant this kernel applies.
func (k *Kernel) Variant() Stencil { return k.stencil }
