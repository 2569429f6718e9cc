// Package diffusion implements the finite-difference stencil kernel at the
// heart of lvlsmooth: given a tensor field D, a gain c, and an optional
// per-sample scale field s, it accumulates
//
//	y += c·(Gᵗ·s·D·G)x
//
// in place, where G is a discrete gradient operator. Composed with an
// identity copy (y = x before the accumulation), this realizes one
// application of the SPD operator (I + c·GᵗDG) that the smoothing solvers
// invert.
//
// Stencil variants:
//
//   - StencilTwoPoint — two-point (half-sample) differences along each
//     axis, with the tensor averaged between the two samples of each edge.
//     Exact adjoint pairing per axis, which makes a diagonal tensor field
//     decouple into independent 1D tridiagonal systems. Cross terms
//     (d12, d13, d23) are ignored by this variant; use it for separable
//     smoothing or validation against the direct 1D solver.
//   - StencilCellCentered — 2×2 (2D) or 2×2×2 (3D) cell-centered
//     gradients: each grid cell contributes GᵗDG over its corners. The
//     tightest coupling of the cross terms; tensor and scale are sampled
//     at the cell's upper corner.
//   - StencilCentralDifference — central differences per axis, touching 5
//     samples in 2D and 7 in 3D. The default stencil of the smoothing
//     facade. Boundary samples receive no flux (zero-gradient boundary).
//
// Every variant computes y += Gᵗ(w·D(Gx)) with non-negative weights w, so
// the accumulated operator is symmetric positive semi-definite whenever
// the tensor field is; with the identity term added the composed operator
// is SPD. The kernel holds no state between calls and is safe for
// concurrent use on disjoint grids.
//
// Preconditions (panic on violation — programmer error, not runtime data):
//
//   - x and y rectangular, identically shaped, and not aliased;
//   - s, when non-nil, shaped like x;
//   - tensor field non-nil.
package diffusion
