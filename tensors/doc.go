// Package tensors defines the coefficient-field contracts that steer
// anisotropic smoothing: for each grid index, a symmetric positive
// semi-definite (SPD) tensor describing local smoothing direction and
// strength.
//
// Contracts:
//
//   - Tensors2 yields the 3 distinct elements {d11, d12, d22} of a 2×2
//     tensor per (i2, i1) sample.
//   - Tensors3 yields the 6 distinct elements {d11, d12, d13, d22, d23,
//     d33} of a 3×3 tensor per (i3, i2, i1) sample.
//
// The engine queries a tensor field read-only, once per stencil
// application per sample, and never retains or mutates it. Fields are
// caller-owned: back them by arrays, closures over structure tensors, or
// anything else that satisfies the interface.
//
// Invariant (not runtime-checked):
//
//	Every yielded tensor must be symmetric positive semi-definite. The
//	solvers assume the composed operator (I + c·GᵗDG) is SPD by
//	construction; a non-SPD field may silently stall the conjugate-gradient
//	iteration. Verifying SPD-ness per sample is deliberately out of scope.
//
// Ready-made fields:
//
//   - IdentityTensors2 / IdentityTensors3 — isotropic unit tensors.
//   - ConstantTensors2 / ConstantTensors3 — one tensor everywhere.
package tensors
