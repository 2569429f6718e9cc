// Package lvlsmooth is an anisotropic local smoothing engine for sampled
// scalar fields — 1D, 2D, and 3D grids of float32 samples.
//
// 🚀 What is lvlsmooth?
//
//	A pure-Go library that smooths a field x by implicitly solving the
//	sparse symmetric positive-definite (SPD) system
//
//	    (I + c·GᵗDG) y = x
//
//	where G is a discrete gradient operator and D is a spatially varying
//	tensor field describing local smoothing direction and strength. For low
//	wavenumbers the output approximates the solution of an anisotropic
//	inhomogeneous diffusion equation with x as the initial condition.
//
// ✨ What's inside?
//
//   - smoothing/ — the facade: direct tridiagonal solve in 1D, matrix-free
//     conjugate-gradient solve in 2D/3D, plus the auxiliary S (weighted
//     average) and L (isotropic low-pass) smoothers.
//   - diffusion/ — the finite-difference stencil kernel computing
//     y += c·(GᵗDG)x, in three stencil variants.
//   - tensors/   — SPD coefficient-field contracts and ready-made
//     constant/identity implementations.
//   - reduce/    — array reduction primitives (zero, copy, dot, axpy,
//     xpay) with an explicit serial/parallel execution mode.
//   - bandpass/  — the frequency-domain band-pass filter behind the
//     low-pass smoother L.
//   - field/     — grid allocation and fail-fast shape validation.
//
// Quick sketch:
//
//	sm, _ := smoothing.New(smoothing.DefaultOptions())
//	y := field.New2D(n2, n1)
//	_ = sm.Apply2(tensors.IdentityTensors2{}, 4.0, nil, x, y)
//
// Dive into each package's doc.go for algorithms, complexity notes, and
// error contracts.
package lvlsmooth
