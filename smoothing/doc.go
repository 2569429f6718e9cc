// Package smoothing is the entry point of lvlsmooth: local anisotropic
// smoothing of 1D, 2D, and 3D float32 grids with tensor filter
// coefficients.
//
// Overview:
//
//   - Smoothing solves the sparse symmetric positive-definite (SPD) system
//     (I + c·GᵗDG)y = x, where G is a gradient operator, D an SPD tensor
//     field, x the input grid, and y the output grid.
//   - In 1D the system is tridiagonal and solved exactly in one forward
//     elimination / back substitution pass (Thomas algorithm) — no
//     iteration, no tensors (all tensors are implicitly scalar ones).
//   - In 2D/3D the system is solved matrix-free by unpreconditioned
//     conjugate-gradient (CG) iterations, starting from y = x, each
//     iteration applying the diffusion stencil kernel once and a handful
//     of reduce primitives. Iterations stop when the residual norm drops
//     below Small times the input norm, or after MaxIter iterations —
//     whichever comes first. Hitting the cap is not an error: the best
//     current estimate is returned and only diagnostics are emitted,
//     which suits a diffusive operator whose late iterations refine the
//     result marginally.
//
// Auxiliary smoothers (independent of the solver):
//
//   - SmoothS2/SmoothS3 — the weighted-average filter S applied as S'S:
//     a 3×3 (3×3×3) non-negative stencil that zeros Nyquist wavenumbers
//     exactly. Fast, but it attenuates all non-zero wavenumbers and is
//     not isotropic — a documented trade-off, not a defect. Input and
//     output may be the same grid (double-buffered rolling window).
//   - SmoothL2/SmoothL3 — the isotropic low-pass filter L passing
//     wavenumbers up to kmax; delegated to a band-pass filter that is
//     cached and rebuilt only when kmax changes, since construction is
//     comparatively expensive. Input and output may be the same grid.
//
// These compensate for the finite-difference gradient G, which is a poor
// approximation near the Nyquist limit; apply them before or after the
// implicit solve to attenuate those wavenumbers.
//
// Configuration (Options):
//
//   - Small   — relative residual stopping threshold, default 0.01.
//   - MaxIter — iteration cap, default 100.
//   - Stencil — diffusion stencil variant, default the 7-point
//     central-difference stencil; injectable for testing.
//   - Mode    — reduce.Serial or reduce.Parallel for the 3D reduction
//     primitives; explicit per-smoother, never a process-wide flag.
//   - OnIteration — optional hook observing (iter, delta, ratio) per CG
//     iteration; observational only.
//   - Logger  — optional *slog.Logger receiving solver progress at
//     LevelFine (solve summaries) and LevelFiner (per-iteration lines).
//
// Error handling (sentinel errors):
//
//   - ErrBadSmall / ErrBadMaxIter / ErrBadStencil — invalid Options.
//   - ErrNilTensors — nil tensor field passed to Apply2/Apply3.
//   - ErrAliasedGrids — solver input and output share storage (the
//     auxiliary smoothers allow aliasing; the solver does not).
//   - ErrBadKmax — low-pass cutoff outside [0, 0.5].
//   - field.ErrEmptyGrid / field.ErrNotRectangular /
//     field.ErrShapeMismatch — grid precondition violations, checked
//     fail-fast before any arithmetic.
//
// Invariants assumed, not verified:
//
//	The tensor field must be SPD per sample. A non-SPD field may stall CG
//	or divide by a near-zero pivot in 1D; detecting this at runtime is out
//	of scope. Parallel mode trades bitwise reproducibility of dot products
//	for speed — see package reduce.
package smoothing
