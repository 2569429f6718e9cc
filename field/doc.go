// Package field provides the grid data model shared by every lvlsmooth
// component: dense, rectangular float32 arrays of rank 1, 2, or 3.
//
// Overview:
//
//   - A rank-1 grid is a []float32 of length n1.
//   - A rank-2 grid is a [][]float32 indexed [i2][i1], n1 innermost.
//   - A rank-3 grid is a [][][]float32 indexed [i3][i2][i1].
//   - Grids are plain slices, not wrapper types: callers keep full
//     ownership and the solver packages never retain references beyond a
//     single call.
//
// Validation:
//
//	Public entry points across lvlsmooth validate grid shapes before any
//	arithmetic and fail fast with sentinel errors. This package hosts the
//	validators and the sentinels:
//
//   - ErrEmptyGrid      — a grid has no samples along some dimension.
//   - ErrNotRectangular — inner slices of one grid differ in length.
//   - ErrShapeMismatch  — two grids of one call disagree in shape.
//
// Helpers:
//
//	New2D/New3D allocate contiguous-row grids. Zero/Copy/Fill helpers are
//	plain serial loops for non-hot paths; the reduce package owns the
//	parallel variants used inside solvers.
//
// Complexity: all validators and helpers are O(number of samples) or
// cheaper; none allocate except New2D/New3D.
package field
