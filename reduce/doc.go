// Package reduce provides the array reduction primitives the smoothing
// solvers are built from: zero, copy, dot product, axpy (y += a·x), and
// xpay (y = x + a·y) over rank-2 and rank-3 float32 grids.
//
// Execution model:
//
//   - Rank-2 primitives are always serial; a 2D grid is one unit of work.
//   - Rank-3 primitives take an explicit ExecMode. Serial processes planes
//     in fixed i3→i2→i1 order. Parallel fans work out across a fresh group
//     of GOMAXPROCS workers: each worker claims the next unclaimed outer
//     index i3 from a shared atomic cursor (work stealing, not static
//     partitioning) and processes that 2D slice alone. Every primitive
//     joins all workers before returning; no pool persists across calls.
//
// The execution mode is an explicit parameter, never a process-wide flag,
// so callers (and tests) choose determinism per invocation.
//
// Ordering and reproducibility:
//
//	Within one parallel invocation every outer index is processed exactly
//	once, but the claim order is unspecified. Dot accumulates a per-worker
//	partial sum and merges it into a shared atomic float32 accumulator
//	exactly once per worker, so parallel dot results may differ from serial
//	ones by floating-point reassociation — numerically equivalent, never
//	bitwise. Tests that need exact reproducibility must pass Serial.
//
// Shared-resource policy:
//
//	Workers write only their own claimed slices; the sole shared mutable
//	state is the cursor and the dot accumulator. There is no cancellation:
//	a primitive runs to completion once started.
//
// All shapes are caller-validated (see package field); primitives assume
// rectangular, shape-matched grids.
package reduce
