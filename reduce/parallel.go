package reduce

import (
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// forEachOuter fans slice work across a fresh group of workers and joins
// them before returning. Each worker claims the next unclaimed outer index
// from the shared cursor until the range is exhausted.
func forEachOuter(n3 int, work func(i3 int)) {
	var cursor atomic.Int64
	var g errgroup.Group
	for w := workerCount(n3); w > 0; w-- {
		g.Go(func() error {
			for i3 := int(cursor.Add(1)) - 1; i3 < n3; i3 = int(cursor.Add(1)) - 1 {
				work(i3)
			}

			return nil
		})
	}
	// Workers cannot fail; Wait is the barrier join.
	_ = g.Wait()
}

// dotOuter is forEachOuter specialized for reductions: each worker keeps a
// local partial sum and merges it into the shared accumulator exactly once,
// minimizing contention on the atomic.
func dotOuter(n3 int, slice func(i3 int) float32) float32 {
	var cursor atomic.Int64
	var total atomicFloat32
	var g errgroup.Group
	for w := workerCount(n3); w > 0; w-- {
		g.Go(func() error {
			var partial float32
			for i3 := int(cursor.Add(1)) - 1; i3 < n3; i3 = int(cursor.Add(1)) - 1 {
				partial += slice(i3)
			}
			total.add(partial)

			return nil
		})
	}
	_ = g.Wait()

	return total.load()
}

// workerCount sizes the fan-out from available hardware parallelism,
// never exceeding the number of outer slices.
func workerCount(n3 int) int {
	w := runtime.GOMAXPROCS(0)
	if w > n3 {
		w = n3
	}
	if w < 1 {
		w = 1
	}

	return w
}

// atomicFloat32 is a float32 accumulator updated by compare-and-swap on
// the value's bit pattern.
type atomicFloat32 struct {
	bits atomic.Uint32
}

// add atomically adds v to the accumulator.
func (a *atomicFloat32) add(v float32) {
	for {
		old := a.bits.Load()
		upd := math.Float32bits(math.Float32frombits(old) + v)
		if a.bits.CompareAndSwap(old, upd) {
			return
		}
	}
}

// load returns the current accumulator value.
func (a *atomicFloat32) load() float32 {
	return math.Float32frombits(a.bits.Load())
}
