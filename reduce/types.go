package reduce

// ExecMode selects how rank-3 primitives schedule their work.
type ExecMode int

const (
	// Serial processes outer slices in fixed order on the calling goroutine.
	Serial ExecMode = iota
	// Parallel fans outer slices across GOMAXPROCS workers via a shared
	// atomic work-stealing cursor.
	Parallel
)

// String implements fmt.Stringer for diagnostics.
func (m ExecMode) String() string {
	switch m {
	case Serial:
		return "serial"
	case Parallel:
		return "parallel"
	default:
		return "unknown"
	}
}
