package field

import "errors"

// Sentinel errors for grid validation.
var (
	// ErrEmptyGrid indicates a grid with no samples along some dimension.
	ErrEmptyGrid = errors.New("field: grid must have at least one sample per dimension")
	// ErrNotRectangular indicates inner slices of differing lengths.
	ErrNotRectangular = errors.New("field: all inner slices must have the same length")
	// ErrShapeMismatch indicates two grids of one call disagree in shape.
	ErrShapeMismatch = errors.New("field: grid shapes must agree")
)

// Check1 validates a rank-1 grid: it must be non-empty.
func Check1(x []float32) error {
	if len(x) == 0 {
		return ErrEmptyGrid
	}

	return nil
}

// Check2 validates a rank-2 grid: non-empty and rectangular.
func Check2(x [][]float32) error {
	if len(x) == 0 || len(x[0]) == 0 {
		return ErrEmptyGrid
	}
	n1 := len(x[0])
	for i2 := 1; i2 < len(x); i2++ {
		if len(x[i2]) != n1 {
			return ErrNotRectangular
		}
	}

	return nil
}

// Check3 validates a rank-3 grid: non-empty and rectangular in every plane.
func Check3(x [][][]float32) error {
	if len(x) == 0 {
		return ErrEmptyGrid
	}
	if err := Check2(x[0]); err != nil {
		return err
	}
	n2, n1 := len(x[0]), len(x[0][0])
	for i3 := 1; i3 < len(x); i3++ {
		if err := Check2(x[i3]); err != nil {
			return err
		}
		if len(x[i3]) != n2 || len(x[i3][0]) != n1 {
			return ErrShapeMismatch
		}
	}

	return nil
}

// SameShape1 reports whether two rank-1 grids have equal length.
func SameShape1(x, y []float32) error {
	if len(x) != len(y) {
		return ErrShapeMismatch
	}

	return nil
}

// SameShape2 reports whether two rank-2 grids have identical shape.
// Both grids are assumed rectangular (see Check2).
func SameShape2(x, y [][]float32) error {
	if len(x) != len(y) || len(x) > 0 && len(x[0]) != len(y[0]) {
		return ErrShapeMismatch
	}

	return nil
}

// SameShape3 reports whether two rank-3 grids have identical shape.
// Both grids are assumed rectangular (see Check3).
func SameShape3(x, y [][][]float32) error {
	if len(x) != len(y) {
		return ErrShapeMismatch
	}
	if len(x) > 0 {
		return SameShape2(x[0], y[0])
	}

	return nil
}
