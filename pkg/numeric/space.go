package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced points over [lo, hi], both ends included.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("linspace: need at least 2 points, got %d: %w", n, ErrInvalidArgument)
	}
	if !IsFinite(lo) || !IsFinite(hi) {
		return nil, fmt.Errorf("linspace: bounds [%g, %g]: %w", lo, hi, ErrInvalidArgument)
	}
	xs := floats.Span(make([]float64, n), lo, hi)
	xs[n-1] = hi
	return xs, nil
}

// IntSpace is Linspace truncated toward zero. Neighbouring points may repeat
// when n exceeds the width of the range.
func IntSpace(lo, hi, n int) ([]int, error) {
	xs, err := Linspace(float64(lo), float64(hi), n)
	if err != nil {
		return nil, err
	}
	res := make([]int, n)
	for i, x := range xs {
		res[i] = int(x)
	}
	return res, nil
}
