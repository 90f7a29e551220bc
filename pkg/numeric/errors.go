package numeric

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is returned for inputs outside an operation's domain:
	// non-positive counts, empty grids, degenerate densities.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNumericalInstability is returned when a user supplied function
	// produces NaN or Inf.
	ErrNumericalInstability = errors.New("numerical instability")
)

// CheckFinite reports an ErrNumericalInstability if v, the value of name at x,
// is NaN or infinite.
func CheckFinite(name string, x, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s(%g) = %g: %w", name, x, v, ErrNumericalInstability)
	}
	return nil
}

// IsFinite is true for values that are neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
