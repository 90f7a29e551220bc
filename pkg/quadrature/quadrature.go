// Package quadrature estimates definite integrals of scalar functions with
// the composite trapezoidal rule and Gauss–Legendre quadrature.
//
// Both methods take the same inputs, a function, two bounds in either order
// and a resolution parameter, so their results can be compared directly.
// Reversed bounds are normalized: the result is always the integral over
// the ordered interval.
package quadrature

import (
	"fmt"

	"github.com/hamblin-ku/PHSX815-Week5/pkg/numeric"
)

// Func is a scalar integrand.
type Func func(x float64) float64

// EvalAt evaluates f at every point of xs.
func EvalAt(f Func, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

// orderBounds validates the interval and returns it with a <= b.
func orderBounds(a, b float64) (float64, float64, error) {
	if !numeric.IsFinite(a) || !numeric.IsFinite(b) {
		return 0, 0, fmt.Errorf("interval [%g, %g]: %w", a, b, numeric.ErrInvalidArgument)
	}
	if b < a {
		a, b = b, a
	}
	return a, b, nil
}
