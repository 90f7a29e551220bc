package quadrature

import (
	"fmt"

	"github.com/hamblin-ku/PHSX815-Week5/pkg/numeric"
)

// DefaultSubintervals is the subdivision count used by the drivers when none
// is given.
const DefaultSubintervals = 100

// Trapezoid integrates f over [a, b] with the composite trapezoidal rule on n
// equal sub-intervals.
func Trapezoid(f Func, a, b float64, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("trapezoid: %d sub-intervals: %w", n, numeric.ErrInvalidArgument)
	}
	a, b, err := orderBounds(a, b)
	if err != nil {
		return 0, fmt.Errorf("trapezoid: %w", err)
	}

	dx := (b - a) / float64(n)

	fa, fb := f(a), f(b)
	if err := numeric.CheckFinite("f", a, fa); err != nil {
		return 0, err
	}
	if err := numeric.CheckFinite("f", b, fb); err != nil {
		return 0, err
	}
	total := 0.5*fa + 0.5*fb
	for i := 1; i < n; i++ {
		x := a + float64(i)*dx
		y := f(x)
		if err := numeric.CheckFinite("f", x, y); err != nil {
			return 0, err
		}
		total += y
	}
	return dx * total, nil
}
