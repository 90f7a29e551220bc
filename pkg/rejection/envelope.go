// Package rejection draws samples from an unnormalized target density by
// accept/reject against a scaled proposal density that can be sampled
// directly.
package rejection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/hamblin-ku/PHSX815-Week5/pkg/numeric"
)

// SafetyMargin multiplies the ratio of the density maxima so the scaled
// proposal stays above the target away from the maxima too.
const SafetyMargin = 1.2

// Density is a non-negative function on the real line, not necessarily
// normalized.
type Density func(x float64) float64

func evalGrid(name string, d Density, grid []float64) ([]float64, error) {
	ys := make([]float64, len(grid))
	for i, x := range grid {
		ys[i] = d(x)
		if err := numeric.CheckFinite(name, x, ys[i]); err != nil {
			return nil, err
		}
	}
	return ys, nil
}

// EnvelopeScale returns the constant C such that C·proposal covers target on
// grid: SafetyMargin·max(target)/max(proposal), clamped below at 1.
//
// Domination is only checked at the grid points; see CheckEnvelope.
func EnvelopeScale(target, proposal Density, grid []float64) (float64, error) {
	if len(grid) == 0 {
		return 0, fmt.Errorf("envelope scale: empty grid: %w", numeric.ErrInvalidArgument)
	}
	ts, err := evalGrid("target", target, grid)
	if err != nil {
		return 0, fmt.Errorf("envelope scale: %w", err)
	}
	ps, err := evalGrid("proposal", proposal, grid)
	if err != nil {
		return 0, fmt.Errorf("envelope scale: %w", err)
	}

	pmax := floats.Max(ps)
	if pmax <= 0 {
		return 0, fmt.Errorf("envelope scale: proposal maximum is %g on [%g, %g]: %w",
			pmax, grid[0], grid[len(grid)-1], numeric.ErrInvalidArgument)
	}

	c := SafetyMargin * floats.Max(ts) / pmax
	if c < 1 {
		c = 1
	}
	return c, nil
}

// EnvelopeCheck is the largest ratio target/(C·proposal) found and where.
type EnvelopeCheck struct {
	X         float64
	Ratio     float64
	Dominated bool
}

// CheckEnvelope searches for the point where target/(scale·proposal) is
// largest: first over grid, then by a Nelder-Mead refinement from the best
// grid point that stays inside the grid range. Dominated is false if any
// ratio above 1 was found.
func CheckEnvelope(target, proposal Density, scale float64, grid []float64) (EnvelopeCheck, error) {
	if len(grid) == 0 {
		return EnvelopeCheck{}, fmt.Errorf("envelope check: empty grid: %w", numeric.ErrInvalidArgument)
	}
	if !numeric.IsFinite(scale) || scale <= 0 {
		return EnvelopeCheck{}, fmt.Errorf("envelope check: scale %g: %w", scale, numeric.ErrInvalidArgument)
	}

	ratio := func(x float64) float64 {
		t, p := target(x), scale*proposal(x)
		if p <= 0 {
			if t > 0 {
				return math.Inf(1)
			}
			return 0
		}
		return t / p
	}

	best := EnvelopeCheck{X: grid[0], Ratio: math.Inf(-1)}
	for _, x := range grid {
		r := ratio(x)
		if math.IsNaN(r) {
			return EnvelopeCheck{}, fmt.Errorf("envelope check: ratio at %g: %w", x, numeric.ErrNumericalInstability)
		}
		if r > best.Ratio {
			best.X, best.Ratio = x, r
		}
	}

	if !math.IsInf(best.Ratio, 1) && len(grid) > 1 {
		lo, hi := floats.Min(grid), floats.Max(grid)
		step := (hi - lo) / float64(len(grid)-1)
		problem := optimize.Problem{
			Func: func(x []float64) float64 {
				if x[0] < lo || x[0] > hi {
					return 0
				}
				return -ratio(x[0])
			},
		}
		settings := &optimize.Settings{
			MajorIterations: 200,
			FuncEvaluations: 1000,
		}
		res, err := optimize.Minimize(problem, []float64{best.X}, settings, &optimize.NelderMead{SimplexSize: step})
		if err == nil && res != nil && -res.F > best.Ratio {
			best.X, best.Ratio = res.X[0], -res.F
		}
	}

	best.Dominated = best.Ratio <= 1
	return best, nil
}
