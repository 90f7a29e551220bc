package rejection

import (
	"fmt"

	"github.com/hamblin-ku/PHSX815-Week5/pkg/numeric"
)

// Generator draws one value per call. The proposal's native sampler and the
// uniform source on [0, 1) both satisfy it.
type Generator interface {
	Rand() float64
}

// Result of a sampling run. Samples are in acceptance order.
type Result struct {
	Samples    []float64
	Accepted   int
	Iterations int
	Scale      float64
}

// Efficiency is the percentage of proposal draws that were accepted.
func (r *Result) Efficiency() float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(r.Accepted) / float64(r.Iterations) * 100
}

// Sample runs exactly nIter accept/reject trials. Each trial draws x from
// draw and u from uniform, and keeps x when u·scale·proposal(x) <= target(x).
// The number of accepted samples is random and at most nIter.
func Sample(target, proposal Density, draw, uniform Generator, nIter int, scale float64) (*Result, error) {
	if nIter < 0 {
		return nil, fmt.Errorf("sample: %d iterations: %w", nIter, numeric.ErrInvalidArgument)
	}
	if !numeric.IsFinite(scale) || scale <= 0 {
		return nil, fmt.Errorf("sample: scale %g: %w", scale, numeric.ErrInvalidArgument)
	}

	res := &Result{
		Samples:    make([]float64, 0),
		Iterations: nIter,
		Scale:      scale,
	}
	for range nIter {
		x := draw.Rand()
		p := proposal(x)
		if err := numeric.CheckFinite("proposal", x, p); err != nil {
			return nil, fmt.Errorf("sample: %w", err)
		}
		y := uniform.Rand() * scale * p

		t := target(x)
		if err := numeric.CheckFinite("target", x, t); err != nil {
			return nil, fmt.Errorf("sample: %w", err)
		}
		if y <= t {
			res.Samples = append(res.Samples, x)
		}
	}
	res.Accepted = len(res.Samples)
	return res, nil
}
