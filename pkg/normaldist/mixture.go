package normaldist

import (
	"fmt"

	"github.com/hamblin-ku/PHSX815-Week5/pkg/numeric"
)

// Component is one weighted normal of a Mixture.
type Component struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Weight float64 `json:"weight"`
}

// Mixture is a weighted sum of normal densities. Weights are normalized by
// their total, so equal weights give the plain average of the components.
type Mixture []Component

// EqualMixture builds a mixture of N(means[i], sds[i]²) with equal weights.
func EqualMixture(means, sds []float64) (Mixture, error) {
	if len(means) == 0 || len(means) != len(sds) {
		return nil, fmt.Errorf("mixture: %d means and %d std devs: %w", len(means), len(sds), numeric.ErrInvalidArgument)
	}
	m := make(Mixture, len(means))
	for i := range means {
		m[i] = Component{Mean: means[i], StdDev: sds[i], Weight: 1}
	}
	return m, m.Validate()
}

func (m Mixture) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("mixture has no components: %w", numeric.ErrInvalidArgument)
	}
	total := 0.0
	for i, c := range m {
		if !(c.StdDev > 0) || !numeric.IsFinite(c.Mean) || !numeric.IsFinite(c.StdDev) {
			return fmt.Errorf("mixture component %d: N(%g, %g): %w", i, c.Mean, c.StdDev, numeric.ErrInvalidArgument)
		}
		if c.Weight < 0 || !numeric.IsFinite(c.Weight) {
			return fmt.Errorf("mixture component %d: weight %g: %w", i, c.Weight, numeric.ErrInvalidArgument)
		}
		total += c.Weight
	}
	if total <= 0 {
		return fmt.Errorf("mixture weights sum to %g: %w", total, numeric.ErrInvalidArgument)
	}
	return nil
}

// Prob is the mixture density at x.
func (m Mixture) Prob(x float64) float64 {
	var sum, total float64
	for _, c := range m {
		sum += c.Weight * PDF(x, c.Mean, c.StdDev)
		total += c.Weight
	}
	return sum / total
}
