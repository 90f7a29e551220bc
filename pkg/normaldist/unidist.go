package normaldist

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hamblin-ku/PHSX815-Week5/pkg/numeric"
)

// UniDistParams is the uniform distribution on [Low, High).
type UniDistParams struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`

	dist distuv.Uniform
}

func NewUniDistParams(low, high float64, src rand.Source) *UniDistParams {
	return &UniDistParams{
		Low:  low,
		High: high,
		dist: distuv.Uniform{
			Min: low,
			Max: high,
			Src: src,
		},
	}
}

// NewUnit is the uniform distribution on [0, 1).
func NewUnit(src rand.Source) *UniDistParams {
	return NewUniDistParams(0, 1, src)
}

func (p *UniDistParams) Validate() error {
	if !numeric.IsFinite(p.Low) || !numeric.IsFinite(p.High) || p.Low >= p.High {
		return fmt.Errorf("uniform bounds [%g, %g): %w", p.Low, p.High, numeric.ErrInvalidArgument)
	}
	return nil
}

func (p *UniDistParams) Rand() float64 {
	return p.dist.Rand()
}

func (p *UniDistParams) GenerateVector(v []float64) {
	for i := range v {
		v[i] = p.Rand()
	}
}

func (p *UniDistParams) RandN(n int) []float64 {
	r := make([]float64, n)
	p.GenerateVector(r)
	return r
}
