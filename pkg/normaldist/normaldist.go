// Package normaldist holds the normal and uniform distributions used by the
// sampling demonstrations: closed form densities, mixtures of normals and
// generators that draw from an explicit source.
package normaldist

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hamblin-ku/PHSX815-Week5/pkg/numeric"
)

// Distrib is a generator of random values.
type Distrib interface {
	Rand() float64
	RandN(n int) []float64
}

// PDF is the density of N(mean, sd²) at x.
func PDF(x, mean, sd float64) float64 {
	z := (x - mean) / sd
	return 1 / math.Sqrt(2*math.Pi*sd*sd) * math.Exp(-0.5*z*z)
}

// NewSource returns a PCG source. A zero seed seeds from the clock.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// NormalDistParams represents a normal distribution together with the source
// it draws from.
type NormalDistParams struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`

	dist distuv.Normal
}

// NewNormalDistParams creates a normal distribution drawing from src.
// A nil src falls back to the global generator.
func NewNormalDistParams(mean, stdDev float64, src rand.Source) *NormalDistParams {
	return &NormalDistParams{
		Mean:   mean,
		StdDev: stdDev,
		dist: distuv.Normal{
			Mu:    mean,
			Sigma: stdDev,
			Src:   src,
		},
	}
}

// Validate checks if the parameters are valid.
func (p *NormalDistParams) Validate() error {
	if !numeric.IsFinite(p.Mean) {
		return fmt.Errorf("mean must be finite: %w", numeric.ErrInvalidArgument)
	}
	if !(p.StdDev > 0) || math.IsInf(p.StdDev, 1) {
		return fmt.Errorf("std_dev must be positive and finite: %w", numeric.ErrInvalidArgument)
	}
	return nil
}

// Prob is the density at x.
func (p *NormalDistParams) Prob(x float64) float64 {
	return PDF(x, p.Mean, p.StdDev)
}

func (p *NormalDistParams) Rand() float64 {
	return p.dist.Rand()
}

func (p *NormalDistParams) GenerateVector(v []float64) {
	for i := range v {
		v[i] = p.Rand()
	}
}

func (p *NormalDistParams) RandN(n int) []float64 {
	r := make([]float64, n)
	p.GenerateVector(r)
	return r
}
