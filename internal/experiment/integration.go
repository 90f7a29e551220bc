package experiment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/hamblin-ku/PHSX815-Week5/internal/config"
	"github.com/hamblin-ku/PHSX815-Week5/pkg/numeric"
	"github.com/hamblin-ku/PHSX815-Week5/pkg/quadrature"
)

// Subdivision counts swept by RunIntegration.
const (
	MinSubintervals = 2
	MaxSubintervals = 30
)

// Lorentzian is 1/(1+x²), whose antiderivative is arctan(x).
func Lorentzian(x float64) float64 {
	return 1 / (1 + x*x)
}

// SweepPoint holds both estimates at one resolution and their signed errors.
type SweepPoint struct {
	N            int
	Trapezoid    float64
	Gauss        float64
	ErrTrapezoid float64
	ErrGauss     float64
}

type Sweep struct {
	Exact  float64
	Points []SweepPoint
}

// IntegrationSweep integrates f over [a, b] with both methods at every
// resolution in ns. The same n is the sub-interval count for the trapezoid
// and the order for Gauss–Legendre.
func IntegrationSweep(f quadrature.Func, a, b, exact float64, ns []int) (*Sweep, error) {
	s := &Sweep{
		Exact:  exact,
		Points: make([]SweepPoint, len(ns)),
	}
	for i, n := range ns {
		trap, err := quadrature.Trapezoid(f, a, b, n)
		if err != nil {
			return nil, fmt.Errorf("sweep at n=%d: %w", n, err)
		}
		gauss, err := quadrature.Gauss(f, a, b, n)
		if err != nil {
			return nil, fmt.Errorf("sweep at n=%d: %w", n, err)
		}
		s.Points[i] = SweepPoint{
			N:            n,
			Trapezoid:    trap,
			Gauss:        gauss,
			ErrTrapezoid: trap - exact,
			ErrGauss:     gauss - exact,
		}
	}
	return s, nil
}

// Table lays the sweep out as rows of (n, trapezoid, gauss, trapezoid error,
// gauss error).
func (s *Sweep) Table() *mat.Dense {
	m := mat.NewDense(len(s.Points), 5, nil)
	for i, p := range s.Points {
		m.SetRow(i, []float64{float64(p.N), p.Trapezoid, p.Gauss, p.ErrTrapezoid, p.ErrGauss})
	}
	return m
}

// Last is the finest resolution of the sweep.
func (s *Sweep) Last() SweepPoint {
	return s.Points[len(s.Points)-1]
}

// RunIntegration sweeps IntSpace(MinSubintervals, MaxSubintervals, cfg.NumSweep)
// for the Lorentzian on [cfg.A, cfg.B] against arctan(b) - arctan(a).
func RunIntegration(cfg *config.IntegrationConfig) (*Sweep, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ns, err := numeric.IntSpace(MinSubintervals, MaxSubintervals, cfg.NumSweep)
	if err != nil {
		return nil, err
	}
	// Trapezoid normalizes bound order, so the reference does too.
	a, b := math.Min(cfg.A, cfg.B), math.Max(cfg.A, cfg.B)
	return IntegrationSweep(Lorentzian, a, b, math.Atan(b)-math.Atan(a), ns)
}
