package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/hamblin-ku/PHSX815-Week5/pkg/numeric"
)

// Rule is a Gauss–Legendre rule on [-1, 1]. Nodes are ascending.
type Rule struct {
	Nodes   []float64
	Weights []float64
}

// LegendreRule computes the k-point Gauss–Legendre rule with the Golub–Welsch
// algorithm: the nodes are the eigenvalues of the Jacobi matrix of the
// Legendre recurrence, the weights are 2·v₀² of the normalized eigenvectors.
func LegendreRule(k int) (Rule, error) {
	if k < 1 {
		return Rule{}, fmt.Errorf("legendre rule: %d nodes: %w", k, numeric.ErrInvalidArgument)
	}
	if k == 1 {
		return Rule{Nodes: []float64{0}, Weights: []float64{2}}, nil
	}

	jacobi := mat.NewSymDense(k, nil)
	for i := 1; i < k; i++ {
		fi := float64(i)
		jacobi.SetSym(i-1, i, fi/math.Sqrt(4*fi*fi-1))
	}

	var es mat.EigenSym
	if ok := es.Factorize(jacobi, true); !ok {
		return Rule{}, fmt.Errorf("legendre rule: eigen decomposition of %d×%d Jacobi matrix failed: %w",
			k, k, numeric.ErrNumericalInstability)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	rule := Rule{
		Nodes:   es.Values(nil),
		Weights: make([]float64, k),
	}
	for i := range rule.Weights {
		v := vecs.At(0, i)
		rule.Weights[i] = 2 * v * v
	}
	return rule, nil
}

// Gauss integrates f over [a, b] with the (n+1)-point Gauss–Legendre rule,
// exact for polynomials up to degree 2n+1.
func Gauss(f Func, a, b float64, n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("gauss: order %d: %w", n, numeric.ErrInvalidArgument)
	}
	a, b, err := orderBounds(a, b)
	if err != nil {
		return 0, fmt.Errorf("gauss: %w", err)
	}
	rule, err := LegendreRule(n + 1)
	if err != nil {
		return 0, fmt.Errorf("gauss: %w", err)
	}

	half, mid := 0.5*(b-a), 0.5*(b+a)
	xs := make([]float64, len(rule.Nodes))
	for i, x := range rule.Nodes {
		xs[i] = half*x + mid
	}
	ys := EvalAt(f, xs)
	for i, y := range ys {
		if err := numeric.CheckFinite("f", xs[i], y); err != nil {
			return 0, err
		}
	}
	return half * floats.Dot(rule.Weights, ys), nil
}
