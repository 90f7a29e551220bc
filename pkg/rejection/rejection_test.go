package rejection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/hamblin-ku/PHSX815-Week5/pkg/normaldist"
	"github.com/hamblin-ku/PHSX815-Week5/pkg/numeric"
)

func stdNormal(x float64) float64 { return normaldist.PDF(x, 0, 1) }

func wideNormal(x float64) float64 { return normaldist.PDF(x, 0, 3) }

func grid(t *testing.T, lo, hi float64, n int) []float64 {
	t.Helper()
	xs, err := numeric.Linspace(lo, hi, n)
	require.NoError(t, err)
	return xs
}

// constGen always returns the same value.
type constGen float64

func (c constGen) Rand() float64 { return float64(c) }

func TestEnvelopeScale(t *testing.T) {
	xs := grid(t, -10, 10, 1001)

	c, err := EnvelopeScale(stdNormal, wideNormal, xs)
	require.NoError(t, err)
	assert.InDelta(t, SafetyMargin*3, c, 1e-12)

	// A proposal that already covers the target is not scaled down.
	c, err = EnvelopeScale(wideNormal, stdNormal, xs)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c)
}

func TestEnvelopeScaleAtLeastOne(t *testing.T) {
	xs := grid(t, -50, 50, 500)
	for _, sd := range []float64{0.1, 0.5, 1, 2, 5, 20} {
		target := func(x float64) float64 { return normaldist.PDF(x, 1, sd) }
		c, err := EnvelopeScale(target, wideNormal, xs)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c, 1.0, "sd=%v", sd)
	}
}

func TestEnvelopeScaleErrors(t *testing.T) {
	xs := grid(t, -1, 1, 10)

	_, err := EnvelopeScale(stdNormal, wideNormal, nil)
	assert.ErrorIs(t, err, numeric.ErrInvalidArgument)

	zero := func(float64) float64 { return 0 }
	_, err = EnvelopeScale(stdNormal, zero, xs)
	assert.ErrorIs(t, err, numeric.ErrInvalidArgument)

	nan := func(float64) float64 { return math.NaN() }
	_, err = EnvelopeScale(nan, wideNormal, xs)
	assert.ErrorIs(t, err, numeric.ErrNumericalInstability)
}

func TestCheckEnvelope(t *testing.T) {
	xs := grid(t, -10, 10, 1000)

	check, err := CheckEnvelope(stdNormal, wideNormal, SafetyMargin*3, xs)
	require.NoError(t, err)
	assert.True(t, check.Dominated)
	assert.InDelta(t, 1/SafetyMargin, check.Ratio, 1e-3)

	// Unscaled, the narrow target pokes through the proposal around 0.
	check, err = CheckEnvelope(stdNormal, wideNormal, 1, xs)
	require.NoError(t, err)
	assert.False(t, check.Dominated)
	assert.GreaterOrEqual(t, check.Ratio, 2.9998)
	assert.InDelta(t, 0, check.X, 0.02)

	_, err = CheckEnvelope(stdNormal, wideNormal, 0, xs)
	assert.ErrorIs(t, err, numeric.ErrInvalidArgument)
}

func TestSampleCounts(t *testing.T) {
	src := normaldist.NewSource(3)
	draw := normaldist.NewNormalDistParams(0, 3, src)
	unit := normaldist.NewUnit(src)

	for _, n := range []int{0, 1, 10, 1000} {
		res, err := Sample(stdNormal, wideNormal, draw, unit, n, SafetyMargin*3)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(res.Samples), n)
		assert.Equal(t, len(res.Samples), res.Accepted)
		assert.Equal(t, n, res.Iterations)
	}
}

func TestSampleZeroIterations(t *testing.T) {
	res, err := Sample(stdNormal, wideNormal, constGen(0), constGen(0), 0, 1)
	require.NoError(t, err)
	assert.Empty(t, res.Samples)
	assert.Equal(t, 0, res.Accepted)
	assert.Equal(t, 0.0, res.Efficiency())
}

func TestSampleAcceptRule(t *testing.T) {
	// u = 0 accepts every candidate with a non-negative target.
	res, err := Sample(stdNormal, wideNormal, constGen(0.5), constGen(0), 5, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5, 0.5}, res.Samples)
	assert.Equal(t, 100.0, res.Efficiency())

	// y = u·C·proposal(x) above target(x) rejects.
	res, err = Sample(stdNormal, wideNormal, constGen(8), constGen(0.99), 5, 4)
	require.NoError(t, err)
	assert.Empty(t, res.Samples)
}

func TestSampleErrors(t *testing.T) {
	_, err := Sample(stdNormal, wideNormal, constGen(0), constGen(0), -1, 1)
	assert.ErrorIs(t, err, numeric.ErrInvalidArgument)

	_, err = Sample(stdNormal, wideNormal, constGen(0), constGen(0), 10, math.Inf(1))
	assert.ErrorIs(t, err, numeric.ErrInvalidArgument)

	inf := func(float64) float64 { return math.Inf(1) }
	_, err = Sample(inf, wideNormal, constGen(0), constGen(0.5), 10, 1)
	assert.ErrorIs(t, err, numeric.ErrNumericalInstability)
}

func TestSampleStandardNormal(t *testing.T) {
	xs := grid(t, -10, 10, 1000)
	c, err := EnvelopeScale(stdNormal, wideNormal, xs)
	require.NoError(t, err)

	src := normaldist.NewSource(20240213)
	draw := normaldist.NewNormalDistParams(0, 3, src)
	unit := normaldist.NewUnit(src)

	res, err := Sample(stdNormal, wideNormal, draw, unit, 100000, c)
	require.NoError(t, err)
	require.NotEmpty(t, res.Samples)

	mean, std := stat.MeanStdDev(res.Samples, nil)
	assert.InDelta(t, 0, mean, 0.05)
	assert.InDelta(t, 1, std, 0.1)
	assert.InDelta(t, 100/c, res.Efficiency(), 1.5)
}

func TestSampleTrimodal(t *testing.T) {
	target, err := normaldist.EqualMixture([]float64{20, 70, 50}, []float64{10, 30, 10})
	require.NoError(t, err)
	proposal := normaldist.NewNormalDistParams(50, 40, normaldist.NewSource(11))

	xs := grid(t, -100, 300, 1000)
	c, err := EnvelopeScale(target.Prob, proposal.Prob, xs)
	require.NoError(t, err)
	assert.InDelta(t, 2.045, c, 1e-3)

	check, err := CheckEnvelope(target.Prob, proposal.Prob, c, xs)
	require.NoError(t, err)
	assert.True(t, check.Dominated)

	res, err := Sample(target.Prob, proposal.Prob, proposal, normaldist.NewUnit(normaldist.NewSource(12)), 20000, c)
	require.NoError(t, err)
	assert.InDelta(t, 48.9, res.Efficiency(), 2)

	sum, err := Summarize(res.Samples)
	require.NoError(t, err)
	want := (20.0 + 70 + 50) / 3
	assert.InDelta(t, want, sum.Mean, 1.5)
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{4, 1, 3, 2, 5})
	require.NoError(t, err)
	assert.Equal(t, 5, s.N)
	assert.InDelta(t, 3, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(2), s.StdDev, 1e-12)
	assert.Equal(t, 3.0, s.Median)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.LessOrEqual(t, s.Q25, s.Median)
	assert.GreaterOrEqual(t, s.Q75, s.Median)

	_, err = Summarize(nil)
	assert.ErrorIs(t, err, numeric.ErrInvalidArgument)
}
