package experiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamblin-ku/PHSX815-Week5/internal/config"
	"github.com/hamblin-ku/PHSX815-Week5/pkg/numeric"
)

func TestIntegrationSweep(t *testing.T) {
	s, err := IntegrationSweep(Lorentzian, 0, 10, math.Atan(10), []int{2, 8, 30})
	require.NoError(t, err)
	require.Len(t, s.Points, 3)

	last := s.Last()
	assert.Equal(t, 30, last.N)
	assert.Less(t, math.Abs(last.ErrTrapezoid), 1e-3)
	assert.Less(t, math.Abs(last.ErrGauss), 1e-6)
	assert.Greater(t, math.Abs(s.Points[0].ErrTrapezoid), math.Abs(last.ErrTrapezoid))

	m := s.Table()
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 5, c)
	assert.Equal(t, 8.0, m.At(1, 0))
	assert.Equal(t, s.Points[1].ErrGauss, m.At(1, 4))
}

func TestIntegrationSweepRejectsZero(t *testing.T) {
	_, err := IntegrationSweep(Lorentzian, 0, 1, math.Atan(1), []int{0})
	assert.ErrorIs(t, err, numeric.ErrInvalidArgument)
}

func TestRunIntegration(t *testing.T) {
	s, err := RunIntegration(&config.IntegrationConfig{NumSweep: 15, A: 10, B: 0})
	require.NoError(t, err)
	require.Len(t, s.Points, 15)
	assert.Equal(t, MinSubintervals, s.Points[0].N)
	assert.Equal(t, MaxSubintervals, s.Last().N)
	assert.InDelta(t, math.Atan(10), s.Exact, 1e-15)
	assert.Less(t, math.Abs(s.Last().ErrTrapezoid), 1e-3)

	_, err = RunIntegration(&config.IntegrationConfig{NumSweep: 1})
	assert.ErrorIs(t, err, numeric.ErrInvalidArgument)
}

func TestRunSampling(t *testing.T) {
	run, err := RunSampling(&config.SamplingConfig{NumIter: 5000, Seed: 99, Bins: 50})
	require.NoError(t, err)

	assert.Len(t, run.Grid, GridPoints)
	assert.GreaterOrEqual(t, run.Scale, 1.0)
	assert.True(t, run.Check.Dominated)
	assert.Equal(t, 5000, run.Result.Iterations)
	assert.Equal(t, len(run.Result.Samples), run.Result.Accepted)
	require.NotNil(t, run.Summary)
	assert.Equal(t, run.Result.Accepted, run.Summary.N)

	again, err := RunSampling(&config.SamplingConfig{NumIter: 5000, Seed: 99, Bins: 50})
	require.NoError(t, err)
	assert.Equal(t, run.Result.Samples, again.Result.Samples)
}

func TestRunSamplingInvalid(t *testing.T) {
	_, err := RunSampling(&config.SamplingConfig{NumIter: 0, Bins: 50})
	assert.ErrorIs(t, err, numeric.ErrInvalidArgument)
}
