package experiment

import (
	"errors"
	"fmt"

	"github.com/hamblin-ku/PHSX815-Week5/internal/config"
	"github.com/hamblin-ku/PHSX815-Week5/pkg/normaldist"
	"github.com/hamblin-ku/PHSX815-Week5/pkg/numeric"
	"github.com/hamblin-ku/PHSX815-Week5/pkg/rejection"
)

// Sampling setup: proposal N(50, 40²) and the evaluation grid used both for
// the envelope scale and for plotting.
const (
	ProposalMean   = 50
	ProposalStdDev = 40
	GridMin        = -100
	GridMax        = 300
	GridPoints     = 1000
)

// TrimodalTarget is the equal-weight mixture of N(20, 10²), N(70, 30²) and
// N(50, 10²).
func TrimodalTarget() normaldist.Mixture {
	return normaldist.Mixture{
		{Mean: 20, StdDev: 10, Weight: 1},
		{Mean: 70, StdDev: 30, Weight: 1},
		{Mean: 50, StdDev: 10, Weight: 1},
	}
}

type SamplingRun struct {
	Target   normaldist.Mixture
	Proposal *normaldist.NormalDistParams
	Grid     []float64
	Scale    float64
	Check    rejection.EnvelopeCheck
	Result   *rejection.Result
	// Summary is nil when nothing was accepted.
	Summary *rejection.Summary
}

// RunSampling draws cfg.NumIter candidates from the proposal and keeps those
// accepted under the trimodal target.
func RunSampling(cfg *config.SamplingConfig) (*SamplingRun, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := numeric.Linspace(GridMin, GridMax, GridPoints)
	if err != nil {
		return nil, err
	}

	src := normaldist.NewSource(cfg.Seed)
	run := &SamplingRun{
		Target:   TrimodalTarget(),
		Proposal: normaldist.NewNormalDistParams(ProposalMean, ProposalStdDev, src),
		Grid:     grid,
	}
	if err := run.Target.Validate(); err != nil {
		return nil, err
	}
	if err := run.Proposal.Validate(); err != nil {
		return nil, err
	}

	run.Scale, err = rejection.EnvelopeScale(run.Target.Prob, run.Proposal.Prob, grid)
	if err != nil {
		return nil, fmt.Errorf("scaling proposal: %w", err)
	}
	run.Check, err = rejection.CheckEnvelope(run.Target.Prob, run.Proposal.Prob, run.Scale, grid)
	if err != nil {
		return nil, fmt.Errorf("checking envelope: %w", err)
	}

	run.Result, err = rejection.Sample(run.Target.Prob, run.Proposal.Prob, run.Proposal, normaldist.NewUnit(src), cfg.NumIter, run.Scale)
	if err != nil {
		return nil, fmt.Errorf("sampling: %w", err)
	}

	sum, err := rejection.Summarize(run.Result.Samples)
	switch {
	case err == nil:
		run.Summary = &sum
	case !errors.Is(err, numeric.ErrInvalidArgument):
		return nil, err
	}
	return run, nil
}
