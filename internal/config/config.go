package config

import (
	"flag"
	"fmt"

	"github.com/hamblin-ku/PHSX815-Week5/pkg/numeric"
)

// IntegrationConfig drives the trapezoid vs Gauss–Legendre comparison.
type IntegrationConfig struct {
	NumSweep  int
	A, B      float64
	OutputDir string
	SaveCSV   bool
	Verbose   bool
}

// SamplingConfig drives the rejection sampling run.
type SamplingConfig struct {
	NumIter   int
	Seed      uint64
	Bins      int
	OutputDir string
	SaveCSV   bool
	Verbose   bool
}

func ParseIntegration(args []string) (*IntegrationConfig, error) {
	cfg := &IntegrationConfig{}

	fs := flag.NewFlagSet("integration", flag.ContinueOnError)
	fs.IntVar(&cfg.NumSweep, "nsub", 100, "number of sub-interval counts to evaluate between 2 and 30")
	fs.Float64Var(&cfg.A, "a", 0, "lower integration bound")
	fs.Float64Var(&cfg.B, "b", 10, "upper integration bound")
	fs.StringVar(&cfg.OutputDir, "output-dir", "./", "output directory")
	fs.BoolVar(&cfg.SaveCSV, "csv", false, "also save the sweep table as CSV")
	fs.BoolVar(&cfg.Verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *IntegrationConfig) Validate() error {
	if c.NumSweep < 2 {
		return fmt.Errorf("nsub must be at least 2, got %d: %w", c.NumSweep, numeric.ErrInvalidArgument)
	}
	if !numeric.IsFinite(c.A) || !numeric.IsFinite(c.B) {
		return fmt.Errorf("bounds must be finite, got [%g, %g]: %w", c.A, c.B, numeric.ErrInvalidArgument)
	}
	return nil
}

func (c *IntegrationConfig) String() string {
	return fmt.Sprintf("nsub=%d a=%g b=%g output-dir=%q csv=%t", c.NumSweep, c.A, c.B, c.OutputDir, c.SaveCSV)
}

func ParseSampling(args []string) (*SamplingConfig, error) {
	cfg := &SamplingConfig{}

	fs := flag.NewFlagSet("rejection", flag.ContinueOnError)
	fs.IntVar(&cfg.NumIter, "niter", 1000, "number of accept/reject iterations")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed, 0 seeds from the clock")
	fs.IntVar(&cfg.Bins, "bins", 50, "histogram bins")
	fs.StringVar(&cfg.OutputDir, "output-dir", "./", "output directory")
	fs.BoolVar(&cfg.SaveCSV, "csv", false, "also save accepted samples as CSV")
	fs.BoolVar(&cfg.Verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *SamplingConfig) Validate() error {
	if c.NumIter < 1 {
		return fmt.Errorf("niter must be positive, got %d: %w", c.NumIter, numeric.ErrInvalidArgument)
	}
	if c.Bins < 1 {
		return fmt.Errorf("bins must be positive, got %d: %w", c.Bins, numeric.ErrInvalidArgument)
	}
	return nil
}

func (c *SamplingConfig) String() string {
	return fmt.Sprintf("niter=%d seed=%d bins=%d output-dir=%q csv=%t", c.NumIter, c.Seed, c.Bins, c.OutputDir, c.SaveCSV)
}
