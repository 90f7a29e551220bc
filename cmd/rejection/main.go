package main

import (
	"errors"
	"flag"
	"math"
	"os"
	"path/filepath"

	"github.com/hamblin-ku/PHSX815-Week5/internal/config"
	"github.com/hamblin-ku/PHSX815-Week5/internal/experiment"
	"github.com/hamblin-ku/PHSX815-Week5/internal/logging"
	"github.com/hamblin-ku/PHSX815-Week5/internal/presenter"
)

func main() {
	cfg, err := config.ParseSampling(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	log, lerr := logging.New(cfg != nil && cfg.Verbose)
	if lerr != nil {
		panic(lerr)
	}
	defer log.Sync()
	if err != nil {
		log.Fatalw("invalid arguments", "error", err)
	}

	log.Info("Starting rejection sampling...")
	log.Infow("configuration of the run", "config", cfg.String())

	run, err := experiment.RunSampling(cfg)
	if err != nil {
		log.Fatalw("rejection sampling failed", "error", err)
	}

	log.Infow("proposal scaled", "C", run.Scale)
	if !run.Check.Dominated {
		log.Warnw("scaled proposal does not cover the target", "x", run.Check.X, "ratio", run.Check.Ratio)
	} else {
		log.Debugw("envelope check", "x", run.Check.X, "ratio", run.Check.Ratio)
	}

	log.Infof("Number Accepted: %d", run.Result.Accepted)
	log.Infof("Efficiency: %.4f%%", run.Result.Efficiency())
	log.Infow("iterations", "log10(N)", int(math.Log10(float64(run.Result.Iterations))))
	if s := run.Summary; s != nil {
		log.Infow("sample summary", "mean", s.Mean, "std_dev", s.StdDev, "median", s.Median, "q25", s.Q25, "q75", s.Q75)
	}

	figure := filepath.Join(cfg.OutputDir, "rejection.pdf")
	if err := presenter.SamplingFigure(run, cfg.Bins, config.DefaultStyle(), figure); err != nil {
		log.Fatalw("writing figure", "file", figure, "error", err)
	}
	log.Infow("figure saved", "file", figure)

	if cfg.SaveCSV {
		samples := filepath.Join(cfg.OutputDir, "samples.csv")
		if err := presenter.SaveSamplesToCSV(run.Result.Samples, samples); err != nil {
			log.Fatalw("writing samples", "file", samples, "error", err)
		}
		log.Infow("samples saved", "file", samples)
	}
}
