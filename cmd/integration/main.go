package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"

	"github.com/hamblin-ku/PHSX815-Week5/internal/config"
	"github.com/hamblin-ku/PHSX815-Week5/internal/experiment"
	"github.com/hamblin-ku/PHSX815-Week5/internal/logging"
	"github.com/hamblin-ku/PHSX815-Week5/internal/presenter"
)

func main() {
	cfg, err := config.ParseIntegration(os.Args[1:])
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

	log.Info("Starting integration comparison...")
	log.Infow("configuration of the run", "config", cfg.String())

	sweep, err := experiment.RunIntegration(cfg)
	if err != nil {
		log.Fatalw("integration sweep failed", "error", err)
	}
	for _, p := range sweep.Points {
		log.Debugw("sweep point", "n", p.N, "trapz", p.Trapezoid, "gauss", p.Gauss)
	}

	last := sweep.Last()
	log.Infow("analytic solution", "value", sweep.Exact)
	log.Infow("finest resolution", "n", last.N, "err_trapz", last.ErrTrapezoid, "err_gauss", last.ErrGauss)

	figure := filepath.Join(cfg.OutputDir, "integration.pdf")
	if err := presenter.ConvergenceFigure(sweep, config.DefaultStyle(), figure); err != nil {
		log.Fatalw("writing figure", "file", figure, "error", err)
	}
	log.Infow("figure saved", "file", figure)

	if cfg.SaveCSV {
		table := filepath.Join(cfg.OutputDir, "integration.csv")
		if err := presenter.SaveDenseToCSV(sweep.Table(), presenter.SweepHeader, table); err != nil {
			log.Fatalw("writing table", "file", table, "error", err)
		}
		log.Infow("table saved", "file", table)
	}
}
