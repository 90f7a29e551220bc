package presenter

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/hamblin-ku/PHSX815-Week5/internal/config"
	"github.com/hamblin-ku/PHSX815-Week5/internal/experiment"
)

// ConvergenceFigure draws the sweep as two stacked panels: the estimates of
// both methods against the analytic value, and their errors.
func ConvergenceFigure(s *experiment.Sweep, style config.Style, filename string) error {
	trap := make(plotter.XYs, len(s.Points))
	gauss := make(plotter.XYs, len(s.Points))
	errTrap := make(plotter.XYs, len(s.Points))
	errGauss := make(plotter.XYs, len(s.Points))
	for i, pt := range s.Points {
		n := float64(pt.N)
		trap[i] = plotter.XY{X: n, Y: pt.Trapezoid}
		gauss[i] = plotter.XY{X: n, Y: pt.Gauss}
		errTrap[i] = plotter.XY{X: n, Y: pt.ErrTrapezoid}
		errGauss[i] = plotter.XY{X: n, Y: pt.ErrGauss}
	}

	values := plot.New()
	values.Y.Label.Text = "Integral Value"
	values.Legend.Top = true
	if err := addSeries(values, style, trap, gauss, s.Exact); err != nil {
		return err
	}
	// Add widens the axes to the data, so limits go last.
	values.X.Min, values.X.Max = 1, experiment.MaxSubintervals
	values.Y.Min, values.Y.Max = 1.35, 2.5

	errs := plot.New()
	errs.X.Label.Text = "N samples"
	errs.Y.Label.Text = "Error"
	if err := addSeries(errs, style, errTrap, errGauss, 0); err != nil {
		return err
	}
	errs.X.Min, errs.X.Max = 1, experiment.MaxSubintervals
	errs.Y.Min, errs.Y.Max = -0.003, 0.01

	img := vgpdf.New(style.Width, style.Height)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Millimeter}
	canvases := plot.Align([][]*plot.Plot{{values}, {errs}}, tiles, dc)
	values.Draw(canvases[0][0])
	errs.Draw(canvases[1][0])

	return writePDF(img, filename)
}

func addSeries(p *plot.Plot, style config.Style, trap, gauss plotter.XYs, reference float64) error {
	lt, err := plotter.NewLine(trap)
	if err != nil {
		return err
	}
	lt.LineStyle.Color = style.Primary
	lt.LineStyle.Width = style.LineWidth

	lg, err := plotter.NewLine(gauss)
	if err != nil {
		return err
	}
	lg.LineStyle.Color = style.Secondary
	lg.LineStyle.Width = style.LineWidth

	ref := plotter.NewFunction(func(float64) float64 { return reference })
	ref.Color = style.Reference
	ref.Width = style.ThickWidth
	ref.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}

	p.Add(ref, lt, lg)
	p.Legend.Add("trapz", lt)
	p.Legend.Add("gauss quad", lg)
	p.Legend.Add("analytic sol.", ref)
	return nil
}

// SamplingFigure draws the target, the proposal, the scaled proposal and a
// normalized histogram of the accepted samples.
func SamplingFigure(run *experiment.SamplingRun, bins int, style config.Style, filename string) error {
	p := plot.New()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "Probability"
	p.Legend.Top = true

	if len(run.Result.Samples) > 0 {
		h, err := plotter.NewHist(plotter.Values(run.Result.Samples), bins)
		if err != nil {
			return err
		}
		h.Normalize(1)
		h.FillColor = style.Fill
		h.LineStyle.Width = 0
		p.Add(h)
		p.Legend.Add("Sample dist.", h)
	}

	target := plotter.NewFunction(run.Target.Prob)
	target.Color = style.Envelope
	target.Width = style.ThickWidth
	target.Samples = len(run.Grid)

	proposal := plotter.NewFunction(run.Proposal.Prob)
	proposal.Color = style.Reference
	proposal.Width = style.LineWidth
	proposal.Dashes = style.Dashes
	proposal.Samples = len(run.Grid)

	scale := run.Scale
	scaled := plotter.NewFunction(func(x float64) float64 { return scale * run.Proposal.Prob(x) })
	scaled.Color = style.Primary
	scaled.Width = style.LineWidth
	scaled.Dashes = style.Dashes
	scaled.Samples = len(run.Grid)

	p.Add(target, proposal, scaled)
	p.Legend.Add("Target", target)
	p.Legend.Add("Proposed", proposal)
	p.Legend.Add("Scaled Proposed", scaled)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{{X: -80, Y: 0.027}, {X: -80, Y: 0.025}},
		Labels: []string{
			fmt.Sprintf("log(N) = %d", int(math.Log10(float64(run.Result.Iterations)))),
			fmt.Sprintf("Efficiency = %.1f%%", run.Result.Efficiency()),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)
	p.X.Min, p.X.Max = -100, 200
	p.Y.Min, p.Y.Max = 0, 0.03

	img := vgpdf.New(style.Width, style.Width*3/4)
	p.Draw(draw.New(img))
	return writePDF(img, filename)
}

func writePDF(img *vgpdf.Canvas, filename string) error {
	w, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := img.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
