package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fieldstats/morphfit/allometry"
)

// ScatterWithCurve writes a scatter plot of the observations with the fitted
// power curve overlaid.
//
// Parameters:
//   - lengths: Snout-vent lengths (x axis)
//   - weights: Observed weights (y axis)
//   - curve: Fitted curve to overlay
//   - title: Plot title
//   - path: Output file; the extension selects the format (.png, .svg, .pdf)
func ScatterWithCurve(lengths, weights []float64, curve allometry.Curve, title, path string) error {
	if len(lengths) != len(weights) {
		return fmt.Errorf("report: %d lengths vs %d weights", len(lengths), len(weights))
	}
	if len(lengths) == 0 {
		return fmt.Errorf("report: no observations to plot")
	}

	pts := make(plotter.XYs, len(lengths))
	for i := range lengths {
		pts[i].X = lengths[i]
		pts[i].Y = weights[i]
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "snout-vent length (mm)"
	p.Y.Label.Text = "weight (g)"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("report: failed to build scatter: %w", err)
	}
	p.Add(scatter)

	fitted := plotter.NewFunction(func(x float64) float64 { return curve.Predict(x) })
	fitted.Samples = 200
	p.Add(fitted)

	p.Legend.Add("observed", scatter)
	p.Legend.Add("fitted", fitted)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: failed to save plot: %w", err)
	}

	return nil
}

// AccuracyBox writes a box plot of per-fold cross-validation accuracies, one
// box per candidate model.
//
// Parameters:
//   - names: Candidate model names (x axis labels)
//   - accuracies: Per-fold accuracies per model, parallel to names
//   - title: Plot title
//   - path: Output file; the extension selects the format
func AccuracyBox(names []string, accuracies [][]float64, title, path string) error {
	if len(names) != len(accuracies) {
		return fmt.Errorf("report: %d names vs %d accuracy series", len(names), len(accuracies))
	}
	if len(names) == 0 {
		return fmt.Errorf("report: no models to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "accuracy"
	p.Y.Min, p.Y.Max = 0, 1

	for i, acc := range accuracies {
		box, err := plotter.NewBoxPlot(vg.Points(25), float64(i), plotter.Values(acc))
		if err != nil {
			return fmt.Errorf("report: failed to build box for %s: %w", names[i], err)
		}
		p.Add(box)
	}
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: failed to save plot: %w", err)
	}

	return nil
}
