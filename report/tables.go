package report

import (
	"fmt"
	"strings"

	"github.com/fieldstats/morphfit/allometry"
	"github.com/fieldstats/morphfit/logit"
)

// CurveTable renders the parameter table of an allometric fit as markdown.
//
// One row per parameter: estimate, standard error, t value and two-sided
// p-value, in the layout statistical reports conventionally use.
func CurveTable(title string, r *allometry.FitResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", title)
	fmt.Fprintf(&b, "Model: %s (n = %d)\n\n", r.Curve, r.N)
	b.WriteString("| Parameter | Estimate | Std. Error | t value | Pr(>|t|) |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	writeParam(&b, "a", r.A.Value, r.A.StdErr, r.A.TValue, r.A.PValue)
	writeParam(&b, "b", r.B.Value, r.B.StdErr, r.B.TValue, r.B.PValue)
	fmt.Fprintf(&b, "\nRMSE: %.4g\n", r.RMSE)

	return b.String()
}

// ModelTable renders the coefficient table of a logistic fit as markdown.
func ModelTable(title string, m *logit.Model) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", title)
	fmt.Fprintf(&b, "n = %d, log-likelihood = %.4g, IRLS iterations = %d\n\n",
		m.N, m.LogLikelihood, m.Iterations)
	b.WriteString("| Coefficient | Estimate | Std. Error | z value | Pr(>|z|) |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, c := range m.Coefficients {
		writeParam(&b, c.Name, c.Value, c.StdErr, c.ZValue, c.PValue)
	}

	return b.String()
}

func writeParam(b *strings.Builder, name string, value, se, stat, p float64) {
	fmt.Fprintf(b, "| %s | %.4g | %.4g | %.3f | %s |\n", name, value, se, stat, formatP(p))
}

// formatP formats a p-value, flooring tiny values the way summary tables do.
func formatP(p float64) string {
	if p < 2e-16 {
		return "<2e-16"
	}

	return fmt.Sprintf("%.3g", p)
}

// ComparisonTable renders the RMSE comparison of a general and a specialized
// curve on the same subset. The comparison is descriptive only.
func ComparisonTable(subset string, cmp allometry.Comparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### RMSE on %s\n\n", subset)
	b.WriteString("| Model | RMSE |\n")
	b.WriteString("| --- | --- |\n")
	fmt.Fprintf(&b, "| General | %.4g |\n", cmp.GeneralRMSE)
	fmt.Fprintf(&b, "| Specialized | %.4g |\n", cmp.SpecialRMSE)

	return b.String()
}

// ModelAccuracy pairs a candidate model's name with its cross-validation
// result for the accuracy table.
type ModelAccuracy struct {
	Name   string
	Result logit.CVResult
}

// AccuracyTable renders mean cross-validated accuracy per candidate model.
func AccuracyTable(models []ModelAccuracy) string {
	var b strings.Builder
	b.WriteString("### Cross-validated accuracy\n\n")
	b.WriteString("| Model | Folds | Repeats | Mean accuracy | Std. dev |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, m := range models {
		fmt.Fprintf(&b, "| %s | %d | %d | %.3f | %.3f |\n",
			m.Name, m.Result.Folds, m.Result.Repeats, m.Result.Mean(), m.Result.StdDev())
	}

	return b.String()
}

// ConfusionTable renders per-class correct/incorrect counts and the percent
// classified correctly.
func ConfusionTable(counts []logit.ClassCount) string {
	var b strings.Builder
	b.WriteString("### Classification by true class\n\n")
	b.WriteString("| Class | Correct | Incorrect | % correct |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, c := range counts {
		fmt.Fprintf(&b, "| %s | %d | %d | %.1f |\n",
			c.Class, c.Correct, c.Wrong, 100*c.PercentCorrect())
	}

	return b.String()
}
