package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldstats/morphfit/allometry"
	"github.com/fieldstats/morphfit/logit"
)

func TestCurveTable(t *testing.T) {
	r := &allometry.FitResult{
		Curve: allometry.Curve{A: 0.00052, B: 3.1},
		A:     allometry.ParamEstimate{Value: 0.00052, StdErr: 0.0001, TValue: 5.2, PValue: 0.0001},
		B:     allometry.ParamEstimate{Value: 3.1, StdErr: 0.05, TValue: 62, PValue: 1e-20},
		RMSE:  0.83,
		N:     42,
	}

	table := CurveTable("General model", r)
	require.Contains(t, table, "### General model")
	require.Contains(t, table, "n = 42")
	require.Contains(t, table, "| a |")
	require.Contains(t, table, "| b |")
	require.Contains(t, table, "<2e-16")
	require.Contains(t, table, "RMSE: 0.83")
}

func TestModelTable(t *testing.T) {
	m := &logit.Model{
		Coefficients: []logit.Coefficient{
			{Name: "(Intercept)", Value: -1.2, StdErr: 0.4, ZValue: -3.0, PValue: 0.0027},
			{Name: "height", Value: 0.8, StdErr: 0.2, ZValue: 4.0, PValue: 0.00006},
		},
		LogLikelihood: -55.4,
		Iterations:    6,
		N:             120,
	}

	table := ModelTable("Full model", m)
	require.Contains(t, table, "### Full model")
	require.Contains(t, table, "(Intercept)")
	require.Contains(t, table, "height")
	require.Contains(t, table, "IRLS iterations = 6")
}

func TestComparisonTable(t *testing.T) {
	table := ComparisonTable("CNTI males", allometry.Comparison{GeneralRMSE: 1.4, SpecialRMSE: 0.9})
	require.Contains(t, table, "CNTI males")
	require.Contains(t, table, "| General | 1.4 |")
	require.Contains(t, table, "| Specialized | 0.9 |")
}

func TestAccuracyTable(t *testing.T) {
	table := AccuracyTable([]ModelAccuracy{
		{Name: "full", Result: logit.CVResult{Accuracies: []float64{0.9, 0.92}, Folds: 10, Repeats: 10}},
		{Name: "reduced", Result: logit.CVResult{Accuracies: []float64{0.88, 0.9}, Folds: 10, Repeats: 10}},
	})
	require.Contains(t, table, "| full | 10 | 10 |")
	require.Contains(t, table, "| reduced | 10 | 10 |")
	require.Contains(t, table, "0.910")
}

func TestConfusionTable(t *testing.T) {
	table := ConfusionTable([]logit.ClassCount{
		{Class: "repens", Correct: 90, Wrong: 10},
		{Class: "etonia", Correct: 85, Wrong: 15},
	})
	require.Contains(t, table, "| repens | 90 | 10 | 90.0 |")
	require.Contains(t, table, "| etonia | 85 | 15 | 85.0 |")
	require.Equal(t, 2, strings.Count(table, "| repens")+strings.Count(table, "| etonia"))
}
