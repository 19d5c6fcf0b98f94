package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldstats/morphfit/allometry"
)

func TestScatterWithCurve(t *testing.T) {
	lengths := []float64{40, 55, 70, 85, 100}
	weights := []float64{3.2, 8.1, 17.5, 30.4, 51.0}
	curve := allometry.Curve{A: 5e-5, B: 3}

	path := filepath.Join(t.TempDir(), "fit.png")
	err := ScatterWithCurve(lengths, weights, curve, "weight vs length", path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestScatterWithCurveValidation(t *testing.T) {
	curve := allometry.Curve{A: 1, B: 2}
	path := filepath.Join(t.TempDir(), "fit.png")

	err := ScatterWithCurve([]float64{1, 2}, []float64{1}, curve, "t", path)
	require.Error(t, err)

	err = ScatterWithCurve(nil, nil, curve, "t", path)
	require.Error(t, err)
}

func TestAccuracyBox(t *testing.T) {
	names := []string{"full", "reduced"}
	accuracies := [][]float64{
		{0.89, 0.91, 0.90, 0.92, 0.88},
		{0.85, 0.87, 0.86, 0.88, 0.84},
	}

	path := filepath.Join(t.TempDir(), "accuracy.png")
	err := AccuracyBox(names, accuracies, "cross-validated accuracy", path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestAccuracyBoxValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accuracy.png")

	err := AccuracyBox([]string{"full"}, nil, "t", path)
	require.Error(t, err)

	err = AccuracyBox(nil, nil, "t", path)
	require.Error(t, err)
}
