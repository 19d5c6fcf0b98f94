package allometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// closedFormLogOLS is an independent implementation of OLS on the
// log-transformed data, written against the textbook covariance formulas so
// the tests do not share arithmetic with the production code.
func closedFormLogOLS(lengths, weights []float64) (slope, intercept float64) {
	n := float64(len(lengths))
	var meanX, meanY float64
	for i := range lengths {
		meanX += math.Log(lengths[i])
		meanY += math.Log(weights[i])
	}
	meanX /= n
	meanY /= n

	var sxy, sxx float64
	for i := range lengths {
		dx := math.Log(lengths[i]) - meanX
		dy := math.Log(weights[i]) - meanY
		sxy += dx * dy
		sxx += dx * dx
	}

	slope = sxy / sxx
	intercept = meanY - slope*meanX

	return slope, intercept
}

func TestStartingValues_MatchesClosedFormOLS(t *testing.T) {
	lengths := []float64{48.2, 52.7, 58.4, 61.0, 66.3, 70.9, 74.1, 79.8}
	weights := []float64{5.1, 6.4, 8.0, 9.7, 11.2, 14.0, 15.9, 19.3}

	a0, b0, err := StartingValues(lengths, weights)
	require.NoError(t, err)

	slope, intercept := closedFormLogOLS(lengths, weights)
	require.InDelta(t, slope, b0, 1e-12)
	require.InDelta(t, math.Exp(intercept/slope), a0, 1e-12)
}

func TestStartingValues_ExactPowerLaw(t *testing.T) {
	lengths := []float64{10, 20, 40}
	weights := make([]float64, len(lengths))
	for i, l := range lengths {
		weights[i] = 2 * math.Pow(l, 3)
	}

	_, b0, err := StartingValues(lengths, weights)
	require.NoError(t, err)
	// Exact data recovers the exact exponent from the linearization.
	require.InDelta(t, 3.0, b0, 1e-12)
}

func TestStartingValues_Errors(t *testing.T) {
	cases := []struct {
		name     string
		lengths  []float64
		weights  []float64
		sentinel error
	}{
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}, ErrLengthMismatch},
		{"too few rows", []float64{10, 20}, []float64{1, 2}, ErrTooFewRows},
		{"zero length", []float64{0, 20, 30}, []float64{1, 2, 3}, ErrNonPositive},
		{"negative weight", []float64{10, 20, 30}, []float64{1, -2, 3}, ErrNonPositive},
		{"constant lengths", []float64{15, 15, 15}, []float64{1, 2, 3}, ErrDegenerate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := StartingValues(tc.lengths, tc.weights)
			require.ErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestStartingValues_RejectsNaN(t *testing.T) {
	_, _, err := StartingValues([]float64{10, math.NaN(), 30}, []float64{1, 2, 3})
	require.Error(t, err)
}
