package allometry

import (
	"fmt"
	"math"
)

// StartingValues computes starting parameters for the nonlinear fit by
// linearizing the power model.
//
// Taking logs turns W = a*L^b into ln(W) = ln(a) + b*ln(L), which ordinary
// least squares solves in closed form. The slope is the starting exponent b0
// and the scale is recovered as a0 = exp(intercept / b0). Seeding the solver
// here keeps it away from the divergent corners of the SSR surface that a
// blind start would risk.
//
// Parameters:
//   - lengths: Snout-vent lengths, all positive
//   - weights: Observed weights, all positive
//
// Returns:
//   - a0: Starting scale parameter
//   - b0: Starting exponent
//   - error: ErrNonPositive for values a log cannot accept, ErrDegenerate
//     when the log-lengths have zero variance or the fitted slope is zero
func StartingValues(lengths, weights []float64) (a0, b0 float64, err error) {
	if err := validate(lengths, weights); err != nil {
		return 0, 0, err
	}

	n := len(lengths)

	// OLS on (ln L, ln W).
	var sumX, sumY, sumXY, sumX2 float64
	for i := 0; i < n; i++ {
		xi := math.Log(lengths[i])
		yi := math.Log(weights[i])
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)
	denom := sumX2 - float64(n)*meanX*meanX
	if denom == 0 {
		return 0, 0, fmt.Errorf("%w: log-lengths have zero variance", ErrDegenerate)
	}

	b0 = (sumXY - float64(n)*meanX*meanY) / denom
	if b0 == 0 {
		return 0, 0, fmt.Errorf("%w: zero slope on log-transformed data", ErrDegenerate)
	}

	intercept := meanY - b0*meanX
	a0 = math.Exp(intercept / b0)

	return a0, b0, nil
}
