package allometry

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonPositive is returned when a length or weight is zero or negative,
	// which makes the log-linearized starting values undefined.
	ErrNonPositive = errors.New("allometry: non-positive length or weight")
	// ErrLengthMismatch is returned when the length and weight slices differ in size.
	ErrLengthMismatch = errors.New("allometry: lengths and weights differ in length")
	// ErrTooFewRows is returned when there are not enough observations to fit.
	ErrTooFewRows = errors.New("allometry: too few observations")
	// ErrDegenerate is returned when the data cannot identify the model, for
	// example when all lengths are identical.
	ErrDegenerate = errors.New("allometry: degenerate data")
	// ErrNoConverge is returned when the least-squares solver fails to converge.
	ErrNoConverge = errors.New("allometry: solver failed to converge")
)

// Curve is a fitted (or candidate) allometric power curve W = a * L^b.
type Curve struct {
	A float64
	B float64
}

// Predict returns the predicted weight for the given snout-vent length.
//
// The model domain is positive lengths; Predict returns NaN outside it rather
// than extrapolating through the singularity at zero.
func (c Curve) Predict(length float64) float64 {
	if length <= 0 {
		return math.NaN()
	}

	return c.A * math.Pow(length, c.B)
}

// String returns a human-readable formula for the curve.
func (c Curve) String() string {
	return fmt.Sprintf("W = %.4g * L^%.4g", c.A, c.B)
}

// ParamEstimate holds one fitted parameter with its asymptotic inference.
type ParamEstimate struct {
	// Value is the point estimate.
	Value float64
	// StdErr is the asymptotic standard error from the Jacobian-based covariance.
	StdErr float64
	// TValue is Value / StdErr.
	TValue float64
	// PValue is the two-sided p-value of TValue on n-2 degrees of freedom.
	PValue float64
}

// FitResult is the outcome of a nonlinear least-squares fit.
//
// It is immutable after fitting: evaluation against other subsets goes
// through the embedded Curve, never by re-estimating.
type FitResult struct {
	// Curve holds the fitted parameters in predict-ready form.
	Curve Curve
	// A is the scale parameter estimate with its inference.
	A ParamEstimate
	// B is the exponent estimate with its inference.
	B ParamEstimate
	// RMSE is the root-mean-square residual on the training rows.
	RMSE float64
	// N is the number of observations used.
	N int
	// Iterations is the number of major solver iterations.
	Iterations int
}

// String returns a one-line summary of the fit.
func (r *FitResult) String() string {
	return fmt.Sprintf("FitResult{%s, RMSE: %.4g, n: %d}", r.Curve, r.RMSE, r.N)
}

// validate checks a length/weight sample for fitting.
func validate(lengths, weights []float64) error {
	if len(lengths) != len(weights) {
		return fmt.Errorf("%w: %d lengths vs %d weights", ErrLengthMismatch, len(lengths), len(weights))
	}
	if len(lengths) < 3 {
		return fmt.Errorf("%w: need at least 3, got %d", ErrTooFewRows, len(lengths))
	}
	for i := range lengths {
		if math.IsNaN(lengths[i]) || math.IsInf(lengths[i], 0) ||
			math.IsNaN(weights[i]) || math.IsInf(weights[i], 0) {
			return fmt.Errorf("allometry: non-finite value at row %d", i)
		}
		if lengths[i] <= 0 || weights[i] <= 0 {
			return fmt.Errorf("%w: row %d has length %v, weight %v",
				ErrNonPositive, i, lengths[i], weights[i])
		}
	}

	return nil
}
