package logit

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoConverge is returned when IRLS fails to converge, including the
	// degenerate separation case where the likelihood has no finite maximum.
	ErrNoConverge = errors.New("logit: fit failed to converge")
	// ErrBadLabel is returned when a label is not 0 or 1.
	ErrBadLabel = errors.New("logit: labels must be 0 or 1")
	// ErrMissingValue is returned when a predictor cell is NaN or infinite.
	ErrMissingValue = errors.New("logit: missing or non-finite predictor value")
	// ErrDimensionMismatch is returned when row widths or slice lengths disagree.
	ErrDimensionMismatch = errors.New("logit: dimension mismatch")
	// ErrTooFewRows is returned when there are not enough rows to fit.
	ErrTooFewRows = errors.New("logit: too few observations")
)

// Coefficient holds one fitted coefficient with its asymptotic inference.
type Coefficient struct {
	// Name is the predictor name; the intercept is "(Intercept)".
	Name string
	// Value is the maximum-likelihood estimate on the log-odds scale.
	Value float64
	// StdErr is the asymptotic standard error.
	StdErr float64
	// ZValue is Value / StdErr.
	ZValue float64
	// PValue is the two-sided normal p-value of ZValue.
	PValue float64
}

// Model is a fitted binomial logistic regression. Immutable after fitting.
type Model struct {
	// Coefficients holds the intercept first, then one entry per predictor.
	Coefficients []Coefficient
	// LogLikelihood is the maximized log-likelihood.
	LogLikelihood float64
	// Iterations is the number of IRLS iterations used.
	Iterations int
	// N is the number of observations used.
	N int
}

// NumPredictors returns the number of predictors, excluding the intercept.
func (m *Model) NumPredictors() int {
	return len(m.Coefficients) - 1
}

// Probability returns the fitted probability of the positive class for one
// row of predictor values.
func (m *Model) Probability(predictors []float64) (float64, error) {
	if len(predictors) != m.NumPredictors() {
		return 0, fmt.Errorf("%w: model has %d predictors, row has %d",
			ErrDimensionMismatch, m.NumPredictors(), len(predictors))
	}

	eta := m.Coefficients[0].Value
	for i, x := range predictors {
		eta += m.Coefficients[i+1].Value * x
	}

	return sigmoid(eta), nil
}

// Classify returns the predicted class (1 positive, 0 negative) for one row.
func (m *Model) Classify(predictors []float64) (int, error) {
	p, err := m.Probability(predictors)
	if err != nil {
		return 0, err
	}

	return Decide(p), nil
}

// Decide maps a fitted probability to a class label.
//
// The rule is positive iff p > 0.5. A probability of exactly 0.5 is the
// negative class, so 0.0 and 1.0 classify unambiguously and the boundary has
// one documented owner.
func Decide(p float64) int {
	if p > 0.5 {
		return 1
	}

	return 0
}

// String returns a one-line summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{predictors: %d, logLik: %.4g, n: %d}",
		m.NumPredictors(), m.LogLikelihood, m.N)
}

func sigmoid(eta float64) float64 {
	return 1.0 / (1.0 + math.Exp(-eta))
}
