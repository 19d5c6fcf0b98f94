package allometry

import "math"

// RMSE evaluates a fitted curve against observed data and returns the
// root-mean-square prediction error.
//
// The curve may come from any fit; evaluating the general population's curve
// on a single-species subset is the intended use. The result is always finite
// and non-negative for valid input, and zero exactly when every prediction
// matches its observation.
func RMSE(c Curve, lengths, weights []float64) (float64, error) {
	if err := validateEval(lengths, weights); err != nil {
		return 0, err
	}

	sumSq := 0.0
	for i := range lengths {
		diff := weights[i] - c.Predict(lengths[i])
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(lengths))), nil
}

// Comparison holds the RMSE of two curves evaluated on the same subset.
// The comparison is descriptive; no significance test is attached.
type Comparison struct {
	// GeneralRMSE is the error of the all-population curve on the subset.
	GeneralRMSE float64
	// SpecialRMSE is the error of the subset-specific curve on the subset.
	SpecialRMSE float64
}

// Improvement returns how much RMSE the specialized curve removes. Positive
// values mean the specialized fit predicts the subset better.
func (c Comparison) Improvement() float64 {
	return c.GeneralRMSE - c.SpecialRMSE
}

// Compare evaluates a general and a specialized curve on the same subset.
func Compare(general, special Curve, lengths, weights []float64) (Comparison, error) {
	g, err := RMSE(general, lengths, weights)
	if err != nil {
		return Comparison{}, err
	}
	s, err := RMSE(special, lengths, weights)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{GeneralRMSE: g, SpecialRMSE: s}, nil
}

// validateEval relaxes the fitting checks for evaluation: a single row is
// enough to score, but the model domain still requires positive lengths.
func validateEval(lengths, weights []float64) error {
	if len(lengths) != len(weights) {
		return ErrLengthMismatch
	}
	if len(lengths) == 0 {
		return ErrTooFewRows
	}
	for i := range lengths {
		if lengths[i] <= 0 {
			return ErrNonPositive
		}
		if math.IsNaN(lengths[i]) || math.IsNaN(weights[i]) {
			return ErrNonPositive
		}
	}

	return nil
}
