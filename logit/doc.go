// Package logit fits binomial logistic regression classifiers and validates
// them with repeated k-fold cross-validation.
//
// The model estimates the log-odds of a binary outcome as a linear
// combination of predictors, by maximum likelihood via iteratively
// reweighted least squares. Classification uses a fixed 0.5 threshold on the
// fitted probability: strictly above is the positive class, everything else
// (including exactly 0.5) is negative.
//
// # Fitting two candidate models
//
//	full, err := logit.Fit(rowsFull, labels,
//	    logit.WithNames("height", "canopy_length", "canopy_width", "green_lvs"))
//	// ...
//	reduced, err := logit.Fit(rowsReduced, labels,
//	    logit.WithNames("height", "canopy_width", "green_lvs"))
//
// # Cross-validation
//
// Accuracy is estimated with repeated k-fold cross-validation driven by an
// explicit seeded random source, so the whole analysis is reproducible:
//
//	rng := rand.New(rand.NewSource(42))
//	cv, err := logit.CrossValidate(rowsFull, labels, 10, 10, rng)
//	// cv.Mean(), cv.StdDev(), cv.Accuracies
//
// The comparison between candidate models is descriptive; no hypothesis test
// is run between their CV accuracies.
//
// # Error conditions
//
// Missing (NaN) predictor values, labels outside {0, 1}, and IRLS
// non-convergence (including separable classes) are returned as errors,
// never papered over with a partial fit.
package logit
