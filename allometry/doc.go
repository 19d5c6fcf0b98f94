// Package allometry fits power-law weight-from-length curves to lizard
// measurement data by nonlinear least squares.
//
// The model is W = a * L^b, with L the snout-vent length and W the weight.
// Fitting happens in two stages:
//
//  1. StartingValues linearizes the model by taking logs and solves ordinary
//     least squares in closed form, recovering starting parameters that keep
//     the nonlinear solver away from divergent regions.
//  2. Fit minimizes the sum of squared residuals on the original scale with a
//     quasi-Newton solver seeded from those values, and derives standard
//     errors and p-values from the Jacobian-based covariance at the solution.
//
// # Comparing a general and a specialized fit
//
// The typical analysis fits the whole population, re-fits a filtered subset
// (one species and sex) seeded from the same starting values, and compares
// both curves on the subset by RMSE:
//
//	general, err := allometry.Fit(lengths, weights)
//	// ...
//	a0, b0, _ := allometry.StartingValues(lengths, weights)
//	special, err := allometry.Fit(subLengths, subWeights, allometry.WithStart(a0, b0))
//	// ...
//	cmp, err := allometry.Compare(general.Curve, special.Curve, subLengths, subWeights)
//
// The comparison is descriptive only. Lower RMSE means the curve tracks the
// subset better; no hypothesis test is performed between the two.
//
// # Error conditions
//
// Non-positive lengths or weights are a fatal input error (the linearization
// takes logs), and solver non-convergence is returned as ErrNoConverge, never
// as a silently wrong parameter set.
package allometry
