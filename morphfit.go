// Package morphfit fits morphometric models to field survey data.
//
// It covers two common analyses: allometric weight-from-length power curves
// (W = a * L^b) fit by nonlinear least squares, and binomial logistic
// regression for classifying specimens from their measurements, validated by
// repeated k-fold cross-validation.
//
// # Basic Usage
//
// Fitting a weight-length curve from a CSV file:
//
//	import "github.com/fieldstats/morphfit"
//
//	table, _ := dataset.Load("lizards.csv")
//	result, _ := morphfit.FitWeightCurve(table, "SV_length", "weight")
//	fmt.Println(result.Curve) // W = 2.9e-05 * L^2.48
//
// Classifying species and cross-validating the classifier:
//
//	model, _ := morphfit.FitClassifier(table, "species", "repens",
//	    "height", "length", "width", "green_lvs")
//	cv, _ := morphfit.CrossValidateClassifier(table, "species", "repens",
//	    10, 10, 1, "height", "length", "width", "green_lvs")
//	fmt.Printf("accuracy %.3f ± %.3f\n", cv.Mean(), cv.StdDev())
//
// # Package Structure
//
// This package provides convenient top-level wrappers that connect loaded
// tables to the fitters. For fine-grained control, use the dataset, allometry
// and logit packages directly; report renders results as markdown tables and
// plots.
package morphfit

import (
	"math/rand"

	"github.com/fieldstats/morphfit/allometry"
	"github.com/fieldstats/morphfit/dataset"
	"github.com/fieldstats/morphfit/logit"
)

// FitWeightCurve fits the power model W = a * L^b to two numeric columns of
// a table.
//
// Parameters:
//   - t: Source table
//   - lengthCol: Name of the length column
//   - weightCol: Name of the weight column
//   - opts: Fit options forwarded to allometry.Fit
//
// Returns the fit result, or an error if a column is missing, non-numeric,
// or its values are unusable for fitting.
func FitWeightCurve(t *dataset.Table, lengthCol, weightCol string, opts ...allometry.FitOption) (*allometry.FitResult, error) {
	lengths, weights, err := t.Pair(lengthCol, weightCol)
	if err != nil {
		return nil, err
	}

	return allometry.Fit(lengths, weights, opts...)
}

// CompareWeightCurves evaluates a general and a specialized curve on the same
// table subset and returns both RMSEs.
func CompareWeightCurves(general, special allometry.Curve, t *dataset.Table, lengthCol, weightCol string) (allometry.Comparison, error) {
	lengths, weights, err := t.Pair(lengthCol, weightCol)
	if err != nil {
		return allometry.Comparison{}, err
	}

	return allometry.Compare(general, special, lengths, weights)
}

// DesignMatrix extracts the named numeric columns as per-row predictor
// vectors, in column order.
func DesignMatrix(t *dataset.Table, cols ...string) ([][]float64, error) {
	byCol := make([][]float64, len(cols))
	for i, name := range cols {
		values, err := t.Numeric(name)
		if err != nil {
			return nil, err
		}
		byCol[i] = values
	}

	rows := make([][]float64, t.NumRows())
	for i := range rows {
		row := make([]float64, len(cols))
		for j := range cols {
			row[j] = byCol[j][i]
		}
		rows[i] = row
	}

	return rows, nil
}

// BinaryLabels encodes a label column as 0/1: rows equal to positive become
// 1, every other value becomes 0.
func BinaryLabels(t *dataset.Table, col, positive string) ([]int, error) {
	labels, err := t.Labels(col)
	if err != nil {
		return nil, err
	}

	encoded := make([]int, len(labels))
	for i, s := range labels {
		if s == positive {
			encoded[i] = 1
		}
	}

	return encoded, nil
}

// FitClassifier fits a logistic regression that predicts whether a row's
// label column equals positive, using the named numeric columns as
// predictors. Coefficients are named after the predictor columns.
func FitClassifier(t *dataset.Table, labelCol, positive string, predictors ...string) (*logit.Model, error) {
	rows, err := DesignMatrix(t, predictors...)
	if err != nil {
		return nil, err
	}
	labels, err := BinaryLabels(t, labelCol, positive)
	if err != nil {
		return nil, err
	}

	return logit.Fit(rows, labels, logit.WithNames(predictors...))
}

// CrossValidateClassifier estimates out-of-sample accuracy of the classifier
// FitClassifier would fit, by repeated k-fold cross-validation.
//
// Parameters:
//   - t: Source table
//   - labelCol: Label column; rows equal to positive are the positive class
//   - positive: Positive class value
//   - folds: Folds per repeat (k)
//   - repeats: Number of independent repeats
//   - seed: Seed for the fold shuffles; equal seeds give equal splits
//   - predictors: Numeric predictor columns
func CrossValidateClassifier(t *dataset.Table, labelCol, positive string, folds, repeats int, seed int64, predictors ...string) (logit.CVResult, error) {
	rows, err := DesignMatrix(t, predictors...)
	if err != nil {
		return logit.CVResult{}, err
	}
	labels, err := BinaryLabels(t, labelCol, positive)
	if err != nil {
		return logit.CVResult{}, err
	}

	rng := rand.New(rand.NewSource(seed))

	return logit.CrossValidate(rows, labels, folds, repeats, rng)
}
