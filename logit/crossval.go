package logit

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// CVResult holds per-fold accuracies from repeated k-fold cross-validation.
type CVResult struct {
	// Accuracies has one entry per fold per repeat, each in [0, 1],
	// ordered repeat-major.
	Accuracies []float64
	// Folds is the number of folds per repeat.
	Folds int
	// Repeats is the number of repeats.
	Repeats int
}

// Mean returns the mean accuracy over all folds and repeats.
func (r CVResult) Mean() float64 {
	if len(r.Accuracies) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range r.Accuracies {
		sum += a
	}

	return sum / float64(len(r.Accuracies))
}

// StdDev returns the sample standard deviation of the fold accuracies.
func (r CVResult) StdDev() float64 {
	n := len(r.Accuracies)
	if n < 2 {
		return 0
	}
	mean := r.Mean()
	sumSq := 0.0
	for _, a := range r.Accuracies {
		d := a - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(n-1))
}

// CrossValidate estimates classification accuracy by repeated k-fold
// cross-validation.
//
// Each repeat shuffles the row indices with rng and deals them round-robin
// into folds, so every row lands in exactly one validation fold per repeat.
// For each fold a model is fitted on the remaining rows and scored on the
// held-out rows with the 0.5-threshold rule.
//
// The caller owns the random source; passing rand.New(rand.NewSource(seed))
// makes the fold assignment, and therefore the whole result, reproducible.
//
// Parameters:
//   - rows: Predictor rows, one slice per observation
//   - labels: Binary outcomes, 0 or 1
//   - folds: Number of folds per repeat (at least 2, at most len(rows))
//   - repeats: Number of shuffled repeats (at least 1)
//   - rng: Seeded random source for fold assignment
//   - opts: Fit options applied to every per-fold fit
//
// Returns:
//   - CVResult: Per-fold accuracies and summary statistics
//   - error: Validation errors, or any per-fold fit error (a fold that fails
//     to converge fails the whole run rather than being skipped)
func CrossValidate(rows [][]float64, labels []int, folds, repeats int, rng *rand.Rand, opts ...FitOption) (CVResult, error) {
	n := len(rows)
	if n == 0 {
		return CVResult{}, ErrTooFewRows
	}
	if len(labels) != n {
		return CVResult{}, fmt.Errorf("%w: %d rows vs %d labels", ErrDimensionMismatch, n, len(labels))
	}
	if folds < 2 || folds > n {
		return CVResult{}, fmt.Errorf("logit: folds must be in [2, %d], got %d", n, folds)
	}
	if repeats < 1 {
		return CVResult{}, fmt.Errorf("logit: repeats must be at least 1, got %d", repeats)
	}
	if rng == nil {
		return CVResult{}, errors.New("logit: nil random source; pass rand.New(rand.NewSource(seed))")
	}

	result := CVResult{
		Accuracies: make([]float64, 0, folds*repeats),
		Folds:      folds,
		Repeats:    repeats,
	}

	for rep := 0; rep < repeats; rep++ {
		assignment := foldAssignment(n, folds, rng)

		for f := 0; f < folds; f++ {
			trainRows := make([][]float64, 0, n)
			trainLabels := make([]int, 0, n)
			testRows := make([][]float64, 0, n/folds+1)
			testLabels := make([]int, 0, n/folds+1)

			for i := 0; i < n; i++ {
				if assignment[i] == f {
					testRows = append(testRows, rows[i])
					testLabels = append(testLabels, labels[i])
				} else {
					trainRows = append(trainRows, rows[i])
					trainLabels = append(trainLabels, labels[i])
				}
			}

			model, err := Fit(trainRows, trainLabels, opts...)
			if err != nil {
				return CVResult{}, fmt.Errorf("repeat %d, fold %d: %w", rep+1, f+1, err)
			}

			correct := 0
			for i, row := range testRows {
				class, err := model.Classify(row)
				if err != nil {
					return CVResult{}, fmt.Errorf("repeat %d, fold %d: %w", rep+1, f+1, err)
				}
				if class == testLabels[i] {
					correct++
				}
			}
			result.Accuracies = append(result.Accuracies, float64(correct)/float64(len(testRows)))
		}
	}

	return result, nil
}

// foldAssignment shuffles row indices and deals them round-robin so fold
// sizes differ by at most one.
func foldAssignment(n, folds int, rng *rand.Rand) []int {
	assignment := make([]int, n)
	for i, idx := range rng.Perm(n) {
		assignment[idx] = i % folds
	}

	return assignment
}
