package logit

import "fmt"

// ClassCount holds the confusion counts for one true class.
type ClassCount struct {
	// Class is the true class name.
	Class string
	// Correct is the number of rows of this class classified correctly.
	Correct int
	// Wrong is the number of rows of this class classified incorrectly.
	Wrong int
}

// Total returns the number of classified rows of this class.
func (c ClassCount) Total() int {
	return c.Correct + c.Wrong
}

// PercentCorrect returns the fraction of this class classified correctly,
// in [0, 1]. It is 0 for a class with no rows.
func (c ClassCount) PercentCorrect() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}

	return float64(c.Correct) / float64(total)
}

// ConfusionByClass tallies correct and incorrect classifications grouped by
// the true class name.
//
// classes names the true class of each row (e.g. the species), and yTrue and
// yPred are the binary encodings of truth and prediction. Classes appear in
// the result in first-appearance order, and each class's counts sum to its
// row total.
func ConfusionByClass(classes []string, yTrue, yPred []int) ([]ClassCount, error) {
	n := len(classes)
	if n == 0 {
		return nil, ErrTooFewRows
	}
	if len(yTrue) != n || len(yPred) != n {
		return nil, fmt.Errorf("%w: %d classes, %d true labels, %d predictions",
			ErrDimensionMismatch, n, len(yTrue), len(yPred))
	}

	index := make(map[string]int)
	var counts []ClassCount
	for i := 0; i < n; i++ {
		j, ok := index[classes[i]]
		if !ok {
			j = len(counts)
			index[classes[i]] = j
			counts = append(counts, ClassCount{Class: classes[i]})
		}
		if yTrue[i] == yPred[i] {
			counts[j].Correct++
		} else {
			counts[j].Wrong++
		}
	}

	return counts, nil
}
