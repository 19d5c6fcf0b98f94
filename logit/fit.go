package logit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fieldstats/morphfit/internal/options"
)

// FitConfig holds configuration for the maximum-likelihood fit.
type FitConfig struct {
	// MaxIterations caps the IRLS iterations.
	MaxIterations int
	// Tolerance is the convergence threshold on the coefficient step.
	Tolerance float64
	// Names optionally names the predictors for the coefficient table.
	Names []string
}

func defaultFitConfig() FitConfig {
	return FitConfig{MaxIterations: 25, Tolerance: 1e-8}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithMaxIterations caps the IRLS iterations.
func WithMaxIterations(n int) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if n <= 0 {
			return fmt.Errorf("logit: max iterations must be positive, got %d", n)
		}
		cfg.MaxIterations = n

		return nil
	})
}

// WithTolerance sets the convergence threshold on the coefficient step.
func WithTolerance(tol float64) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if tol <= 0 {
			return fmt.Errorf("logit: tolerance must be positive, got %v", tol)
		}
		cfg.Tolerance = tol

		return nil
	})
}

// WithNames names the predictor columns for the coefficient table.
func WithNames(names ...string) FitOption {
	return options.NoError(func(cfg *FitConfig) {
		cfg.Names = names
	})
}

// minWeight floors the IRLS working weights so fitted probabilities pinned at
// 0 or 1 cannot zero out the weighted system.
const minWeight = 1e-10

// Fit estimates a binomial logistic regression by maximum likelihood.
//
// The estimates come from iteratively reweighted least squares: each step
// solves the weighted normal equations (XᵀWX)δ = Xᵀ(y−μ) and converges when
// the step is below the tolerance. Standard errors are the square roots of
// the diagonal of (XᵀWX)⁻¹ at the solution; z and p-values use the normal
// approximation.
//
// Parameters:
//   - rows: Predictor rows, one slice per observation, without intercept
//   - labels: Binary outcomes, 0 or 1, one per row
//   - opts: Optional fit configuration
//
// Returns:
//   - *Model: Fitted coefficients with inference
//   - error: Validation errors, or ErrNoConverge when IRLS hits the iteration
//     cap or the weighted system is singular (e.g. separable classes); a
//     convergence failure is never silently swallowed
func Fit(rows [][]float64, labels []int, opts ...FitOption) (*Model, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	n := len(rows)
	if n == 0 {
		return nil, ErrTooFewRows
	}
	p := len(rows[0])
	if p == 0 {
		return nil, fmt.Errorf("%w: rows have no predictors", ErrDimensionMismatch)
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%w: %d rows vs %d labels", ErrDimensionMismatch, n, len(labels))
	}
	if n < p+2 {
		return nil, fmt.Errorf("%w: %d rows for %d predictors", ErrTooFewRows, n, p)
	}
	if cfg.Names != nil && len(cfg.Names) != p {
		return nil, fmt.Errorf("%w: %d names for %d predictors", ErrDimensionMismatch, len(cfg.Names), p)
	}

	design := mat.NewDense(n, p+1, nil)
	y := make([]float64, n)
	for i, row := range rows {
		if len(row) != p {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrDimensionMismatch, i, len(row), p)
		}
		design.Set(i, 0, 1)
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: row %d, predictor %d", ErrMissingValue, i, j)
			}
			design.Set(i, j+1, v)
		}
		switch labels[i] {
		case 0, 1:
			y[i] = float64(labels[i])
		default:
			return nil, fmt.Errorf("%w: row %d has label %d", ErrBadLabel, i, labels[i])
		}
	}

	beta := mat.NewVecDense(p+1, nil)
	mu := make([]float64, n)
	w := make([]float64, n)
	ymu := mat.NewVecDense(n, nil)

	converged := false
	iterations := 0
	for it := 1; it <= cfg.MaxIterations; it++ {
		iterations = it

		var eta mat.VecDense
		eta.MulVec(design, beta)
		for i := 0; i < n; i++ {
			mu[i] = sigmoid(eta.AtVec(i))
			w[i] = math.Max(mu[i]*(1-mu[i]), minWeight)
			ymu.SetVec(i, y[i]-mu[i])
		}

		xtwx := weightedNormalMatrix(design, w)

		var grad mat.VecDense
		grad.MulVec(design.T(), ymu)

		var step mat.VecDense
		if err := step.SolveVec(xtwx, &grad); err != nil {
			return nil, fmt.Errorf("%w: singular weighted system at iteration %d (separable classes?): %v",
				ErrNoConverge, it, err)
		}

		beta.AddVec(beta, &step)

		if maxAbs(&step) < cfg.Tolerance {
			converged = true
			break
		}
	}

	if !converged {
		return nil, fmt.Errorf("%w: no convergence after %d iterations", ErrNoConverge, iterations)
	}

	return buildModel(design, beta, y, cfg, iterations)
}

// weightedNormalMatrix computes XᵀWX for diagonal weights w.
func weightedNormalMatrix(design *mat.Dense, w []float64) *mat.Dense {
	n, _ := design.Dims()
	var xtw mat.Dense
	xtw.Mul(design.T(), mat.NewDiagDense(n, w))

	var xtwx mat.Dense
	xtwx.Mul(&xtw, design)

	return &xtwx
}

func maxAbs(v *mat.VecDense) float64 {
	m := 0.0
	for i := 0; i < v.Len(); i++ {
		if a := math.Abs(v.AtVec(i)); a > m {
			m = a
		}
	}

	return m
}

func buildModel(design *mat.Dense, beta *mat.VecDense, y []float64, cfg FitConfig, iterations int) (*Model, error) {
	n, cols := design.Dims()
	p := cols - 1

	// Covariance is (XᵀWX)⁻¹ at the solution.
	var eta mat.VecDense
	eta.MulVec(design, beta)

	w := make([]float64, n)
	logLik := 0.0
	for i := 0; i < n; i++ {
		mui := sigmoid(eta.AtVec(i))
		w[i] = math.Max(mui*(1-mui), minWeight)

		// Clamp to keep the log finite when probabilities saturate.
		mui = math.Min(math.Max(mui, 1e-15), 1-1e-15)
		if y[i] == 1 {
			logLik += math.Log(mui)
		} else {
			logLik += math.Log(1 - mui)
		}
	}

	var cov mat.Dense
	if err := cov.Inverse(weightedNormalMatrix(design, w)); err != nil {
		return nil, fmt.Errorf("%w: singular information matrix at solution: %v", ErrNoConverge, err)
	}

	names := cfg.Names
	if names == nil {
		names = make([]string, p)
		for j := range names {
			names[j] = fmt.Sprintf("x%d", j+1)
		}
	}

	coeffs := make([]Coefficient, p+1)
	for j := 0; j <= p; j++ {
		name := "(Intercept)"
		if j > 0 {
			name = names[j-1]
		}
		value := beta.AtVec(j)
		se := math.Sqrt(cov.At(j, j))
		z := value / se
		coeffs[j] = Coefficient{
			Name:   name,
			Value:  value,
			StdErr: se,
			ZValue: z,
			PValue: 2 * distuv.UnitNormal.Survival(math.Abs(z)),
		}
	}

	return &Model{
		Coefficients:  coeffs,
		LogLikelihood: logLik,
		Iterations:    iterations,
		N:             n,
	}, nil
}
