package allometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fieldstats/morphfit/internal/options"
)

// FitConfig holds configuration for the nonlinear least-squares fit.
type FitConfig struct {
	// Start seeds the solver. Nil computes StartingValues from the data.
	Start *Curve
	// MaxIterations caps the solver's major iterations.
	MaxIterations int
	// GradientTolerance overrides the solver's convergence threshold on the
	// SSR gradient norm. 0 keeps the solver default.
	GradientTolerance float64
}

func defaultFitConfig() FitConfig {
	return FitConfig{MaxIterations: 200}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithStart seeds the solver with explicit starting parameters instead of the
// log-linearized starting values. Re-fitting a filtered subset from the full
// population's starting values uses this.
func WithStart(a, b float64) FitOption {
	return options.NoError(func(cfg *FitConfig) {
		cfg.Start = &Curve{A: a, B: b}
	})
}

// WithMaxIterations caps the solver's major iterations.
func WithMaxIterations(n int) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if n <= 0 {
			return fmt.Errorf("allometry: max iterations must be positive, got %d", n)
		}
		cfg.MaxIterations = n

		return nil
	})
}

// WithGradientTolerance sets the convergence threshold on the SSR gradient.
func WithGradientTolerance(tol float64) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if tol <= 0 {
			return fmt.Errorf("allometry: gradient tolerance must be positive, got %v", tol)
		}
		cfg.GradientTolerance = tol

		return nil
	})
}

// Fit estimates the power curve W = a*L^b by nonlinear least squares.
//
// The solver minimizes the sum of squared residuals on the original (not
// log-transformed) scale, seeded from StartingValues unless WithStart is
// given. Standard errors and two-sided p-values come from the asymptotic
// normal approximation using the Jacobian-based covariance at the solution,
// on n-2 degrees of freedom.
//
// Parameters:
//   - lengths: Snout-vent lengths, all positive
//   - weights: Observed weights, all positive
//   - opts: Optional fit configuration
//
// Returns:
//   - *FitResult: Fitted parameters, inference, and training RMSE
//   - error: Validation errors, or ErrNoConverge if the solver fails; a
//     non-converged fit never yields a silently wrong estimate
func Fit(lengths, weights []float64, opts ...FitOption) (*FitResult, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if err := validate(lengths, weights); err != nil {
		return nil, err
	}

	var a0, b0 float64
	if cfg.Start != nil {
		a0, b0 = cfg.Start.A, cfg.Start.B
	} else {
		var err error
		a0, b0, err = StartingValues(lengths, weights)
		if err != nil {
			return nil, err
		}
	}

	n := len(lengths)

	// Sum of squared residuals and its analytic gradient in (a, b).
	ssr := func(p []float64) float64 {
		a, b := p[0], p[1]
		sum := 0.0
		for i := 0; i < n; i++ {
			r := weights[i] - a*math.Pow(lengths[i], b)
			sum += r * r
		}
		return sum
	}
	grad := func(g, p []float64) {
		a, b := p[0], p[1]
		g[0], g[1] = 0, 0
		for i := 0; i < n; i++ {
			lb := math.Pow(lengths[i], b)
			r := weights[i] - a*lb
			g[0] -= 2 * r * lb
			g[1] -= 2 * r * a * lb * math.Log(lengths[i])
		}
	}

	problem := optimize.Problem{Func: ssr, Grad: grad}
	settings := &optimize.Settings{MajorIterations: cfg.MaxIterations}
	if cfg.GradientTolerance > 0 {
		settings.GradientThreshold = cfg.GradientTolerance
	}

	result, err := optimize.Minimize(problem, []float64{a0, b0}, settings, &optimize.BFGS{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConverge, err)
	}
	if result.Status == optimize.IterationLimit || result.Status == optimize.Failure {
		return nil, fmt.Errorf("%w: stopped with status %v after %d iterations",
			ErrNoConverge, result.Status, result.Stats.MajorIterations)
	}

	a, b := result.X[0], result.X[1]
	if math.IsNaN(a) || math.IsNaN(b) {
		return nil, fmt.Errorf("%w: solver produced NaN parameters", ErrNoConverge)
	}

	return buildResult(lengths, weights, Curve{A: a, B: b}, result.Stats.MajorIterations)
}

// buildResult computes the asymptotic inference and RMSE at the solution.
func buildResult(lengths, weights []float64, c Curve, iterations int) (*FitResult, error) {
	n := len(lengths)

	// Jacobian of the model function at the solution: columns d/da and d/db.
	jac := mat.NewDense(n, 2, nil)
	ssr := 0.0
	for i := 0; i < n; i++ {
		lb := math.Pow(lengths[i], c.B)
		jac.Set(i, 0, lb)
		jac.Set(i, 1, c.A*lb*math.Log(lengths[i]))
		r := weights[i] - c.A*lb
		ssr += r * r
	}

	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)

	var inv mat.Dense
	if err := inv.Inverse(&jtj); err != nil {
		return nil, fmt.Errorf("%w: singular curvature at solution: %v", ErrNoConverge, err)
	}

	df := float64(n - 2)
	sigma2 := ssr / df
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	estimate := func(value, variance float64) ParamEstimate {
		se := math.Sqrt(sigma2 * variance)
		tv := value / se
		return ParamEstimate{
			Value:  value,
			StdErr: se,
			TValue: tv,
			PValue: 2 * (1 - dist.CDF(math.Abs(tv))),
		}
	}

	return &FitResult{
		Curve:      c,
		A:          estimate(c.A, inv.At(0, 0)),
		B:          estimate(c.B, inv.At(1, 1)),
		RMSE:       math.Sqrt(ssr / float64(n)),
		N:          n,
		Iterations: iterations,
	}, nil
}
