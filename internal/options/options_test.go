package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fitConfig mimics the shape of the fitter configs built on this package.
type fitConfig struct {
	MaxIterations int
	Tolerance     float64
	Label         string
}

func withMaxIterations(n int) Option[*fitConfig] {
	return New(func(c *fitConfig) error {
		if n <= 0 {
			return errors.New("max iterations must be positive")
		}
		c.MaxIterations = n

		return nil
	})
}

func withTolerance(tol float64) Option[*fitConfig] {
	return NoError(func(c *fitConfig) {
		c.Tolerance = tol
	})
}

func TestApply_Order(t *testing.T) {
	cfg := &fitConfig{MaxIterations: 25, Tolerance: 1e-8}

	err := Apply(cfg,
		withMaxIterations(100),
		withTolerance(1e-10),
		NoError(func(c *fitConfig) { c.Label = "refit" }),
	)
	require.NoError(t, err)
	require.Equal(t, 100, cfg.MaxIterations)
	require.Equal(t, 1e-10, cfg.Tolerance)
	require.Equal(t, "refit", cfg.Label)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &fitConfig{}

	err := Apply(cfg,
		withTolerance(1e-6),
		withMaxIterations(-1),
		NoError(func(c *fitConfig) { c.Label = "unreached" }),
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be positive")
	require.Equal(t, 1e-6, cfg.Tolerance)
	require.Empty(t, cfg.Label)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &fitConfig{MaxIterations: 3}
	require.NoError(t, Apply(cfg))
	require.Equal(t, 3, cfg.MaxIterations)
}

func TestOption_DifferentTargetTypes(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 7 })
	require.NoError(t, Apply(&n, opt))
	require.Equal(t, 7, n)
}
