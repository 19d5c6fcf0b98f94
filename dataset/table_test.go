package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T) *Table {
	t.Helper()
	table := New()
	require.NoError(t, table.AddLabels("spp", []string{"CNTI", "UTST", "CNTI"}))
	require.NoError(t, table.AddNumeric("length", []float64{62.1, 58.4, 71.0}))
	require.NoError(t, table.AddNumeric("weight", []float64{9.3, 7.7, 13.2}))

	return table
}

func TestAddColumn_Validation(t *testing.T) {
	table := buildTable(t)

	err := table.AddNumeric("length", []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrDuplicateColumn)

	err = table.AddNumeric("tail", []float64{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestDerive_PureFunctionOfRow(t *testing.T) {
	table := buildTable(t)

	err := table.Derive("log_weight", func(r Row) float64 {
		w, ok := r.Value("weight")
		require.True(t, ok)
		return math.Log(w)
	})
	require.NoError(t, err)

	logs, err := table.Numeric("log_weight")
	require.NoError(t, err)
	require.InDelta(t, math.Log(9.3), logs[0], 1e-12)

	// Source column untouched.
	weights, err := table.Numeric("weight")
	require.NoError(t, err)
	require.Equal(t, []float64{9.3, 7.7, 13.2}, weights)

	// Derived names cannot collide.
	err = table.Derive("log_weight", func(Row) float64 { return 0 })
	require.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestDeriveLabel(t *testing.T) {
	table := buildTable(t)

	err := table.DeriveLabel("size_class", func(r Row) string {
		l, _ := r.Value("length")
		if l >= 65 {
			return "large"
		}
		return "small"
	})
	require.NoError(t, err)

	classes, err := table.Labels("size_class")
	require.NoError(t, err)
	require.Equal(t, []string{"small", "small", "large"}, classes)
}

func TestFilter(t *testing.T) {
	table := buildTable(t)

	sub := table.Filter(func(r Row) bool {
		s, _ := r.Label("spp")
		return s == "CNTI"
	})

	require.Equal(t, 2, sub.NumRows())
	require.Equal(t, table.Columns(), sub.Columns())
	require.Equal(t, table.Fingerprint(), sub.Fingerprint())

	weights, err := sub.Numeric("weight")
	require.NoError(t, err)
	require.Equal(t, []float64{9.3, 13.2}, weights)

	// The subset is an independent copy.
	empty := table.Filter(func(Row) bool { return false })
	require.Equal(t, 0, empty.NumRows())
	require.Equal(t, 3, table.NumRows())
}

func TestRow_Access(t *testing.T) {
	table := buildTable(t)
	row := table.Row(1)

	v, ok := row.Value("length")
	require.True(t, ok)
	require.Equal(t, 58.4, v)

	_, ok = row.Value("spp")
	require.False(t, ok, "label column is not numeric")

	s, ok := row.Label("spp")
	require.True(t, ok)
	require.Equal(t, "UTST", s)

	require.Panics(t, func() { table.Row(3) })
}

func TestPair(t *testing.T) {
	table := buildTable(t)

	xs, ys, err := table.Pair("length", "weight")
	require.NoError(t, err)
	require.Len(t, xs, 3)
	require.Len(t, ys, 3)

	_, _, err = table.Pair("length", "girth")
	require.ErrorIs(t, err, ErrUnknownColumn)
}
