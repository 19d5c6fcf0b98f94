package dataset

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownColumn is returned when a named column does not exist.
	ErrUnknownColumn = errors.New("dataset: unknown column")
	// ErrDuplicateColumn is returned when adding a column whose name is taken.
	ErrDuplicateColumn = errors.New("dataset: duplicate column")
	// ErrColumnType is returned when a column holds the wrong kind of values.
	ErrColumnType = errors.New("dataset: column type mismatch")
	// ErrLengthMismatch is returned when a column's length differs from the table's.
	ErrLengthMismatch = errors.New("dataset: column length mismatch")
	// ErrNoRows is returned when a file or table contains no data rows.
	ErrNoRows = errors.New("dataset: no data rows")
)

// ColumnType distinguishes numeric columns from categorical label columns.
type ColumnType uint8

const (
	// TypeNumeric represents a float64 column. Missing values are NaN.
	TypeNumeric ColumnType = iota + 1
	// TypeLabel represents a string column. Missing values are empty strings.
	TypeLabel
)

// String returns the string representation of the column type.
func (ct ColumnType) String() string {
	switch ct {
	case TypeNumeric:
		return "numeric"
	case TypeLabel:
		return "label"
	default:
		return "unknown"
	}
}

type column struct {
	name   string
	typ    ColumnType
	nums   []float64
	labels []string
}

// Table is an ordered collection of rows with named, typed columns.
//
// A Table is loaded (or built) once and never mutated afterwards, except for
// appending derived columns. Derived and filtered views copy data, so no two
// tables share mutable state.
type Table struct {
	source      string
	fingerprint uint64
	rows        int
	hasRows     bool
	cols        []column
	index       map[string]int
}

// New creates an empty table. The first column added fixes the row count.
func New() *Table {
	return &Table{index: make(map[string]int)}
}

// Source returns the file path the table was loaded from, or "" for tables
// built in memory.
func (t *Table) Source() string { return t.source }

// Fingerprint returns the xxHash64 of the raw file bytes the table was loaded
// from. It is 0 for tables built in memory, and is carried unchanged through
// Filter so derived analyses can be traced back to their input file.
func (t *Table) Fingerprint() uint64 { return t.fingerprint }

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int { return t.rows }

// Columns returns the column names in their original order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}

	return names
}

// Has reports whether the table contains the named column.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Type returns the type of the named column.
func (t *Table) Type(name string) (ColumnType, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}

	return t.cols[i].typ, nil
}

// AddNumeric appends a numeric column with the given values.
//
// The value slice is copied. The first column added to an empty table fixes
// the table's row count; later columns must match it.
func (t *Table) AddNumeric(name string, values []float64) error {
	if err := t.checkNewColumn(name, len(values)); err != nil {
		return err
	}

	nums := make([]float64, len(values))
	copy(nums, values)
	t.appendColumn(column{name: name, typ: TypeNumeric, nums: nums})

	return nil
}

// AddLabels appends a label column with the given values.
//
// The value slice is copied. The first column added to an empty table fixes
// the table's row count; later columns must match it.
func (t *Table) AddLabels(name string, values []string) error {
	if err := t.checkNewColumn(name, len(values)); err != nil {
		return err
	}

	labels := make([]string, len(values))
	copy(labels, values)
	t.appendColumn(column{name: name, typ: TypeLabel, labels: labels})

	return nil
}

func (t *Table) checkNewColumn(name string, n int) error {
	if _, exists := t.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	if t.hasRows && n != t.rows {
		return fmt.Errorf("%w: column %q has %d values, table has %d rows",
			ErrLengthMismatch, name, n, t.rows)
	}

	return nil
}

func (t *Table) appendColumn(c column) {
	if !t.hasRows {
		if c.typ == TypeNumeric {
			t.rows = len(c.nums)
		} else {
			t.rows = len(c.labels)
		}
		t.hasRows = true
	}
	t.index[c.name] = len(t.cols)
	t.cols = append(t.cols, c)
}

// Numeric returns a copy of the named numeric column.
//
// Missing values appear as NaN; it is the fitters' job to reject them.
func (t *Table) Numeric(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if t.cols[i].typ != TypeNumeric {
		return nil, fmt.Errorf("%w: %q is %s, want numeric", ErrColumnType, name, t.cols[i].typ)
	}

	out := make([]float64, t.rows)
	copy(out, t.cols[i].nums)

	return out, nil
}

// Labels returns a copy of the named label column.
func (t *Table) Labels(name string) ([]string, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if t.cols[i].typ != TypeLabel {
		return nil, fmt.Errorf("%w: %q is %s, want label", ErrColumnType, name, t.cols[i].typ)
	}

	out := make([]string, t.rows)
	copy(out, t.cols[i].labels)

	return out, nil
}

// Pair returns copies of two numeric columns, for predictor/response pairs.
func (t *Table) Pair(xName, yName string) (xs, ys []float64, err error) {
	xs, err = t.Numeric(xName)
	if err != nil {
		return nil, nil, err
	}
	ys, err = t.Numeric(yName)
	if err != nil {
		return nil, nil, err
	}

	return xs, ys, nil
}

// Row is a read-only view of a single table row.
type Row struct {
	t *Table
	i int
}

// Index returns the row's position in the table.
func (r Row) Index() int { return r.i }

// Value returns the named numeric cell. ok is false if the column does not
// exist or is not numeric; a missing value is returned as NaN with ok true.
func (r Row) Value(name string) (v float64, ok bool) {
	i, exists := r.t.index[name]
	if !exists || r.t.cols[i].typ != TypeNumeric {
		return math.NaN(), false
	}

	return r.t.cols[i].nums[r.i], true
}

// Label returns the named label cell. ok is false if the column does not
// exist or is not a label column.
func (r Row) Label(name string) (s string, ok bool) {
	i, exists := r.t.index[name]
	if !exists || r.t.cols[i].typ != TypeLabel {
		return "", false
	}

	return r.t.cols[i].labels[r.i], true
}

// Row returns a view of row i. It panics if i is out of range, matching slice
// indexing semantics.
func (t *Table) Row(i int) Row {
	if i < 0 || i >= t.rows {
		panic(fmt.Sprintf("dataset: row index %d out of range [0,%d)", i, t.rows))
	}

	return Row{t: t, i: i}
}

// Derive appends a numeric column computed per-row by fn.
//
// fn must be a pure function of the row's existing cells; existing columns are
// never modified. The error cases are a duplicate name or fn being nil.
func (t *Table) Derive(name string, fn func(Row) float64) error {
	if fn == nil {
		return errors.New("dataset: nil derive function")
	}
	if _, exists := t.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}

	nums := make([]float64, t.rows)
	for i := range nums {
		nums[i] = fn(Row{t: t, i: i})
	}
	t.appendColumn(column{name: name, typ: TypeNumeric, nums: nums})

	return nil
}

// DeriveLabel appends a label column computed per-row by fn.
func (t *Table) DeriveLabel(name string, fn func(Row) string) error {
	if fn == nil {
		return errors.New("dataset: nil derive function")
	}
	if _, exists := t.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}

	labels := make([]string, t.rows)
	for i := range labels {
		labels[i] = fn(Row{t: t, i: i})
	}
	t.appendColumn(column{name: name, typ: TypeLabel, labels: labels})

	return nil
}

// Filter returns a new table holding the rows for which pred returns true.
//
// The result copies its data and keeps the source path and fingerprint of the
// original, since it still describes the same input file.
func (t *Table) Filter(pred func(Row) bool) *Table {
	keep := make([]int, 0, t.rows)
	for i := 0; i < t.rows; i++ {
		if pred(Row{t: t, i: i}) {
			keep = append(keep, i)
		}
	}

	out := &Table{
		source:      t.source,
		fingerprint: t.fingerprint,
		rows:        len(keep),
		hasRows:     true,
		index:       make(map[string]int, len(t.cols)),
	}
	for _, c := range t.cols {
		nc := column{name: c.name, typ: c.typ}
		if c.typ == TypeNumeric {
			nc.nums = make([]float64, len(keep))
			for j, i := range keep {
				nc.nums[j] = c.nums[i]
			}
		} else {
			nc.labels = make([]string, len(keep))
			for j, i := range keep {
				nc.labels[j] = c.labels[i]
			}
		}
		out.index[nc.name] = len(out.cols)
		out.cols = append(out.cols, nc)
	}

	return out
}
