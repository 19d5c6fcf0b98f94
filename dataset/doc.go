// Package dataset loads delimited survey files into immutable in-memory
// tables with named, typed columns.
//
// A Table is loaded exactly once per analysis run. After loading, the only
// permitted mutation is appending derived columns, which are pure functions
// of the existing cells; nothing ever rewrites a loaded column. Subsets are
// taken with Filter, which copies rows into a fresh table.
//
// # Loading
//
//	t, err := dataset.Load("testdata/lizards.csv",
//	    dataset.WithDropMissing("SV_length", "weight"),
//	)
//	if err != nil {
//	    return err
//	}
//
// Column types are inferred from the data: fully parseable columns become
// numeric (missing cells load as NaN), everything else becomes a label
// column. Compressed files are handled by extension through the compress
// package.
//
// # Derived columns
//
//	err = t.Derive("log_weight", func(r dataset.Row) float64 {
//	    w, _ := r.Value("weight")
//	    return math.Log(w)
//	})
//
// # Reproducibility
//
// Load records the xxHash64 fingerprint of the raw file bytes on the table.
// Filtered subsets keep the fingerprint, so every reported result can be tied
// back to the exact input file that produced it.
package dataset
