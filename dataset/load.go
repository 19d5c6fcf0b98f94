package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/fieldstats/morphfit/compress"
	"github.com/fieldstats/morphfit/internal/options"
)

// LoadConfig holds configuration for loading a delimited dataset file.
type LoadConfig struct {
	// Delimiter is the field separator. 0 auto-detects among ',', ';', '\t'.
	Delimiter rune
	// Codec overrides extension-based codec detection when non-zero.
	Codec compress.FileCodec
	// DropMissing drops rows with missing values in the Required columns
	// (all columns when Required is empty) instead of keeping NaN/"".
	DropMissing bool
	// Required lists the columns DropMissing inspects.
	Required []string
}

func defaultLoadConfig() LoadConfig {
	return LoadConfig{}
}

// LoadOption is a functional option for LoadConfig.
type LoadOption = options.Option[*LoadConfig]

// WithDelimiter sets the field delimiter, disabling auto-detection.
func WithDelimiter(d rune) LoadOption {
	return options.NoError(func(cfg *LoadConfig) {
		cfg.Delimiter = d
	})
}

// WithCodec forces a file codec instead of detecting it from the extension.
func WithCodec(c compress.FileCodec) LoadOption {
	return options.NoError(func(cfg *LoadConfig) {
		cfg.Codec = c
	})
}

// WithDropMissing drops rows that have missing values in the given columns.
// With no arguments, every column is inspected.
func WithDropMissing(cols ...string) LoadOption {
	return options.NoError(func(cfg *LoadConfig) {
		cfg.DropMissing = true
		cfg.Required = cols
	})
}

// missingTokens are cell values treated as missing, matching the conventions
// of the survey files this library consumes.
var missingTokens = map[string]bool{"": true, "NA": true, "NaN": true, "nan": true, ".": true}

func isMissing(cell string) bool {
	return missingTokens[strings.TrimSpace(cell)]
}

// Load reads a delimited dataset file into a Table.
//
// The file must have a header row naming the columns. Column types are
// inferred: a column whose every non-missing cell parses as a float becomes
// numeric, anything else becomes a label column. Missing numeric cells load
// as NaN unless WithDropMissing is set.
//
// Compressed files (.zst, .s2, .lz4) are decompressed transparently; see the
// compress package. The xxHash64 fingerprint of the raw on-disk bytes is
// recorded on the returned table.
//
// Parameters:
//   - path: Dataset file path
//   - opts: Optional load configuration
//
// Returns:
//   - *Table: Loaded table
//   - error: I/O, decompression, or parse error; ErrNoRows for empty files
func Load(path string, opts ...LoadOption) (*Table, error) {
	cfg := defaultLoadConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	fingerprint := xxhash.Sum64(raw)

	fileCodec := cfg.Codec
	if fileCodec == 0 {
		fileCodec = compress.Detect(path)
	}
	codec, err := compress.CreateCodec(fileCodec, "dataset")
	if err != nil {
		return nil, err
	}
	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress dataset %s: %w", path, err)
	}

	delim := cfg.Delimiter
	if delim == 0 {
		delim = detectDelimiter(data)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delim
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrNoRows, path)
	}

	header := records[0]
	body := records[1:]

	if cfg.DropMissing {
		body = dropMissingRows(body, header, cfg.Required)
		if len(body) == 0 {
			return nil, fmt.Errorf("%w: %s after dropping missing rows", ErrNoRows, path)
		}
	}

	table := New()
	table.source = path
	table.fingerprint = fingerprint

	for col, name := range header {
		if inferNumeric(body, col) {
			nums := make([]float64, len(body))
			for i, rec := range body {
				if isMissing(rec[col]) {
					nums[i] = math.NaN()
					continue
				}
				nums[i], _ = strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
			}
			if err := table.AddNumeric(name, nums); err != nil {
				return nil, err
			}
			continue
		}

		labels := make([]string, len(body))
		for i, rec := range body {
			if isMissing(rec[col]) {
				continue
			}
			labels[i] = strings.TrimSpace(rec[col])
		}
		if err := table.AddLabels(name, labels); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// detectDelimiter picks the delimiter with the most occurrences in the header
// line, among comma, semicolon and tab. Comma wins ties.
func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}

	best, bestCount := ',', bytes.Count(line, []byte{','})
	for _, d := range []byte{';', '\t'} {
		if c := bytes.Count(line, []byte{d}); c > bestCount {
			best, bestCount = rune(d), c
		}
	}

	return best
}

// inferNumeric reports whether every non-missing cell of the column parses as
// a float. Columns that are entirely missing stay label columns.
func inferNumeric(body [][]string, col int) bool {
	seen := false
	for _, rec := range body {
		if isMissing(rec[col]) {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64); err != nil {
			return false
		}
		seen = true
	}

	return seen
}

func dropMissingRows(body [][]string, header, required []string) [][]string {
	check := make([]int, 0, len(header))
	if len(required) == 0 {
		for i := range header {
			check = append(check, i)
		}
	} else {
		for _, name := range required {
			for i, h := range header {
				if h == name {
					check = append(check, i)
					break
				}
			}
		}
	}

	kept := body[:0:0]
	for _, rec := range body {
		ok := true
		for _, i := range check {
			if isMissing(rec[i]) {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, rec)
		}
	}

	return kept
}
