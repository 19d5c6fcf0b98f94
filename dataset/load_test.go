package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldstats/morphfit/compress"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const lizardCSV = `spp,sex,SV_length,weight
CNTI,M,62.1,9.3
UTST,F,58.4,7.7
CNTI,F,71.0,13.2
UTST,M,NA,6.1
`

func TestLoad_TypesAndValues(t *testing.T) {
	path := writeFile(t, "lizards.csv", lizardCSV)

	table, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, table.NumRows())
	require.Equal(t, []string{"spp", "sex", "SV_length", "weight"}, table.Columns())

	typ, err := table.Type("spp")
	require.NoError(t, err)
	require.Equal(t, TypeLabel, typ)

	typ, err = table.Type("weight")
	require.NoError(t, err)
	require.Equal(t, TypeNumeric, typ)

	weights, err := table.Numeric("weight")
	require.NoError(t, err)
	require.Equal(t, []float64{9.3, 7.7, 13.2, 6.1}, weights)

	lengths, err := table.Numeric("SV_length")
	require.NoError(t, err)
	require.True(t, math.IsNaN(lengths[3]), "missing cell should load as NaN")

	spp, err := table.Labels("spp")
	require.NoError(t, err)
	require.Equal(t, []string{"CNTI", "UTST", "CNTI", "UTST"}, spp)
}

func TestLoad_DropMissing(t *testing.T) {
	path := writeFile(t, "lizards.csv", lizardCSV)

	table, err := Load(path, WithDropMissing("SV_length", "weight"))
	require.NoError(t, err)
	require.Equal(t, 3, table.NumRows())

	lengths, err := table.Numeric("SV_length")
	require.NoError(t, err)
	for _, v := range lengths {
		require.False(t, math.IsNaN(v))
	}
}

func TestLoad_TabDelimited(t *testing.T) {
	path := writeFile(t, "palmetto.tsv", "species\theight\nrepens\t12.5\netonia\t20.1\n")

	table, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, table.NumRows())

	heights, err := table.Numeric("height")
	require.NoError(t, err)
	require.Equal(t, []float64{12.5, 20.1}, heights)
}

func TestLoad_Compressed(t *testing.T) {
	codec := compress.NewZstdCompressor()
	compressed, err := codec.Compress([]byte(lizardCSV))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lizards.csv.zst")
	require.NoError(t, os.WriteFile(path, compressed, 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, table.NumRows())

	// Fingerprint covers the on-disk (compressed) bytes.
	require.NotZero(t, table.Fingerprint())
}

func TestLoad_FingerprintStable(t *testing.T) {
	path := writeFile(t, "lizards.csv", lizardCSV)

	a, err := Load(path)
	require.NoError(t, err)
	b, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	other := writeFile(t, "other.csv", lizardCSV+"CNTI,M,66.0,10.8\n")
	c, err := Load(other)
	require.NoError(t, err)
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestLoad_EmptyAndMissingFiles(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	path := writeFile(t, "empty.csv", "spp,weight\n")
	_, err = Load(path)
	require.ErrorIs(t, err, ErrNoRows)
}

func TestLoad_RaggedRecords(t *testing.T) {
	path := writeFile(t, "ragged.csv", "a,b\n1,2\n3\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_AllMissingColumnStaysLabel(t *testing.T) {
	path := writeFile(t, "gaps.csv", "a,b\n1,NA\n2,NA\n")

	table, err := Load(path)
	require.NoError(t, err)

	typ, err := table.Type("b")
	require.NoError(t, err)
	require.Equal(t, TypeLabel, typ)
}

func TestDetectDelimiter(t *testing.T) {
	require.Equal(t, ',', detectDelimiter([]byte("a,b,c\n1,2,3")))
	require.Equal(t, '\t', detectDelimiter([]byte("a\tb\tc\n")))
	require.Equal(t, ';', detectDelimiter([]byte("a;b;c")))
	require.Equal(t, ',', detectDelimiter([]byte("single")))
}

func TestLoad_UnknownColumnErrors(t *testing.T) {
	path := writeFile(t, "lizards.csv", lizardCSV)

	table, err := Load(path)
	require.NoError(t, err)

	_, err = table.Numeric("tail_length")
	require.True(t, errors.Is(err, ErrUnknownColumn))

	_, err = table.Numeric("spp")
	require.True(t, errors.Is(err, ErrColumnType))
}
