package compress

// ZstdCompressor provides Zstandard compression for dataset files.
//
// Zstd favors compression ratio over speed, which suits field-survey datasets
// that are archived once and re-read by many analysis runs.
//
// Two implementations back this type, selected at build time:
//   - cgo builds use valyala/gozstd (libzstd bindings)
//   - pure-Go builds use klauspost/compress/zstd
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	codec := NewZstdCompressor()
//	raw, err := codec.Decompress(fileBytes)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
