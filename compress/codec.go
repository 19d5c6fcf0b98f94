package compress

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileCodec identifies the compression applied to a dataset file on disk.
type FileCodec uint8

const (
	CodecNone FileCodec = 0x1 // CodecNone represents an uncompressed file.
	CodecZstd FileCodec = 0x2 // CodecZstd represents Zstandard compression.
	CodecS2   FileCodec = 0x3 // CodecS2 represents S2 compression.
	CodecLZ4  FileCodec = 0x4 // CodecLZ4 represents LZ4 frame compression.
)

// String returns the string representation of the file codec.
func (c FileCodec) String() string {
	switch c {
	case CodecNone:
		return "None"
	case CodecZstd:
		return "Zstd"
	case CodecS2:
		return "S2"
	case CodecLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a complete in-memory payload.
//
// Dataset files are small enough to process whole, so the interface works on
// byte slices rather than streams.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a complete in-memory payload.
//
// The input must have been produced by the matching Compressor. Corrupted or
// mismatched input is reported as an error, never returned as garbage data.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original bytes.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Detect infers the file codec from a path's extension.
//
// Recognized extensions are ".zst"/".zstd" (Zstd), ".s2" (S2) and ".lz4" (LZ4).
// Anything else, including plain ".csv" and ".tsv", maps to CodecNone.
//
// Parameters:
//   - path: File path to inspect
//
// Returns:
//   - FileCodec: Detected codec for the path
func Detect(path string) FileCodec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CodecZstd
	case ".s2":
		return CodecS2
	case ".lz4":
		return CodecLZ4
	default:
		return CodecNone
	}
}

// CreateCodec is a factory function that creates a Codec for the given file codec.
//
// Parameters:
//   - codec: File codec (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid codec error
func CreateCodec(codec FileCodec, target string) (Codec, error) {
	switch codec {
	case CodecNone:
		return NewNoOpCompressor(), nil
	case CodecZstd:
		return NewZstdCompressor(), nil
	case CodecS2:
		return NewS2Compressor(), nil
	case CodecLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s codec: %s", target, codec)
	}
}
