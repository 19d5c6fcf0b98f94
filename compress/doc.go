// Package compress provides the codec layer used to read compressed dataset
// files.
//
// Field datasets are often archived compressed. The dataset loader detects the
// codec from the file extension and routes the raw bytes through this package
// before parsing, so callers never deal with compression directly:
//
//	codec, err := compress.CreateCodec(compress.Detect(path), "dataset")
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(fileBytes)
//
// Supported codecs:
//
//   - None: plain files (.csv, .tsv), passed through untouched
//   - Zstd: .zst/.zstd files; best ratio, preferred for archival
//   - S2:   .s2 files; fastest, useful for intermediate data
//   - LZ4:  .lz4 files; standard lz4 frame format
//
// All codecs implement both directions of the Codec interface, so tests and
// tooling can round-trip data through any of them.
package compress
