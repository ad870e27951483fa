package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/histo/format"
)

// DetectCompression infers the input compression from the file extension.
// Unknown extensions read as plain text.
func DetectCompression(path string) format.Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return format.CompressionGzip
	case ".zst", ".zstd":
		return format.CompressionZstd
	case ".s2":
		return format.CompressionS2
	case ".lz4":
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}

// NewDecompressor wraps r in a streaming decoder for the given compression.
//
// Returns:
//   - io.ReadCloser: The wrapped reader. Closing it releases decoder
//     resources but not the underlying reader.
//   - error: Header validation errors from the codec, or an unsupported
//     compression type.
func NewDecompressor(r io.Reader, compression format.Compression) (io.ReadCloser, error) {
	switch compression {
	case format.CompressionNone:
		return io.NopCloser(r), nil
	case format.CompressionGzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip input: %w", err)
		}

		return gr, nil
	case format.CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd input: %w", err)
		}

		return zr.IOReadCloser(), nil
	case format.CompressionS2:
		return io.NopCloser(s2.NewReader(r)), nil
	case format.CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported input compression: %s", compression)
	}
}

// Open opens path for reading with transparent decompression chosen by
// extension. The path "-" (or an empty path) reads stdin as-is.
//
// Returns:
//   - io.ReadCloser: Closing it closes both the decoder and the file.
//   - error: File open errors or codec header errors.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	rc, err := NewDecompressor(f, DetectCompression(path))
	if err != nil {
		f.Close()

		return nil, err
	}

	return &fileReader{rc: rc, f: f}, nil
}

// fileReader pairs a decompressor with the file it drains so that a single
// Close releases both.
type fileReader struct {
	rc io.ReadCloser
	f  *os.File
}

func (r *fileReader) Read(p []byte) (int, error) {
	return r.rc.Read(p)
}

func (r *fileReader) Close() error {
	rcErr := r.rc.Close()
	fErr := r.f.Close()
	if rcErr != nil {
		return rcErr
	}

	return fErr
}
