package datagen

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// CompressedExt marks lz4-framed output.
const CompressedExt = ".lz4"

// Compressed reports whether path names an lz4-framed dataset.
func Compressed(path string) bool {
	return strings.HasSuffix(path, CompressedExt)
}

// FileSize opens path read-only and returns the offset of its end.
func FileSize(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open for size: %w", err)
	}
	defer f.Close()

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("seek to end: %w", err)
	}
	return size, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

// OpenReader opens a generated dataset for reading, decoding the lz4 frame
// when the path carries CompressedExt.
func OpenReader(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !Compressed(path) {
		return f, nil
	}
	return readCloser{Reader: lz4.NewReader(f), Closer: f}, nil
}
