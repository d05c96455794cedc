package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.CorpusLoader = (*Loader)(nil)

var (
	// ErrIsDirectory indicates the path names a directory.
	ErrIsDirectory = errors.New("is a directory")

	// ErrInvalidEncoding indicates the file is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Loader reads a whole file into memory as UTF-8 text.
type Loader struct{}

// NewLoader creates a new filesystem corpus loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load opens path, reads it to completion and closes it.
// A leading UTF-8 byte order mark is dropped.
func (l *Loader) Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrIsDirectory
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}
