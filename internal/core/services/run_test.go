package services

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// --- Mock implementations ---

// mockLoader implements driven.CorpusLoader for testing.
type mockLoader struct {
	corpus string
	err    error
	paths  []string
}

func (m *mockLoader) Load(_ context.Context, path string) (string, error) {
	m.paths = append(m.paths, path)
	if m.err != nil {
		return "", m.err
	}
	return m.corpus, nil
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func newTestRunner(t *testing.T, loader *mockLoader, format domain.OutputFormat) *Runner {
	t.Helper()
	r, err := NewRunner(loader, nil, format)
	require.NoError(t, err)
	return r
}

func TestNewRunner_RequiresLoader(t *testing.T) {
	_, err := NewRunner(nil, nil, "")

	assert.Error(t, err)
}

func TestNewRunner_InvalidFormat(t *testing.T) {
	_, err := NewRunner(&mockLoader{}, nil, "xml")

	assert.ErrorIs(t, err, domain.ErrInvalidOutputFormat)
}

func TestRunner_Run_CaseSensitive(t *testing.T) {
	loader := &mockLoader{corpus: testCorpus}
	r := newTestRunner(t, loader, "")
	var out bytes.Buffer

	err := r.Run(context.Background(), &domain.Config{Query: "duct", Path: "poem.txt"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "safe, fast, productive. Pick three.\n", out.String())
	assert.Equal(t, []string{"poem.txt"}, loader.paths)
}

func TestRunner_Run_CaseInsensitive(t *testing.T) {
	r := newTestRunner(t, &mockLoader{corpus: testCorpus}, domain.OutputFormatPlain)
	var out bytes.Buffer

	err := r.Run(context.Background(), &domain.Config{Query: "rUsT", Path: "poem.txt", IgnoreCase: true}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Rust:\nTrust me.\n", out.String())
}

func TestRunner_Run_NoMatches(t *testing.T) {
	r := newTestRunner(t, &mockLoader{corpus: testCorpus}, "")
	var out bytes.Buffer

	err := r.Run(context.Background(), &domain.Config{Query: "zzz_not_present", Path: "poem.txt"}, &out)

	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRunner_Run_LoadError(t *testing.T) {
	r := newTestRunner(t, &mockLoader{err: fs.ErrNotExist}, "")
	var out bytes.Buffer

	err := r.Run(context.Background(), &domain.Config{Query: "duct", Path: "missing.txt"}, &out)

	require.Error(t, err)
	var ioErr *domain.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.Equal(t, "missing.txt", ioErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, out.String(), "nothing is written when the read fails")
}

func TestRunner_Run_WriteError(t *testing.T) {
	r := newTestRunner(t, &mockLoader{corpus: testCorpus}, "")

	err := r.Run(context.Background(), &domain.Config{Query: "t", Path: "poem.txt"}, failingWriter{})

	var ioErr *domain.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "write", ioErr.Op)
}

func TestRunner_Run_CancelledContext(t *testing.T) {
	loader := &mockLoader{corpus: testCorpus}
	r := newTestRunner(t, loader, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx, &domain.Config{Query: "t", Path: "poem.txt"}, &bytes.Buffer{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, loader.paths)
}

func TestRunner_Run_JSON(t *testing.T) {
	r := newTestRunner(t, &mockLoader{corpus: testCorpus}, domain.OutputFormatJSON)
	var out bytes.Buffer

	err := r.Run(context.Background(), &domain.Config{Query: "rUsT", Path: "poem.txt", IgnoreCase: true}, &out)

	require.NoError(t, err)
	assert.JSONEq(t, `[{"line":1,"text":"Rust:"},{"line":4,"text":"Trust me."}]`, out.String())
}

func TestRunner_Run_JSONNoMatchesIsEmptyArray(t *testing.T) {
	r := newTestRunner(t, &mockLoader{corpus: testCorpus}, domain.OutputFormatJSON)
	var out bytes.Buffer

	err := r.Run(context.Background(), &domain.Config{Query: "zzz", Path: "poem.txt"}, &out)

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out.String())
}
