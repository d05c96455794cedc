package services

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// Ensure Runner implements the interface.
var _ driving.Runner = (*Runner)(nil)

// Runner wires the corpus loader, the search service and the output.
type Runner struct {
	loader   driven.CorpusLoader
	searcher driving.SearchService
	format   domain.OutputFormat
}

// NewRunner creates a runner. A nil searcher uses SearchService and an
// empty format means plain output.
func NewRunner(loader driven.CorpusLoader, searcher driving.SearchService, format domain.OutputFormat) (*Runner, error) {
	if loader == nil {
		return nil, errors.New("corpus loader is required")
	}
	if searcher == nil {
		searcher = NewSearchService()
	}
	if format == "" {
		format = domain.OutputFormatPlain
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidOutputFormat, format)
	}
	return &Runner{
		loader:   loader,
		searcher: searcher,
		format:   format,
	}, nil
}

// Run reads cfg.Path, searches it and writes the matches to w.
// The corpus is fully loaded before anything is written, so a read
// failure produces no output.
func (r *Runner) Run(ctx context.Context, cfg *domain.Config, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Section("Load")
	logger.Debug("path=%s", cfg.Path)

	corpus, err := r.loader.Load(ctx, cfg.Path)
	if err != nil {
		return &domain.IOError{Op: "read", Path: cfg.Path, Err: err}
	}
	logger.Debug("loaded %d bytes", len(corpus))

	logger.Section("Search")
	logger.Debug("query=%q ignore_case=%t", cfg.Query, cfg.IgnoreCase)

	matches := r.searcher.Search(cfg.Query, corpus, cfg.IgnoreCase)
	logger.Info("%d matching line(s)", len(matches))

	if err := r.write(w, matches); err != nil {
		return &domain.IOError{Op: "write", Err: err}
	}
	return nil
}

func (r *Runner) write(w io.Writer, matches []domain.Match) error {
	if r.format == domain.OutputFormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	bw := bufio.NewWriter(w)
	for _, m := range matches {
		if _, err := bw.WriteString(m.Text); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
