package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// SearchService finds the lines of a corpus that contain a query.
type SearchService interface {
	// Search returns the matching lines in source order.
	Search(query, corpus string, ignoreCase bool) []domain.Match
}

// Runner executes a complete search run.
type Runner interface {
	// Run loads the corpus named by cfg, searches it and writes the matches to w.
	Run(ctx context.Context, cfg *domain.Config, w io.Writer) error
}
