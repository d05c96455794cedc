package services

import (
	"strings"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// Search returns every line of corpus that contains query, in source order.
// Matching is a literal, case-sensitive substring test; an empty query
// matches every line.
func Search(query, corpus string) []string {
	return texts(match(query, corpus, false))
}

// SearchCaseInsensitive is Search with both sides lowercased before the
// comparison. The returned lines keep their original case.
func SearchCaseInsensitive(query, corpus string) []string {
	return texts(match(query, corpus, true))
}

// Lines splits corpus into lines. Lines end at "\n" or "\r\n"; the
// terminator is not part of the line and a final terminator does not
// produce an empty last line. A lone "\r" at the very end of an
// unterminated last line is kept.
// The returned strings share memory with corpus.
func Lines(corpus string) []string {
	if corpus == "" {
		return nil
	}

	terminated := strings.HasSuffix(corpus, "\n")
	lines := strings.Split(strings.TrimSuffix(corpus, "\n"), "\n")
	for i, line := range lines {
		if i < len(lines)-1 || terminated {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}

// SearchService implements driving.SearchService on top of the line
// matcher, additionally reporting line numbers.
type SearchService struct{}

// NewSearchService creates a new search service.
func NewSearchService() *SearchService {
	return &SearchService{}
}

// Search returns the matching lines of corpus with their 1-based line numbers.
func (s *SearchService) Search(query, corpus string, ignoreCase bool) []domain.Match {
	return match(query, corpus, ignoreCase)
}

// match scans corpus once. Lowercasing uses strings.ToLower, i.e. simple
// per-rune mapping rather than full Unicode case folding.
func match(query, corpus string, ignoreCase bool) []domain.Match {
	if ignoreCase {
		query = strings.ToLower(query)
	}

	matches := make([]domain.Match, 0)
	for i, line := range Lines(corpus) {
		candidate := line
		if ignoreCase {
			candidate = strings.ToLower(line)
		}
		if strings.Contains(candidate, query) {
			matches = append(matches, domain.Match{Line: i + 1, Text: line})
		}
	}
	return matches
}

func texts(matches []domain.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Text)
	}
	return out
}
