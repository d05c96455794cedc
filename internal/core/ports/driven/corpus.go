package driven

import "context"

// CorpusLoader reads the full text of a corpus into memory.
type CorpusLoader interface {
	// Load returns the content at path. The underlying handle is released
	// before Load returns, whether or not reading succeeded.
	Load(ctx context.Context, path string) (string, error)
}
