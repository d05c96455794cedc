package domain

// EnvIgnoreCase is the environment variable that enables case-insensitive
// search. Only its presence matters; the value is never inspected.
const EnvIgnoreCase = "IGNORE_CASE"

// Config holds the inputs of a single search run.
// It is built once from the process arguments and never mutated.
type Config struct {
	// Query is the literal text to look for. It may be empty.
	Query string

	// Path is the file to search. Existence is checked when the run loads it.
	Path string

	// IgnoreCase selects case-insensitive matching.
	IgnoreCase bool
}
