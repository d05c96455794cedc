package domain

// Match is a single line of the corpus that contains the query.
type Match struct {
	// Line is the 1-based line number in the corpus.
	Line int `json:"line"`

	// Text is the original line without its line terminator.
	Text string `json:"text"`
}
