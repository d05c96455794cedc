// Package domain defines the core types for minigrep.
//
// This package is the innermost layer of the hexagonal architecture.
// It has NO external dependencies and defines:
//
//   - Config: the validated query, file path and case toggle for one run
//   - Match: a matching line and its position in the corpus
//   - AppSettings: optional settings loaded from the settings file
//   - The error taxonomy (missing query, missing path, I/O failure)
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
