// Package file provides the file-based settings adapter.
//
// Adapters:
//   - ConfigStore: read-only TOML settings (config.toml)
package file
