// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven
// ports (adapters).
//
// The search functions in this package are pure: no I/O and no shared
// state, so they can be tested without touching the filesystem.
package services
