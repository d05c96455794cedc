// Package file loads search corpora from the local filesystem.
package file
