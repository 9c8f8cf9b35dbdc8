// Package storage defines the note file-system abstraction.
package storage

// Provider is the interface for note file operations.
type Provider interface {
	// Append creates path (relative to the root) if missing and appends content to it.
	Append(path string, content []byte) error
	// Read returns the raw bytes of the file at path (relative to the root).
	Read(path string) ([]byte, error)
	// Path returns the absolute location of path (relative to the root).
	Path(path string) string
}
