// Package models defines the domain types for zet.
package models

// Extension is appended to every note name to form its file name.
const Extension = ".md"

// Note identifies a note file within its directory. Name carries no
// extension.
type Note struct {
	Name string
}

// FileName returns the note's file name, e.g. "my-note.md".
func (n Note) FileName() string {
	return n.Name + Extension
}
