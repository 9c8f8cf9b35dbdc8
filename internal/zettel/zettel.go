// Package zettel validates note names and appends the note template to
// inbox files.
package zettel

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/zet/internal/apperr"
	"github.com/starford/zet/internal/models"
	"github.com/starford/zet/internal/storage"
)

// TimestampLayout formats the stamp written under each block: YYYYMMDDhhmm.
const TimestampLayout = "200601021504"

// Usage lines printed when a name is rejected.
const (
	UsageHint    = "Please provide only one filename separated by dashes, without .md extension."
	UsageExample = "Example: zet my-new-note"
)

var noSpaces = validation.NewStringRule(func(s string) bool {
	return !strings.Contains(s, " ")
}, "must not contain spaces")

// ValidateName reports apperr.ErrInvalidName when name contains a space.
// Nothing else is checked.
func ValidateName(name string) error {
	if err := validation.Validate(name, noSpaces); err != nil {
		return fmt.Errorf("%w %q: %v", apperr.ErrInvalidName, name, err)
	}
	return nil
}

// Template returns the block appended on every invocation.
func Template(now time.Time) string {
	return "# \n\n\n\nLinks:\n\n" + now.Format(TimestampLayout) + "\n"
}

// Write appends the template stamped with now to <name>.md in store,
// creating the file when missing, and returns the note's path. The store's
// root is the note directory.
func Write(store storage.Provider, name string, now time.Time) (string, error) {
	note := models.Note{Name: name}
	if err := store.Append(note.FileName(), []byte(Template(now))); err != nil {
		return "", fmt.Errorf("zettel: %w", err)
	}
	return store.Path(note.FileName()), nil
}
