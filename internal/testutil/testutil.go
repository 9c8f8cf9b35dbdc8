// Package testutil provides shared test helpers for zettelkasten roots and editor launches.
package testutil

import (
	"context"
	"testing"

	"github.com/starford/zet/internal/storage"
)

// Zettelkasten creates an empty temporary notes root and points the
// ZETTELKASTEN and EDITOR variables at it and a placeholder editor.
func Zettelkasten(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ZETTELKASTEN", root)
	t.Setenv("EDITOR", "zet-test-editor")
	return root
}

// TestInbox creates a temporary note directory with a storage.Provider.
func TestInbox(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// Launcher records launches instead of spawning an editor.
type Launcher struct {
	Paths []string
	Err   error
	// OnLaunch, when set, runs for each launch before Err is returned.
	OnLaunch func(path string)
}

// Launch records path.
func (l *Launcher) Launch(_ context.Context, path string) error {
	l.Paths = append(l.Paths, path)
	if l.OnLaunch != nil {
		l.OnLaunch(path)
	}
	return l.Err
}
