// Package editor opens notes in the user's external editor.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
)

// Launcher opens a file for interactive editing and returns once editing ends.
type Launcher interface {
	Launch(ctx context.Context, path string) error
}

// Exec launches Program as a child process with the file path as its only
// argument. The child's exit status is not interpreted.
type Exec struct {
	Program string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Launch runs the editor and waits for it to exit. Only a failure to start
// the program is an error.
func (e *Exec) Launch(ctx context.Context, path string) error {
	if e.Program == "" {
		return errors.New("editor: no program configured")
	}

	cmd := exec.CommandContext(ctx, e.Program, path)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	// Interrupts belong to the editor while it runs.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		slog.Debug("editor exited with non-zero status",
			slog.String("program", e.Program),
			slog.Int("exit_code", exitErr.ExitCode()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("editor: launch %s: %w", e.Program, err)
	}
	return nil
}

// Verify *Exec satisfies Launcher at compile time.
var _ Launcher = (*Exec)(nil)
