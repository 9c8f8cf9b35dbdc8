package internal

import (
	"io"
	"time"

	"github.com/starford/zet/internal/editor"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config   *Config
	name     string
	hasName  bool
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	launcher editor.Launcher
	now      func() time.Time
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithName supplies the note name, skipping the interactive prompt.
func WithName(name string) Option {
	return func(a *application) {
		a.name = name
		a.hasName = true
	}
}

// WithIO sets the streams used for the prompt and diagnostics.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(a *application) {
		a.stdin = stdin
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithLauncher replaces the editor launcher built from the configuration.
func WithLauncher(l editor.Launcher) Option {
	return func(a *application) {
		a.launcher = l
	}
}

// WithClock sets the time source used for the note timestamp.
func WithClock(now func() time.Time) Option {
	return func(a *application) {
		a.now = now
	}
}
