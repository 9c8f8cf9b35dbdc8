// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/starford/zet/internal/apperr"
	"github.com/starford/zet/internal/checksum"
	"github.com/starford/zet/internal/editor"
	"github.com/starford/zet/internal/models"
	"github.com/starford/zet/internal/prompt"
	"github.com/starford/zet/internal/storage"
	"github.com/starford/zet/internal/zettel"
)

// Run resolves the note name, appends a fresh block to
// <root>/0_inbox/<name>.md and opens it in the configured editor.
// A rejected name is reported on stderr and Run returns nil.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := slog.New(slog.NewTextHandler(app.stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	name := app.name
	if !app.hasName {
		var err error
		if name, err = prompt.Ask(app.stdin, app.stdout); err != nil {
			return err
		}
	}

	// A rejected name returns cleanly whatever the environment holds.
	if err := zettel.ValidateName(name); err != nil {
		if errors.Is(err, apperr.ErrInvalidName) {
			logger.Debug("note name rejected", slog.String("error", err.Error()))
			fmt.Fprintln(app.stderr, zettel.UsageHint)
			fmt.Fprintln(app.stderr, zettel.UsageExample)
			return nil
		}
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Debug("Configuration loaded",
		slog.String("zettelkasten", cfg.Zettelkasten.Root),
		slog.String("editor", cfg.Editor.Program),
		slog.String("log_level", cfg.App.LogLevel.String()))

	inbox, err := storage.NewFS(cfg.Zettelkasten.Inbox())
	if err != nil {
		return fmt.Errorf("write note: %w", err)
	}
	var store storage.Provider = inbox

	path, err := zettel.Write(store, name, app.now())
	if err != nil {
		return fmt.Errorf("write note: %w", err)
	}
	logger.Info("note appended", slog.String("path", path))

	fileName := models.Note{Name: name}.FileName()
	data, err := store.Read(fileName)
	if err != nil {
		return err
	}
	before := checksum.Sum(data)

	launcher := app.launcher
	if launcher == nil {
		launcher = &editor.Exec{
			Program: cfg.Editor.Program,
			Stdin:   app.stdin,
			Stdout:  app.stdout,
			Stderr:  app.stderr,
		}
	}
	if err := launcher.Launch(ctx, path); err != nil {
		return err
	}

	data, err = store.Read(fileName)
	if err != nil {
		// The editor may have moved or deleted the note; nothing left to report.
		logger.Warn("note unreadable after editing", slog.String("path", path), slog.String("error", err.Error()))
		return nil
	}
	logger.Info("editor closed",
		slog.String("path", path),
		slog.Bool("changed", before != checksum.Sum(data)))

	return nil
}
