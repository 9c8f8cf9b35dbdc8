package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/zet/internal"
	pkgconfig "github.com/starford/zet/pkg/config"
)

const version = "1.0.0"

func run(ctx context.Context, cmd *cli.Command) error {
	name, ok, err := noteName(cmd)
	if err != nil {
		return err
	}

	cfg := internal.NewDefaultConfig()
	cfg.LoadEnv()
	if path := cmd.String("config"); path != "" {
		if err := pkgconfig.Load(path, cfg); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if cmd.IsSet("log-level") {
		if err := cfg.App.LogLevel.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}
	if ok {
		opts = append(opts, internal.WithName(name))
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("zet: %w", err)
	}

	return nil
}

// noteName returns the positional note name, if one was given.
func noteName(cmd *cli.Command) (string, bool, error) {
	switch cmd.NArg() {
	case 0:
		return "", false, nil
	case 1:
		return cmd.Args().First(), true, nil
	default:
		return "", false, fmt.Errorf("expected at most one note name, got %d arguments", cmd.NArg())
	}
}

func newCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:      "zet",
		Usage:     "Create and open zettel notes",
		ArgsUsage: "[name]",
		Version:   version,
		Action:    action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to optional YAML config file",
				Sources: cli.EnvVars("ZET_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("ZET_LOG_LEVEL"),
			},
		},
	}
}

func main() {
	if err := newCommand(run).Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
