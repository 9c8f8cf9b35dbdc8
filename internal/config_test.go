package internal

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_LoadEnv(t *testing.T) {
	t.Setenv(EnvZettelkasten, "/tmp/zk")
	t.Setenv(EnvEditor, "nvim")

	cfg := NewDefaultConfig()
	cfg.LoadEnv()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Zettelkasten.Root != "/tmp/zk" {
		t.Errorf("root = %q", cfg.Zettelkasten.Root)
	}
	if cfg.Editor.Program != "nvim" {
		t.Errorf("editor = %q", cfg.Editor.Program)
	}
}

func TestConfig_LoadEnvKeepsExisting(t *testing.T) {
	t.Setenv(EnvZettelkasten, "")
	t.Setenv(EnvEditor, "")

	cfg := NewDefaultConfig()
	cfg.Zettelkasten.Root = "/from/file"
	cfg.Editor.Program = "vi"
	cfg.LoadEnv()
	if cfg.Zettelkasten.Root != "/from/file" || cfg.Editor.Program != "vi" {
		t.Errorf("empty env overwrote values: %+v", cfg)
	}
}

func TestConfig_MissingRoot(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Editor.Program = "vi"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("missing root should fail validation")
	}
	if !strings.Contains(err.Error(), "ZETTELKASTEN env variable not set") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfig_MissingEditor(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Zettelkasten.Root = "/tmp/zk"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("missing editor should fail validation")
	}
	if !strings.Contains(err.Error(), "EDITOR env variable not set") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestZettelkastenConfig_Inbox(t *testing.T) {
	c := ZettelkastenConfig{Root: "/tmp/zk"}
	if got, want := c.Inbox(), filepath.Join("/tmp/zk", "0_inbox"); got != want {
		t.Errorf("Inbox = %q, want %q", got, want)
	}
}

func TestNewDefaultConfig_LogLevel(t *testing.T) {
	if lvl := NewDefaultConfig().App.LogLevel; lvl != slog.LevelWarn {
		t.Errorf("log level = %v, want warn", lvl)
	}
}
