package internal

import (
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Environment variables read at startup.
const (
	EnvZettelkasten = "ZETTELKASTEN"
	EnvEditor       = "EDITOR"
)

// InboxDir is the folder under the zettelkasten root that receives new notes.
const InboxDir = "0_inbox"

// Config represents the application configuration.
type Config struct {
	App          ApplicationConfig  `yaml:"app"`
	Zettelkasten ZettelkastenConfig `yaml:"zettelkasten"`
	Editor       EditorConfig       `yaml:"editor"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Zettelkasten.Validate(); err != nil {
		return err
	}
	return c.Editor.Validate()
}

// LoadEnv overlays values taken from the environment. Unset or empty
// variables leave the current value untouched.
func (c *Config) LoadEnv() {
	if v := os.Getenv(EnvZettelkasten); v != "" {
		c.Zettelkasten.Root = v
	}
	if v := os.Getenv(EnvEditor); v != "" {
		c.Editor.Program = v
	}
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// ZettelkastenConfig holds the notes root.
type ZettelkastenConfig struct {
	Root string `yaml:"root"`
}

// Inbox returns <root>/0_inbox.
func (c *ZettelkastenConfig) Inbox() string {
	return filepath.Join(c.Root, InboxDir)
}

// Validate validates the zettelkasten configuration.
func (c *ZettelkastenConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required.Error(EnvZettelkasten+" env variable not set")),
	)
}

// EditorConfig holds the program used to open notes.
type EditorConfig struct {
	Program string `yaml:"program"`
}

// Validate validates the editor configuration.
func (c *EditorConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Program, validation.Required.Error(EnvEditor+" env variable not set")),
	)
}

// NewDefaultConfig returns a new Config with default values. The notes root
// and editor have no defaults.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
	}
}
