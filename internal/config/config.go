package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"

	"github.com/juju/errors"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/saibendi/p4-editor/internal/logging"
)

// Environment variables that override file settings.
const (
	EnvLogLevel = "P4EDIT_LOG_LEVEL"
	EnvLogFile  = "P4EDIT_LOG_FILE"
	EnvTabWidth = "P4EDIT_TAB_WIDTH"
)

// Config holds all editor settings.
type Config struct {
	Log    LogConfig         `toml:"log"`
	Editor EditorConfig      `toml:"editor"`
	Theme  ThemeConfig       `toml:"theme"`
	Keys   map[string]string `toml:"keys"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// EditorConfig configures the terminal front end.
type EditorConfig struct {
	TabWidth   int  `toml:"tab_width"`
	ShowStatus bool `toml:"show_status"`
}

// ThemeConfig holds colors as hex strings.
type ThemeConfig struct {
	StatusFG string `toml:"status_fg"`
	StatusBG string `toml:"status_bg"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Editor: EditorConfig{
			TabWidth:   4,
			ShowStatus: true,
		},
		Theme: ThemeConfig{
			StatusFG: "#ebdbb2",
			StatusBG: "#3c3836",
		},
		Keys: map[string]string{},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "p4edit", "config.toml")
}

// Load builds a Config from defaults, the file at path and the environment.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, errors.Annotatef(err, "reading config file %s", path)
		default:
			if err := cfg.parse(path, data); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parse decodes TOML data over the current values.
func (c *Config) parse(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	if c.Keys == nil {
		c.Keys = map[string]string{}
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.Log.File = v
	}
	if v, ok := os.LookupEnv(EnvTabWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Annotatef(ErrValidationFailed, "%s=%q is not a number", EnvTabWidth, v)
		}
		c.Editor.TabWidth = n
	}
	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errors.Annotatef(ErrValidationFailed, "log.level: %v", err)
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return errors.Annotatef(ErrValidationFailed, "editor.tab_width must be between 1 and 16, got %d", c.Editor.TabWidth)
	}
	if _, _, err := c.Theme.Colors(); err != nil {
		return errors.Annotatef(ErrValidationFailed, "theme: %v", err)
	}
	return nil
}

// Colors parses the status line colors.
func (t ThemeConfig) Colors() (fg, bg colorful.Color, err error) {
	fg, err = colorful.Hex(t.StatusFG)
	if err != nil {
		return fg, bg, errors.Annotatef(err, "status_fg %q", t.StatusFG)
	}
	bg, err = colorful.Hex(t.StatusBG)
	if err != nil {
		return fg, bg, errors.Annotatef(err, "status_bg %q", t.StatusBG)
	}
	return fg, bg, nil
}
