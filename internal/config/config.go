package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Position is where the menu row is drawn.
type Position string

const (
	PositionInline Position = "inline"
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
)

// DefaultCapacity is the default query buffer size in bytes.
const DefaultCapacity = 8191

// ErrInvalidPosition is returned for an unknown position value.
var ErrInvalidPosition = errors.New("position must be inline, top or bottom")

// Config holds the settings fixed at startup.
type Config struct {
	// Prompt is drawn in reverse video left of the query. Empty hides it.
	Prompt string `yaml:"prompt"`

	// IgnoreCase compares query and candidates case-folded.
	IgnoreCase bool `yaml:"ignore_case"`

	// Position moves the cursor before the first frame.
	Position Position `yaml:"position"`

	// ClipboardFile is pasted when no system clipboard is available.
	ClipboardFile string `yaml:"clipboard_file"`

	// LogFile receives debug logs. Empty disables logging.
	LogFile string `yaml:"log_file"`
	Debug   bool   `yaml:"debug"`

	// Capacity bounds the query length in bytes.
	Capacity int `yaml:"capacity"`

	// TTY is the device keys are read from.
	TTY string `yaml:"tty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Position:      PositionInline,
		ClipboardFile: defaultClipboardFile(),
		Capacity:      DefaultCapacity,
		TTY:           "/dev/tty",
	}
}

// defaultClipboardFile is the per-user clipboard file of the sandy editor.
func defaultClipboardFile() string {
	name := os.Getenv("USER")
	if name == "" {
		if u, err := user.Current(); err == nil {
			name = u.Username
		}
	}
	return filepath.Join(os.TempDir(), ".sandy.clipboard."+name)
}

// DefaultPath returns $XDG_CONFIG_HOME/slmenu/config.yaml, or the same
// under ~/.config.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "slmenu", "config.yaml")
}

// Load reads the config file at path over the defaults. With an empty
// path the default location is tried and may be absent.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values and fills in zero ones.
func (c *Config) Validate() error {
	switch c.Position {
	case "":
		c.Position = PositionInline
	case PositionInline, PositionTop, PositionBottom:
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidPosition, c.Position)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	if c.TTY == "" {
		c.TTY = "/dev/tty"
	}
	return nil
}
