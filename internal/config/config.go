// Package config loads the showcase's settings from YAML or TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Title     string `yaml:"title" toml:"title"`
	Width     int    `yaml:"width" toml:"width"`
	Height    int    `yaml:"height" toml:"height"`
	Resizable bool   `yaml:"resizable" toml:"resizable"`
}

type Config struct {
	Window Window `yaml:"window" toml:"window"`

	// StartPath is the first URL path shown, e.g. "/works/dm-seigaiha".
	StartPath string `yaml:"start_path" toml:"start_path"`
	Theme     string `yaml:"theme" toml:"theme"` // "dark" | "light"
	Debug     bool   `yaml:"debug" toml:"debug"`
	ShowFPS   bool   `yaml:"show_fps" toml:"show_fps"`
	LogLevel  string `yaml:"log_level" toml:"log_level"`
	// Script is an optional navigation script (JSON) replayed at startup.
	Script string `yaml:"script,omitempty" toml:"script,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "Etoalium",
			Width:  640,
			Height: 600,
		},
		StartPath: "/",
		Theme:     "dark",
		LogLevel:  "info",
	}
}

// Load reads path over the defaults. The format follows the extension:
// .toml for TOML, anything else is YAML. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}
	if isTOML(path) {
		if _, err := toml.NewDecoder(bytes.NewReader(b)).Decode(c); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path in the format chosen by its extension.
func Save(path string, c *Config) error {
	var (
		b   []byte
		err error
	)
	if isTOML(path) {
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(c)
		b = buf.Bytes()
	} else {
		b, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return os.WriteFile(path, b, 0644)
}

// Validate rejects settings the app cannot start with.
func (c *Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("negative window size %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Theme {
	case "", "dark", "light":
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	if c.StartPath != "" && !strings.HasPrefix(c.StartPath, "/") {
		return fmt.Errorf("start_path %q must be absolute", c.StartPath)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
