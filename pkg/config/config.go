// Package config loads the editor settings a plugin ships alongside its
// web assets.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/justyntemme/vst3go-webview/pkg/framework/debug"
)

const (
	DefaultURL           = "http://localhost:3000"
	DefaultWidth         = 800
	DefaultHeight        = 600
	DefaultFlushInterval = 16 * time.Millisecond
)

// Editor holds the web editor settings.
type Editor struct {
	// URL is the page loaded into every spawned view.
	URL string `yaml:"url"`
	// DevTools enables the browser inspector.
	DevTools bool `yaml:"devtools"`
	// Width and Height size a new view when the host window size is unknown.
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
	// FlushInterval is how often queued parameter events reach the page.
	FlushInterval time.Duration `yaml:"flush_interval"`
	// Probe checks the host window with the windowing system before spawning.
	Probe bool `yaml:"probe"`
	// LogLevel is one of debug, info, warn, error, off.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Editor {
	return &Editor{
		URL:           DefaultURL,
		DevTools:      true,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		FlushInterval: DefaultFlushInterval,
		LogLevel:      "info",
	}
}

// Load reads a YAML settings file over the defaults. A missing file yields
// the defaults.
func Load(path string) (*Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read editor config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Editor, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse editor config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Editor) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", c.URL, err)
	}
	if !u.IsAbs() {
		return fmt.Errorf("url %q must be absolute", c.URL)
	}
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("size %dx%d must be positive", c.Width, c.Height)
	}
	if c.FlushInterval < 0 {
		return fmt.Errorf("flush_interval %s must not be negative", c.FlushInterval)
	}
	if _, err := debug.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c *Editor) Level() debug.LogLevel {
	level, _ := debug.ParseLevel(c.LogLevel)
	return level
}
