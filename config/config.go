// Package config loads the settings of the shieldchart command from a YAML
// file. Every field has a default, so an absent file or an empty document is
// a valid configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shieldchart/render"
	"github.com/katalvlaran/shieldchart/tour"
)

var (
	// ErrInvalid indicates a configuration value out of its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

// Log configures the command logger.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// Tour configures path planning.
type Tour struct {
	// Eps is the length tolerance, see tour.Options.
	Eps float64 `yaml:"eps"`
	// Bound is "entry" (default) or "none".
	Bound string `yaml:"bound"`
}

// Config is the full command configuration.
type Config struct {
	// OutputDir receives batch output.
	OutputDir string `yaml:"output_dir"`
	// Workers bounds the number of charts rendered in parallel.
	Workers int `yaml:"workers"`
	// Format is svg or svgz.
	Format string `yaml:"format"`

	Log  Log  `yaml:"log"`
	Tour Tour `yaml:"tour"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir: "sdi",
		Workers:   runtime.GOMAXPROCS(0),
		Format:    string(render.FormatSVG),
		Log:       Log{Level: "info", Format: "text"},
		Tour:      Tour{Eps: tour.DefaultEps, Bound: "entry"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(raw)
}

// Parse decodes a YAML document over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalid)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers = %d", ErrInvalid, c.Workers)
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format = %q", ErrInvalid, c.Log.Format)
	}
	if _, err := c.TourOptions(); err != nil {
		return err
	}

	return nil
}

// SlogLevel maps Log.Level onto slog.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level = %q", ErrInvalid, c.Log.Level)
	}

	return lvl, nil
}

// RenderFormat returns the parsed output format.
func (c Config) RenderFormat() (render.Format, error) {
	f, err := render.ParseFormat(c.Format)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return f, nil
}

// TourOptions converts the tour section.
func (c Config) TourOptions() (tour.Options, error) {
	opts := tour.Options{Eps: c.Tour.Eps}
	switch c.Tour.Bound {
	case "", "entry":
		opts.Bound = tour.EntryBound
	case "none":
		opts.Bound = tour.NoBound
	default:
		return tour.Options{}, fmt.Errorf("%w: tour.bound = %q", ErrInvalid, c.Tour.Bound)
	}
	if opts.Eps < 0 {
		return tour.Options{}, fmt.Errorf("%w: tour.eps = %v", ErrInvalid, opts.Eps)
	}

	return opts, nil
}
