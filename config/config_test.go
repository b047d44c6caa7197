package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shieldchart/config"
	"github.com/katalvlaran/shieldchart/render"
	"github.com/katalvlaran/shieldchart/tour"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.GreaterOrEqual(t, cfg.Workers, 1)

	opts, err := cfg.TourOptions()
	require.NoError(t, err)
	assert.Equal(t, tour.DefaultOptions(), opts)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shieldchart.yaml")
	doc := `
output_dir: out/charts
workers: 3
format: svgz
log:
  level: debug
  format: json
tour:
  bound: none
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out/charts", cfg.OutputDir)
	assert.Equal(t, 3, cfg.Workers)

	f, err := cfg.RenderFormat()
	require.NoError(t, err)
	assert.Equal(t, render.FormatSVGZ, f)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	opts, err := cfg.TourOptions()
	require.NoError(t, err)
	assert.Equal(t, tour.NoBound, opts.Bound)
	assert.Equal(t, tour.DefaultEps, opts.Eps)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"workers":    "workers: 0",
		"format":     "format: png",
		"log level":  "log: {level: loud}",
		"log format": "log: {format: xml}",
		"bound":      "tour: {bound: lower}",
		"eps":        "tour: {eps: -1}",
		"output dir": `output_dir: ""`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.True(t, errors.Is(err, config.ErrInvalid), "got %v", err)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := config.Parse([]byte("colour: red"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, config.ErrInvalid))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
