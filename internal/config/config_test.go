package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "analysis_report.html", c.Output)
	assert.Equal(t, 6, c.DistributionCount)
	assert.Equal(t, 400, c.ImageWidth)
	assert.Equal(t, 20, c.HistogramBins)
	assert.Equal(t, 20, c.MaxCategories)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.Empty(t, c.MissingValues)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Set("image_width", "640"))
	require.NoError(t, c.Set("missing_values", "?, -"))
	require.NoError(t, c.Set("output", "out/eda.html"))
	require.NoError(t, Save(c, path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "image_width: 640")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, got.ImageWidth)
	assert.Equal(t, []string{"?", "-"}, got.MissingValues)
	assert.Equal(t, "out/eda.html", got.Output)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("histogram_bins: 30\nlog_level: warn\n"), 0o644))
	t.Setenv("EDAREPORT_LOG_LEVEL", "debug")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, c.HistogramBins)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestSetRejectsBadValues(t *testing.T) {
	var c Global
	assert.Error(t, c.Set("image_width", "wide"))
	assert.Error(t, c.Set("histogram_bins", "0"))
	assert.Error(t, c.Set("nope", "1"))
	assert.NoError(t, c.Set("delimiter", ";"))
	assert.Equal(t, ";", c.Delimiter)
}

func TestPath(t *testing.T) {
	assert.Equal(t, "x.yaml", Path("x.yaml"))
	assert.Equal(t, filepath.Join(Dir(), "config.yaml"), Path(""))
	assert.Equal(t, AppName, filepath.Base(Dir()))
}
