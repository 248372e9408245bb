package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Source.Driver)
	assert.Equal(t, "United States", cfg.Income.RegionLabel)
	assert.Equal(t, "2023-03-23", cfg.Analysis.SnapshotDate)
	assert.Equal(t, 1.5, cfg.Analysis.IQRMultiplier)
	assert.Equal(t, 0.95, cfg.Analysis.ConfidenceLevel)
	assert.Equal(t, "scatter.html", cfg.Output.ScatterPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Contains(t, cfg.Boundaries.GeoJSONURL, "geojson-counties-fips")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("COUNTY_SOURCE_DRIVER", "sqlite")
	t.Setenv("COUNTY_ANALYSIS_SNAPSHOT_DATE", "2022-12-31")
	t.Setenv("COUNTY_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Source.Driver)
	assert.Equal(t, "2022-12-31", cfg.Analysis.SnapshotDate)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "warn", Format: "json"}))

	err := InitLogger(LogConfig{Level: "loud", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
