package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/county-mortality-cli/internal/config"
)

func TestOpenSources_UnknownDriver(t *testing.T) {
	_, _, _, err := openSources(context.Background(), &config.Config{
		Source: config.SourceConfig{Driver: "oracle"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown source driver "oracle"`)
}

func TestOpenSources_SQLiteWithCSVOverride(t *testing.T) {
	path := t.TempDir() + "/counties.db"
	_, deathsSrc, closeDB, err := openSources(context.Background(), &config.Config{
		Source: config.SourceConfig{
			Driver:     "sqlite",
			SQLitePath: path,
			DeathsCSV:  "https://example.com/deaths.csv",
		},
	})
	require.NoError(t, err)
	defer closeDB()

	// CSV override replaces the database-backed deaths source.
	assert.NotNil(t, deathsSrc)
}
