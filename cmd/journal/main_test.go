package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trade-journal/internal/config"
	"github.com/yourusername/trade-journal/internal/importer"
	"github.com/yourusername/trade-journal/internal/models"
)

func TestBuildSourceNoSourceConfigured(t *testing.T) {
	cfg := &config.Config{}

	_, err := buildSource(cfg, nil)

	assert.ErrorIs(t, err, models.ErrNoSourceConfigured)
}

func TestBuildSourceFile(t *testing.T) {
	cfg := &config.Config{}
	cfg.Source.SummaryPath = "testdata/summary.txt"

	src, err := buildSource(cfg, nil)

	require.NoError(t, err)
	_, ok := src.(*importer.FileSource)
	assert.True(t, ok, "expected a file source")
	assert.Equal(t, "testdata/summary.txt", src.Name())
}

func TestBuildSourceRemoteWinsAndIsCached(t *testing.T) {
	cfg := &config.Config{}
	cfg.Source.SummaryPath = "testdata/summary.txt"
	cfg.Source.SummaryURL = "https://exports.example.com/summary"
	cfg.Source.CacheTTLSeconds = 300
	cfg.HTTP.TimeoutSeconds = 30
	cfg.HTTP.RequestsPerSecond = 1

	src, err := buildSource(cfg, nil)

	require.NoError(t, err)
	_, ok := src.(*importer.CachedSource)
	assert.True(t, ok, "expected the remote source behind a cache")
	assert.Equal(t, "https://exports.example.com/summary", src.Name())
}

func TestBuildSourceRemoteWithoutCacheTTL(t *testing.T) {
	cfg := &config.Config{}
	cfg.Source.SummaryURL = "https://exports.example.com/summary"
	cfg.HTTP.TimeoutSeconds = 30
	cfg.HTTP.RequestsPerSecond = 1

	src, err := buildSource(cfg, nil)

	require.NoError(t, err)
	_, ok := src.(*importer.HTTPSource)
	assert.True(t, ok, "expected a bare remote source")
}
