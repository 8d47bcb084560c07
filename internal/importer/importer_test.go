package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trade-journal/internal/models"
)

// stubSource is a Source with scripted responses for cache tests.
type stubSource struct {
	name    string
	text    string
	err     error
	fetches int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context) (string, error) {
	s.fetches++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func TestFileSourceFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.txt")
	require.NoError(t, os.WriteFile(path, []byte("Total net profit;$1.00"), 0o644))

	src := NewFileSource(path)
	text, err := src.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Total net profit;$1.00", text)
	assert.Equal(t, path, src.Name())
}

func TestFileSourceMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "nope.txt"))

	_, err := src.Fetch(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrSourceUnavailable)
}

func TestFileSourceEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := NewFileSource(path).Fetch(context.Background())

	assert.ErrorIs(t, err, models.ErrEmptyImport)
}

func TestCachedSourceServesFromCache(t *testing.T) {
	stub := &stubSource{name: "stub", text: "payload"}
	cached := NewCachedSource(stub, time.Minute)

	first, err := cached.Fetch(context.Background())
	require.NoError(t, err)
	second, err := cached.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "payload", first)
	assert.Equal(t, "payload", second)
	assert.Equal(t, 1, stub.fetches, "second fetch should hit the cache")
}

func TestCachedSourceNeverCachesFailures(t *testing.T) {
	stub := &stubSource{name: "stub", err: errors.New("boom")}
	cached := NewCachedSource(stub, time.Minute)

	_, err := cached.Fetch(context.Background())
	require.Error(t, err)

	stub.err = nil
	stub.text = "recovered"
	text, err := cached.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, 2, stub.fetches)
}

func TestCachedSourceInvalidate(t *testing.T) {
	stub := &stubSource{name: "stub", text: "v1"}
	cached := NewCachedSource(stub, time.Minute)

	_, err := cached.Fetch(context.Background())
	require.NoError(t, err)

	stub.text = "v2"
	cached.Invalidate()
	text, err := cached.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v2", text)
}

func TestDefaultHTTPSourceConfig(t *testing.T) {
	cfg := DefaultHTTPSourceConfig("https://exports.example.com/summary", "tok")

	assert.Equal(t, "https://exports.example.com/summary", cfg.URL)
	assert.Equal(t, "tok", cfg.Token)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRetries)
}
