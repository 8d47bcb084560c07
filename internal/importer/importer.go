// Package importer provides the import sources that feed the journal:
// local files and remote export endpoints, plus the fill-list parser.
package importer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/yourusername/trade-journal/internal/metrics"
	"github.com/yourusername/trade-journal/internal/models"
)

// Source supplies the raw text of a journal export. Fetch is the one
// asynchronous boundary of the import pipeline; everything downstream
// of it is synchronous.
type Source interface {
	// Name identifies the source in logs and cache keys.
	Name() string
	// Fetch reads the source and returns its raw text.
	Fetch(ctx context.Context) (string, error)
}

// FileSource reads a journal export from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.path
}

// Fetch reads the file. An unreadable file is the one import failure
// that surfaces to the user.
func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	start := time.Now()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", models.ErrSourceUnavailable, s.path, err)
	}
	metrics.RecordSourceFetch(time.Since(start).Seconds())

	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s", models.ErrEmptyImport, s.path)
	}
	return string(data), nil
}
