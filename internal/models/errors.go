package models

import "errors"

// Custom errors
var (
	ErrSourceUnavailable  = errors.New("import source unavailable")
	ErrEmptyImport        = errors.New("import source produced no data")
	ErrNoSourceConfigured = errors.New("no import source configured")
)
