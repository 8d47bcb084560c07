// Package logger provides audit logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// ImportAuditLogger provides a dedicated audit trail for journal
// imports. Every import attempt leaves a record regardless of outcome.
type ImportAuditLogger struct {
	*logrus.Entry
}

// NewImportAuditLogger creates a new import audit logger.
func NewImportAuditLogger(baseLogger *logrus.Logger) *ImportAuditLogger {
	return &ImportAuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogImportStarted logs the start of an import run.
func (al *ImportAuditLogger) LogImportStarted(source string, trigger string, timestamp time.Time) {
	al.WithFields(logrus.Fields{
		"source":    source,
		"trigger":   trigger,
		"timestamp": timestamp.Unix(),
	}).Info("Import started")
}

// LogImportCompleted logs a completed import run.
func (al *ImportAuditLogger) LogImportCompleted(source string, importID string, trades int, durationMillis int64) {
	al.WithFields(logrus.Fields{
		"source":          source,
		"import_id":       importID,
		"trades":          trades,
		"duration_millis": durationMillis,
	}).Info("Import completed")
}

// LogImportFailed logs a failed import run.
func (al *ImportAuditLogger) LogImportFailed(source string, trigger string, err error) {
	al.WithFields(logrus.Fields{
		"source":  source,
		"trigger": trigger,
		"error":   err.Error(),
	}).Error("Import failed")
}

// LogTradesReplaced logs a trade list replacement.
func (al *ImportAuditLogger) LogTradesReplaced(previous, current int) {
	al.WithFields(logrus.Fields{
		"previous_trades": previous,
		"current_trades":  current,
	}).Info("Trade list replaced")
}
