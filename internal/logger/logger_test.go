package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	if err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	log := NewLogger("nonsense", "development")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewLoggerDebugLevel(t *testing.T) {
	log := NewLogger("debug", "development")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNewLoggerProductionFormatter(t *testing.T) {
	log := NewLogger("info", "production")
	_, ok := log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok, "expected JSON formatter in production")
}

func TestAuditLoggerImportStarted(t *testing.T) {
	log, buf := setupTestLogger()
	auditLogger := NewImportAuditLogger(log)

	auditLogger.LogImportStarted(
		"testdata/summary.txt",
		"manual",
		time.Date(2024, 2, 3, 12, 0, 0, 0, time.UTC),
	)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "testdata/summary.txt", logEntry["source"])
	assert.Equal(t, "manual", logEntry["trigger"])
	assert.Equal(t, "audit", logEntry["component"])
}

func TestAuditLoggerImportCompleted(t *testing.T) {
	log, buf := setupTestLogger()
	auditLogger := NewImportAuditLogger(log)

	auditLogger.LogImportCompleted("https://exports.example.com/summary", "f1e2d3", 50, 12)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "f1e2d3", logEntry["import_id"])
	assert.Equal(t, float64(50), logEntry["trades"])
}

func TestAuditLoggerImportFailed(t *testing.T) {
	log, buf := setupTestLogger()
	auditLogger := NewImportAuditLogger(log)

	auditLogger.LogImportFailed("testdata/summary.txt", "scheduled", errors.New("connection refused"))

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "scheduled", logEntry["trigger"])
	assert.Equal(t, "connection refused", logEntry["error"])
}

func TestAuditLoggerTradesReplaced(t *testing.T) {
	log, buf := setupTestLogger()
	auditLogger := NewImportAuditLogger(log)

	auditLogger.LogTradesReplaced(40, 50)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, float64(40), logEntry["previous_trades"])
	assert.Equal(t, float64(50), logEntry["current_trades"])
}

func TestLoggerJSONFormat(t *testing.T) {
	log, buf := setupTestLogger()
	auditLogger := NewImportAuditLogger(log)

	auditLogger.LogImportCompleted("testdata/summary.txt", "abc123", 10, 3)

	// Verify output is valid JSON
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	assert.NoError(t, err)
	assert.NotEmpty(t, logEntry)
}

func BenchmarkAuditLoggerImportCompleted(b *testing.B) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	auditLogger := NewImportAuditLogger(log)

	for i := 0; i < b.N; i++ {
		auditLogger.LogImportCompleted("testdata/summary.txt", "abc123", 10, 3)
	}
}
