package stats

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/trade-journal/internal/metrics"
	"github.com/yourusername/trade-journal/internal/models"
)

// Session owns the journal's mutable state: the current trade list,
// the parsed summary statistics and the last published bundle. Every
// write replaces its target wholesale and recomputes all derived
// statistics; there is no incremental update path. Reads and writes
// are safe for concurrent use so a serving consumer can read while a
// refresh imports.
type Session struct {
	mu     sync.RWMutex
	logger *logrus.Logger

	basic  models.BasicStats
	trades []models.Trade
	bundle models.Bundle
}

// NewSession creates an empty session.
func NewSession(logger *logrus.Logger) *Session {
	return &Session{logger: logger}
}

// ImportSummary parses a performance-summary export, replaces the
// current BasicStats and republishes the bundle.
func (s *Session) ImportSummary(text string) models.Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.basic = ParseSummary(text)
	return s.recompute()
}

// ReplaceTrades swaps the trade list wholesale and republishes the
// bundle. Passing an empty slice clears the journal.
func (s *Session) ReplaceTrades(trades []models.Trade) models.Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trades = append([]models.Trade(nil), trades...)
	return s.recompute()
}

// Import replaces the summary statistics and the trade list in one
// publication, so consumers never observe one without the other.
func (s *Session) Import(summaryText string, trades []models.Trade) models.Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.basic = ParseSummary(summaryText)
	s.trades = append([]models.Trade(nil), trades...)
	return s.recompute()
}

// Bundle returns the last published statistics bundle.
func (s *Session) Bundle() models.Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle
}

// Trades returns a copy of the current trade list.
func (s *Session) Trades() []models.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Trade(nil), s.trades...)
}

// recompute rebuilds every derived structure from the current state
// and swaps the published bundle. Callers must hold the write lock.
func (s *Session) recompute() models.Bundle {
	start := time.Now()

	bundle := models.Bundle{
		ImportID:    uuid.New(),
		ImportedAt:  time.Now().UTC(),
		Basic:       s.basic,
		Trades:      append([]models.Trade(nil), s.trades...),
		Daily:       ComputeDailyStats(s.trades),
		Instruments: ComputeInstrumentStats(s.trades),
		Advanced:    ComputeAdvancedStats(s.trades, s.basic),
	}
	s.bundle = bundle

	metrics.RecordRecompute(time.Since(start).Seconds())
	metrics.UpdateJournal(len(s.trades), s.basic.TotalNetProfit)

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"import_id":   bundle.ImportID,
			"trades":      len(s.trades),
			"daily":       len(bundle.Daily),
			"instruments": len(bundle.Instruments),
		}).Info("Statistics recomputed")
	}

	return bundle
}
