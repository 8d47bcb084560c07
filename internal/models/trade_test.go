package models

import (
	"testing"
	"time"
)

func TestTimestampFullClock(t *testing.T) {
	trade := Trade{Date: "2024-01-07", Time: "10:30:00"}

	ts := trade.Timestamp()
	if ts.Weekday() != time.Sunday {
		t.Errorf("weekday = %v, want Sunday", ts.Weekday())
	}
	if ts.Hour() != 10 {
		t.Errorf("hour = %d, want 10", ts.Hour())
	}
}

func TestTimestampShortClock(t *testing.T) {
	trade := Trade{Date: "2024-01-01", Time: "14:45"}

	ts := trade.Timestamp()
	if ts.Hour() != 14 || ts.Minute() != 45 {
		t.Errorf("got %v, want 14:45", ts)
	}
}

func TestTimestampMissingClockFallsBackToMidnight(t *testing.T) {
	trade := Trade{Date: "2024-01-01"}

	ts := trade.Timestamp()
	if ts.IsZero() {
		t.Fatal("expected date-only fallback, got zero instant")
	}
	if ts.Hour() != 0 {
		t.Errorf("hour = %d, want 0", ts.Hour())
	}
}

func TestTimestampUnparsableDateIsZeroInstant(t *testing.T) {
	trade := Trade{Date: "01/07/2024", Time: "10:00:00"}

	if !trade.Timestamp().IsZero() {
		t.Errorf("got %v, want zero instant", trade.Timestamp())
	}
}

func TestTradeOutcomeHelpers(t *testing.T) {
	win := Trade{PnL: 10, Commission: 2}
	loss := Trade{PnL: -10}
	flat := Trade{PnL: 0}

	if !win.IsWin() || win.IsLoss() {
		t.Error("positive P&L misclassified")
	}
	if !loss.IsLoss() || loss.IsWin() {
		t.Error("negative P&L misclassified")
	}
	if flat.IsWin() || flat.IsLoss() {
		t.Error("break-even trade should be neither win nor loss")
	}
	if win.NetPnL() != 8 {
		t.Errorf("NetPnL = %v, want 8", win.NetPnL())
	}
}
