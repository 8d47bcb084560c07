package models

import "time"

// TradeSide represents the direction of a trade (LONG or SHORT)
type TradeSide string

const (
	TradeSideLong  TradeSide = "LONG"
	TradeSideShort TradeSide = "SHORT"
)

// Date and timestamp layouts used throughout the journal.
const (
	DateLayout       = "2006-01-02"
	timestampLayout  = "2006-01-02T15:04:05"
	shortStampLayout = "2006-01-02T15:04"
)

// Trade represents a single executed trade in the journal. Trades are
// immutable once created; the journal only ever replaces the whole
// list. PnL is trusted as supplied and is not recomputed from the
// entry/exit prices.
type Trade struct {
	Date       string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string    `json:"time"`
	Instrument string    `json:"instrument" validate:"required"`
	Side       TradeSide `json:"side" validate:"required,oneof=LONG SHORT"`
	Size       float64   `json:"size" validate:"gt=0"`
	EntryPrice float64   `json:"entry_price" validate:"gt=0"`
	ExitPrice  float64   `json:"exit_price" validate:"gt=0"`
	PnL        float64   `json:"pnl"`
	Commission float64   `json:"commission" validate:"gte=0"`
	Notes      string    `json:"notes,omitempty"`
	Setup      string    `json:"setup,omitempty"`
	ChartLink  string    `json:"chart_link,omitempty"`
}

// Timestamp combines the trade's date and local time-of-day into a
// single instant. Falls back to midnight when the time component is
// missing or malformed, and to the zero instant when the date itself
// cannot be parsed, so calendar bucketing stays total.
func (t Trade) Timestamp() time.Time {
	stamp := t.Date + "T" + t.Time
	if ts, err := time.Parse(timestampLayout, stamp); err == nil {
		return ts
	}
	if ts, err := time.Parse(shortStampLayout, stamp); err == nil {
		return ts
	}
	if ts, err := time.Parse(DateLayout, t.Date); err == nil {
		return ts
	}
	return time.Time{}
}

// IsWin reports whether the trade closed with a positive P&L.
func (t Trade) IsWin() bool {
	return t.PnL > 0
}

// IsLoss reports whether the trade closed with a negative P&L.
func (t Trade) IsLoss() bool {
	return t.PnL < 0
}

// NetPnL returns the P&L after commission.
func (t Trade) NetPnL() float64 {
	return t.PnL - t.Commission
}
