package models

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
)

// BasicStats holds the headline figures parsed from a performance
// summary export. The record is replaced wholesale on every import;
// fields whose label is missing or unparsable stay at zero.
type BasicStats struct {
	TotalNetProfit  float64 `json:"total_net_profit"`
	GrossProfit     float64 `json:"gross_profit"`
	GrossLoss       float64 `json:"gross_loss"`
	ProfitFactor    float64 `json:"profit_factor"`
	MaxDrawdown     float64 `json:"max_drawdown"`
	TotalTrades     int     `json:"total_trades"`
	WinningTrades   int     `json:"winning_trades"`
	LosingTrades    int     `json:"losing_trades"`
	EvenTrades      int     `json:"even_trades"`
	WinRate         float64 `json:"win_rate"`
	AvgWinningTrade float64 `json:"avg_winning_trade"`
	AvgLosingTrade  float64 `json:"avg_losing_trade"`
	LargestWin      float64 `json:"largest_win"`
	LargestLoss     float64 `json:"largest_loss"`
	SharpeRatio     float64 `json:"sharpe_ratio"`
	SortinoRatio    float64 `json:"sortino_ratio"`
}

// DailyStat aggregates the trades of one calendar date.
// WinRate is a day-level signal: 100 when the day's cumulative P&L is
// positive, 0 otherwise. It is not the fraction of winning trades.
type DailyStat struct {
	Date    string  `json:"date"`
	PnL     float64 `json:"pnl"`
	Trades  int     `json:"trades"`
	WinRate float64 `json:"win_rate"`
}

// InstrumentStat aggregates the trades of one instrument. WinRate
// carries the same instrument-level signal as DailyStat.WinRate.
type InstrumentStat struct {
	Instrument string  `json:"instrument"`
	PnL        float64 `json:"pnl"`
	Trades     int     `json:"trades"`
	WinRate    float64 `json:"win_rate"`
}

// AdvancedStats is derived from the trade list plus BasicStats:
// streaks, time-of-day and day-of-week seasonality, expectancy and
// risk/reward. AvgRiskRewardRatio, Expectancy and ProfitPerDay follow
// IEEE-754 semantics when their denominators are zero; JSON encoding
// renders non-finite values as null.
type AdvancedStats struct {
	AvgTradeLengthMinutes float64 `json:"avg_trade_length_minutes"`
	BestDayOfWeek         string  `json:"best_day_of_week"`
	WorstDayOfWeek        string  `json:"worst_day_of_week"`
	BestTimeOfDay         string  `json:"best_time_of_day"`
	WorstTimeOfDay        string  `json:"worst_time_of_day"`
	ConsecutiveWins       int     `json:"consecutive_wins"`
	ConsecutiveLosses     int     `json:"consecutive_losses"`
	AvgRiskRewardRatio    float64 `json:"avg_risk_reward_ratio"`
	Expectancy            float64 `json:"expectancy"`
	ProfitPerDay          float64 `json:"profit_per_day"`
}

// MarshalJSON replaces non-finite ratio fields with null so consumers
// always receive valid JSON.
func (a AdvancedStats) MarshalJSON() ([]byte, error) {
	type alias AdvancedStats
	return json.Marshal(struct {
		alias
		AvgRiskRewardRatio *float64 `json:"avg_risk_reward_ratio"`
		Expectancy         *float64 `json:"expectancy"`
		ProfitPerDay       *float64 `json:"profit_per_day"`
	}{
		alias:              alias(a),
		AvgRiskRewardRatio: finiteOrNil(a.AvgRiskRewardRatio),
		Expectancy:         finiteOrNil(a.Expectancy),
		ProfitPerDay:       finiteOrNil(a.ProfitPerDay),
	})
}

// Bundle is the atomic publication handed to presentation consumers:
// the parsed summary, the trade list and every derived structure from
// one recompute. Consumers treat it as read-only data.
type Bundle struct {
	ImportID    uuid.UUID        `json:"import_id"`
	ImportedAt  time.Time        `json:"imported_at"`
	Basic       BasicStats       `json:"basic_stats"`
	Trades      []Trade          `json:"trades"`
	Daily       []DailyStat      `json:"daily_stats"`
	Instruments []InstrumentStat `json:"instrument_stats"`
	Advanced    AdvancedStats    `json:"advanced_stats"`
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
