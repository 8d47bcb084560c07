package stats

import (
	"github.com/yourusername/trade-journal/internal/models"
)

// ComputeDailyStats groups trades by calendar date in a single pass.
// Output order is the order in which each date first appears in the
// trade list.
func ComputeDailyStats(trades []models.Trade) []models.DailyStat {
	index := make(map[string]int, len(trades))
	out := make([]models.DailyStat, 0)

	for _, t := range trades {
		i, ok := index[t.Date]
		if !ok {
			i = len(out)
			index[t.Date] = i
			out = append(out, models.DailyStat{Date: t.Date})
		}
		out[i].PnL += t.PnL
		out[i].Trades++
		out[i].WinRate = groupWinRate(out[i].PnL)
	}

	return out
}

// ComputeInstrumentStats groups trades by instrument symbol with the
// same single-pass, insertion-ordered semantics as ComputeDailyStats.
func ComputeInstrumentStats(trades []models.Trade) []models.InstrumentStat {
	index := make(map[string]int, len(trades))
	out := make([]models.InstrumentStat, 0)

	for _, t := range trades {
		i, ok := index[t.Instrument]
		if !ok {
			i = len(out)
			index[t.Instrument] = i
			out = append(out, models.InstrumentStat{Instrument: t.Instrument})
		}
		out[i].PnL += t.PnL
		out[i].Trades++
		out[i].WinRate = groupWinRate(out[i].PnL)
	}

	return out
}

// groupWinRate is the group-level profitability signal: 100 when the
// group's cumulative P&L is positive, 0 otherwise. It is not the
// fraction of individually winning trades within the group.
func groupWinRate(pnlSum float64) float64 {
	if pnlSum > 0 {
		return 100
	}
	return 0
}
