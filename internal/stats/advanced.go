package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/yourusername/trade-journal/internal/models"
)

// ComputeAdvancedStats derives streaks, seasonality and expectancy
// metrics from the trade list in one left-to-right pass over the
// stored order. The expectancy and risk/reward inputs come from the
// parsed summary, not from the trades themselves.
//
// AvgRiskRewardRatio is +Inf when the average losing trade is zero
// while the average winner is not, and NaN when both averages are
// zero; callers that serialize the result get null for non-finite
// values. An empty trade list returns the zero record.
func ComputeAdvancedStats(trades []models.Trade, basic models.BasicStats) models.AdvancedStats {
	if len(trades) == 0 {
		return models.AdvancedStats{}
	}

	var dayBuckets [weekdaySlots]TimeBucket
	var hourBuckets [hourSlots]TimeBucket

	currentWins, currentLosses := 0, 0
	maxWins, maxLosses := 0, 0
	dates := make(map[string]struct{})

	for _, t := range trades {
		// A break-even trade neither extends nor resets a streak.
		switch {
		case t.PnL > 0:
			currentWins++
			currentLosses = 0
			if currentWins > maxWins {
				maxWins = currentWins
			}
		case t.PnL < 0:
			currentLosses++
			currentWins = 0
			if currentLosses > maxLosses {
				maxLosses = currentLosses
			}
		}

		day, hour := bucketSlots(t)
		dayBuckets[day].Count++
		dayBuckets[day].PnLSum += t.PnL
		hourBuckets[hour].Count++
		hourBuckets[hour].PnLSum += t.PnL

		dates[t.Date] = struct{}{}
	}

	expectancy := basic.WinRate/100*basic.AvgWinningTrade -
		(100-basic.WinRate)/100*math.Abs(basic.AvgLosingTrade)

	return models.AdvancedStats{
		AvgTradeLengthMinutes: 0, // no exit timestamps in the model
		BestDayOfWeek:         time.Weekday(bestSlot(dayBuckets[:])).String(),
		WorstDayOfWeek:        time.Weekday(worstSlot(dayBuckets[:])).String(),
		BestTimeOfDay:         hourLabel(bestSlot(hourBuckets[:])),
		WorstTimeOfDay:        hourLabel(worstSlot(hourBuckets[:])),
		ConsecutiveWins:       maxWins,
		ConsecutiveLosses:     maxLosses,
		AvgRiskRewardRatio:    math.Abs(basic.AvgWinningTrade / basic.AvgLosingTrade),
		Expectancy:            expectancy,
		ProfitPerDay:          basic.TotalNetProfit / float64(len(dates)),
	}
}

func hourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
