package stats

import (
	"math"

	"github.com/yourusername/trade-journal/internal/models"
)

// TimeBucket accumulates the trade count and P&L sum for one calendar
// slot (a weekday or an hour of day).
type TimeBucket struct {
	Count  int     `json:"count"`
	PnLSum float64 `json:"pnl_sum"`
}

const (
	weekdaySlots = 7
	hourSlots    = 24
)

// BucketByWeekday buckets trades by day of week, 0=Sunday..6=Saturday.
// Every trade lands in exactly one bucket.
func BucketByWeekday(trades []models.Trade) [weekdaySlots]TimeBucket {
	var buckets [weekdaySlots]TimeBucket
	for _, t := range trades {
		day, _ := bucketSlots(t)
		buckets[day].Count++
		buckets[day].PnLSum += t.PnL
	}
	return buckets
}

// BucketByHour buckets trades by the local hour component of their
// timestamp, 0..23.
func BucketByHour(trades []models.Trade) [hourSlots]TimeBucket {
	var buckets [hourSlots]TimeBucket
	for _, t := range trades {
		_, hour := bucketSlots(t)
		buckets[hour].Count++
		buckets[hour].PnLSum += t.PnL
	}
	return buckets
}

// bucketSlots derives the weekday and hour slot for a trade. Trades
// with unparsable timestamps resolve to the zero instant, so slot
// selection stays total.
func bucketSlots(t models.Trade) (day, hour int) {
	ts := t.Timestamp()
	return int(ts.Weekday()), ts.Hour()
}

// bestSlot returns the index of the bucket with the highest P&L sum.
// Only a strictly greater sum replaces the current candidate, so ties
// keep the lowest index.
func bestSlot(buckets []TimeBucket) int {
	best := 0
	bestPnL := math.Inf(-1)
	for i, b := range buckets {
		if b.PnLSum > bestPnL {
			best = i
			bestPnL = b.PnLSum
		}
	}
	return best
}

// worstSlot mirrors bestSlot for the lowest P&L sum.
func worstSlot(buckets []TimeBucket) int {
	worst := 0
	worstPnL := math.Inf(1)
	for i, b := range buckets {
		if b.PnLSum < worstPnL {
			worst = i
			worstPnL = b.PnLSum
		}
	}
	return worst
}
