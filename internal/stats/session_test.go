package stats

import (
	"fmt"
	"testing"

	"github.com/yourusername/trade-journal/internal/models"
)

const sampleSummary = "Total net profit;$2,500.00\n" +
	"Profit factor;2.67\n" +
	"Total # of trades;50\n" +
	"Percent profitable;60%\n" +
	"Avg. winning trade;$133.33\n" +
	"Avg. losing trade;-$83.33"

// sampleTrades builds a deterministic journal spanning several days,
// instruments and hours.
func sampleTrades(n int) []models.Trade {
	instruments := []string{"EURUSD", "GBPUSD", "USDJPY"}
	trades := make([]models.Trade, 0, n)

	for i := 0; i < n; i++ {
		pnl := float64(((i * 37) % 200) - 80)
		trades = append(trades, models.Trade{
			Date:       fmt.Sprintf("2024-01-%02d", 1+i%20),
			Time:       fmt.Sprintf("%02d:%02d:00", 8+i%9, (i*7)%60),
			Instrument: instruments[i%len(instruments)],
			Side:       models.TradeSideLong,
			Size:       1,
			EntryPrice: 1.1,
			ExitPrice:  1.2,
			PnL:        pnl,
		})
	}
	return trades
}

func TestSessionImportPublishesBundle(t *testing.T) {
	s := NewSession(nil)

	bundle := s.Import(sampleSummary, sampleTrades(50))

	if bundle.Basic.TotalNetProfit != 2500 {
		t.Errorf("TotalNetProfit = %v, want 2500", bundle.Basic.TotalNetProfit)
	}
	if len(bundle.Trades) != 50 {
		t.Errorf("len(Trades) = %d, want 50", len(bundle.Trades))
	}
	if len(bundle.Daily) == 0 || len(bundle.Instruments) != 3 {
		t.Errorf("derived groups missing: daily=%d instruments=%d",
			len(bundle.Daily), len(bundle.Instruments))
	}
	if bundle.ImportedAt.IsZero() {
		t.Error("ImportedAt not set")
	}
}

// The same inputs must produce the same derived statistics on every
// import; only the publication envelope differs.
func TestSessionImportIdempotent(t *testing.T) {
	s := NewSession(nil)
	trades := sampleTrades(50)

	first := s.Import(sampleSummary, trades)
	second := s.Import(sampleSummary, trades)

	if first.ImportID == second.ImportID {
		t.Error("expected a fresh import id per import")
	}
	if first.Basic != second.Basic {
		t.Errorf("basic stats differ:\nfirst  %+v\nsecond %+v", first.Basic, second.Basic)
	}
	if first.Advanced != second.Advanced {
		t.Errorf("advanced stats differ:\nfirst  %+v\nsecond %+v", first.Advanced, second.Advanced)
	}
	if len(first.Daily) != len(second.Daily) {
		t.Fatalf("daily stats length differs: %d vs %d", len(first.Daily), len(second.Daily))
	}
	for i := range first.Daily {
		if first.Daily[i] != second.Daily[i] {
			t.Errorf("daily[%d] differs: %+v vs %+v", i, first.Daily[i], second.Daily[i])
		}
	}
	for i := range first.Instruments {
		if first.Instruments[i] != second.Instruments[i] {
			t.Errorf("instruments[%d] differs: %+v vs %+v", i, first.Instruments[i], second.Instruments[i])
		}
	}
}

func TestReplaceTradesSupersedes(t *testing.T) {
	s := NewSession(nil)
	s.ReplaceTrades(sampleTrades(50))

	replacement := []models.Trade{
		{Date: "2024-02-01", Time: "10:00:00", Instrument: "EURUSD",
			Side: models.TradeSideLong, Size: 1, EntryPrice: 1, ExitPrice: 1.1, PnL: 10},
	}
	bundle := s.ReplaceTrades(replacement)

	if len(bundle.Trades) != 1 {
		t.Errorf("len(Trades) = %d, want 1 after replacement", len(bundle.Trades))
	}
	if len(bundle.Daily) != 1 || bundle.Daily[0].Date != "2024-02-01" {
		t.Errorf("daily stats not rebuilt from replacement: %+v", bundle.Daily)
	}
}

func TestReplaceTradesEmptyClears(t *testing.T) {
	s := NewSession(nil)
	s.Import(sampleSummary, sampleTrades(10))

	bundle := s.ReplaceTrades(nil)

	if len(bundle.Trades) != 0 {
		t.Errorf("len(Trades) = %d, want 0", len(bundle.Trades))
	}
	if bundle.Advanced != (models.AdvancedStats{}) {
		t.Errorf("expected zero advanced stats, got %+v", bundle.Advanced)
	}
	// The summary survives a trade-list replacement
	if bundle.Basic.TotalNetProfit != 2500 {
		t.Errorf("TotalNetProfit = %v, want 2500", bundle.Basic.TotalNetProfit)
	}
}

func TestImportSummaryKeepsTrades(t *testing.T) {
	s := NewSession(nil)
	s.ReplaceTrades(sampleTrades(5))

	bundle := s.ImportSummary("Total net profit;$1.00")

	if len(bundle.Trades) != 5 {
		t.Errorf("len(Trades) = %d, want 5", len(bundle.Trades))
	}
	if bundle.Basic.TotalNetProfit != 1 {
		t.Errorf("TotalNetProfit = %v, want 1", bundle.Basic.TotalNetProfit)
	}
}

func TestBundleTradesDoNotAliasSession(t *testing.T) {
	s := NewSession(nil)

	bundle := s.ReplaceTrades(sampleTrades(3))
	bundle.Trades[0].PnL = 999999

	if s.Trades()[0].PnL == 999999 {
		t.Error("mutating a published bundle leaked into the session")
	}
	// A recompute from the untouched internal state must not see the
	// mutation either.
	next := s.ImportSummary(sampleSummary)
	if next.Trades[0].PnL == 999999 {
		t.Error("mutating a published bundle leaked into later bundles")
	}
}

func TestSessionTradesReturnsCopy(t *testing.T) {
	s := NewSession(nil)
	s.ReplaceTrades(sampleTrades(3))

	got := s.Trades()
	got[0].PnL = 999999

	if s.Trades()[0].PnL == 999999 {
		t.Error("mutating the returned slice leaked into the session")
	}
}
