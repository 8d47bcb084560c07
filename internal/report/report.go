// Package report renders a statistics bundle as console text, HTML or
// CSV.
package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/yourusername/trade-journal/internal/models"
)

// GenerateConsoleReport formats a statistics bundle for terminal output
func GenerateConsoleReport(b models.Bundle) string {
	var builder strings.Builder
	builder.WriteString("Trade Journal Report\n")
	builder.WriteString("====================\n")
	builder.WriteString(fmt.Sprintf("Total Net Profit: %s\n", formatAmount(b.Basic.TotalNetProfit)))
	builder.WriteString(fmt.Sprintf("Profit Factor: %.2f\n", b.Basic.ProfitFactor))
	builder.WriteString(fmt.Sprintf("Total Trades: %d\n", b.Basic.TotalTrades))
	builder.WriteString(fmt.Sprintf("Percent Profitable: %.2f%%\n", b.Basic.WinRate))
	builder.WriteString(fmt.Sprintf("Max Drawdown: %s\n", formatAmount(b.Basic.MaxDrawdown)))
	builder.WriteString(fmt.Sprintf("Sharpe Ratio: %.2f\n", b.Basic.SharpeRatio))
	builder.WriteString(fmt.Sprintf("Sortino Ratio: %.2f\n", b.Basic.SortinoRatio))
	builder.WriteString("\n")

	builder.WriteString("Advanced\n")
	builder.WriteString("--------\n")
	builder.WriteString(fmt.Sprintf("Max Consecutive Wins: %d\n", b.Advanced.ConsecutiveWins))
	builder.WriteString(fmt.Sprintf("Max Consecutive Losses: %d\n", b.Advanced.ConsecutiveLosses))
	builder.WriteString(fmt.Sprintf("Avg Risk/Reward: %s\n", formatRatio(b.Advanced.AvgRiskRewardRatio)))
	builder.WriteString(fmt.Sprintf("Expectancy: %s\n", formatRatio(b.Advanced.Expectancy)))
	builder.WriteString(fmt.Sprintf("Profit Per Day: %s\n", formatRatio(b.Advanced.ProfitPerDay)))
	builder.WriteString(fmt.Sprintf("Best Day: %s\n", b.Advanced.BestDayOfWeek))
	builder.WriteString(fmt.Sprintf("Worst Day: %s\n", b.Advanced.WorstDayOfWeek))
	builder.WriteString(fmt.Sprintf("Best Hour: %s\n", b.Advanced.BestTimeOfDay))
	builder.WriteString(fmt.Sprintf("Worst Hour: %s\n", b.Advanced.WorstTimeOfDay))
	builder.WriteString("\n")

	if len(b.Daily) > 0 {
		builder.WriteString("Daily\n")
		builder.WriteString("-----\n")
		writeDailyTable(&builder, b.Daily)
		builder.WriteString("\n")
	}

	if len(b.Instruments) > 0 {
		builder.WriteString("Instruments\n")
		builder.WriteString("-----------\n")
		writeInstrumentTable(&builder, b.Instruments)
	}

	return builder.String()
}

func writeDailyTable(builder *strings.Builder, daily []models.DailyStat) {
	w := tabwriter.NewWriter(builder, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tP&L\tTRADES\tWIN RATE")
	for _, d := range daily {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.0f%%\n", d.Date, formatAmount(d.PnL), d.Trades, d.WinRate)
	}
	w.Flush()
}

func writeInstrumentTable(builder *strings.Builder, instruments []models.InstrumentStat) {
	w := tabwriter.NewWriter(builder, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INSTRUMENT\tP&L\tTRADES\tWIN RATE")
	for _, s := range instruments {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.0f%%\n", s.Instrument, formatAmount(s.PnL), s.Trades, s.WinRate)
	}
	w.Flush()
}

// GenerateHTMLReport creates a simple HTML report
func GenerateHTMLReport(b models.Bundle, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}

	var rows strings.Builder
	for _, d := range b.Daily {
		rows.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%d</td><td>%.0f%%</td></tr>\n",
			d.Date, formatAmount(d.PnL), d.Trades, d.WinRate))
	}

	var instrumentRows strings.Builder
	for _, s := range b.Instruments {
		instrumentRows.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%d</td><td>%.0f%%</td></tr>\n",
			s.Instrument, formatAmount(s.PnL), s.Trades, s.WinRate))
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Trade Journal Report</title></head>
<body>
<h1>Trade Journal Report</h1>
<p><strong>Total Net Profit:</strong> %s</p>
<p><strong>Profit Factor:</strong> %.2f</p>
<p><strong>Total Trades:</strong> %d</p>
<p><strong>Percent Profitable:</strong> %.2f%%</p>
<p><strong>Max Drawdown:</strong> %s</p>
<p><strong>Expectancy:</strong> %s</p>
<p><strong>Avg Risk/Reward:</strong> %s</p>
<h2>Daily</h2>
<table border="1"><tr><th>Date</th><th>P&amp;L</th><th>Trades</th><th>Win Rate</th></tr>
%s</table>
<h2>Instruments</h2>
<table border="1"><tr><th>Instrument</th><th>P&amp;L</th><th>Trades</th><th>Win Rate</th></tr>
%s</table>
</body>
</html>`,
		formatAmount(b.Basic.TotalNetProfit),
		b.Basic.ProfitFactor,
		b.Basic.TotalTrades,
		b.Basic.WinRate,
		formatAmount(b.Basic.MaxDrawdown),
		formatRatio(b.Advanced.Expectancy),
		formatRatio(b.Advanced.AvgRiskRewardRatio),
		rows.String(),
		instrumentRows.String(),
	)

	return os.WriteFile(outputPath, []byte(html), 0o644)
}

// GenerateCSVExport exports key statistics for spreadsheets
func GenerateCSVExport(b models.Bundle, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	csv := "metric,value\n" +
		fmt.Sprintf("total_net_profit,%.4f\n", b.Basic.TotalNetProfit) +
		fmt.Sprintf("gross_profit,%.4f\n", b.Basic.GrossProfit) +
		fmt.Sprintf("gross_loss,%.4f\n", b.Basic.GrossLoss) +
		fmt.Sprintf("profit_factor,%.4f\n", b.Basic.ProfitFactor) +
		fmt.Sprintf("max_drawdown,%.4f\n", b.Basic.MaxDrawdown) +
		fmt.Sprintf("total_trades,%d\n", b.Basic.TotalTrades) +
		fmt.Sprintf("percent_profitable,%.4f\n", b.Basic.WinRate) +
		fmt.Sprintf("max_consecutive_wins,%d\n", b.Advanced.ConsecutiveWins) +
		fmt.Sprintf("max_consecutive_losses,%d\n", b.Advanced.ConsecutiveLosses) +
		fmt.Sprintf("expectancy,%s\n", csvRatio(b.Advanced.Expectancy)) +
		fmt.Sprintf("avg_risk_reward_ratio,%s\n", csvRatio(b.Advanced.AvgRiskRewardRatio)) +
		fmt.Sprintf("profit_per_day,%s\n", csvRatio(b.Advanced.ProfitPerDay))
	return os.WriteFile(outputPath, []byte(csv), 0o644)
}

// formatAmount renders a monetary amount with a sign and dollar prefix.
func formatAmount(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

// formatRatio renders a ratio, spelling out the degenerate values that
// come out of divisions over empty or one-sided trade lists.
func formatRatio(v float64) string {
	switch {
	case math.IsNaN(v):
		return "n/a"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func csvRatio(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return fmt.Sprintf("%.4f", v)
}
