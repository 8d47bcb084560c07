// Package stats implements the journal analytics engine: performance
// summary parsing, trade grouping, calendar bucketing and the derived
// statistics published to presentation consumers.
package stats

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourusername/trade-journal/internal/metrics"
	"github.com/yourusername/trade-journal/internal/models"
)

// fieldDelimiter separates the label and value cells of a summary line.
const fieldDelimiter = ";"

// ParseSummary converts a delimited performance-summary export into
// BasicStats. Lines with fewer than two cells are skipped, unknown
// labels are ignored, repeated labels keep their last value, and any
// value that fails numeric parsing defaults to zero. Parsing never
// fails; blank input yields the zero record.
func ParseSummary(text string) models.BasicStats {
	values := make(map[string]string)
	parsed, skipped := 0, 0

	for _, line := range strings.Split(text, "\n") {
		cells := strings.Split(line, fieldDelimiter)
		if len(cells) < 2 {
			skipped++
			continue
		}
		values[strings.TrimSpace(cells[0])] = strings.TrimSpace(cells[1])
		parsed++
	}
	metrics.RecordSummaryLines(parsed, skipped)

	return models.BasicStats{
		TotalNetProfit:  parseCurrency(values["Total net profit"]),
		GrossProfit:     parseCurrency(values["Gross profit"]),
		GrossLoss:       parseCurrency(values["Gross loss"]),
		ProfitFactor:    parseFloat(values["Profit factor"]),
		MaxDrawdown:     parseCurrency(values["Max. drawdown"]),
		TotalTrades:     parseInt(values["Total # of trades"]),
		WinningTrades:   parseInt(values["# of winning trades"]),
		LosingTrades:    parseInt(values["# of losing trades"]),
		EvenTrades:      parseInt(values["# of even trades"]),
		WinRate:         parsePercent(values["Percent profitable"]),
		AvgWinningTrade: parseCurrency(values["Avg. winning trade"]),
		AvgLosingTrade:  parseCurrency(values["Avg. losing trade"]),
		LargestWin:      parseCurrency(values["Largest winning trade"]),
		LargestLoss:     parseCurrency(values["Largest losing trade"]),
		SharpeRatio:     parseFloat(values["Sharpe ratio"]),
		SortinoRatio:    parseFloat(values["Sortino ratio"]),
	}
}

var currencyStripper = strings.NewReplacer("$", "", " ", "", ",", "")

// parseCurrency strips the dollar sign, spaces and thousands
// separators before parsing. Exports write amounts like "$1,234.50".
func parseCurrency(raw string) float64 {
	cleaned := currencyStripper.Replace(raw)
	if cleaned == "" {
		return 0
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

func parsePercent(raw string) float64 {
	return parseFloat(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
}

func parseFloat(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
