package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourusername/trade-journal/internal/models"
)

// Fill-list column order. The header row, if present, repeats these
// names and is skipped like any other row without a valid date cell.
//
//	date;time;instrument;side;size;entry_price;exit_price;pnl;commission[;notes[;setup[;chart_link]]]
const minFillCells = 9

// ParseFills converts a semicolon-delimited fill list into trades.
// Rows that are structurally broken (too few cells, invalid date,
// unknown side) are skipped; numeric cells that fail parsing default
// to zero. Parsing never fails.
func ParseFills(text string) []models.Trade {
	trades := make([]models.Trade, 0)

	for _, line := range strings.Split(text, "\n") {
		cells := strings.Split(line, ";")
		if len(cells) < minFillCells {
			continue
		}
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}

		if _, err := time.Parse(models.DateLayout, cells[0]); err != nil {
			continue
		}
		side := models.TradeSide(strings.ToUpper(cells[3]))
		if side != models.TradeSideLong && side != models.TradeSideShort {
			continue
		}

		trade := models.Trade{
			Date:       cells[0],
			Time:       cells[1],
			Instrument: cells[2],
			Side:       side,
			Size:       fillNumber(cells[4]),
			EntryPrice: fillNumber(cells[5]),
			ExitPrice:  fillNumber(cells[6]),
			PnL:        fillAmount(cells[7]),
			Commission: fillAmount(cells[8]),
		}
		if len(cells) > 9 {
			trade.Notes = cells[9]
		}
		if len(cells) > 10 {
			trade.Setup = cells[10]
		}
		if len(cells) > 11 {
			// Opaque link, passed through unmodified.
			trade.ChartLink = cells[11]
		}

		trades = append(trades, trade)
	}

	return trades
}

// fillAmount parses a monetary cell, tolerating "$", spaces and
// thousands separators.
func fillAmount(raw string) float64 {
	cleaned := strings.NewReplacer("$", "", " ", "", ",", "").Replace(raw)
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

func fillNumber(raw string) float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}
