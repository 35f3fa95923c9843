// Package pnl derives realized profit and loss for journal trades.
package pnl

import (
	"strings"

	"github.com/shopspring/decimal"

	"trade-journal-go/internal/models"
)

// Calculate returns the realized P&L for a position, formatted with exactly
// two fractional digits, or nil when it cannot be determined.
//
// The result is nil when exitPrice is absent (an open position has no
// realized P&L) and also when entryPrice, exitPrice or quantity fail to
// parse as decimals. A malformed trade is treated as having indeterminate
// P&L rather than being an error; the caller stores nil and moves on.
func Calculate(direction, entryPrice string, exitPrice *string, quantity, fees string) *string {
	if exitPrice == nil {
		return nil
	}

	entry, err := decimal.NewFromString(strings.TrimSpace(entryPrice))
	if err != nil {
		return nil
	}
	exit, err := decimal.NewFromString(strings.TrimSpace(*exitPrice))
	if err != nil {
		return nil
	}
	qty, err := decimal.NewFromString(strings.TrimSpace(quantity))
	if err != nil {
		return nil
	}

	var gross decimal.Decimal
	if direction == models.DirectionLong {
		gross = exit.Sub(entry).Mul(qty)
	} else {
		gross = entry.Sub(exit).Mul(qty)
	}

	// Missing or unparseable fees count as zero, not as a broken trade.
	if f, err := decimal.NewFromString(strings.TrimSpace(fees)); err == nil {
		gross = gross.Sub(f)
	}

	result := gross.StringFixed(2)
	return &result
}
