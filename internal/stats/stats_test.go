package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trade-journal-go/internal/models"
)

func closedAt(entry time.Time, pnl string) models.Trade {
	return models.Trade{
		Symbol:    "ES",
		Direction: models.DirectionLong,
		Status:    models.StatusClosed,
		EntryTime: entry,
		PnL:       &pnl,
	}
}

func openAt(entry time.Time) models.Trade {
	return models.Trade{
		Symbol:    "ES",
		Direction: models.DirectionLong,
		Status:    models.StatusOpen,
		EntryTime: entry,
	}
}

func TestCompute_EmptySet(t *testing.T) {
	snap := Compute(nil)

	assert.Equal(t, Snapshot{}, snap)
}

func TestCompute_OnlyOpenTrades(t *testing.T) {
	now := time.Now()
	snap := Compute([]models.Trade{openAt(now), openAt(now)})

	// The zero-filled shape, but totalTrades still reflects the real count.
	assert.Equal(t, 2, snap.TotalTrades)
	assert.Equal(t, 0, snap.ClosedTrades)
	assert.Equal(t, 2, snap.OpenTrades)
	assert.Zero(t, snap.WinRate)
	assert.Zero(t, snap.TotalPnL)
	assert.Zero(t, snap.ProfitFactor)
}

func TestCompute_TwoTradeScenario(t *testing.T) {
	// Trade A: entry 100, exit 110, qty 10 => +100.00
	// Trade B: entry 100, exit 95, qty 10 => -50.00
	day := time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local)
	trades := []models.Trade{
		closedAt(day, "100.00"),
		closedAt(day.Add(2*time.Hour), "-50.00"),
	}

	snap := Compute(trades)

	assert.Equal(t, 2, snap.TotalTrades)
	assert.Equal(t, 2, snap.ClosedTrades)
	assert.Equal(t, 0, snap.OpenTrades)
	assert.Equal(t, 1, snap.WinningTrades)
	assert.Equal(t, 1, snap.LosingTrades)
	assert.Equal(t, 50.0, snap.WinRate)
	assert.Equal(t, 50.0, snap.TotalPnL)
	assert.Equal(t, 100.0, snap.AvgWin)
	assert.Equal(t, 50.0, snap.AvgLoss)
	assert.Equal(t, 2.0, snap.ProfitFactor)
	assert.Equal(t, 2.0, snap.AvgWinLossRatio)
	assert.Equal(t, 100.0, snap.LargestWin)
	assert.Equal(t, -50.0, snap.LargestLoss)
}

func TestCompute_BreakevenCountsAsLoss(t *testing.T) {
	snap := Compute([]models.Trade{closedAt(time.Now(), "0.00")})

	assert.Equal(t, 0, snap.WinningTrades)
	assert.Equal(t, 1, snap.LosingTrades)
	assert.Zero(t, snap.WinRate)
}

func TestCompute_WinnersPlusLosersEqualsClosed(t *testing.T) {
	day := time.Date(2024, 6, 1, 9, 30, 0, 0, time.Local)
	trades := []models.Trade{
		closedAt(day, "10.00"),
		closedAt(day, "0.00"),
		closedAt(day, "-5.00"),
		openAt(day),
	}

	snap := Compute(trades)

	assert.Equal(t, snap.ClosedTrades, snap.WinningTrades+snap.LosingTrades)
}

func TestCompute_ProfitFactorSentinel(t *testing.T) {
	// All winners: grossLoss is 0, so the sentinel stands in for infinity.
	snap := Compute([]models.Trade{
		closedAt(time.Now(), "25.00"),
		closedAt(time.Now(), "75.00"),
	})

	assert.Equal(t, float64(ProfitFactorCap), snap.ProfitFactor)
}

func TestCompute_ProfitFactorZeroWhenNoGains(t *testing.T) {
	// A single breakeven trade: grossProfit and grossLoss are both zero.
	snap := Compute([]models.Trade{closedAt(time.Now(), "0.00")})

	assert.Zero(t, snap.ProfitFactor)
}

func TestCompute_AllLosersLargestWinIsMax(t *testing.T) {
	// largestWin is the max over closed P&Ls even when every trade lost.
	snap := Compute([]models.Trade{
		closedAt(time.Now(), "-10.00"),
		closedAt(time.Now(), "-40.00"),
	})

	assert.Equal(t, -10.0, snap.LargestWin)
	assert.Equal(t, -40.0, snap.LargestLoss)
	assert.Zero(t, snap.AvgWinLossRatio)
}

func TestCompute_DayWinRate(t *testing.T) {
	day1 := time.Date(2024, 4, 1, 10, 0, 0, 0, time.Local)
	day2 := time.Date(2024, 4, 2, 10, 0, 0, 0, time.Local)
	day3 := time.Date(2024, 4, 3, 10, 0, 0, 0, time.Local)
	trades := []models.Trade{
		// Day 1 nets +50.
		closedAt(day1, "100.00"),
		closedAt(day1.Add(time.Hour), "-50.00"),
		// Day 2 nets -30.
		closedAt(day2, "-30.00"),
		// Day 3 nets exactly 0: excluded from the denominator.
		closedAt(day3, "20.00"),
		closedAt(day3.Add(time.Hour), "-20.00"),
	}

	snap := Compute(trades)

	assert.Equal(t, 1, snap.WinningDays)
	assert.Equal(t, 1, snap.LosingDays)
	assert.Equal(t, 50.0, snap.DayWinRate)
}

func TestCompute_DayWinRateZeroWhenNoDecidedDays(t *testing.T) {
	day := time.Date(2024, 4, 3, 10, 0, 0, 0, time.Local)
	snap := Compute([]models.Trade{
		closedAt(day, "20.00"),
		closedAt(day.Add(time.Hour), "-20.00"),
	})

	assert.Zero(t, snap.DayWinRate)
	assert.Zero(t, snap.WinningDays)
	assert.Zero(t, snap.LosingDays)
}

func TestCompute_WinRateRounding(t *testing.T) {
	day := time.Date(2024, 5, 6, 10, 0, 0, 0, time.Local)
	snap := Compute([]models.Trade{
		closedAt(day, "10.00"),
		closedAt(day, "-1.00"),
		closedAt(day, "-1.00"),
	})

	// 1/3 * 100 rounded to two decimals.
	assert.Equal(t, 33.33, snap.WinRate)
}

func TestCompute_OpenTradeWithPnLIsNotClosed(t *testing.T) {
	// Status stays under caller control: a priced but still-open trade
	// does not join the closed set.
	pnl := "40.00"
	trade := models.Trade{
		Symbol:    "NQ",
		Direction: models.DirectionLong,
		Status:    models.StatusOpen,
		EntryTime: time.Now(),
		PnL:       &pnl,
	}

	snap := Compute([]models.Trade{trade})

	assert.Equal(t, 1, snap.TotalTrades)
	assert.Equal(t, 0, snap.ClosedTrades)
	assert.Equal(t, 1, snap.OpenTrades)
	assert.Zero(t, snap.TotalPnL)
}
