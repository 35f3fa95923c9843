// Package stats computes aggregate performance snapshots over trade sets.
package stats

import (
	"github.com/shopspring/decimal"

	"trade-journal-go/internal/models"
)

// ProfitFactorCap stands in for an infinite profit factor when there are
// gains but no losses. The sentinel is part of the API contract consumed by
// the dashboard; do not swap it for +Inf or change its value.
const ProfitFactorCap = 999

// Snapshot is the aggregate performance picture for a set of trades. It is
// derived on every request and never persisted.
type Snapshot struct {
	TotalTrades     int     `json:"totalTrades"`
	ClosedTrades    int     `json:"closedTrades"`
	OpenTrades      int     `json:"openTrades"`
	WinningTrades   int     `json:"winningTrades"`
	LosingTrades    int     `json:"losingTrades"`
	WinRate         float64 `json:"winRate"`
	DayWinRate      float64 `json:"dayWinRate"`
	TotalPnL        float64 `json:"totalPnL"`
	AvgWin          float64 `json:"avgWin"`
	AvgLoss         float64 `json:"avgLoss"`
	ProfitFactor    float64 `json:"profitFactor"`
	LargestWin      float64 `json:"largestWin"`
	LargestLoss     float64 `json:"largestLoss"`
	AvgWinLossRatio float64 `json:"avgWinLossRatio"`
	WinningDays     int     `json:"winningDays"`
	LosingDays      int     `json:"losingDays"`
}

type closedTrade struct {
	trade models.Trade
	pnl   decimal.Decimal
}

// Compute aggregates a snapshot over the given trades. It is a pure
// function of its input: an empty set yields an all-zero snapshot and
// degenerate denominators fall back to zero rather than dividing.
//
// A trade counts as closed only when its status is "closed" and it carries
// a realized P&L. Winners are closed trades with pnl > 0; breakeven trades
// count as losses. Day win rate is the exception: a calendar day whose
// trades net to exactly zero counts toward neither side.
func Compute(trades []models.Trade) Snapshot {
	snap := Snapshot{TotalTrades: len(trades)}
	if len(trades) == 0 {
		return snap
	}

	var closed []closedTrade
	for _, t := range trades {
		if t.Status != models.StatusClosed || t.PnL == nil {
			continue
		}
		v, err := decimal.NewFromString(*t.PnL)
		if err != nil {
			// Stored P&L is always repository-formatted; an unreadable
			// value contributes zero instead of poisoning the snapshot.
			v = decimal.Zero
		}
		closed = append(closed, closedTrade{trade: t, pnl: v})
	}

	snap.ClosedTrades = len(closed)
	snap.OpenTrades = snap.TotalTrades - snap.ClosedTrades
	if len(closed) == 0 {
		return snap
	}

	var (
		winners, losers        int
		totalPnL               decimal.Decimal
		grossProfit, grossLoss decimal.Decimal
	)
	largestWin := closed[0].pnl
	largestLoss := closed[0].pnl

	for _, ct := range closed {
		totalPnL = totalPnL.Add(ct.pnl)
		if ct.pnl.IsPositive() {
			winners++
			grossProfit = grossProfit.Add(ct.pnl)
		} else {
			losers++
			grossLoss = grossLoss.Add(ct.pnl)
		}
		if ct.pnl.GreaterThan(largestWin) {
			largestWin = ct.pnl
		}
		if ct.pnl.LessThan(largestLoss) {
			largestLoss = ct.pnl
		}
	}
	grossLoss = grossLoss.Abs()

	snap.WinningTrades = winners
	snap.LosingTrades = losers
	snap.TotalPnL = round2(totalPnL)
	snap.LargestWin = round2(largestWin)
	snap.LargestLoss = round2(largestLoss)

	snap.WinRate = round2(ratio(winners, len(closed)).Mul(hundred))

	avgWin := decimal.Zero
	if winners > 0 {
		avgWin = grossProfit.Div(decimal.NewFromInt(int64(winners)))
	}
	avgLoss := decimal.Zero
	if losers > 0 {
		avgLoss = grossLoss.Div(decimal.NewFromInt(int64(losers)))
	}
	snap.AvgWin = round2(avgWin)
	snap.AvgLoss = round2(avgLoss)

	if avgLoss.IsPositive() {
		snap.AvgWinLossRatio = round2(avgWin.Div(avgLoss))
	}

	switch {
	case grossLoss.IsPositive():
		snap.ProfitFactor = round2(grossProfit.Div(grossLoss))
	case grossProfit.IsPositive():
		snap.ProfitFactor = ProfitFactorCap
	}

	snap.WinningDays, snap.LosingDays = countDays(closed)
	decided := snap.WinningDays + snap.LosingDays
	if decided > 0 {
		snap.DayWinRate = round2(ratio(snap.WinningDays, decided).Mul(hundred))
	}

	return snap
}

// countDays groups closed trades by the local calendar day of their entry
// time and classifies each day by the sign of its net P&L.
func countDays(closed []closedTrade) (winning, losing int) {
	byDay := make(map[string]decimal.Decimal)
	for _, ct := range closed {
		key := ct.trade.EntryTime.Local().Format("2006-01-02")
		byDay[key] = byDay[key].Add(ct.pnl)
	}
	for _, sum := range byDay {
		switch {
		case sum.IsPositive():
			winning++
		case sum.IsNegative():
			losing++
		}
	}
	return winning, losing
}

var hundred = decimal.NewFromInt(100)

func ratio(num, den int) decimal.Decimal {
	return decimal.NewFromInt(int64(num)).Div(decimal.NewFromInt(int64(den)))
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
