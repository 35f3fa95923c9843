package storage

import (
	"gorm.io/datatypes"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/pnl"
)

// BuildTrade turns a create payload into a trade record with defaults
// applied and the initial P&L computed. The id is left for the adapter to
// assign. Shared by the memory and sqlite adapters so both expose identical
// create semantics.
func BuildTrade(input models.TradeInput) models.Trade {
	trade := models.Trade{
		Symbol:         input.Symbol,
		Direction:      input.Direction,
		EntryPrice:     input.EntryPrice,
		ExitPrice:      input.ExitPrice,
		Quantity:       input.Quantity,
		EntryTime:      input.EntryTime,
		ExitTime:       input.ExitTime,
		Fees:           "0",
		StopLoss:       input.StopLoss,
		TakeProfit:     input.TakeProfit,
		Setup:          input.Setup,
		Notes:          input.Notes,
		Tags:           datatypes.JSONSlice[string]{},
		Status:         models.StatusOpen,
		Account:        models.DefaultAccount,
		Images:         datatypes.JSONSlice[string]{},
		TradingViewURL: input.TradingViewURL,
	}

	if input.Fees != nil {
		trade.Fees = *input.Fees
	}
	if input.Status != nil {
		trade.Status = *input.Status
	}
	if input.Account != nil {
		trade.Account = *input.Account
	}
	if input.Tags != nil {
		trade.Tags = datatypes.JSONSlice[string](input.Tags)
	}
	if input.Images != nil {
		trade.Images = datatypes.JSONSlice[string](input.Images)
	}

	trade.PnL = pnl.Calculate(trade.Direction, trade.EntryPrice, trade.ExitPrice, trade.Quantity, trade.Fees)
	return trade
}

// MergeTradeUpdate merges a partial update into an existing trade and
// recomputes P&L when warranted: any of direction, entryPrice, exitPrice,
// quantity or fees changed and the merged record has an exit price. When
// the guard does not fire the stored P&L is left exactly as it was.
func MergeTradeUpdate(trade *models.Trade, update models.TradeUpdate) {
	recompute := false

	if update.Symbol != nil {
		trade.Symbol = *update.Symbol
	}
	if update.Direction != nil {
		trade.Direction = *update.Direction
		recompute = true
	}
	if update.EntryPrice != nil {
		trade.EntryPrice = *update.EntryPrice
		recompute = true
	}
	if update.ExitPrice != nil {
		trade.ExitPrice = update.ExitPrice
		recompute = true
	}
	if update.Quantity != nil {
		trade.Quantity = *update.Quantity
		recompute = true
	}
	if update.Fees != nil {
		trade.Fees = *update.Fees
		recompute = true
	}
	if update.EntryTime != nil {
		trade.EntryTime = *update.EntryTime
	}
	if update.ExitTime != nil {
		trade.ExitTime = update.ExitTime
	}
	if update.StopLoss != nil {
		trade.StopLoss = update.StopLoss
	}
	if update.TakeProfit != nil {
		trade.TakeProfit = update.TakeProfit
	}
	if update.Setup != nil {
		trade.Setup = update.Setup
	}
	if update.Notes != nil {
		trade.Notes = update.Notes
	}
	if update.Tags != nil {
		trade.Tags = datatypes.JSONSlice[string](update.Tags)
	}
	if update.Status != nil {
		trade.Status = *update.Status
	}
	if update.Account != nil {
		trade.Account = *update.Account
	}
	if update.Images != nil {
		trade.Images = datatypes.JSONSlice[string](update.Images)
	}

	if recompute && trade.ExitPrice != nil {
		trade.PnL = pnl.Calculate(trade.Direction, trade.EntryPrice, trade.ExitPrice, trade.Quantity, trade.Fees)
	}
}
