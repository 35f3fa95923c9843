package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DirectionLong  = "long"
	DirectionShort = "short"

	StatusOpen   = "open"
	StatusClosed = "closed"

	DefaultAccount = "default"
)

// Trade represents one executed (or still open) position in the journal.
//
// Money fields travel as decimal strings end to end so that values render
// exactly as entered; parsing happens only inside the P&L engine. PnL is nil
// for positions without an exit price.
type Trade struct {
	ID             int                         `json:"id" gorm:"primaryKey"`
	Symbol         string                      `json:"symbol"`
	Direction      string                      `json:"direction"` // "long" or "short"
	EntryPrice     string                      `json:"entryPrice"`
	ExitPrice      *string                     `json:"exitPrice"`
	Quantity       string                      `json:"quantity"`
	EntryTime      time.Time                   `json:"entryTime"`
	ExitTime       *time.Time                  `json:"exitTime"`
	PnL            *string                     `json:"pnl"`
	Fees           string                      `json:"fees"`
	StopLoss       *string                     `json:"stopLoss"`
	TakeProfit     *string                     `json:"takeProfit"`
	Setup          *string                     `json:"setup"`
	Notes          *string                     `json:"notes"`
	Tags           datatypes.JSONSlice[string] `json:"tags"`
	Status         string                      `json:"status"` // "open" or "closed"
	Account        string                      `json:"account"`
	Images         datatypes.JSONSlice[string] `json:"images"`
	TradingViewURL *string                     `json:"tradingViewUrl"`
}

// TradeInput is the payload accepted when creating a trade. Optional fields
// left nil get repository defaults applied on create.
type TradeInput struct {
	Symbol         string     `json:"symbol" binding:"required"`
	Direction      string     `json:"direction" binding:"required,oneof=long short"`
	EntryPrice     string     `json:"entryPrice" binding:"required"`
	ExitPrice      *string    `json:"exitPrice"`
	Quantity       string     `json:"quantity" binding:"required"`
	EntryTime      time.Time  `json:"entryTime" binding:"required"`
	ExitTime       *time.Time `json:"exitTime"`
	Fees           *string    `json:"fees"`
	StopLoss       *string    `json:"stopLoss"`
	TakeProfit     *string    `json:"takeProfit"`
	Setup          *string    `json:"setup"`
	Notes          *string    `json:"notes"`
	Tags           []string   `json:"tags"`
	Status         *string    `json:"status" binding:"omitempty,oneof=open closed"`
	Account        *string    `json:"account"`
	Images         []string   `json:"images"`
	TradingViewURL *string    `json:"tradingViewUrl"`
}

// TradeUpdate is a partial update. Nil fields are left untouched, so the
// caller only sends what changed. Status is never inferred from price
// changes: closing a trade is always an explicit status update.
type TradeUpdate struct {
	Symbol         *string    `json:"symbol"`
	Direction      *string    `json:"direction" binding:"omitempty,oneof=long short"`
	EntryPrice     *string    `json:"entryPrice"`
	ExitPrice      *string    `json:"exitPrice"`
	Quantity       *string    `json:"quantity"`
	EntryTime      *time.Time `json:"entryTime"`
	ExitTime       *time.Time `json:"exitTime"`
	Fees           *string    `json:"fees"`
	StopLoss       *string    `json:"stopLoss"`
	TakeProfit     *string    `json:"takeProfit"`
	Setup          *string    `json:"setup"`
	Notes          *string    `json:"notes"`
	Tags           []string   `json:"tags"`
	Status         *string    `json:"status" binding:"omitempty,oneof=open closed"`
	Account        *string    `json:"account"`
	Images         []string   `json:"images"`
	TradingViewURL *string    `json:"tradingViewUrl"`
}
