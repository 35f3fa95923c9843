package sqlite

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/storage"
)

// TradeStore is the sqlite trade repository.
type TradeStore struct {
	db *gorm.DB
}

var _ storage.TradeStore = (*TradeStore)(nil)

// Create applies defaults, computes the initial P&L and inserts the record.
// The id comes from the autoincrement column, so deleted ids are not handed
// out again.
func (s *TradeStore) Create(input models.TradeInput) (models.Trade, error) {
	trade := storage.BuildTrade(input)
	if err := s.db.Create(&trade).Error; err != nil {
		return models.Trade{}, fmt.Errorf("failed to create trade: %w", err)
	}
	return trade, nil
}

// GetByID returns the trade or storage.ErrNotFound.
func (s *TradeStore) GetByID(id int) (models.Trade, error) {
	var trade models.Trade
	if err := s.db.First(&trade, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Trade{}, storage.ErrNotFound
		}
		return models.Trade{}, fmt.Errorf("failed to get trade: %w", err)
	}
	return trade, nil
}

// GetAll returns every trade, most recent entryTime first.
func (s *TradeStore) GetAll() ([]models.Trade, error) {
	var trades []models.Trade
	if err := s.db.Order("entry_time desc").Find(&trades).Error; err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return trades, nil
}

// GetBySymbol returns the trades for one symbol, most recent first.
func (s *TradeStore) GetBySymbol(symbol string) ([]models.Trade, error) {
	var trades []models.Trade
	if err := s.db.Where("symbol = ?", symbol).Order("entry_time desc").Find(&trades).Error; err != nil {
		return nil, fmt.Errorf("failed to list trades by symbol: %w", err)
	}
	return trades, nil
}

// GetByDateRange returns trades whose entryTime falls within [start, end]
// inclusive, most recent first.
func (s *TradeStore) GetByDateRange(start, end time.Time) ([]models.Trade, error) {
	var trades []models.Trade
	err := s.db.
		Where("entry_time >= ? AND entry_time <= ?", start, end).
		Order("entry_time desc").
		Find(&trades).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trades by date range: %w", err)
	}
	return trades, nil
}

// Update merges the partial fields into the stored record, recomputing P&L
// per the shared merge semantics, and saves it back.
func (s *TradeStore) Update(id int, update models.TradeUpdate) (models.Trade, error) {
	trade, err := s.GetByID(id)
	if err != nil {
		return models.Trade{}, err
	}
	storage.MergeTradeUpdate(&trade, update)
	if err := s.db.Save(&trade).Error; err != nil {
		return models.Trade{}, fmt.Errorf("failed to update trade: %w", err)
	}
	return trade, nil
}

// Delete removes the trade, reporting storage.ErrNotFound for unknown ids.
func (s *TradeStore) Delete(id int) error {
	tx := s.db.Delete(&models.Trade{}, id)
	if tx.Error != nil {
		return fmt.Errorf("failed to delete trade: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
