package memory

import (
	"sort"
	"time"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/storage"
)

// TradeStore is the in-memory trade repository.
type TradeStore struct {
	trades map[int]models.Trade
	nextID int
}

var _ storage.TradeStore = (*TradeStore)(nil)

// NewTradeStore creates an empty in-memory trade store.
func NewTradeStore() *TradeStore {
	return &TradeStore{
		trades: make(map[int]models.Trade),
		nextID: 1,
	}
}

// Create assigns the next id, applies defaults, computes the initial P&L
// and stores the record.
func (s *TradeStore) Create(input models.TradeInput) (models.Trade, error) {
	trade := storage.BuildTrade(input)
	trade.ID = s.nextID
	s.nextID++
	s.trades[trade.ID] = trade
	return trade, nil
}

// GetByID returns the trade or storage.ErrNotFound.
func (s *TradeStore) GetByID(id int) (models.Trade, error) {
	trade, ok := s.trades[id]
	if !ok {
		return models.Trade{}, storage.ErrNotFound
	}
	return trade, nil
}

// GetAll returns every trade, most recent entryTime first.
func (s *TradeStore) GetAll() ([]models.Trade, error) {
	trades := make([]models.Trade, 0, len(s.trades))
	for _, t := range s.trades {
		trades = append(trades, t)
	}
	sortByEntryTimeDesc(trades)
	return trades, nil
}

// GetBySymbol returns the trades for one symbol, most recent first.
func (s *TradeStore) GetBySymbol(symbol string) ([]models.Trade, error) {
	var trades []models.Trade
	for _, t := range s.trades {
		if t.Symbol == symbol {
			trades = append(trades, t)
		}
	}
	sortByEntryTimeDesc(trades)
	return trades, nil
}

// GetByDateRange returns trades whose entryTime falls within [start, end]
// inclusive, most recent first.
func (s *TradeStore) GetByDateRange(start, end time.Time) ([]models.Trade, error) {
	var trades []models.Trade
	for _, t := range s.trades {
		if t.EntryTime.Before(start) || t.EntryTime.After(end) {
			continue
		}
		trades = append(trades, t)
	}
	sortByEntryTimeDesc(trades)
	return trades, nil
}

// Update merges the partial fields into the stored record, recomputing P&L
// per the shared merge semantics.
func (s *TradeStore) Update(id int, update models.TradeUpdate) (models.Trade, error) {
	trade, ok := s.trades[id]
	if !ok {
		return models.Trade{}, storage.ErrNotFound
	}
	storage.MergeTradeUpdate(&trade, update)
	s.trades[id] = trade
	return trade, nil
}

// Delete removes the trade. The freed id is not reused.
func (s *TradeStore) Delete(id int) error {
	if _, ok := s.trades[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.trades, id)
	return nil
}

func sortByEntryTimeDesc(trades []models.Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].EntryTime.After(trades[j].EntryTime)
	})
}
