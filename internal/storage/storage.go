// Package storage defines the repository contracts for the journal's
// entities. Two adapters implement them: an in-memory store (the default)
// and a sqlite-backed store for journals that should survive restarts.
package storage

import (
	"errors"
	"time"

	"trade-journal-go/internal/models"
)

// ErrNotFound is returned by every store when a record id does not exist.
// It is an absence signal, not a failure; the HTTP layer maps it to 404.
var ErrNotFound = errors.New("record not found")

// TradeStore is the repository contract for trades.
//
// List results are ordered by entryTime descending (most recent first);
// the dashboard's recent-trades view depends on that ordering.
type TradeStore interface {
	Create(input models.TradeInput) (models.Trade, error)
	GetByID(id int) (models.Trade, error)
	GetAll() ([]models.Trade, error)
	GetBySymbol(symbol string) ([]models.Trade, error)
	// GetByDateRange returns trades whose entryTime falls within
	// [start, end], inclusive on both ends.
	GetByDateRange(start, end time.Time) ([]models.Trade, error)
	Update(id int, update models.TradeUpdate) (models.Trade, error)
	Delete(id int) error
}

// JournalStore is the repository contract for daily journal entries,
// ordered by date descending.
type JournalStore interface {
	Create(input models.JournalEntryInput) (models.JournalEntry, error)
	GetByID(id int) (models.JournalEntry, error)
	GetAll() ([]models.JournalEntry, error)
	// GetByDate returns the entries whose date falls on the same calendar
	// day as the given time, in the day's location.
	GetByDate(date time.Time) ([]models.JournalEntry, error)
	GetByDateRange(start, end time.Time) ([]models.JournalEntry, error)
	Update(id int, update models.JournalEntryUpdate) (models.JournalEntry, error)
	Delete(id int) error
}

// NoteStore is the repository contract for notebook notes, ordered by
// updatedAt descending.
type NoteStore interface {
	Create(input models.NoteInput) (models.Note, error)
	GetByID(id int) (models.Note, error)
	GetAll() ([]models.Note, error)
	GetByFolder(folder string) ([]models.Note, error)
	Update(id int, update models.NoteUpdate) (models.Note, error)
	Delete(id int) error
}

// PlaybookStore is the repository contract for strategy playbooks,
// ordered by updatedAt descending.
type PlaybookStore interface {
	Create(input models.PlaybookInput) (models.Playbook, error)
	GetByID(id int) (models.Playbook, error)
	GetAll() ([]models.Playbook, error)
	Update(id int, update models.PlaybookUpdate) (models.Playbook, error)
	Delete(id int) error
}

// Store bundles the per-entity repositories behind one injection point.
type Store struct {
	Trades    TradeStore
	Journal   JournalStore
	Notes     NoteStore
	Playbooks PlaybookStore
}
