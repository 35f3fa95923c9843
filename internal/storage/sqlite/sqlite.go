// Package sqlite holds the gorm-backed adapters for the storage contracts.
// Observable semantics match the in-memory reference adapters; only the
// medium differs, so a journal can survive restarts.
package sqlite

import (
	"fmt"

	"gorm.io/gorm"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/storage"
)

// New wires the sqlite stores into a single storage.Store. A database with
// no notes yet gets the stock notebook folders seeded, mirroring what a
// fresh in-memory journal starts with.
func New(db *gorm.DB) (*storage.Store, error) {
	store := &storage.Store{
		Trades:    &TradeStore{db: db},
		Journal:   &JournalStore{db: db},
		Notes:     &NoteStore{db: db},
		Playbooks: &PlaybookStore{db: db},
	}

	var count int64
	if err := db.Model(&models.Note{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count notes: %w", err)
	}
	if count == 0 {
		for _, seed := range storage.DefaultNoteSeeds() {
			if _, err := store.Notes.Create(seed); err != nil {
				return nil, fmt.Errorf("failed to seed note folders: %w", err)
			}
		}
	}

	return store, nil
}
