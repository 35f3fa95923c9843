// Package memory holds the in-memory reference adapters for the storage
// contracts. Records live in identity-indexed maps with per-entity
// incrementing id counters; ids are never reused within a process lifetime.
package memory

import "trade-journal-go/internal/storage"

// New wires the in-memory stores into a single storage.Store and seeds the
// notebook with the stock folder structure a fresh journal starts with.
func New() *storage.Store {
	store := &storage.Store{
		Trades:    NewTradeStore(),
		Journal:   NewJournalStore(),
		Notes:     NewNoteStore(),
		Playbooks: NewPlaybookStore(),
	}
	for _, seed := range storage.DefaultNoteSeeds() {
		// Seeding an in-memory map cannot fail.
		_, _ = store.Notes.Create(seed)
	}
	return store
}
