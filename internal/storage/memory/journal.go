package memory

import (
	"sort"
	"time"

	"gorm.io/datatypes"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/storage"
)

// JournalStore is the in-memory journal-entry repository.
type JournalStore struct {
	entries map[int]models.JournalEntry
	nextID  int
}

var _ storage.JournalStore = (*JournalStore)(nil)

// NewJournalStore creates an empty in-memory journal store.
func NewJournalStore() *JournalStore {
	return &JournalStore{
		entries: make(map[int]models.JournalEntry),
		nextID:  1,
	}
}

// Create assigns the next id and stores the entry, defaulting the mood to
// the middle of the scale when absent.
func (s *JournalStore) Create(input models.JournalEntryInput) (models.JournalEntry, error) {
	entry := models.JournalEntry{
		ID:          s.nextID,
		Date:        input.Date,
		Title:       input.Title,
		Content:     input.Content,
		Mood:        models.DefaultMood,
		MarketNotes: input.MarketNotes,
		Images:      datatypes.JSONSlice[string]{},
	}
	s.nextID++
	if input.Mood != nil {
		entry.Mood = *input.Mood
	}
	if input.Images != nil {
		entry.Images = datatypes.JSONSlice[string](input.Images)
	}
	s.entries[entry.ID] = entry
	return entry, nil
}

// GetByID returns the entry or storage.ErrNotFound.
func (s *JournalStore) GetByID(id int) (models.JournalEntry, error) {
	entry, ok := s.entries[id]
	if !ok {
		return models.JournalEntry{}, storage.ErrNotFound
	}
	return entry, nil
}

// GetAll returns every entry, most recent date first.
func (s *JournalStore) GetAll() ([]models.JournalEntry, error) {
	entries := make([]models.JournalEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	sortByDateDesc(entries)
	return entries, nil
}

// GetByDate returns the entries falling on the given calendar day.
func (s *JournalStore) GetByDate(date time.Time) ([]models.JournalEntry, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return s.GetByDateRange(start, end)
}

// GetByDateRange returns entries whose date falls within [start, end]
// inclusive, most recent first.
func (s *JournalStore) GetByDateRange(start, end time.Time) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	for _, e := range s.entries {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		entries = append(entries, e)
	}
	sortByDateDesc(entries)
	return entries, nil
}

// Update merges the partial fields into the stored entry.
func (s *JournalStore) Update(id int, update models.JournalEntryUpdate) (models.JournalEntry, error) {
	entry, ok := s.entries[id]
	if !ok {
		return models.JournalEntry{}, storage.ErrNotFound
	}
	if update.Date != nil {
		entry.Date = *update.Date
	}
	if update.Title != nil {
		entry.Title = *update.Title
	}
	if update.Content != nil {
		entry.Content = *update.Content
	}
	if update.Mood != nil {
		entry.Mood = *update.Mood
	}
	if update.MarketNotes != nil {
		entry.MarketNotes = update.MarketNotes
	}
	if update.Images != nil {
		entry.Images = datatypes.JSONSlice[string](update.Images)
	}
	s.entries[id] = entry
	return entry, nil
}

// Delete removes the entry. The freed id is not reused.
func (s *JournalStore) Delete(id int) error {
	if _, ok := s.entries[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

func sortByDateDesc(entries []models.JournalEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}
