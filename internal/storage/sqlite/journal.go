package sqlite

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/storage"
)

// JournalStore is the sqlite journal-entry repository.
type JournalStore struct {
	db *gorm.DB
}

var _ storage.JournalStore = (*JournalStore)(nil)

// Create inserts the entry, defaulting the mood when absent.
func (s *JournalStore) Create(input models.JournalEntryInput) (models.JournalEntry, error) {
	entry := models.JournalEntry{
		Date:        input.Date,
		Title:       input.Title,
		Content:     input.Content,
		Mood:        models.DefaultMood,
		MarketNotes: input.MarketNotes,
		Images:      datatypes.JSONSlice[string]{},
	}
	if input.Mood != nil {
		entry.Mood = *input.Mood
	}
	if input.Images != nil {
		entry.Images = datatypes.JSONSlice[string](input.Images)
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to create journal entry: %w", err)
	}
	return entry, nil
}

// GetByID returns the entry or storage.ErrNotFound.
func (s *JournalStore) GetByID(id int) (models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.JournalEntry{}, storage.ErrNotFound
		}
		return models.JournalEntry{}, fmt.Errorf("failed to get journal entry: %w", err)
	}
	return entry, nil
}

// GetAll returns every entry, most recent date first.
func (s *JournalStore) GetAll() ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := s.db.Order("date desc").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
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
	err := s.db.
		Where("date >= ? AND date <= ?", start, end).
		Order("date desc").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries by date range: %w", err)
	}
	return entries, nil
}

// Update merges the partial fields and saves the entry back.
func (s *JournalStore) Update(id int, update models.JournalEntryUpdate) (models.JournalEntry, error) {
	entry, err := s.GetByID(id)
	if err != nil {
		return models.JournalEntry{}, err
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
	if err := s.db.Save(&entry).Error; err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to update journal entry: %w", err)
	}
	return entry, nil
}

// Delete removes the entry, reporting storage.ErrNotFound for unknown ids.
func (s *JournalStore) Delete(id int) error {
	tx := s.db.Delete(&models.JournalEntry{}, id)
	if tx.Error != nil {
		return fmt.Errorf("failed to delete journal entry: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
