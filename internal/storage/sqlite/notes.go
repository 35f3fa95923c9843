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

// NoteStore is the sqlite notebook repository.
type NoteStore struct {
	db *gorm.DB
}

var _ storage.NoteStore = (*NoteStore)(nil)

// Create inserts the note with creation timestamps.
func (s *NoteStore) Create(input models.NoteInput) (models.Note, error) {
	now := time.Now()
	note := models.Note{
		Title:     input.Title,
		Content:   input.Content,
		Folder:    models.DefaultFolder,
		Tags:      datatypes.JSONSlice[string]{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Folder != nil {
		note.Folder = *input.Folder
	}
	if input.Tags != nil {
		note.Tags = datatypes.JSONSlice[string](input.Tags)
	}
	if err := s.db.Create(&note).Error; err != nil {
		return models.Note{}, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

// GetByID returns the note or storage.ErrNotFound.
func (s *NoteStore) GetByID(id int) (models.Note, error) {
	var note models.Note
	if err := s.db.First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, storage.ErrNotFound
		}
		return models.Note{}, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

// GetAll returns every note, most recently updated first.
func (s *NoteStore) GetAll() ([]models.Note, error) {
	var notes []models.Note
	if err := s.db.Order("updated_at desc").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// GetByFolder returns the notes in one folder, most recently updated first.
func (s *NoteStore) GetByFolder(folder string) ([]models.Note, error) {
	var notes []models.Note
	if err := s.db.Where("folder = ?", folder).Order("updated_at desc").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to list notes by folder: %w", err)
	}
	return notes, nil
}

// Update merges the partial fields, bumps updatedAt and saves the note back.
func (s *NoteStore) Update(id int, update models.NoteUpdate) (models.Note, error) {
	note, err := s.GetByID(id)
	if err != nil {
		return models.Note{}, err
	}
	if update.Title != nil {
		note.Title = *update.Title
	}
	if update.Content != nil {
		note.Content = *update.Content
	}
	if update.Folder != nil {
		note.Folder = *update.Folder
	}
	if update.Tags != nil {
		note.Tags = datatypes.JSONSlice[string](update.Tags)
	}
	note.UpdatedAt = time.Now()
	if err := s.db.Save(&note).Error; err != nil {
		return models.Note{}, fmt.Errorf("failed to update note: %w", err)
	}
	return note, nil
}

// Delete removes the note, reporting storage.ErrNotFound for unknown ids.
func (s *NoteStore) Delete(id int) error {
	tx := s.db.Delete(&models.Note{}, id)
	if tx.Error != nil {
		return fmt.Errorf("failed to delete note: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
