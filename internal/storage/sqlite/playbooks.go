package sqlite

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/storage"
)

// PlaybookStore is the sqlite playbook repository.
type PlaybookStore struct {
	db *gorm.DB
}

var _ storage.PlaybookStore = (*PlaybookStore)(nil)

// Create inserts the playbook with creation timestamps.
func (s *PlaybookStore) Create(input models.PlaybookInput) (models.Playbook, error) {
	now := time.Now()
	playbook := models.Playbook{
		Name:        input.Name,
		Description: input.Description,
		Rules:       input.Rules,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.db.Create(&playbook).Error; err != nil {
		return models.Playbook{}, fmt.Errorf("failed to create playbook: %w", err)
	}
	return playbook, nil
}

// GetByID returns the playbook or storage.ErrNotFound.
func (s *PlaybookStore) GetByID(id int) (models.Playbook, error) {
	var playbook models.Playbook
	if err := s.db.First(&playbook, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Playbook{}, storage.ErrNotFound
		}
		return models.Playbook{}, fmt.Errorf("failed to get playbook: %w", err)
	}
	return playbook, nil
}

// GetAll returns every playbook, most recently updated first.
func (s *PlaybookStore) GetAll() ([]models.Playbook, error) {
	var playbooks []models.Playbook
	if err := s.db.Order("updated_at desc").Find(&playbooks).Error; err != nil {
		return nil, fmt.Errorf("failed to list playbooks: %w", err)
	}
	return playbooks, nil
}

// Update merges the partial fields, bumps updatedAt and saves the playbook.
func (s *PlaybookStore) Update(id int, update models.PlaybookUpdate) (models.Playbook, error) {
	playbook, err := s.GetByID(id)
	if err != nil {
		return models.Playbook{}, err
	}
	if update.Name != nil {
		playbook.Name = *update.Name
	}
	if update.Description != nil {
		playbook.Description = update.Description
	}
	if update.Rules != nil {
		playbook.Rules = update.Rules
	}
	playbook.UpdatedAt = time.Now()
	if err := s.db.Save(&playbook).Error; err != nil {
		return models.Playbook{}, fmt.Errorf("failed to update playbook: %w", err)
	}
	return playbook, nil
}

// Delete removes the playbook, reporting storage.ErrNotFound for unknown ids.
func (s *PlaybookStore) Delete(id int) error {
	tx := s.db.Delete(&models.Playbook{}, id)
	if tx.Error != nil {
		return fmt.Errorf("failed to delete playbook: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
