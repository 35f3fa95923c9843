package memory

import (
	"sort"
	"time"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/storage"
)

// PlaybookStore is the in-memory playbook repository.
type PlaybookStore struct {
	playbooks map[int]models.Playbook
	nextID    int
}

var _ storage.PlaybookStore = (*PlaybookStore)(nil)

// NewPlaybookStore creates an empty in-memory playbook store.
func NewPlaybookStore() *PlaybookStore {
	return &PlaybookStore{
		playbooks: make(map[int]models.Playbook),
		nextID:    1,
	}
}

// Create assigns the next id and stores the playbook with creation timestamps.
func (s *PlaybookStore) Create(input models.PlaybookInput) (models.Playbook, error) {
	now := time.Now()
	playbook := models.Playbook{
		ID:          s.nextID,
		Name:        input.Name,
		Description: input.Description,
		Rules:       input.Rules,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++
	s.playbooks[playbook.ID] = playbook
	return playbook, nil
}

// GetByID returns the playbook or storage.ErrNotFound.
func (s *PlaybookStore) GetByID(id int) (models.Playbook, error) {
	playbook, ok := s.playbooks[id]
	if !ok {
		return models.Playbook{}, storage.ErrNotFound
	}
	return playbook, nil
}

// GetAll returns every playbook, most recently updated first.
func (s *PlaybookStore) GetAll() ([]models.Playbook, error) {
	playbooks := make([]models.Playbook, 0, len(s.playbooks))
	for _, p := range s.playbooks {
		playbooks = append(playbooks, p)
	}
	sort.SliceStable(playbooks, func(i, j int) bool {
		return playbooks[i].UpdatedAt.After(playbooks[j].UpdatedAt)
	})
	return playbooks, nil
}

// Update merges the partial fields and bumps updatedAt.
func (s *PlaybookStore) Update(id int, update models.PlaybookUpdate) (models.Playbook, error) {
	playbook, ok := s.playbooks[id]
	if !ok {
		return models.Playbook{}, storage.ErrNotFound
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
	s.playbooks[id] = playbook
	return playbook, nil
}

// Delete removes the playbook. The freed id is not reused.
func (s *PlaybookStore) Delete(id int) error {
	if _, ok := s.playbooks[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.playbooks, id)
	return nil
}
