package memory

import (
	"sort"
	"time"

	"gorm.io/datatypes"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/storage"
)

// NoteStore is the in-memory notebook repository.
type NoteStore struct {
	notes  map[int]models.Note
	nextID int
}

var _ storage.NoteStore = (*NoteStore)(nil)

// NewNoteStore creates an empty in-memory note store.
func NewNoteStore() *NoteStore {
	return &NoteStore{
		notes:  make(map[int]models.Note),
		nextID: 1,
	}
}

// Create assigns the next id and stores the note with creation timestamps.
func (s *NoteStore) Create(input models.NoteInput) (models.Note, error) {
	now := time.Now()
	note := models.Note{
		ID:        s.nextID,
		Title:     input.Title,
		Content:   input.Content,
		Folder:    models.DefaultFolder,
		Tags:      datatypes.JSONSlice[string]{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++
	if input.Folder != nil {
		note.Folder = *input.Folder
	}
	if input.Tags != nil {
		note.Tags = datatypes.JSONSlice[string](input.Tags)
	}
	s.notes[note.ID] = note
	return note, nil
}

// GetByID returns the note or storage.ErrNotFound.
func (s *NoteStore) GetByID(id int) (models.Note, error) {
	note, ok := s.notes[id]
	if !ok {
		return models.Note{}, storage.ErrNotFound
	}
	return note, nil
}

// GetAll returns every note, most recently updated first.
func (s *NoteStore) GetAll() ([]models.Note, error) {
	notes := make([]models.Note, 0, len(s.notes))
	for _, n := range s.notes {
		notes = append(notes, n)
	}
	sortByUpdatedDesc(notes)
	return notes, nil
}

// GetByFolder returns the notes in one folder, most recently updated first.
func (s *NoteStore) GetByFolder(folder string) ([]models.Note, error) {
	var notes []models.Note
	for _, n := range s.notes {
		if n.Folder == folder {
			notes = append(notes, n)
		}
	}
	sortByUpdatedDesc(notes)
	return notes, nil
}

// Update merges the partial fields and bumps updatedAt.
func (s *NoteStore) Update(id int, update models.NoteUpdate) (models.Note, error) {
	note, ok := s.notes[id]
	if !ok {
		return models.Note{}, storage.ErrNotFound
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
	s.notes[id] = note
	return note, nil
}

// Delete removes the note. The freed id is not reused.
func (s *NoteStore) Delete(id int) error {
	if _, ok := s.notes[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.notes, id)
	return nil
}

func sortByUpdatedDesc(notes []models.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}
