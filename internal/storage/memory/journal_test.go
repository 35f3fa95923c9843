package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-journal-go/internal/models"
)

func TestJournalStore_CreateDefaultsMood(t *testing.T) {
	store := NewJournalStore()

	entry, err := store.Create(models.JournalEntryInput{
		Date:    time.Now(),
		Title:   "Choppy open",
		Content: "Sat out the first hour.",
	})

	require.NoError(t, err)
	assert.Equal(t, models.DefaultMood, entry.Mood)
	assert.NotNil(t, entry.Images)
}

func TestJournalStore_GetByDateCoversWholeDay(t *testing.T) {
	store := NewJournalStore()
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	store.Create(models.JournalEntryInput{Date: day.Add(5 * time.Minute), Title: "am", Content: "x"})
	store.Create(models.JournalEntryInput{Date: day.Add(23 * time.Hour), Title: "pm", Content: "x"})
	store.Create(models.JournalEntryInput{Date: day.Add(25 * time.Hour), Title: "next day", Content: "x"})

	entries, err := store.GetByDate(day.Add(12 * time.Hour))

	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestNoteStore_UpdateBumpsUpdatedAt(t *testing.T) {
	store := NewNoteStore()
	note, err := store.Create(models.NoteInput{Title: "Setups", Content: "ORB rules"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	content := "ORB rules, revised"
	updated, err := store.Update(note.ID, models.NoteUpdate{Content: &content})

	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(note.UpdatedAt))
	assert.Equal(t, note.CreatedAt, updated.CreatedAt)
}
