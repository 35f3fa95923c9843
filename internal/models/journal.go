package models

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultMood is the middle of the 1-5 mood scale, used when an entry
// does not report one.
const DefaultMood = 3

// JournalEntry is a dated free-form journal record with an optional
// 1-5 mood score and market commentary.
type JournalEntry struct {
	ID          int                         `json:"id" gorm:"primaryKey"`
	Date        time.Time                   `json:"date"`
	Title       string                      `json:"title"`
	Content     string                      `json:"content"`
	Mood        int                         `json:"mood"`
	MarketNotes *string                     `json:"marketNotes"`
	Images      datatypes.JSONSlice[string] `json:"images"`
}

// JournalEntryInput is the payload accepted when creating a journal entry.
type JournalEntryInput struct {
	Date        time.Time `json:"date" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Content     string    `json:"content" binding:"required"`
	Mood        *int      `json:"mood" binding:"omitempty,min=1,max=5"`
	MarketNotes *string   `json:"marketNotes"`
	Images      []string  `json:"images"`
}

// JournalEntryUpdate is a partial update; nil fields are left untouched.
type JournalEntryUpdate struct {
	Date        *time.Time `json:"date"`
	Title       *string    `json:"title"`
	Content     *string    `json:"content"`
	Mood        *int       `json:"mood" binding:"omitempty,min=1,max=5"`
	MarketNotes *string    `json:"marketNotes"`
	Images      []string   `json:"images"`
}
