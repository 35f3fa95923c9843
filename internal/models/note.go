package models

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultFolder is where notes land when no folder is chosen.
const DefaultFolder = "All notes"

// Note is a notebook entry organized into folders.
type Note struct {
	ID        int                         `json:"id" gorm:"primaryKey"`
	Title     string                      `json:"title"`
	Content   string                      `json:"content"`
	Folder    string                      `json:"folder"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}

// NoteInput is the payload accepted when creating a note.
type NoteInput struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Folder  *string  `json:"folder"`
	Tags    []string `json:"tags"`
}

// NoteUpdate is a partial update; nil fields are left untouched. Any
// successful update bumps the note's updatedAt timestamp.
type NoteUpdate struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Folder  *string  `json:"folder"`
	Tags    []string `json:"tags"`
}
