package storage

import "trade-journal-go/internal/models"

func folder(name string) *string {
	return &name
}

// DefaultNoteSeeds returns the stock notebook folders a fresh journal
// starts with, one example note per folder.
func DefaultNoteSeeds() []models.NoteInput {
	return []models.NoteInput{
		{
			Title:   "Trade Notes",
			Content: "Example note for trade analysis",
			Folder:  folder("Trade Notes"),
			Tags:    []string{"example", "setup"},
		},
		{
			Title:   "Daily Journal",
			Content: "Example note for daily journal",
			Folder:  folder("Daily Journal"),
			Tags:    []string{"example", "journal"},
		},
		{
			Title:   "Sessions Recap",
			Content: "Example note for session recaps",
			Folder:  folder("Sessions Recap"),
			Tags:    []string{"example", "recap"},
		},
		{
			Title:   "My notes",
			Content: "Example personal note",
			Folder:  folder("My notes"),
			Tags:    []string{"example", "personal"},
		},
	}
}
