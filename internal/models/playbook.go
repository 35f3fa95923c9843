package models

import (
	"time"

	"gorm.io/datatypes"
)

// Playbook is a named trading strategy with a free-form rules document.
// Rules are stored as opaque JSON; the server never interprets them.
type Playbook struct {
	ID          int            `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Rules       datatypes.JSON `json:"rules"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// PlaybookInput is the payload accepted when creating a playbook.
type PlaybookInput struct {
	Name        string         `json:"name" binding:"required"`
	Description *string        `json:"description"`
	Rules       datatypes.JSON `json:"rules" binding:"required"`
}

// PlaybookUpdate is a partial update; nil fields are left untouched.
type PlaybookUpdate struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Rules       datatypes.JSON `json:"rules"`
}
