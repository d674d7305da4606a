package models

import "time"

// DefaultNoteCategory is assigned to notes created or edited without one.
const DefaultNoteCategory = "General"

type Note struct {
	ID        string
	Title     string
	Content   string
	Category  string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
