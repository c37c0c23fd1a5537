package model

import "time"

// Summary represents a versioned text summary generated for a note.
// Versions are append-only: creating a summary for a note always assigns
// max(existing version)+1, while updating one mutates content in place.
// The composite unique index guards against two summaries of the same note
// ever sharing a version.
// @Description Versioned note summary
type Summary struct {
	ID          uint      `json:"id" gorm:"primaryKey" example:"1"`
	NoteID      uint      `json:"noteId" gorm:"not null;uniqueIndex:idx_summaries_note_version" example:"1"`
	Note        *Note     `json:"-" gorm:"foreignKey:NoteID"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	Version     int       `json:"version" gorm:"not null;uniqueIndex:idx_summaries_note_version" example:"1"`
	GeneratedAt time.Time `json:"generatedAt" gorm:"autoCreateTime"`
}
