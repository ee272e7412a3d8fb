// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifesync/backend/internal/domain/entity"
)

// NoteModel represents the notes table in the database.
type NoteModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Content    string         `gorm:"type:text;not null"`
	MoodRating int            `gorm:"not null"`
	NotedOn    time.Time      `gorm:"type:date;not null;index"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
	DeletedAt  gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the NoteModel.
func (NoteModel) TableName() string {
	return "notes"
}

// ToEntity converts a NoteModel to a domain Note entity.
func (m *NoteModel) ToEntity() *entity.Note {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Note{
		ID:         m.ID,
		UserID:     m.UserID,
		CategoryID: m.CategoryID,
		Content:    m.Content,
		MoodRating: m.MoodRating,
		NotedOn:    m.NotedOn,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// NoteFromEntity creates a NoteModel from a domain Note entity.
func NoteFromEntity(note *entity.Note) *NoteModel {
	var deletedAt gorm.DeletedAt
	if note.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *note.DeletedAt, Valid: true}
	}

	return &NoteModel{
		ID:         note.ID,
		UserID:     note.UserID,
		CategoryID: note.CategoryID,
		Content:    note.Content,
		MoodRating: note.MoodRating,
		NotedOn:    note.NotedOn,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
