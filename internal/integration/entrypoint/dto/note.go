// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifesync/backend/internal/domain/entity"
)

// CreateNoteRequest represents the request body for creating a note.
type CreateNoteRequest struct {
	CategoryID string `json:"category_id" binding:"required,uuid"`
	Content    string `json:"content" binding:"required,min=1,max=5000"`
	MoodRating int    `json:"mood_rating" binding:"required,min=1,max=5"`
	NotedOn    string `json:"noted_on" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateNoteRequest represents the request body for updating a note.
type UpdateNoteRequest struct {
	CategoryID string `json:"category_id" binding:"omitempty,uuid"`
	Content    string `json:"content" binding:"omitempty,min=1,max=5000"`
	MoodRating int    `json:"mood_rating" binding:"omitempty,min=1,max=5"`
}

// NoteResponse represents a note in API responses.
type NoteResponse struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Content    string    `json:"content"`
	MoodRating int       `json:"mood_rating"`
	NotedOn    string    `json:"noted_on"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NoteListResponse represents the response for listing notes.
type NoteListResponse struct {
	Notes  []NoteResponse `json:"notes"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// ToNoteResponse converts a domain Note entity to a NoteResponse DTO.
func ToNoteResponse(note *entity.Note) NoteResponse {
	return NoteResponse{
		ID:         note.ID.String(),
		CategoryID: note.CategoryID.String(),
		Content:    note.Content,
		MoodRating: note.MoodRating,
		NotedOn:    note.NotedOn.Format("2006-01-02"),
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
	}
}
