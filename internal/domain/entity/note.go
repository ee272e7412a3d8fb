// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Mood rating bounds for a reflection note.
const (
	MinMoodRating = 1
	MaxMoodRating = 5
)

// Note represents a single reflection note filed under a category.
// NotedOn is the calendar date the reflection belongs to, which may differ
// from CreatedAt when the user backfills a missed day.
type Note struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Content    string
	MoodRating int
	NotedOn    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewNote creates a new Note entity. NotedOn is truncated to the calendar day.
func NewNote(userID, categoryID uuid.UUID, content string, moodRating int, notedOn time.Time) *Note {
	now := time.Now().UTC()

	return &Note{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Content:    content,
		MoodRating: moodRating,
		NotedOn:    notedOn.UTC().Truncate(24 * time.Hour),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// HasValidMood returns true if the mood rating is within the accepted range.
func (n *Note) HasValidMood() bool {
	return n.MoodRating >= MinMoodRating && n.MoodRating <= MaxMoodRating
}
