// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifesync/backend/internal/domain/entity"
)

// NoteFilter holds optional filters for listing notes.
type NoteFilter struct {
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}

// NoteRepository defines the interface for note persistence operations.
type NoteRepository interface {
	// Create creates a new note in the database.
	Create(ctx context.Context, note *entity.Note) error

	// FindByID retrieves a note by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Note, error)

	// FindByUser retrieves notes for a user matching the filter, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter NoteFilter) ([]*entity.Note, error)

	// Update updates an existing note in the database.
	Update(ctx context.Context, note *entity.Note) error

	// Delete soft-deletes a note.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByCategory returns the number of notes filed under a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// DistinctNoteDates returns the distinct NotedOn dates for a user, newest first.
	DistinctNoteDates(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
}
