// Package note contains reflection-note use cases.
package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifesync/backend/internal/application/adapter"
	"github.com/lifesync/backend/internal/domain/entity"
)

const (
	// DefaultPageSize is the default number of notes per page.
	DefaultPageSize = 20
	// MaxPageSize is the maximum number of notes per page.
	MaxPageSize = 100
)

// ListNotesInput represents the input for listing notes.
type ListNotesInput struct {
	UserID uuid.UUID
	Filter adapter.NoteFilter
}

// ListNotesOutput represents the output of listing notes.
type ListNotesOutput struct {
	Notes []*entity.Note
}

// ListNotesUseCase handles note listing logic.
type ListNotesUseCase struct {
	noteRepo adapter.NoteRepository
}

// NewListNotesUseCase creates a new ListNotesUseCase instance.
func NewListNotesUseCase(noteRepo adapter.NoteRepository) *ListNotesUseCase {
	return &ListNotesUseCase{
		noteRepo: noteRepo,
	}
}

// Execute lists the user's notes matching the filter, newest first.
func (uc *ListNotesUseCase) Execute(ctx context.Context, input ListNotesInput) (*ListNotesOutput, error) {
	filter := input.Filter
	if filter.Limit <= 0 {
		filter.Limit = DefaultPageSize
	}
	if filter.Limit > MaxPageSize {
		filter.Limit = MaxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	notes, err := uc.noteRepo.FindByUser(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return &ListNotesOutput{Notes: notes}, nil
}
