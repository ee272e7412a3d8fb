// Package note contains reflection-note use cases.
package note

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifesync/backend/internal/application/adapter"
	"github.com/lifesync/backend/internal/domain/entity"
	domainerror "github.com/lifesync/backend/internal/domain/error"
)

// UpdateNoteInput represents the input for note update.
// Nil pointer fields are left unchanged.
type UpdateNoteInput struct {
	NoteID     uuid.UUID
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	Content    *string
	MoodRating *int
}

// UpdateNoteOutput represents the output of note update.
type UpdateNoteOutput struct {
	Note *entity.Note
}

// UpdateNoteUseCase handles note update logic.
type UpdateNoteUseCase struct {
	noteRepo     adapter.NoteRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateNoteUseCase creates a new UpdateNoteUseCase instance.
func NewUpdateNoteUseCase(noteRepo adapter.NoteRepository, categoryRepo adapter.CategoryRepository) *UpdateNoteUseCase {
	return &UpdateNoteUseCase{
		noteRepo:     noteRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the note update.
func (uc *UpdateNoteUseCase) Execute(ctx context.Context, input UpdateNoteInput) (*UpdateNoteOutput, error) {
	note, err := uc.noteRepo.FindByID(ctx, input.NoteID)
	if err != nil {
		return nil, domainerror.NewNoteError(
			domainerror.ErrCodeNoteNotFound,
			"note not found",
			domainerror.ErrNoteNotFound,
		)
	}

	// Ownership check
	if note.UserID != input.UserID {
		return nil, domainerror.NewNoteError(
			domainerror.ErrCodeNotAuthorizedNote,
			"not authorized to modify this note",
			domainerror.ErrNotAuthorizedToModifyNote,
		)
	}

	if input.Content != nil {
		if err := validateNoteContent(*input.Content); err != nil {
			return nil, err
		}
		note.Content = *input.Content
	}

	if input.MoodRating != nil {
		if err := validateMoodRating(*input.MoodRating); err != nil {
			return nil, err
		}
		note.MoodRating = *input.MoodRating
	}

	if input.CategoryID != nil && *input.CategoryID != note.CategoryID {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		if category.UserID != input.UserID {
			return nil, domainerror.NewNoteError(
				domainerror.ErrCodeNotAuthorizedNote,
				"not authorized to file notes under this category",
				domainerror.ErrNotAuthorizedToModifyNote,
			)
		}
		note.CategoryID = *input.CategoryID
	}

	note.UpdatedAt = time.Now().UTC()

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &UpdateNoteOutput{Note: note}, nil
}
