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

// MaxNoteContentLength is the maximum allowed length for note content.
const MaxNoteContentLength = 5000

// CreateNoteInput represents the input for note creation.
type CreateNoteInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Content    string
	MoodRating int
	NotedOn    time.Time
}

// CreateNoteOutput represents the output of note creation.
type CreateNoteOutput struct {
	Note *entity.Note
}

// CreateNoteUseCase handles note creation logic.
type CreateNoteUseCase struct {
	noteRepo     adapter.NoteRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateNoteUseCase creates a new CreateNoteUseCase instance.
func NewCreateNoteUseCase(noteRepo adapter.NoteRepository, categoryRepo adapter.CategoryRepository) *CreateNoteUseCase {
	return &CreateNoteUseCase{
		noteRepo:     noteRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the note creation.
func (uc *CreateNoteUseCase) Execute(ctx context.Context, input CreateNoteInput) (*CreateNoteOutput, error) {
	if err := validateNoteContent(input.Content); err != nil {
		return nil, err
	}
	if err := validateMoodRating(input.MoodRating); err != nil {
		return nil, err
	}
	if err := validateNotedOn(input.NotedOn); err != nil {
		return nil, err
	}

	// The category must exist and belong to the user
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
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

	note := entity.NewNote(input.UserID, input.CategoryID, input.Content, input.MoodRating, input.NotedOn)
	if err := uc.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return &CreateNoteOutput{Note: note}, nil
}

// validateNoteContent checks the content is present and within bounds.
func validateNoteContent(content string) error {
	if content == "" {
		return domainerror.NewNoteError(
			domainerror.ErrCodeNoteContentEmpty,
			"note content must not be empty",
			domainerror.ErrNoteContentEmpty,
		)
	}
	if len(content) > MaxNoteContentLength {
		return domainerror.NewNoteError(
			domainerror.ErrCodeNoteContentTooLong,
			fmt.Sprintf("note content must not exceed %d characters", MaxNoteContentLength),
			domainerror.ErrNoteContentTooLong,
		)
	}
	return nil
}

// validateMoodRating checks the mood rating is within the accepted range.
func validateMoodRating(rating int) error {
	if rating < entity.MinMoodRating || rating > entity.MaxMoodRating {
		return domainerror.NewNoteError(
			domainerror.ErrCodeInvalidMoodRating,
			"mood rating must be between 1 and 5",
			domainerror.ErrInvalidMoodRating,
		)
	}
	return nil
}

// validateNotedOn rejects notes dated in the future.
func validateNotedOn(notedOn time.Time) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if notedOn.UTC().Truncate(24 * time.Hour).After(today) {
		return domainerror.NewNoteError(
			domainerror.ErrCodeNotedOnInFuture,
			"note date must not be in the future",
			domainerror.ErrNotedOnInFuture,
		)
	}
	return nil
}
