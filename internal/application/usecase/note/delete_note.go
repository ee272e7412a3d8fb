// Package note contains reflection-note use cases.
package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifesync/backend/internal/application/adapter"
	domainerror "github.com/lifesync/backend/internal/domain/error"
)

// DeleteNoteInput represents the input for note deletion.
type DeleteNoteInput struct {
	NoteID uuid.UUID
	UserID uuid.UUID
}

// DeleteNoteUseCase handles note deletion logic.
type DeleteNoteUseCase struct {
	noteRepo adapter.NoteRepository
}

// NewDeleteNoteUseCase creates a new DeleteNoteUseCase instance.
func NewDeleteNoteUseCase(noteRepo adapter.NoteRepository) *DeleteNoteUseCase {
	return &DeleteNoteUseCase{
		noteRepo: noteRepo,
	}
}

// Execute performs the note deletion.
func (uc *DeleteNoteUseCase) Execute(ctx context.Context, input DeleteNoteInput) error {
	note, err := uc.noteRepo.FindByID(ctx, input.NoteID)
	if err != nil {
		return domainerror.NewNoteError(
			domainerror.ErrCodeNoteNotFound,
			"note not found",
			domainerror.ErrNoteNotFound,
		)
	}

	if note.UserID != input.UserID {
		return domainerror.NewNoteError(
			domainerror.ErrCodeNotAuthorizedNote,
			"not authorized to modify this note",
			domainerror.ErrNotAuthorizedToModifyNote,
		)
	}

	if err := uc.noteRepo.Delete(ctx, input.NoteID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
