// Package error defines domain-specific errors for the LifeSync application.
package error

import "errors"

// Note domain errors.
var (
	// ErrNoteNotFound is returned when a note is not found in the system.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNoteContentEmpty is returned when the note content is empty.
	ErrNoteContentEmpty = errors.New("note content must not be empty")

	// ErrNoteContentTooLong is returned when the note content exceeds the maximum length.
	ErrNoteContentTooLong = errors.New("note content too long")

	// ErrInvalidMoodRating is returned when the mood rating is out of range.
	ErrInvalidMoodRating = errors.New("mood rating must be between 1 and 5")

	// ErrNotedOnInFuture is returned when the note date is in the future.
	ErrNotedOnInFuture = errors.New("note date must not be in the future")

	// ErrNotAuthorizedToModifyNote is returned when user is not authorized to modify a note.
	ErrNotAuthorizedToModifyNote = errors.New("not authorized to modify note")
)

// NoteErrorCode defines error codes for note errors.
// Format: NOTE-XXYYYY where XX is category and YYYY is specific error.
type NoteErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNoteContentEmpty   NoteErrorCode = "NOTE-010001"
	ErrCodeNoteContentTooLong NoteErrorCode = "NOTE-010002"
	ErrCodeInvalidMoodRating  NoteErrorCode = "NOTE-010003"
	ErrCodeNotedOnInFuture    NoteErrorCode = "NOTE-010004"
	ErrCodeNoteNotFound       NoteErrorCode = "NOTE-010005"
	ErrCodeNotAuthorizedNote  NoteErrorCode = "NOTE-010006"
	ErrCodeMissingNoteFields  NoteErrorCode = "NOTE-010007"
)

// NoteError represents a note error with code and message.
type NoteError struct {
	Code    NoteErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NoteError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NoteError) Unwrap() error {
	return e.Err
}

// NewNoteError creates a new NoteError with the given code and message.
func NewNoteError(code NoteErrorCode, message string, err error) *NoteError {
	return &NoteError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
