// Package error defines domain-specific errors for the LifeSync application.
package error

import "errors"

// Report domain errors.
var (
	// ErrReportNotFound is returned when a report is not found in the system.
	ErrReportNotFound = errors.New("report not found")

	// ErrReportAlreadyExists is returned when a report for the period already exists.
	ErrReportAlreadyExists = errors.New("report for this period already exists")

	// ErrNoNotesInPeriod is returned when generating a report for a period without notes.
	ErrNoNotesInPeriod = errors.New("no notes in report period")

	// ErrInsightUnavailable is returned when the insight service cannot produce a summary.
	ErrInsightUnavailable = errors.New("insight service unavailable")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Generation errors (01XXXX)
	ErrCodeReportNotFound      ReportErrorCode = "RPT-010001"
	ErrCodeReportAlreadyExists ReportErrorCode = "RPT-010002"
	ErrCodeNoNotesInPeriod     ReportErrorCode = "RPT-010003"

	// Insight errors (02XXXX)
	ErrCodeInsightUnavailable ReportErrorCode = "RPT-020001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
