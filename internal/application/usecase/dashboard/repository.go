// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardRepository defines the interface for dashboard data operations.
type DashboardRepository interface {
	// GetCategoryBreakdown returns note counts per category for a period.
	GetCategoryBreakdown(
		ctx context.Context,
		userID uuid.UUID,
		startDate, endDate time.Time,
	) ([]RawCategoryBreakdown, error)

	// GetMoodSummary returns the note count and average mood for a period.
	GetMoodSummary(
		ctx context.Context,
		userID uuid.UUID,
		startDate, endDate time.Time,
	) (*MoodSummary, error)

	// GetRecentNotes returns the most recent notes with their category names.
	GetRecentNotes(
		ctx context.Context,
		userID uuid.UUID,
		limit int,
	) ([]RecentNote, error)
}

// RawCategoryBreakdown represents note counts for one category.
type RawCategoryBreakdown struct {
	CategoryID    uuid.UUID
	CategoryName  string
	CategoryColor string
	CategoryIcon  string
	NoteCount     int
}

// MoodSummary represents aggregate mood data for a period.
// AverageMood is decimal to keep aggregates exact across storage backends.
type MoodSummary struct {
	NoteCount   int
	AverageMood decimal.Decimal
}

// RecentNote represents a note row joined with its category name.
type RecentNote struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Content      string
	MoodRating   int
	NotedOn      time.Time
}
