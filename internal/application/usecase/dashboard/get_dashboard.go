// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifesync/backend/internal/application/adapter"
	domainerror "github.com/lifesync/backend/internal/domain/error"
)

// recentNotesLimit is how many recent notes the dashboard shows.
const recentNotesLimit = 5

// GetDashboardInput represents the input for the dashboard view. A zero
// EndDate defaults to today; a zero StartDate defaults to a 7-day window
// ending at EndDate.
type GetDashboardInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetDashboardOutput represents the assembled dashboard view.
type GetDashboardOutput struct {
	CurrentStreak     int
	LongestStreak     int
	NoteCount         int
	AverageMood       decimal.Decimal
	CategoryBreakdown []RawCategoryBreakdown
	RecentNotes       []RecentNote
	PeriodStart       time.Time
	PeriodEnd         time.Time
}

// GetDashboardUseCase assembles the personal reflection dashboard.
type GetDashboardUseCase struct {
	dashboardRepo DashboardRepository
	noteRepo      adapter.NoteRepository
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(dashboardRepo DashboardRepository, noteRepo adapter.NoteRepository) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		dashboardRepo: dashboardRepo,
		noteRepo:      noteRepo,
	}
}

// Execute builds the dashboard for the requested period.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	now := time.Now().UTC()

	// Missing bounds default independently: the end to today, the start to a
	// 7-day window ending at the end bound.
	startDate := input.StartDate
	endDate := input.EndDate
	if endDate.IsZero() {
		endDate = now.Truncate(24 * time.Hour)
	}
	if startDate.IsZero() {
		startDate = endDate.AddDate(0, 0, -6)
	}
	if endDate.Before(startDate) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must be after start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	noteDates, err := uc.noteRepo.DistinctNoteDates(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note dates: %w", err)
	}
	streaks := CalculateStreaks(noteDates, now)

	moodSummary, err := uc.dashboardRepo.GetMoodSummary(ctx, input.UserID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood summary: %w", err)
	}

	breakdown, err := uc.dashboardRepo.GetCategoryBreakdown(ctx, input.UserID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}

	recent, err := uc.dashboardRepo.GetRecentNotes(ctx, input.UserID, recentNotesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent notes: %w", err)
	}

	return &GetDashboardOutput{
		CurrentStreak:     streaks.CurrentStreak,
		LongestStreak:     streaks.LongestStreak,
		NoteCount:         moodSummary.NoteCount,
		AverageMood:       moodSummary.AverageMood,
		CategoryBreakdown: breakdown,
		RecentNotes:       recent,
		PeriodStart:       startDate,
		PeriodEnd:         endDate,
	}, nil
}
