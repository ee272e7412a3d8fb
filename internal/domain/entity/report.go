// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportStatus represents the lifecycle state of a weekly report.
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusGenerated ReportStatus = "generated"
	ReportStatusDelivered ReportStatus = "delivered"
	ReportStatusFailed    ReportStatus = "failed"
)

// Report represents a generated weekly reflection report for a user.
type Report struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PeriodStart   time.Time
	PeriodEnd     time.Time
	NoteCount     int
	StreakDays    int
	AverageMood   decimal.Decimal
	TopCategories []string
	Insight       string
	Status        ReportStatus
	GeneratedAt   *time.Time
	DeliveredAt   *time.Time
	CreatedAt     time.Time
}

// NewReport creates a pending Report covering the given period.
func NewReport(userID uuid.UUID, periodStart, periodEnd time.Time) *Report {
	return &Report{
		ID:          uuid.New(),
		UserID:      userID,
		PeriodStart: periodStart.UTC(),
		PeriodEnd:   periodEnd.UTC(),
		AverageMood: decimal.Zero,
		Status:      ReportStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
}

// MarkGenerated records the report content and moves it to generated.
func (r *Report) MarkGenerated(noteCount, streakDays int, averageMood decimal.Decimal, topCategories []string, insight string) {
	now := time.Now().UTC()
	r.NoteCount = noteCount
	r.StreakDays = streakDays
	r.AverageMood = averageMood
	r.TopCategories = topCategories
	r.Insight = insight
	r.Status = ReportStatusGenerated
	r.GeneratedAt = &now
}

// MarkDelivered records successful email delivery of the report.
func (r *Report) MarkDelivered() {
	now := time.Now().UTC()
	r.Status = ReportStatusDelivered
	r.DeliveredAt = &now
}

// MarkFailed moves the report to the failed state.
func (r *Report) MarkFailed() {
	r.Status = ReportStatusFailed
}
