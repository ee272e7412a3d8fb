// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifesync/backend/internal/domain/entity"
)

// ReportResponse represents a weekly report in API responses.
type ReportResponse struct {
	ID            string     `json:"id"`
	PeriodStart   string     `json:"period_start"`
	PeriodEnd     string     `json:"period_end"`
	NoteCount     int        `json:"note_count"`
	StreakDays    int        `json:"streak_days"`
	AverageMood   string     `json:"average_mood"`
	TopCategories []string   `json:"top_categories"`
	Insight       string     `json:"insight,omitempty"`
	Status        string     `json:"status"`
	GeneratedAt   *time.Time `json:"generated_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ReportListResponse represents the response for listing reports.
type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// ToReportResponse converts a domain Report entity to a ReportResponse DTO.
func ToReportResponse(report *entity.Report) ReportResponse {
	topCategories := report.TopCategories
	if topCategories == nil {
		topCategories = []string{}
	}

	return ReportResponse{
		ID:            report.ID.String(),
		PeriodStart:   report.PeriodStart.Format("2006-01-02"),
		PeriodEnd:     report.PeriodEnd.Format("2006-01-02"),
		NoteCount:     report.NoteCount,
		StreakDays:    report.StreakDays,
		AverageMood:   report.AverageMood.StringFixed(1),
		TopCategories: topCategories,
		Insight:       report.Insight,
		Status:        string(report.Status),
		GeneratedAt:   report.GeneratedAt,
		CreatedAt:     report.CreatedAt,
	}
}
