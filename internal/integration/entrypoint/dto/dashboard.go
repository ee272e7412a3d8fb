// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/lifesync/backend/internal/application/usecase/dashboard"
)

// DashboardResponse represents the assembled dashboard view.
type DashboardResponse struct {
	CurrentStreak     int                         `json:"current_streak"`
	LongestStreak     int                         `json:"longest_streak"`
	NoteCount         int                         `json:"note_count"`
	AverageMood       string                      `json:"average_mood"`
	CategoryBreakdown []CategoryBreakdownResponse `json:"category_breakdown"`
	RecentNotes       []RecentNoteResponse        `json:"recent_notes"`
	PeriodStart       string                      `json:"period_start"`
	PeriodEnd         string                      `json:"period_end"`
}

// CategoryBreakdownResponse represents note counts for one category.
type CategoryBreakdownResponse struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Color        string `json:"color"`
	Icon         string `json:"icon"`
	NoteCount    int    `json:"note_count"`
}

// RecentNoteResponse represents a recent note on the dashboard.
type RecentNoteResponse struct {
	ID           string `json:"id"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Content      string `json:"content"`
	MoodRating   int    `json:"mood_rating"`
	NotedOn      string `json:"noted_on"`
}

// ToDashboardResponse converts the dashboard use case output to its DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	breakdown := make([]CategoryBreakdownResponse, 0, len(output.CategoryBreakdown))
	for _, item := range output.CategoryBreakdown {
		breakdown = append(breakdown, CategoryBreakdownResponse{
			CategoryID:   item.CategoryID.String(),
			CategoryName: item.CategoryName,
			Color:        item.CategoryColor,
			Icon:         item.CategoryIcon,
			NoteCount:    item.NoteCount,
		})
	}

	recentNotes := make([]RecentNoteResponse, 0, len(output.RecentNotes))
	for _, note := range output.RecentNotes {
		recentNotes = append(recentNotes, RecentNoteResponse{
			ID:           note.ID.String(),
			CategoryID:   note.CategoryID.String(),
			CategoryName: note.CategoryName,
			Content:      note.Content,
			MoodRating:   note.MoodRating,
			NotedOn:      note.NotedOn.Format("2006-01-02"),
		})
	}

	return DashboardResponse{
		CurrentStreak:     output.CurrentStreak,
		LongestStreak:     output.LongestStreak,
		NoteCount:         output.NoteCount,
		AverageMood:       output.AverageMood.StringFixed(1),
		CategoryBreakdown: breakdown,
		RecentNotes:       recentNotes,
		PeriodStart:       output.PeriodStart.Format("2006-01-02"),
		PeriodEnd:         output.PeriodEnd.Format("2006-01-02"),
	}
}
