// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lifesync/backend/internal/application/usecase/dashboard"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetCategoryBreakdown returns note counts per category for a period.
func (r *dashboardRepository) GetCategoryBreakdown(
	ctx context.Context,
	userID uuid.UUID,
	startDate, endDate time.Time,
) ([]dashboard.RawCategoryBreakdown, error) {
	var results []struct {
		CategoryID    uuid.UUID `gorm:"column:category_id"`
		CategoryName  string    `gorm:"column:category_name"`
		CategoryColor string    `gorm:"column:category_color"`
		CategoryIcon  string    `gorm:"column:category_icon"`
		NoteCount     int       `gorm:"column:note_count"`
	}

	err := r.db.WithContext(ctx).
		Table("notes").
		Select(`categories.id as category_id,
			categories.name as category_name,
			categories.color as category_color,
			categories.icon as category_icon,
			COUNT(notes.id) as note_count`).
		Joins("JOIN categories ON categories.id = notes.category_id").
		Where("notes.user_id = ?", userID).
		Where("notes.noted_on >= ? AND notes.noted_on <= ?", startDate, endDate).
		Where("notes.deleted_at IS NULL").
		Group("categories.id, categories.name, categories.color, categories.icon").
		Order("note_count DESC, category_name ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}

	breakdown := make([]dashboard.RawCategoryBreakdown, 0, len(results))
	for _, row := range results {
		breakdown = append(breakdown, dashboard.RawCategoryBreakdown{
			CategoryID:    row.CategoryID,
			CategoryName:  row.CategoryName,
			CategoryColor: row.CategoryColor,
			CategoryIcon:  row.CategoryIcon,
			NoteCount:     row.NoteCount,
		})
	}
	return breakdown, nil
}

// GetMoodSummary returns the note count and average mood for a period.
func (r *dashboardRepository) GetMoodSummary(
	ctx context.Context,
	userID uuid.UUID,
	startDate, endDate time.Time,
) (*dashboard.MoodSummary, error) {
	var result struct {
		NoteCount   int             `gorm:"column:note_count"`
		AverageMood decimal.Decimal `gorm:"column:average_mood"`
	}

	err := r.db.WithContext(ctx).
		Table("notes").
		Select("COUNT(*) as note_count, COALESCE(AVG(mood_rating), 0) as average_mood").
		Where("user_id = ?", userID).
		Where("noted_on >= ? AND noted_on <= ?", startDate, endDate).
		Where("deleted_at IS NULL").
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get mood summary: %w", err)
	}

	return &dashboard.MoodSummary{
		NoteCount:   result.NoteCount,
		AverageMood: result.AverageMood.Round(2),
	}, nil
}

// GetRecentNotes returns the most recent notes with their category names.
func (r *dashboardRepository) GetRecentNotes(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]dashboard.RecentNote, error) {
	var results []struct {
		ID           uuid.UUID `gorm:"column:id"`
		CategoryID   uuid.UUID `gorm:"column:category_id"`
		CategoryName string    `gorm:"column:category_name"`
		Content      string    `gorm:"column:content"`
		MoodRating   int       `gorm:"column:mood_rating"`
		NotedOn      time.Time `gorm:"column:noted_on"`
	}

	err := r.db.WithContext(ctx).
		Table("notes").
		Select(`notes.id,
			notes.category_id,
			categories.name as category_name,
			notes.content,
			notes.mood_rating,
			notes.noted_on`).
		Joins("JOIN categories ON categories.id = notes.category_id").
		Where("notes.user_id = ?", userID).
		Where("notes.deleted_at IS NULL").
		Order("notes.noted_on DESC, notes.created_at DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent notes: %w", err)
	}

	notes := make([]dashboard.RecentNote, 0, len(results))
	for _, row := range results {
		notes = append(notes, dashboard.RecentNote{
			ID:           row.ID,
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Content:      row.Content,
			MoodRating:   row.MoodRating,
			NotedOn:      row.NotedOn,
		})
	}
	return notes, nil
}
