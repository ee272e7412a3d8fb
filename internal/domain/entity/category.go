// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the default color for reflection categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for reflection categories.
const DefaultCategoryIcon = "sparkles"

// Category represents a reflection category a user files notes under.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Color     string
	Icon      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
// Note: Defaulting logic for color and icon should be applied in the Application layer (UseCase)
// before calling this constructor.
func NewCategory(userID uuid.UUID, name, color, icon string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		Icon:      icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultCategories returns the seed categories every new user starts with.
func DefaultCategories(userID uuid.UUID) []*Category {
	seeds := []struct {
		name  string
		color string
		icon  string
	}{
		{"Gratitude", "#F59E0B", "heart"},
		{"Goals", "#6366F1", "target"},
		{"Mood", "#10B981", "smile"},
		{"Learning", "#8B5CF6", "book"},
	}

	categories := make([]*Category, 0, len(seeds))
	for _, seed := range seeds {
		categories = append(categories, NewCategory(userID, seed.name, seed.color, seed.icon))
	}
	return categories
}

// CategoryWithStats represents a category with note statistics for a period.
type CategoryWithStats struct {
	Category  *Category
	NoteCount int
}
