// Package category contains reflection-category use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifesync/backend/internal/application/adapter"
	"github.com/lifesync/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID    uuid.UUID
	StartDate *time.Time // Optional period for note stats
	EndDate   *time.Time
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.CategoryWithStats
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute lists the user's categories, with note counts when a period is given.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	var stats map[uuid.UUID]int
	if input.StartDate != nil && input.EndDate != nil {
		ids := make([]uuid.UUID, 0, len(categories))
		for _, c := range categories {
			ids = append(ids, c.ID)
		}
		stats, err = uc.categoryRepo.GetNoteStats(ctx, ids, *input.StartDate, *input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to get note stats: %w", err)
		}
	}

	result := make([]*entity.CategoryWithStats, 0, len(categories))
	for _, c := range categories {
		result = append(result, &entity.CategoryWithStats{
			Category:  c,
			NoteCount: stats[c.ID],
		})
	}

	return &ListCategoriesOutput{Categories: result}, nil
}
