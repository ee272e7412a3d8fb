package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifesync/backend/internal/application/adapter"
	"github.com/lifesync/backend/internal/domain/entity"
)

// ListReportsInput represents the input for listing a user's reports.
type ListReportsInput struct {
	UserID uuid.UUID
}

// ListReportsOutput represents the output of listing reports.
type ListReportsOutput struct {
	Reports []*entity.Report
}

// ListReportsUseCase lists a user's generated reports, newest period first.
type ListReportsUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewListReportsUseCase creates a new ListReportsUseCase instance.
func NewListReportsUseCase(reportRepo adapter.ReportRepository) *ListReportsUseCase {
	return &ListReportsUseCase{reportRepo: reportRepo}
}

// Execute returns all reports belonging to the user.
func (uc *ListReportsUseCase) Execute(ctx context.Context, input ListReportsInput) (*ListReportsOutput, error) {
	reports, err := uc.reportRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return &ListReportsOutput{Reports: reports}, nil
}
