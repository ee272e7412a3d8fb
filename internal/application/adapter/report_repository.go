// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifesync/backend/internal/domain/entity"
)

// ReportRepository defines the interface for report persistence operations.
type ReportRepository interface {
	// Create creates a new report in the database.
	Create(ctx context.Context, report *entity.Report) error

	// FindByID retrieves a report by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)

	// FindByUser retrieves all reports for a user, newest period first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Report, error)

	// ExistsForPeriod checks if a report already covers the given period start.
	ExistsForPeriod(ctx context.Context, userID uuid.UUID, periodStart time.Time) (bool, error)

	// Update saves changes to a report.
	Update(ctx context.Context, report *entity.Report) error
}
