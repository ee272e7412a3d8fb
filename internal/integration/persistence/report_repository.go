// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifesync/backend/internal/application/adapter"
	"github.com/lifesync/backend/internal/domain/entity"
	domainerror "github.com/lifesync/backend/internal/domain/error"
	"github.com/lifesync/backend/internal/integration/persistence/model"
)

// reportRepository implements the adapter.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// Create creates a new report in the database.
func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	reportModel := model.ReportFromEntity(report)
	result := r.db.WithContext(ctx).Create(reportModel)
	return result.Error
}

// FindByID retrieves a report by its ID.
func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var reportModel model.ReportModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&reportModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReportNotFound
		}
		return nil, result.Error
	}
	return reportModel.ToEntity(), nil
}

// FindByUser retrieves all reports for a user, newest period first.
func (r *reportRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Report, error) {
	var reportModels []model.ReportModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("period_start DESC").
		Find(&reportModels)
	if result.Error != nil {
		return nil, result.Error
	}

	reports := make([]*entity.Report, 0, len(reportModels))
	for i := range reportModels {
		reports = append(reports, reportModels[i].ToEntity())
	}
	return reports, nil
}

// ExistsForPeriod checks if a report already covers the given period start.
func (r *reportRepository) ExistsForPeriod(ctx context.Context, userID uuid.UUID, periodStart time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Where("user_id = ? AND period_start = ?", userID, periodStart).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update saves changes to a report.
func (r *reportRepository) Update(ctx context.Context, report *entity.Report) error {
	reportModel := model.ReportFromEntity(report)
	result := r.db.WithContext(ctx).Save(reportModel)
	return result.Error
}
