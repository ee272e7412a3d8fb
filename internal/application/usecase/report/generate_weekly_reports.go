package report

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lifesync/backend/internal/application/adapter"
	domainerror "github.com/lifesync/backend/internal/domain/error"
)

// GenerateWeeklyReportsOutput summarizes one batch run.
type GenerateWeeklyReportsOutput struct {
	Generated int
	Skipped   int
	Failed    int
}

// GenerateWeeklyReportsUseCase runs report generation for every user who
// opted into weekly reports. Intended to be invoked by the report worker.
type GenerateWeeklyReportsUseCase struct {
	userRepo adapter.UserRepository
	generate *GenerateReportUseCase
	logger   *slog.Logger
}

// NewGenerateWeeklyReportsUseCase creates a new GenerateWeeklyReportsUseCase instance.
func NewGenerateWeeklyReportsUseCase(
	userRepo adapter.UserRepository,
	generate *GenerateReportUseCase,
	logger *slog.Logger,
) *GenerateWeeklyReportsUseCase {
	return &GenerateWeeklyReportsUseCase{
		userRepo: userRepo,
		generate: generate,
		logger:   logger,
	}
}

// Execute generates last week's report for every opted-in user. Failures for
// individual users are logged and counted, never aborting the batch.
func (uc *GenerateWeeklyReportsUseCase) Execute(ctx context.Context) (*GenerateWeeklyReportsOutput, error) {
	users, err := uc.userRepo.FindWithWeeklyReports(ctx)
	if err != nil {
		return nil, err
	}

	periodStart, periodEnd := PreviousWeekBounds(time.Now().UTC())
	output := &GenerateWeeklyReportsOutput{}

	for _, user := range users {
		_, err := uc.generate.Execute(ctx, GenerateReportInput{
			UserID:      user.ID,
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
		})
		if err == nil {
			output.Generated++
			continue
		}

		var reportErr *domainerror.ReportError
		if errors.As(err, &reportErr) &&
			(reportErr.Code == domainerror.ErrCodeReportAlreadyExists ||
				reportErr.Code == domainerror.ErrCodeNoNotesInPeriod) {
			output.Skipped++
			continue
		}

		output.Failed++
		uc.logger.Error("weekly report generation failed",
			"user_id", user.ID,
			"period_start", periodStart.Format("2006-01-02"),
			"error", err)
	}

	return output, nil
}
