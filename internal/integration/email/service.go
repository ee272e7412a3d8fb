// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifesync/backend/internal/application/adapter"
	"github.com/lifesync/backend/internal/domain/entity"
	domainerror "github.com/lifesync/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueVerificationEmail queues an email verification message.
func (s *Service) QueueVerificationEmail(ctx context.Context, input adapter.QueueVerificationInput) error {
	subject := "Verify your email - LifeSync"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"verify_url": input.VerifyURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplateEmailVerification,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue verification email",
			err,
		)
	}

	return nil
}

// QueueWeeklyReportEmail queues a weekly reflection report email.
func (s *Service) QueueWeeklyReportEmail(ctx context.Context, input adapter.QueueWeeklyReportInput) error {
	subject := fmt.Sprintf("Your week in review (%s - %s) - LifeSync", input.PeriodStart, input.PeriodEnd)

	templateData := map[string]interface{}{
		"user_name":      input.UserName,
		"period_start":   input.PeriodStart,
		"period_end":     input.PeriodEnd,
		"note_count":     input.NoteCount,
		"streak_days":    input.StreakDays,
		"average_mood":   input.AverageMood,
		"top_categories": strings.Join(input.TopCategories, ", "),
		"insight":        input.Insight,
		"dashboard_url":  input.DashboardURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateWeeklyReport,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue weekly report email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
