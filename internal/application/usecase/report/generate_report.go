// Package report contains weekly-report use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifesync/backend/internal/application/adapter"
	"github.com/lifesync/backend/internal/application/usecase/dashboard"
	"github.com/lifesync/backend/internal/domain/entity"
	domainerror "github.com/lifesync/backend/internal/domain/error"
)

// topCategoryLimit is how many category highlights a report carries.
const topCategoryLimit = 3

// GenerateReportInput represents the input for report generation.
// When PeriodStart is zero the previous calendar week (Mon-Sun) is used.
type GenerateReportInput struct {
	UserID      uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// GenerateReportOutput represents the output of report generation.
type GenerateReportOutput struct {
	Report *entity.Report
}

// GenerateReportUseCase builds a weekly reflection report for one user.
type GenerateReportUseCase struct {
	reportRepo   adapter.ReportRepository
	noteRepo     adapter.NoteRepository
	categoryRepo adapter.CategoryRepository
	userRepo     adapter.UserRepository
	insightSvc   adapter.InsightService
	emailService adapter.EmailService
	appBaseURL   string
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(
	reportRepo adapter.ReportRepository,
	noteRepo adapter.NoteRepository,
	categoryRepo adapter.CategoryRepository,
	userRepo adapter.UserRepository,
	insightSvc adapter.InsightService,
	emailService adapter.EmailService,
	appBaseURL string,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		reportRepo:   reportRepo,
		noteRepo:     noteRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		insightSvc:   insightSvc,
		emailService: emailService,
		appBaseURL:   appBaseURL,
	}
}

// Execute generates the report, persists it and queues the delivery email.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*GenerateReportOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	periodStart := input.PeriodStart
	periodEnd := input.PeriodEnd
	if periodStart.IsZero() {
		periodStart, periodEnd = PreviousWeekBounds(time.Now().UTC())
	}

	exists, err := uc.reportRepo.ExistsForPeriod(ctx, input.UserID, periodStart)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing reports: %w", err)
	}
	if exists {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportAlreadyExists,
			"report for this period already exists",
			domainerror.ErrReportAlreadyExists,
		)
	}

	notes, err := uc.noteRepo.FindByUser(ctx, input.UserID, adapter.NoteFilter{
		StartDate: &periodStart,
		EndDate:   &periodEnd,
		Limit:     1000,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load period notes: %w", err)
	}
	if len(notes) == 0 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeNoNotesInPeriod,
			"no notes in report period",
			domainerror.ErrNoNotesInPeriod,
		)
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	averageMood := averageMood(notes)
	topCategories := topCategories(notes, categoryNames)

	noteDates, err := uc.noteRepo.DistinctNoteDates(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note dates: %w", err)
	}
	streaks := dashboard.CalculateStreaks(noteDates, time.Now().UTC())

	insight := uc.generateInsight(ctx, user, notes, categoryNames, topCategories, averageMood, periodStart, periodEnd)

	report := entity.NewReport(input.UserID, periodStart, periodEnd)
	report.MarkGenerated(len(notes), streaks.CurrentStreak, averageMood, topCategories, insight)

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	// Queue the delivery email for users who opted in. A failure here must not
	// fail the already-persisted report.
	if user.WeeklyReports {
		if err := uc.emailService.QueueWeeklyReportEmail(ctx, adapter.QueueWeeklyReportInput{
			UserEmail:     user.Email,
			UserName:      user.Name,
			PeriodStart:   periodStart.Format("2006-01-02"),
			PeriodEnd:     periodEnd.Format("2006-01-02"),
			NoteCount:     report.NoteCount,
			StreakDays:    report.StreakDays,
			AverageMood:   report.AverageMood.StringFixed(1),
			TopCategories: report.TopCategories,
			Insight:       report.Insight,
			DashboardURL:  fmt.Sprintf("%s/dashboard", uc.appBaseURL),
		}); err != nil {
			slog.Warn("Failed to queue weekly report email", "user_id", user.ID, "error", err)
		}
	}

	return &GenerateReportOutput{Report: report}, nil
}

// generateInsight asks the insight service for a summary when configured.
// Report generation never fails on insight errors.
func (uc *GenerateReportUseCase) generateInsight(
	ctx context.Context,
	user *entity.User,
	notes []*entity.Note,
	categoryNames map[uuid.UUID]string,
	topCategories []string,
	averageMood decimal.Decimal,
	periodStart, periodEnd time.Time,
) string {
	if uc.insightSvc == nil || !uc.insightSvc.IsAvailable() {
		return ""
	}

	notesForInsight := make([]*adapter.NoteForInsight, 0, len(notes))
	for _, n := range notes {
		notesForInsight = append(notesForInsight, &adapter.NoteForInsight{
			Category:   categoryNames[n.CategoryID],
			Content:    n.Content,
			MoodRating: n.MoodRating,
			NotedOn:    n.NotedOn.Format("2006-01-02"),
		})
	}

	insight, err := uc.insightSvc.GenerateInsight(ctx, &adapter.InsightRequest{
		UserID:        user.ID,
		UserName:      user.Name,
		PeriodStart:   periodStart.Format("2006-01-02"),
		PeriodEnd:     periodEnd.Format("2006-01-02"),
		Notes:         notesForInsight,
		TopCategories: topCategories,
		AverageMood:   averageMood.StringFixed(1),
	})
	if err != nil {
		return ""
	}
	return insight
}

// averageMood computes the exact average mood rating across notes.
func averageMood(notes []*entity.Note) decimal.Decimal {
	if len(notes) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, n := range notes {
		sum = sum.Add(decimal.NewFromInt(int64(n.MoodRating)))
	}
	return sum.Div(decimal.NewFromInt(int64(len(notes)))).Round(2)
}

// topCategories returns up to topCategoryLimit category names ordered by
// note count (ties broken alphabetically for stable output).
func topCategories(notes []*entity.Note, categoryNames map[uuid.UUID]string) []string {
	counts := make(map[uuid.UUID]int)
	for _, n := range notes {
		counts[n.CategoryID]++
	}

	type categoryCount struct {
		name  string
		count int
	}
	ranked := make([]categoryCount, 0, len(counts))
	for id, count := range counts {
		name := categoryNames[id]
		if name == "" {
			continue
		}
		ranked = append(ranked, categoryCount{name: name, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})

	limit := topCategoryLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}
	names := make([]string, 0, limit)
	for _, rc := range ranked[:limit] {
		names = append(names, rc.name)
	}
	return names
}

// PreviousWeekBounds returns the Monday and Sunday of the week before the
// one containing the given date.
func PreviousWeekBounds(date time.Time) (start, end time.Time) {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	thisMonday := time.Date(date.Year(), date.Month(), date.Day()-(weekday-1), 0, 0, 0, 0, time.UTC)
	start = thisMonday.AddDate(0, 0, -7)
	end = start.AddDate(0, 0, 6)
	return start, end
}
