package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifesync/backend/internal/application/adapter"
	"github.com/lifesync/backend/internal/domain/entity"
	domainerror "github.com/lifesync/backend/internal/domain/error"
)

type fakeReportRepo struct {
	reports []*entity.Report
}

func (r *fakeReportRepo) Create(_ context.Context, report *entity.Report) error {
	r.reports = append(r.reports, report)
	return nil
}

func (r *fakeReportRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Report, error) {
	for _, rep := range r.reports {
		if rep.ID == id {
			return rep, nil
		}
	}
	return nil, domainerror.ErrReportNotFound
}

func (r *fakeReportRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Report, error) {
	var out []*entity.Report
	for _, rep := range r.reports {
		if rep.UserID == userID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) ExistsForPeriod(_ context.Context, userID uuid.UUID, periodStart time.Time) (bool, error) {
	for _, rep := range r.reports {
		if rep.UserID == userID && rep.PeriodStart.Equal(periodStart) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReportRepo) Update(_ context.Context, _ *entity.Report) error { return nil }

type fakeNoteRepo struct {
	notes []*entity.Note
}

func (r *fakeNoteRepo) Create(_ context.Context, note *entity.Note) error {
	r.notes = append(r.notes, note)
	return nil
}

func (r *fakeNoteRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Note, error) {
	return nil, domainerror.ErrNoteNotFound
}

func (r *fakeNoteRepo) FindByUser(_ context.Context, userID uuid.UUID, filter adapter.NoteFilter) ([]*entity.Note, error) {
	var out []*entity.Note
	for _, n := range r.notes {
		if n.UserID != userID {
			continue
		}
		if filter.StartDate != nil && n.NotedOn.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && n.NotedOn.After(*filter.EndDate) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *fakeNoteRepo) Update(_ context.Context, _ *entity.Note) error { return nil }
func (r *fakeNoteRepo) Delete(_ context.Context, _ uuid.UUID) error    { return nil }

func (r *fakeNoteRepo) CountByCategory(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeNoteRepo) DistinctNoteDates(_ context.Context, userID uuid.UUID) ([]time.Time, error) {
	var dates []time.Time
	for _, n := range r.notes {
		if n.UserID == userID {
			dates = append(dates, n.NotedOn)
		}
	}
	return dates, nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *fakeCategoryRepo) CreateBatch(_ context.Context, categories []*entity.Category) error {
	r.categories = append(r.categories, categories...)
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, _ *entity.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(_ context.Context, _ uuid.UUID) error        { return nil }

func (r *fakeCategoryRepo) ExistsByNameAndUser(_ context.Context, _ string, _ uuid.UUID) (bool, error) {
	return false, nil
}

func (r *fakeCategoryRepo) GetNoteStats(_ context.Context, _ []uuid.UUID, _, _ time.Time) (map[uuid.UUID]int, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, _ *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(_ context.Context, _ uuid.UUID) error    { return nil }

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *fakeUserRepo) FindWithWeeklyReports(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.WeeklyReports {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeInsightService struct {
	available bool
	insight   string
	calls     int
}

func (s *fakeInsightService) GenerateInsight(_ context.Context, _ *adapter.InsightRequest) (string, error) {
	s.calls++
	if !s.available {
		return "", domainerror.ErrInsightUnavailable
	}
	return s.insight, nil
}

func (s *fakeInsightService) IsAvailable() bool { return s.available }

type fakeEmailService struct {
	weeklyReports []adapter.QueueWeeklyReportInput
	queueErr      error
}

func (s *fakeEmailService) QueueVerificationEmail(_ context.Context, _ adapter.QueueVerificationInput) error {
	return s.queueErr
}

func (s *fakeEmailService) QueueWeeklyReportEmail(_ context.Context, input adapter.QueueWeeklyReportInput) error {
	if s.queueErr != nil {
		return s.queueErr
	}
	s.weeklyReports = append(s.weeklyReports, input)
	return nil
}

func newTestFixture() (*GenerateReportUseCase, *fakeReportRepo, *fakeNoteRepo, *fakeCategoryRepo, *fakeUserRepo, *fakeInsightService, *fakeEmailService) {
	reportRepo := &fakeReportRepo{}
	noteRepo := &fakeNoteRepo{}
	categoryRepo := &fakeCategoryRepo{}
	userRepo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	insightSvc := &fakeInsightService{available: true, insight: "You wrote most about gratitude this week."}
	emailSvc := &fakeEmailService{}

	uc := NewGenerateReportUseCase(reportRepo, noteRepo, categoryRepo, userRepo, insightSvc, emailSvc, "https://app.lifesync.io")
	return uc, reportRepo, noteRepo, categoryRepo, userRepo, insightSvc, emailSvc
}

func seedUser(userRepo *fakeUserRepo, weeklyReports bool) *entity.User {
	user := entity.NewUser("jordan@example.com", "Jordan", "hashed", time.Now().UTC())
	user.WeeklyReports = weeklyReports
	userRepo.users[user.ID] = user
	return user
}

func TestGenerateReport_Success(t *testing.T) {
	uc, reportRepo, noteRepo, categoryRepo, userRepo, _, emailSvc := newTestFixture()

	user := seedUser(userRepo, true)
	gratitude := entity.NewCategory(user.ID, "Gratitude", "#F59E0B", "heart")
	goals := entity.NewCategory(user.ID, "Goals", "#6366F1", "target")
	categoryRepo.categories = append(categoryRepo.categories, gratitude, goals)

	periodStart := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

	noteRepo.notes = append(noteRepo.notes,
		entity.NewNote(user.ID, gratitude.ID, "grateful for the weather", 4, periodStart),
		entity.NewNote(user.ID, gratitude.ID, "grateful for good coffee", 5, periodStart.AddDate(0, 0, 1)),
		entity.NewNote(user.ID, goals.ID, "shipped the release", 3, periodStart.AddDate(0, 0, 2)),
	)

	output, err := uc.Execute(context.Background(), GenerateReportInput{
		UserID:      user.ID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := output.Report
	if report.NoteCount != 3 {
		t.Errorf("expected 3 notes, got %d", report.NoteCount)
	}
	if got := report.AverageMood.StringFixed(1); got != "4.0" {
		t.Errorf("expected average mood 4.0, got %s", got)
	}
	if len(report.TopCategories) != 2 || report.TopCategories[0] != "Gratitude" || report.TopCategories[1] != "Goals" {
		t.Errorf("unexpected top categories: %v", report.TopCategories)
	}
	if report.Status != entity.ReportStatusGenerated {
		t.Errorf("expected status generated, got %s", report.Status)
	}
	if report.Insight == "" {
		t.Error("expected an insight to be set")
	}
	if len(reportRepo.reports) != 1 {
		t.Fatalf("expected 1 persisted report, got %d", len(reportRepo.reports))
	}
	if len(emailSvc.weeklyReports) != 1 {
		t.Fatalf("expected 1 queued weekly report email, got %d", len(emailSvc.weeklyReports))
	}
	if emailSvc.weeklyReports[0].UserEmail != user.Email {
		t.Errorf("queued email for wrong recipient: %s", emailSvc.weeklyReports[0].UserEmail)
	}
}

func TestGenerateReport_NoNotesInPeriod(t *testing.T) {
	uc, _, _, _, userRepo, _, _ := newTestFixture()
	user := seedUser(userRepo, true)

	_, err := uc.Execute(context.Background(), GenerateReportInput{
		UserID:      user.ID,
		PeriodStart: time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
	})

	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeNoNotesInPeriod {
		t.Fatalf("expected no-notes error, got %v", err)
	}
}

func TestGenerateReport_DuplicatePeriod(t *testing.T) {
	uc, _, noteRepo, categoryRepo, userRepo, _, _ := newTestFixture()
	user := seedUser(userRepo, true)
	cat := entity.NewCategory(user.ID, "Mood", "#10B981", "smile")
	categoryRepo.categories = append(categoryRepo.categories, cat)

	periodStart := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	noteRepo.notes = append(noteRepo.notes, entity.NewNote(user.ID, cat.ID, "steady week", 3, periodStart))

	input := GenerateReportInput{UserID: user.ID, PeriodStart: periodStart, PeriodEnd: periodEnd}
	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("first generation failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), input)
	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeReportAlreadyExists {
		t.Fatalf("expected already-exists error, got %v", err)
	}
}

func TestGenerateReport_InsightFailureDoesNotAbort(t *testing.T) {
	uc, reportRepo, noteRepo, categoryRepo, userRepo, insightSvc, _ := newTestFixture()
	insightSvc.available = false

	user := seedUser(userRepo, true)
	cat := entity.NewCategory(user.ID, "Learning", "#8B5CF6", "book")
	categoryRepo.categories = append(categoryRepo.categories, cat)

	periodStart := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	noteRepo.notes = append(noteRepo.notes, entity.NewNote(user.ID, cat.ID, "read about indexes", 4, periodStart))

	output, err := uc.Execute(context.Background(), GenerateReportInput{
		UserID:      user.ID,
		PeriodStart: periodStart,
		PeriodEnd:   periodStart.AddDate(0, 0, 6),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Report.Insight != "" {
		t.Errorf("expected empty insight, got %q", output.Report.Insight)
	}
	if len(reportRepo.reports) != 1 {
		t.Fatalf("report was not persisted")
	}
}

func TestGenerateReport_EmailQueueFailureDoesNotAbort(t *testing.T) {
	uc, reportRepo, noteRepo, categoryRepo, userRepo, _, emailSvc := newTestFixture()
	emailSvc.queueErr = errors.New("queue unavailable")

	user := seedUser(userRepo, true)
	cat := entity.NewCategory(user.ID, "Mood", "#10B981", "smile")
	categoryRepo.categories = append(categoryRepo.categories, cat)

	periodStart := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	noteRepo.notes = append(noteRepo.notes, entity.NewNote(user.ID, cat.ID, "steady week", 4, periodStart))

	output, err := uc.Execute(context.Background(), GenerateReportInput{
		UserID:      user.ID,
		PeriodStart: periodStart,
		PeriodEnd:   periodStart.AddDate(0, 0, 6),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Report == nil {
		t.Fatal("expected a generated report")
	}
	if len(reportRepo.reports) != 1 {
		t.Fatalf("report was not persisted")
	}
}

func TestGenerateReport_NoEmailWhenOptedOut(t *testing.T) {
	uc, _, noteRepo, categoryRepo, userRepo, _, emailSvc := newTestFixture()
	user := seedUser(userRepo, false)
	cat := entity.NewCategory(user.ID, "Mood", "#10B981", "smile")
	categoryRepo.categories = append(categoryRepo.categories, cat)

	periodStart := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	noteRepo.notes = append(noteRepo.notes, entity.NewNote(user.ID, cat.ID, "quiet day", 3, periodStart))

	if _, err := uc.Execute(context.Background(), GenerateReportInput{
		UserID:      user.ID,
		PeriodStart: periodStart,
		PeriodEnd:   periodStart.AddDate(0, 0, 6),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(emailSvc.weeklyReports) != 0 {
		t.Errorf("expected no queued email for opted-out user, got %d", len(emailSvc.weeklyReports))
	}
}

func TestPreviousWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "midweek wednesday",
			date:      time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC),
			wantStart: time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monday returns the full prior week",
			date:      time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "sunday belongs to the current week",
			date:      time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC),
			wantStart: time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PreviousWeekBounds(tt.date)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}
