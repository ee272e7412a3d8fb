package dashboard

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatal(err)
	}
	return parsed
}

func TestCalculateStreaks(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name            string
		dates           []string
		expectedCurrent int
		expectedLongest int
	}{
		{
			name:            "no notes",
			dates:           nil,
			expectedCurrent: 0,
			expectedLongest: 0,
		},
		{
			name:            "single note today",
			dates:           []string{"2025-03-15"},
			expectedCurrent: 1,
			expectedLongest: 1,
		},
		{
			name:            "single note yesterday keeps streak alive",
			dates:           []string{"2025-03-14"},
			expectedCurrent: 1,
			expectedLongest: 1,
		},
		{
			name:            "note from two days ago breaks current streak",
			dates:           []string{"2025-03-13"},
			expectedCurrent: 0,
			expectedLongest: 1,
		},
		{
			name:            "three consecutive days ending today",
			dates:           []string{"2025-03-13", "2025-03-14", "2025-03-15"},
			expectedCurrent: 3,
			expectedLongest: 3,
		},
		{
			name:            "gap resets current but longest survives",
			dates:           []string{"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04", "2025-03-14", "2025-03-15"},
			expectedCurrent: 2,
			expectedLongest: 4,
		},
		{
			name:            "unordered input",
			dates:           []string{"2025-03-15", "2025-03-13", "2025-03-14"},
			expectedCurrent: 3,
			expectedLongest: 3,
		},
		{
			name:            "duplicate dates count once",
			dates:           []string{"2025-03-15", "2025-03-15", "2025-03-14"},
			expectedCurrent: 2,
			expectedLongest: 2,
		},
		{
			name:            "old streak only",
			dates:           []string{"2025-02-01", "2025-02-02", "2025-02-03"},
			expectedCurrent: 0,
			expectedLongest: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := make([]time.Time, 0, len(tt.dates))
			for _, d := range tt.dates {
				dates = append(dates, mustParse(t, d))
			}

			result := CalculateStreaks(dates, now)

			if result.CurrentStreak != tt.expectedCurrent {
				t.Errorf("expected current streak %d, got %d", tt.expectedCurrent, result.CurrentStreak)
			}
			if result.LongestStreak != tt.expectedLongest {
				t.Errorf("expected longest streak %d, got %d", tt.expectedLongest, result.LongestStreak)
			}
		})
	}
}

func TestCalculateStreaksNormalizesTimes(t *testing.T) {
	now := time.Date(2025, 3, 15, 1, 0, 0, 0, time.UTC)

	// Notes at different times of the same days still form one run per day.
	dates := []time.Time{
		time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC),
		time.Date(2025, 3, 14, 0, 1, 0, 0, time.UTC),
		time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	result := CalculateStreaks(dates, now)
	if result.CurrentStreak != 2 {
		t.Errorf("expected current streak 2, got %d", result.CurrentStreak)
	}
}
