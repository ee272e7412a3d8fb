package valueobject

import (
	"reflect"
	"strings"
	"testing"
)

func countCriteria(c StrengthCriteria) int {
	count := 0
	for _, met := range []bool{c.HasMinLength, c.HasUppercase, c.HasLowercase, c.HasNumbers, c.HasSpecialChars} {
		if met {
			count++
		}
	}
	return count
}

func TestAnalyzePassword(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectedScore int
		expectedLevel StrengthLevel
		criteria      StrengthCriteria
	}{
		{
			name:          "empty password",
			password:      "",
			expectedScore: 0,
			expectedLevel: StrengthWeak,
			criteria:      StrengthCriteria{},
		},
		{
			name:          "lowercase only",
			password:      "abc",
			expectedScore: 1,
			expectedLevel: StrengthWeak,
			criteria:      StrengthCriteria{HasLowercase: true},
		},
		{
			name:          "lowercase with min length",
			password:      "abcdef",
			expectedScore: 2,
			expectedLevel: StrengthFair,
			criteria:      StrengthCriteria{HasMinLength: true, HasLowercase: true},
		},
		{
			name:          "short but mixed with special char",
			password:      "Aa1!",
			expectedScore: 3,
			expectedLevel: StrengthGood,
			criteria: StrengthCriteria{
				HasUppercase:    true,
				HasLowercase:    true,
				HasNumbers:      true,
				HasSpecialChars: true,
			},
		},
		{
			name:          "four criteria",
			password:      "Abcdef1",
			expectedScore: 4,
			expectedLevel: StrengthStrong,
			criteria: StrengthCriteria{
				HasMinLength: true,
				HasUppercase: true,
				HasLowercase: true,
				HasNumbers:   true,
			},
		},
		{
			name:          "all criteria met",
			password:      "Str0ng!Pass",
			expectedScore: 5,
			expectedLevel: StrengthStrong,
			criteria: StrengthCriteria{
				HasMinLength:    true,
				HasUppercase:    true,
				HasLowercase:    true,
				HasNumbers:      true,
				HasSpecialChars: true,
			},
		},
		{
			name:          "digits only",
			password:      "123456",
			expectedScore: 2,
			expectedLevel: StrengthFair,
			criteria:      StrengthCriteria{HasMinLength: true, HasNumbers: true},
		},
		{
			name:          "emoji does not count as special char",
			password:      "Abcdef1\U0001F600",
			expectedScore: 4,
			expectedLevel: StrengthStrong,
			criteria: StrengthCriteria{
				HasMinLength: true,
				HasUppercase: true,
				HasLowercase: true,
				HasNumbers:   true,
			},
		},
		{
			name:          "every listed special char family",
			password:      `[];'"\|,.<>/?`,
			expectedScore: 2,
			expectedLevel: StrengthFair,
			criteria:      StrengthCriteria{HasMinLength: true, HasSpecialChars: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzePassword(tt.password)

			if result.Score != tt.expectedScore {
				t.Errorf("expected score %d, got %d", tt.expectedScore, result.Score)
			}
			if result.Level != tt.expectedLevel {
				t.Errorf("expected level %q, got %q", tt.expectedLevel, result.Level)
			}
			if result.Criteria != tt.criteria {
				t.Errorf("expected criteria %+v, got %+v", tt.criteria, result.Criteria)
			}
		})
	}
}

func TestAnalyzePasswordScoreMatchesCriteria(t *testing.T) {
	passwords := []string{"", "a", "A", "1", "!", "abcdef", "ABCDEF", "Aa1!", "Str0ng!Pass", "password123", "P@ssw0rd"}

	for _, password := range passwords {
		result := AnalyzePassword(password)
		if got := countCriteria(result.Criteria); result.Score != got {
			t.Errorf("password %q: score %d does not match criteria count %d", password, result.Score, got)
		}
		if len(result.Feedback) != 5-result.Score {
			t.Errorf("password %q: expected %d feedback entries, got %d", password, 5-result.Score, len(result.Feedback))
		}
	}
}

func TestAnalyzePasswordFeedbackOrder(t *testing.T) {
	result := AnalyzePassword("")

	expected := []string{
		"Password must be at least 6 characters long",
		"Add at least one uppercase letter",
		"Add at least one lowercase letter",
		"Add at least one number",
		"Add at least one special character",
	}

	if !reflect.DeepEqual(result.Feedback, expected) {
		t.Errorf("expected feedback %v, got %v", expected, result.Feedback)
	}

	// Met criteria drop out without reordering the rest.
	partial := AnalyzePassword("abcdefg")
	for _, msg := range partial.Feedback {
		if strings.Contains(msg, "lowercase") || strings.Contains(msg, "6 characters") {
			t.Errorf("feedback should not mention met criteria, got %q", msg)
		}
	}
}

func TestAnalyzePasswordDeterminism(t *testing.T) {
	first := AnalyzePassword("Str0ng!Pass")
	second := AnalyzePassword("Str0ng!Pass")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis differs: %+v vs %+v", first, second)
	}
}

func TestIsAcceptable(t *testing.T) {
	if AnalyzePassword("abc").IsAcceptable() {
		t.Error("weak password should not be acceptable")
	}
	if !AnalyzePassword("abcdef").IsAcceptable() {
		t.Error("fair password should be acceptable")
	}
}
