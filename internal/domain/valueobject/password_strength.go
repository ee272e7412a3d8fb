// Package valueobject defines immutable domain value objects.
package valueobject

import "regexp"

// StrengthLevel represents the coarse strength label of a password.
type StrengthLevel string

const (
	StrengthWeak   StrengthLevel = "weak"
	StrengthFair   StrengthLevel = "fair"
	StrengthGood   StrengthLevel = "good"
	StrengthStrong StrengthLevel = "strong"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// Character class checks are ASCII-only. The special character set is a fixed
// list; punctuation outside it (emoji, other Unicode symbols) does not count.
var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	numberRegex      = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};'"\\|,.<>/?]`)
)

// StrengthCriteria holds the five independent password criteria checks.
type StrengthCriteria struct {
	HasMinLength    bool
	HasUppercase    bool
	HasLowercase    bool
	HasNumbers      bool
	HasSpecialChars bool
}

// PasswordStrength is the result of analyzing a password. It is recomputed
// from scratch on every call and never cached or mutated.
type PasswordStrength struct {
	Score    int
	Level    StrengthLevel
	Criteria StrengthCriteria
	Feedback []string
}

// Feedback messages, one per criterion, in the fixed emission order.
const (
	feedbackMinLength    = "Password must be at least 6 characters long"
	feedbackUppercase    = "Add at least one uppercase letter"
	feedbackLowercase    = "Add at least one lowercase letter"
	feedbackNumbers      = "Add at least one number"
	feedbackSpecialChars = "Add at least one special character"
)

// AnalyzePassword evaluates a password against the five strength criteria.
// It is a total function: every input, including the empty string, produces
// a valid result. Score always equals the count of satisfied criteria.
func AnalyzePassword(password string) PasswordStrength {
	criteria := StrengthCriteria{
		HasMinLength:    len(password) >= minPasswordLength,
		HasUppercase:    uppercaseRegex.MatchString(password),
		HasLowercase:    lowercaseRegex.MatchString(password),
		HasNumbers:      numberRegex.MatchString(password),
		HasSpecialChars: specialCharRegex.MatchString(password),
	}

	score := 0
	feedback := []string{}

	if criteria.HasMinLength {
		score++
	} else {
		feedback = append(feedback, feedbackMinLength)
	}
	if criteria.HasUppercase {
		score++
	} else {
		feedback = append(feedback, feedbackUppercase)
	}
	if criteria.HasLowercase {
		score++
	} else {
		feedback = append(feedback, feedbackLowercase)
	}
	if criteria.HasNumbers {
		score++
	} else {
		feedback = append(feedback, feedbackNumbers)
	}
	if criteria.HasSpecialChars {
		score++
	} else {
		feedback = append(feedback, feedbackSpecialChars)
	}

	return PasswordStrength{
		Score:    score,
		Level:    levelForScore(score),
		Criteria: criteria,
		Feedback: feedback,
	}
}

// levelForScore maps a criteria score to its strength level.
func levelForScore(score int) StrengthLevel {
	switch {
	case score <= 1:
		return StrengthWeak
	case score == 2:
		return StrengthFair
	case score == 3:
		return StrengthGood
	default:
		return StrengthStrong
	}
}

// IsAcceptable reports whether the password meets the minimum bar for
// registration. Weak passwords (score 0-1) are rejected.
func (p PasswordStrength) IsAcceptable() bool {
	return p.Level != StrengthWeak
}
