// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReflectionReminder represents when the user wants their daily reflection nudge.
type ReflectionReminder string

const (
	ReminderMorning  ReflectionReminder = "morning"
	ReminderEvening  ReflectionReminder = "evening"
	ReminderDisabled ReflectionReminder = "disabled"
)

// User represents a registered LifeSync user.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	PasswordHash       string
	EmailConfirmedAt   *time.Time
	ReflectionReminder ReflectionReminder
	WeeklyReports      bool
	StreakAlerts       bool
	Timezone           string
	TermsAcceptedAt    time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a new User with default values. The email starts
// unconfirmed until the verification token is consumed.
func NewUser(email, name, passwordHash string, termsAcceptedAt time.Time) *User {
	now := time.Now().UTC()
	return &User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               name,
		PasswordHash:       passwordHash,
		ReflectionReminder: ReminderEvening,
		WeeklyReports:      true,
		StreakAlerts:       true,
		Timezone:           "UTC",
		TermsAcceptedAt:    termsAcceptedAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// ConfirmEmail marks the user's email address as verified.
func (u *User) ConfirmEmail() {
	now := time.Now().UTC()
	u.EmailConfirmedAt = &now
	u.UpdatedAt = now
}

// IsEmailConfirmed returns true if the user has completed email verification.
func (u *User) IsEmailConfirmed() bool {
	return u.EmailConfirmedAt != nil
}
