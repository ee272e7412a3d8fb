// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lifesync/backend/internal/domain/entity"
	"github.com/lifesync/backend/internal/domain/valueobject"
)

// SignUpRequest represents the request body for user registration.
type SignUpRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Name          string `json:"name" binding:"required,min=1,max=100"`
	Password      string `json:"password" binding:"required,min=6"`
	TermsAccepted bool   `json:"terms_accepted" binding:"required"`
}

// SignInRequest represents the request body for user login.
type SignInRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// SignOutRequest represents the request body for user logout.
type SignOutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// VerifyEmailRequest represents the request body for email verification.
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// PasswordStrengthRequest represents the request body for password analysis.
type PasswordStrengthRequest struct {
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	Name               string     `json:"name"`
	EmailConfirmedAt   *time.Time `json:"email_confirmed_at"`
	ReflectionReminder string     `json:"reflection_reminder"`
	WeeklyReports      bool       `json:"weekly_reports"`
	StreakAlerts       bool       `json:"streak_alerts"`
	Timezone           string     `json:"timezone"`
	CreatedAt          time.Time  `json:"created_at"`
}

// PasswordStrengthResponse represents the password analysis result.
type PasswordStrengthResponse struct {
	Score    int      `json:"score"`
	Level    string   `json:"level"`
	Feedback []string `json:"feedback"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                 user.ID.String(),
		Email:              user.Email,
		Name:               user.Name,
		EmailConfirmedAt:   user.EmailConfirmedAt,
		ReflectionReminder: string(user.ReflectionReminder),
		WeeklyReports:      user.WeeklyReports,
		StreakAlerts:       user.StreakAlerts,
		Timezone:           user.Timezone,
		CreatedAt:          user.CreatedAt,
	}
}

// ToPasswordStrengthResponse converts a strength analysis to its DTO.
func ToPasswordStrengthResponse(strength valueobject.PasswordStrength) PasswordStrengthResponse {
	return PasswordStrengthResponse{
		Score:    strength.Score,
		Level:    string(strength.Level),
		Feedback: strength.Feedback,
	}
}
