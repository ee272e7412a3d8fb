// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/lifesync/backend/internal/application/adapter"
	domainerror "github.com/lifesync/backend/internal/domain/error"
	"github.com/lifesync/backend/internal/domain/valueobject"
)

// bcryptCost is the cost factor for bcrypt hashing.
const bcryptCost = 12

// passwordService implements the adapter.PasswordService interface.
type passwordService struct{}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{}
}

// HashPassword hashes a plain text password using bcrypt with cost 12.
func (s *passwordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a hashed password.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// AnalyzeStrength evaluates the password against the strength criteria.
func (s *passwordService) AnalyzeStrength(password string) valueobject.PasswordStrength {
	return valueobject.AnalyzePassword(password)
}

// ValidatePasswordStrength rejects passwords whose strength level is weak.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	strength := valueobject.AnalyzePassword(password)
	if !strength.IsAcceptable() {
		return domainerror.ErrWeakPassword
	}
	return nil
}
