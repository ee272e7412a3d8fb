// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/lifesync/backend/internal/domain/valueobject"

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// HashPassword hashes a plain text password using bcrypt.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	VerifyPassword(hashedPassword, password string) error

	// AnalyzeStrength evaluates the password against the strength criteria.
	AnalyzeStrength(password string) valueobject.PasswordStrength

	// ValidatePasswordStrength validates if a password meets minimum requirements.
	ValidatePasswordStrength(password string) error
}
