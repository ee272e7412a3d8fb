// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/lifesync/backend/internal/application/adapter"
	"github.com/lifesync/backend/internal/domain/entity"
	domainerror "github.com/lifesync/backend/internal/domain/error"
)

// SignInInput represents the input for user sign-in.
type SignInInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// SignInOutput represents the output of user sign-in.
type SignInOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// SignInUseCase handles user sign-in logic.
type SignInUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewSignInUseCase creates a new SignInUseCase instance.
func NewSignInUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *SignInUseCase {
	return &SignInUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user sign-in. The output carries the user's
// EmailConfirmedAt so the caller can run its post-success verification check;
// an unverified email is not a sign-in error.
func (uc *SignInUseCase) Execute(ctx context.Context, input SignInInput) (*SignInOutput, error) {
	// Find user by email
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		// Return generic error to prevent email enumeration
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Verify password
	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Generate tokens
	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &SignInOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}
