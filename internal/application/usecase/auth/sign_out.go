// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/lifesync/backend/internal/application/adapter"
)

// SignOutInput represents the input for user sign-out.
type SignOutInput struct {
	RefreshToken string
}

// SignOutOutput represents the output of user sign-out.
type SignOutOutput struct {
	Message string
}

// SignOutUseCase handles user sign-out logic.
type SignOutUseCase struct {
	tokenService adapter.TokenService
}

// NewSignOutUseCase creates a new SignOutUseCase instance.
func NewSignOutUseCase(tokenService adapter.TokenService) *SignOutUseCase {
	return &SignOutUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the user sign-out by invalidating the refresh token.
func (uc *SignOutUseCase) Execute(ctx context.Context, input SignOutInput) (*SignOutOutput, error) {
	// Invalidate refresh token (ignore errors as the token might already be invalid)
	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)

	return &SignOutOutput{
		Message: "Successfully signed out",
	}, nil
}
