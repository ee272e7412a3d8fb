// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/lifesync/backend/internal/application/adapter"
	domainerror "github.com/lifesync/backend/internal/domain/error"
)

// VerifyEmailInput represents the input for email verification.
type VerifyEmailInput struct {
	Token string
}

// VerifyEmailOutput represents the output of email verification.
type VerifyEmailOutput struct {
	Message string
}

// VerifyEmailUseCase handles email verification logic.
type VerifyEmailUseCase struct {
	userRepo        adapter.UserRepository
	verificationSvc adapter.VerificationTokenService
}

// NewVerifyEmailUseCase creates a new VerifyEmailUseCase instance.
func NewVerifyEmailUseCase(
	userRepo adapter.UserRepository,
	verificationSvc adapter.VerificationTokenService,
) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{
		userRepo:        userRepo,
		verificationSvc: verificationSvc,
	}
}

// Execute consumes a verification token and marks the user's email confirmed.
func (uc *VerifyEmailUseCase) Execute(ctx context.Context, input VerifyEmailInput) (*VerifyEmailOutput, error) {
	token, err := uc.verificationSvc.ValidateVerificationToken(ctx, input.Token)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidVerificationToken,
			"invalid or expired verification token",
			domainerror.ErrInvalidVerificationToken,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if user.IsEmailConfirmed() {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailAlreadyConfirmed,
			"email address is already verified",
			domainerror.ErrEmailAlreadyConfirmed,
		)
	}

	user.ConfirmEmail()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	// One-shot token
	if err := uc.verificationSvc.InvalidateVerificationToken(ctx, token.Token); err != nil {
		return nil, fmt.Errorf("failed to invalidate verification token: %w", err)
	}

	return &VerifyEmailOutput{
		Message: "Email address verified successfully",
	}, nil
}
