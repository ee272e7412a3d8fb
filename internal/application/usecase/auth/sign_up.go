// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/lifesync/backend/internal/application/adapter"
	"github.com/lifesync/backend/internal/domain/entity"
	domainerror "github.com/lifesync/backend/internal/domain/error"
)

// verificationTokenTTL is how long the emailed verification link stays valid.
const verificationTokenTTL = "24 hours"

// SignUpInput represents the input for user registration.
type SignUpInput struct {
	Email         string
	Name          string
	Password      string
	TermsAccepted bool
}

// SignUpOutput represents the output of user registration.
type SignUpOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// SignUpUseCase handles user registration logic.
type SignUpUseCase struct {
	userRepo         adapter.UserRepository
	categoryRepo     adapter.CategoryRepository
	passwordService  adapter.PasswordService
	tokenService     adapter.TokenService
	verificationSvc  adapter.VerificationTokenService
	emailService     adapter.EmailService
	appBaseURL       string
}

// NewSignUpUseCase creates a new SignUpUseCase instance.
func NewSignUpUseCase(
	userRepo adapter.UserRepository,
	categoryRepo adapter.CategoryRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	verificationSvc adapter.VerificationTokenService,
	emailService adapter.EmailService,
	appBaseURL string,
) *SignUpUseCase {
	return &SignUpUseCase{
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		verificationSvc: verificationSvc,
		emailService:    emailService,
		appBaseURL:      appBaseURL,
	}
}

// Execute performs the user registration.
func (uc *SignUpUseCase) Execute(ctx context.Context, input SignUpInput) (*SignUpOutput, error) {
	// Validate terms acceptance
	if !input.TermsAccepted {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeTermsNotAccepted,
			"terms of service must be accepted",
			domainerror.ErrTermsNotAccepted,
		)
	}

	// Validate email format
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	// Validate password strength
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet strength requirements",
			domainerror.ErrWeakPassword,
		)
	}

	// Check if email already exists
	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	// Hash password
	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Create user entity
	user := entity.NewUser(input.Email, input.Name, passwordHash, time.Now().UTC())

	// Save user to database
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Seed the default reflection categories
	if err := uc.categoryRepo.CreateBatch(ctx, entity.DefaultCategories(user.ID)); err != nil {
		return nil, fmt.Errorf("failed to seed default categories: %w", err)
	}

	// Queue the verification email. A failure here must not block sign-up;
	// the user can request a new verification link later.
	uc.queueVerificationEmail(ctx, user)

	// Generate tokens
	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &SignUpOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// queueVerificationEmail generates a verification token and queues the email.
func (uc *SignUpUseCase) queueVerificationEmail(ctx context.Context, user *entity.User) {
	token, err := uc.verificationSvc.GenerateVerificationToken(ctx, user.ID, user.Email)
	if err != nil {
		slog.Warn("Failed to generate verification token", "user_id", user.ID, "error", err)
		return
	}

	if err := uc.emailService.QueueVerificationEmail(ctx, adapter.QueueVerificationInput{
		UserID:    user.ID.String(),
		UserEmail: user.Email,
		UserName:  user.Name,
		VerifyURL: fmt.Sprintf("%s/verify-email?token=%s", uc.appBaseURL, token.Token),
		ExpiresIn: verificationTokenTTL,
	}); err != nil {
		slog.Warn("Failed to queue verification email", "user_id", user.ID, "error", err)
	}
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
