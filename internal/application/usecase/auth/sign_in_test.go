package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lifesync/backend/internal/domain/entity"
	domainerror "github.com/lifesync/backend/internal/domain/error"
)

func TestSignIn(t *testing.T) {
	userRepo := newFakeUserRepo()
	user := entity.NewUser("ana@example.com", "Ana", "hashed:Str0ng!Pass", time.Now().UTC())
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatal(err)
	}

	uc := NewSignInUseCase(userRepo, &fakePasswordService{}, &fakeTokenService{})

	t.Run("success with unconfirmed email", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), SignInInput{
			Email:    "ana@example.com",
			Password: "Str0ng!Pass",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" {
			t.Error("expected access token")
		}
		// Unverified email is surfaced on the user, not as an error.
		if output.User.EmailConfirmedAt != nil {
			t.Error("expected nil EmailConfirmedAt for unverified user")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), SignInInput{
			Email:    "ana@example.com",
			Password: "wrong",
		})
		assertInvalidCredentials(t, err)
	})

	t.Run("unknown email uses same generic error", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), SignInInput{
			Email:    "nobody@example.com",
			Password: "Str0ng!Pass",
		})
		assertInvalidCredentials(t, err)
	})
}

func assertInvalidCredentials(t *testing.T, err error) {
	t.Helper()

	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Code != domainerror.ErrCodeInvalidCredentials {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, authErr.Code)
	}
	// The message must never distinguish wrong password from unknown account.
	if authErr.Message != "invalid email or password" {
		t.Errorf("unexpected message %q", authErr.Message)
	}
}
