package lifesync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientSignInSuccess(t *testing.T) {
	confirmed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/sign-in" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(AuthResult{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			User: User{
				ID:               "user-1",
				Email:            "jordan@example.com",
				EmailConfirmedAt: &confirmed,
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.SignIn(context.Background(), SignInParams{
		Email:    "jordan@example.com",
		Password: "Str0ng!Pass",
	})
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if result.AccessToken != "access-token" {
		t.Errorf("AccessToken = %q", result.AccessToken)
	}

	tokens, ok := client.Session().Get()
	if !ok {
		t.Fatal("session should be established after sign-in")
	}
	if tokens.RefreshToken != "refresh-token" {
		t.Errorf("RefreshToken = %q", tokens.RefreshToken)
	}
}

func TestClientSignInUnverifiedEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(AuthResult{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			User: User{
				ID:               "user-1",
				Email:            "jordan@example.com",
				EmailConfirmedAt: nil,
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SignIn(context.Background(), SignInParams{
		Email:    "jordan@example.com",
		Password: "Str0ng!Pass",
	})

	var state *ErrorState
	if !errors.As(err, &state) {
		t.Fatalf("expected *ErrorState, got %v", err)
	}
	if state.Code != CodeUnverifiedEmail {
		t.Errorf("Code = %q, want %q", state.Code, CodeUnverifiedEmail)
	}

	if _, ok := client.Session().Get(); ok {
		t.Error("session should not be established for unverified email")
	}
}

func TestClientSignInInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorBody{Error: ErrorDetail{
			Code:    "AUTH-020001",
			Message: "invalid email or password",
		}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SignIn(context.Background(), SignInParams{
		Email:    "jordan@example.com",
		Password: "wrong",
	})

	var state *ErrorState
	if !errors.As(err, &state) {
		t.Fatalf("expected *ErrorState, got %v", err)
	}
	if state.Code != CodeInvalidCredentials {
		t.Errorf("Code = %q, want %q", state.Code, CodeInvalidCredentials)
	}
	if state.Type != TypeUnauthorized {
		t.Errorf("Type = %q, want %q", state.Type, TypeUnauthorized)
	}
}

func TestClientSignUpDuplicateEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(ErrorBody{Error: ErrorDetail{
			Code:    "AUTH-010001",
			Message: "email already registered",
		}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SignUp(context.Background(), SignUpParams{
		Email:         "jordan@example.com",
		Name:          "Jordan",
		Password:      "Str0ng!Pass",
		TermsAccepted: true,
	})

	var state *ErrorState
	if !errors.As(err, &state) {
		t.Fatalf("expected *ErrorState, got %v", err)
	}
	if state.Code != CodeEmailExists {
		t.Errorf("Code = %q, want %q", state.Code, CodeEmailExists)
	}
}

func TestClientDashboardSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Dashboard{
			CurrentStreak: 4,
			LongestStreak: 9,
			NoteCount:     21,
			AverageMood:   "3.8",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.Session().Set(TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"})

	dash, err := client.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if gotAuth != "Bearer access-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if dash.CurrentStreak != 4 || dash.LongestStreak != 9 {
		t.Errorf("unexpected dashboard %+v", dash)
	}
}

func TestClientDashboardExpiredSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Dashboard(context.Background())

	var state *ErrorState
	if !errors.As(err, &state) {
		t.Fatalf("expected *ErrorState, got %v", err)
	}
	if state.Code != CodeUnauthorized {
		t.Errorf("Code = %q, want %q", state.Code, CodeUnauthorized)
	}
	if state.Recoverable {
		t.Error("expired session should not be recoverable")
	}
}

func TestClientTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // force connection refused

	client := NewClient(server.URL)
	_, err := client.Dashboard(context.Background())

	var state *ErrorState
	if !errors.As(err, &state) {
		t.Fatalf("expected *ErrorState, got %v", err)
	}
	if state.Code != CodeNetworkError {
		t.Errorf("Code = %q, want %q", state.Code, CodeNetworkError)
	}
	if state.Type != TypeNetwork {
		t.Errorf("Type = %q, want %q", state.Type, TypeNetwork)
	}
}

func TestParseErrorBody(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantNil     bool
		wantMessage string
		wantCode    string
	}{
		{
			name:        "nested envelope",
			raw:         `{"error": {"code": "AUTH-010001", "message": "email is invalid", "details": {"field": "email"}}}`,
			wantMessage: "email is invalid",
			wantCode:    "AUTH-010001",
		},
		{
			name:        "flat shape",
			raw:         `{"error": "email is invalid", "code": "AUTH-010001"}`,
			wantMessage: "email is invalid",
			wantCode:    "AUTH-010001",
		},
		{
			name:    "empty body",
			raw:     "",
			wantNil: true,
		},
		{
			name:    "non-JSON body",
			raw:     "internal server error",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := parseErrorBody([]byte(tt.raw))
			if tt.wantNil {
				if body != nil {
					t.Fatalf("expected nil body, got %+v", body)
				}
				return
			}
			if body == nil {
				t.Fatal("expected parsed body, got nil")
			}
			if body.Error.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", body.Error.Message, tt.wantMessage)
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", body.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestClientValidationMessagePassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "name is required",
			"code":  "AUTH-010004",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SignUp(context.Background(), SignUpParams{Email: "a@b.com"})

	var state *ErrorState
	if !errors.As(err, &state) {
		t.Fatalf("expected *ErrorState, got %v", err)
	}
	if state.Code != CodeValidationError {
		t.Errorf("Code = %q, want %q", state.Code, CodeValidationError)
	}
	if state.Message != "name is required" {
		t.Errorf("Message = %q, want passthrough of server message", state.Message)
	}
}

func TestClientRateLimitedRetryAfterHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Too many requests. Please try again later.",
			"code":  "AUTH-030001",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SignIn(context.Background(), SignInParams{
		Email:    "jordan@example.com",
		Password: "Str0ng!Pass",
	})

	var state *ErrorState
	if !errors.As(err, &state) {
		t.Fatalf("expected *ErrorState, got %v", err)
	}
	if state.Code != CodeRateLimited {
		t.Errorf("Code = %q, want %q", state.Code, CodeRateLimited)
	}
	// 30 seconds rounds up to 1 minute, not the 15-minute default.
	if state.Message != "Too many attempts. Please try again in 1 minutes." {
		t.Errorf("Message = %q, want 1 minute wait from the Retry-After header", state.Message)
	}
	if got, ok := state.Details["retryAfter"].(int); !ok || got != 30 {
		t.Errorf("Details[retryAfter] = %v, want 30", state.Details["retryAfter"])
	}
}

func TestClientRateLimitedBodyTakesPrecedence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    "AUTH-030001",
				"message": "rate limited",
				"details": map[string]any{"retryAfter": 120},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SignIn(context.Background(), SignInParams{
		Email:    "jordan@example.com",
		Password: "Str0ng!Pass",
	})

	var state *ErrorState
	if !errors.As(err, &state) {
		t.Fatalf("expected *ErrorState, got %v", err)
	}
	if state.Message != "Too many attempts. Please try again in 2 minutes." {
		t.Errorf("Message = %q, want body retryAfter to win over the header", state.Message)
	}
}
