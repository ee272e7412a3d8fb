// Package lifesync provides a thin Go client for the LifeSync API.
// Failed calls are normalized into ErrorState values so callers can drive
// consistent UI treatment without inspecting raw HTTP responses.
package lifesync

import "time"

// ErrorCode identifies the normalized category of a failed API call.
type ErrorCode string

const (
	CodeNetworkError       ErrorCode = "NETWORK_ERROR"
	CodeValidationError    ErrorCode = "VALIDATION_ERROR"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnverifiedEmail    ErrorCode = "UNVERIFIED_EMAIL"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeEmailExists        ErrorCode = "EMAIL_EXISTS"
	CodeWeakPassword       ErrorCode = "WEAK_PASSWORD"
	CodeRateLimited        ErrorCode = "RATE_LIMITED"
	CodeServerError        ErrorCode = "SERVER_ERROR"
)

// ErrorType is the coarse bucket governing UI treatment. Rate limiting gets
// its own bucket so retry timers are not conflated with generic network
// failures.
type ErrorType string

const (
	TypeUnauthorized ErrorType = "unauthorized"
	TypeValidation   ErrorType = "validation"
	TypeServer       ErrorType = "server"
	TypeNetwork      ErrorType = "network"
	TypeRateLimited  ErrorType = "rate_limited"
)

// ErrorState is the normalized, UI-ready representation of a failed API call.
// It implements error so it can flow through ordinary error returns.
type ErrorState struct {
	Code        ErrorCode
	Type        ErrorType
	Message     string
	Details     map[string]any
	Recoverable bool
	Timestamp   time.Time
}

// Error implements the error interface.
func (e *ErrorState) Error() string {
	return e.Message
}

// ErrorBody is the error payload shape returned by the API.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the structured error information inside an ErrorBody.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// AuthContext tells the classifier which operation produced a 401 so it can
// distinguish rejected credentials from an expired session.
type AuthContext int

const (
	// ContextGeneric covers authenticated resource fetches.
	ContextGeneric AuthContext = iota
	// ContextSignIn covers the sign-in endpoint.
	ContextSignIn
	// ContextSignUp covers the registration endpoint.
	ContextSignUp
)

// User is the user payload returned by auth endpoints.
type User struct {
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

// AuthResult is the successful response of sign-up and sign-in.
type AuthResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// CategoryBreakdown is the per-category note count in a dashboard.
type CategoryBreakdown struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Color        string `json:"color"`
	Icon         string `json:"icon"`
	NoteCount    int    `json:"note_count"`
}

// RecentNote is a note summary in a dashboard.
type RecentNote struct {
	ID           string `json:"id"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Content      string `json:"content"`
	MoodRating   int    `json:"mood_rating"`
	NotedOn      string `json:"noted_on"`
}

// Dashboard is the successful response of the dashboard endpoint.
type Dashboard struct {
	CurrentStreak     int                 `json:"current_streak"`
	LongestStreak     int                 `json:"longest_streak"`
	NoteCount         int                 `json:"note_count"`
	AverageMood       string              `json:"average_mood"`
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
	RecentNotes       []RecentNote        `json:"recent_notes"`
	PeriodStart       string              `json:"period_start"`
	PeriodEnd         string              `json:"period_end"`
}

// SignUpParams are the inputs for registration.
type SignUpParams struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	Password      string `json:"password"`
	TermsAccepted bool   `json:"terms_accepted"`
}

// SignInParams are the inputs for sign-in.
type SignInParams struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// TokenPair holds the access/refresh token pair for a session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
