package lifesync

import (
	"fmt"
	"math"
	"net/http"
	"time"
)

// defaultRetryAfterSeconds is assumed when a 429 response carries no
// retry-after hint.
const defaultRetryAfterSeconds = 900

// Classify maps an HTTP status code and optional error body to an ErrorState.
// Status 0 means the request never produced a response (transport failure).
// It is a total function: unrecognized statuses fall into the server-error
// branch rather than failing.
func Classify(status int, body *ErrorBody, authCtx AuthContext) *ErrorState {
	state := &ErrorState{
		Timestamp: time.Now().UTC(),
	}
	if body != nil && body.Error.Details != nil {
		state.Details = body.Error.Details
	}

	switch {
	case status == 0:
		state.Code = CodeNetworkError
		state.Type = TypeNetwork
		state.Recoverable = true
		state.Message = "Network connection error. Please check your internet connection."

	case status == http.StatusBadRequest:
		state.Code = CodeValidationError
		state.Type = TypeValidation
		state.Recoverable = true
		state.Message = "Invalid input"
		if body != nil && body.Error.Message != "" {
			state.Message = body.Error.Message
		}

	case status == http.StatusUnauthorized:
		state.Type = TypeUnauthorized
		if authCtx == ContextSignIn {
			state.Code = CodeInvalidCredentials
			state.Recoverable = true
			state.Message = "Invalid email or password"
		} else {
			state.Code = CodeUnauthorized
			state.Recoverable = false
			state.Message = "Your session has expired. Please log in again."
		}

	case status == http.StatusConflict:
		state.Code = CodeEmailExists
		state.Type = TypeValidation
		state.Recoverable = true
		state.Message = "This email address is already registered. Please sign in instead."

	case status == http.StatusUnprocessableEntity:
		state.Code = CodeWeakPassword
		state.Type = TypeValidation
		state.Recoverable = true
		state.Message = "Password does not meet strength requirements. Please choose a stronger password."

	case status == http.StatusTooManyRequests:
		state.Code = CodeRateLimited
		state.Type = TypeRateLimited
		state.Recoverable = true
		state.Message = fmt.Sprintf("Too many attempts. Please try again in %d minutes.", retryAfterMinutes(body))

	default:
		// Covers 5xx and any unrecognized status.
		state.Code = CodeServerError
		state.Type = TypeServer
		state.Recoverable = true
		state.Message = "An unexpected error occurred. Please try again later."
	}

	return state
}

// UnverifiedEmailState builds the ErrorState for a user whose sign-in
// succeeded but whose email is not yet confirmed. The API signals this via
// the email_confirmed_at field on a successful response, not via a 401.
func UnverifiedEmailState() *ErrorState {
	return &ErrorState{
		Code:        CodeUnverifiedEmail,
		Type:        TypeUnauthorized,
		Message:     "Please verify your email address to continue.",
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}

// retryAfterMinutes extracts the retry-after hint in seconds from the error
// body and converts it to whole minutes, rounding up, minimum 1.
func retryAfterMinutes(body *ErrorBody) int {
	seconds := defaultRetryAfterSeconds
	if body != nil && body.Error.Details != nil {
		if raw, ok := body.Error.Details["retryAfter"]; ok {
			// JSON numbers decode as float64.
			switch v := raw.(type) {
			case float64:
				seconds = int(v)
			case int:
				seconds = v
			}
		}
	}

	minutes := int(math.Ceil(float64(seconds) / 60))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
