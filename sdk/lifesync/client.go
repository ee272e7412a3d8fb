package lifesync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is a thin HTTP client for the LifeSync API. Failed calls return an
// *ErrorState as the error value.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *SessionStore
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithSessionStore sets the session store used for token persistence.
func WithSessionStore(store *SessionStore) Option {
	return func(c *Client) {
		c.session = store
	}
}

// NewClient creates a new API client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		session:    NewSessionStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the client's session store.
func (c *Client) Session() *SessionStore {
	return c.session
}

// SignUp registers a new account. On success the token pair is stored in the
// session and the auth result returned.
func (c *Client) SignUp(ctx context.Context, params SignUpParams) (*AuthResult, error) {
	var result AuthResult
	if err := c.post(ctx, "/api/auth/sign-up", params, &result, ContextSignUp); err != nil {
		return nil, err
	}

	c.session.Set(TokenPair{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
	return &result, nil
}

// SignIn authenticates an existing account. A success with an unconfirmed
// email clears the session and returns the unverified-email ErrorState; the
// account must be verified before the session is usable.
func (c *Client) SignIn(ctx context.Context, params SignInParams) (*AuthResult, error) {
	var result AuthResult
	if err := c.post(ctx, "/api/auth/sign-in", params, &result, ContextSignIn); err != nil {
		return nil, err
	}

	if result.User.EmailConfirmedAt == nil {
		c.session.Clear()
		return nil, UnverifiedEmailState()
	}

	c.session.Set(TokenPair{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
	return &result, nil
}

// Dashboard fetches the authenticated user's dashboard.
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var result Dashboard
	if err := c.get(ctx, "/api/dashboard", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any, authCtx AuthContext) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out, authCtx)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if tokens, ok := c.session.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	}

	return c.do(req, out, ContextGeneric)
}

// do executes the request and decodes the response. Transport failures are
// classified as status 0; non-2xx responses flow through Classify.
func (c *Client) do(req *http.Request, out any, authCtx AuthContext) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Classify(0, nil, authCtx)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		body := parseErrorBody(raw)

		// The API communicates the rate-limit wait via the Retry-After
		// header, not the body. Surface it where the classifier looks.
		if resp.StatusCode == http.StatusTooManyRequests {
			if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && seconds > 0 {
				if body == nil {
					body = &ErrorBody{}
				}
				if body.Error.Details == nil {
					body.Error.Details = make(map[string]any)
				}
				if _, ok := body.Error.Details["retryAfter"]; !ok {
					body.Error.Details["retryAfter"] = seconds
				}
			}
		}

		return Classify(resp.StatusCode, body, authCtx)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// parseErrorBody decodes an error response. It accepts both the nested
// envelope ({"error": {"code", "message", "details"}}) and the flat shape the
// API emits ({"error": "message", "code": "..."}).
func parseErrorBody(raw []byte) *ErrorBody {
	if len(raw) == 0 {
		return nil
	}

	var nested ErrorBody
	if err := json.Unmarshal(raw, &nested); err == nil && (nested.Error.Message != "" || nested.Error.Code != "") {
		return &nested
	}

	var flat struct {
		Error   string          `json:"error"`
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(raw, &flat); err == nil && (flat.Error != "" || flat.Code != "") {
		var details map[string]any
		_ = json.Unmarshal(flat.Details, &details)
		return &ErrorBody{Error: ErrorDetail{
			Code:    flat.Code,
			Message: flat.Error,
			Details: details,
		}}
	}
	return nil
}
