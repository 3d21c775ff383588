// Package identity provides a client for an external identity provider
// that verifies credentials and issues account records.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ASHU191/Coding-Hub/internal/logger"
)

// Code identifies a provider failure category
type Code string

const (
	CodeInvalidCredentials Code = "invalid-credentials"
	CodeTooManyAttempts    Code = "too-many-attempts"
	CodeEmailInUse         Code = "email-in-use"
	CodeWeakPassword       Code = "weak-password"
	CodeInvalidEmail       Code = "invalid-email"
)

// messages maps failure codes to the text shown to end users
var messages = map[Code]string{
	CodeInvalidCredentials: "Invalid email or password",
	CodeTooManyAttempts:    "Too many failed login attempts. Please try again later",
	CodeEmailInUse:         "Email is already in use",
	CodeWeakPassword:       "Password should be at least 6 characters",
	CodeInvalidEmail:       "Invalid email address",
}

// Error is a typed provider failure
type Error struct {
	Code Code
}

// Error implements the error interface
func (e *Error) Error() string {
	if msg, ok := messages[e.Code]; ok {
		return msg
	}
	return fmt.Sprintf("identity provider error: %s", e.Code)
}

// NewError creates an Error for a failure code
func NewError(code Code) *Error {
	return &Error{Code: code}
}

// Account is the provider's view of an authenticated user
type Account struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

// Client defines the interface for identity provider operations
type Client interface {
	// SignIn verifies credentials and returns the matching account
	SignIn(ctx context.Context, email, password string) (*Account, error)
	// SignUp creates a new account
	SignUp(ctx context.Context, name, email, password string) (*Account, error)
}

// HTTPClient talks to a remote identity provider over HTTP
type HTTPClient struct {
	log        logger.Logger
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a client for the provider at baseURL
func NewHTTPClient(log logger.Logger, baseURL string) *HTTPClient {
	return &HTTPClient{
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type credentialsRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type providerResponse struct {
	Account *Account `json:"account,omitempty"`
	Error   *struct {
		Code Code `json:"code"`
	} `json:"error,omitempty"`
}

// SignIn verifies credentials against the remote provider
func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (*Account, error) {
	return c.post(ctx, "/v1/accounts/signin", credentialsRequest{Email: email, Password: password})
}

// SignUp creates an account at the remote provider
func (c *HTTPClient) SignUp(ctx context.Context, name, email, password string) (*Account, error) {
	return c.post(ctx, "/v1/accounts/signup", credentialsRequest{Name: name, Email: email, Password: password})
}

func (c *HTTPClient) post(ctx context.Context, path string, payload credentialsRequest) (*Account, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("identity provider returned malformed response: %w", err)
	}

	if decoded.Error != nil {
		c.log.Debug("identity provider rejected request", "path", path, "code", decoded.Error.Code)
		return nil, NewError(decoded.Error.Code)
	}
	if decoded.Account == nil {
		return nil, fmt.Errorf("identity provider returned status %d with no account", resp.StatusCode)
	}
	return decoded.Account, nil
}
