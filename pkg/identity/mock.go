package identity

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// maxFailedAttempts is the lockout threshold for repeated bad passwords
const maxFailedAttempts = 5

// mockAccount is a stored mock provider account
type mockAccount struct {
	uid          string
	name         string
	passwordHash []byte
	admin        bool
}

// MockClient is an in-memory identity provider for testing and local
// development. It comes seeded with an admin account
// (admin@gmail.com / 123456).
type MockClient struct {
	mu        sync.Mutex
	accounts  map[string]*mockAccount
	failures  map[string]int
	signInErr error
	signUpErr error
}

// MockOption configures the mock client
type MockOption func(*MockClient)

// WithAccount seeds an account
func WithAccount(name, email, password string, admin bool) MockOption {
	return func(m *MockClient) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		m.accounts[strings.ToLower(email)] = &mockAccount{
			uid:          uuid.NewString(),
			name:         name,
			passwordHash: hash,
			admin:        admin,
		}
	}
}

// WithSignInError forces SignIn to fail
func WithSignInError(err error) MockOption {
	return func(m *MockClient) {
		m.signInErr = err
	}
}

// WithSignUpError forces SignUp to fail
func WithSignUpError(err error) MockOption {
	return func(m *MockClient) {
		m.signUpErr = err
	}
}

// NewMockClient creates a mock provider with the seeded admin account
func NewMockClient(opts ...MockOption) *MockClient {
	m := &MockClient{
		accounts: make(map[string]*mockAccount),
		failures: make(map[string]int),
	}

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	m.accounts["admin@gmail.com"] = &mockAccount{
		uid:          "admin-1",
		name:         "Admin User",
		passwordHash: adminHash,
		admin:        true,
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SignIn verifies credentials against the in-memory store. Five failed
// attempts in a row lock the account out.
func (m *MockClient) SignIn(ctx context.Context, email, password string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.signInErr != nil {
		return nil, m.signInErr
	}

	key := strings.ToLower(email)
	account, ok := m.accounts[key]
	if !ok {
		return nil, NewError(CodeInvalidCredentials)
	}
	if m.failures[key] >= maxFailedAttempts {
		return nil, NewError(CodeTooManyAttempts)
	}
	if err := bcrypt.CompareHashAndPassword(account.passwordHash, []byte(password)); err != nil {
		m.failures[key]++
		if m.failures[key] >= maxFailedAttempts {
			return nil, NewError(CodeTooManyAttempts)
		}
		return nil, NewError(CodeInvalidCredentials)
	}

	m.failures[key] = 0
	return &Account{UID: account.uid, Name: account.name, Email: key, Admin: account.admin}, nil
}

// SignUp creates an account in the in-memory store
func (m *MockClient) SignUp(ctx context.Context, name, email, password string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.signUpErr != nil {
		return nil, m.signUpErr
	}

	key := strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(key, "@") || !strings.Contains(key, ".") {
		return nil, NewError(CodeInvalidEmail)
	}
	if len(password) < 6 {
		return nil, NewError(CodeWeakPassword)
	}
	if _, exists := m.accounts[key]; exists {
		return nil, NewError(CodeEmailInUse)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	account := &mockAccount{
		uid:          "user-" + uuid.NewString(),
		name:         name,
		passwordHash: hash,
	}
	m.accounts[key] = account
	return &Account{UID: account.uid, Name: account.name, Email: key}, nil
}

// Ensure both clients satisfy the interface
var (
	_ Client = (*HTTPClient)(nil)
	_ Client = (*MockClient)(nil)
)
