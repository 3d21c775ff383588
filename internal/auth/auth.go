package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/ASHU191/Coding-Hub/internal/errors"
	"github.com/ASHU191/Coding-Hub/internal/logger"
	"github.com/ASHU191/Coding-Hub/internal/metrics"
	"github.com/ASHU191/Coding-Hub/internal/models"
	"github.com/ASHU191/Coding-Hub/internal/repository"
	"github.com/ASHU191/Coding-Hub/pkg/identity"
)

const (
	CookieName    = "hackhub_session"
	SessionExpiry = 24 * time.Hour
)

type contextKey string

// userContextKey carries the authenticated user through the request context
const userContextKey contextKey = "auth.user"

// session is an issued login token
type session struct {
	userID string
	expiry time.Time
}

// Manager handles login sessions. Credentials are checked by the
// identity provider; the matching user record is mirrored into the
// local store so the rest of the app never touches the provider.
type Manager struct {
	log      logger.Logger
	provider identity.Client
	users    repository.UserRepository
	sessions map[string]session
	mu       sync.RWMutex
}

// New creates a new session Manager
func New(log logger.Logger, provider identity.Client, users repository.UserRepository) *Manager {
	return &Manager{
		log:      log,
		provider: provider,
		users:    users,
		sessions: make(map[string]session),
	}
}

// Login verifies credentials and issues a session token
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	account, err := m.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	user, err := m.mirrorAccount(ctx, account)
	if err != nil {
		return nil, "", err
	}

	token := m.issueSession(user.ID)
	metrics.Logins.Inc()
	m.log.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

// Signup creates an account at the provider and issues a session token
func (m *Manager) Signup(ctx context.Context, name, email, password string) (*models.User, string, error) {
	account, err := m.provider.SignUp(ctx, name, email, password)
	if err != nil {
		return nil, "", err
	}

	user, err := m.mirrorAccount(ctx, account)
	if err != nil {
		return nil, "", err
	}

	token := m.issueSession(user.ID)
	m.log.Info("user signed up", "user_id", user.ID)
	return user, token, nil
}

// mirrorAccount makes sure a provider account has a local user record,
// creating one on first sight and bumping last-active on every login
func (m *Manager) mirrorAccount(ctx context.Context, account *identity.Account) (*models.User, error) {
	now := time.Now().UTC()

	user, err := m.users.GetUser(ctx, account.UID)
	if err == repository.ErrNotFound {
		role := models.RoleUser
		if account.Admin {
			role = models.RoleAdmin
		}
		created := models.User{
			ID:         account.UID,
			Name:       account.Name,
			Email:      account.Email,
			Role:       role,
			JoinDate:   now.Format("2006-01-02"),
			LastActive: now.Format(time.RFC3339),
		}
		if err := m.users.CreateUser(ctx, created); err != nil {
			return nil, errors.Wrap(err, "mirror account")
		}
		return &created, nil
	}
	if err != nil {
		return nil, err
	}

	if err := m.users.TouchLastActive(ctx, user.ID, now.Format(time.RFC3339)); err != nil {
		return nil, errors.Wrap(err, "touch last active")
	}
	user.LastActive = now.Format(time.RFC3339)
	return user, nil
}

// Logout invalidates a session token
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// issueSession creates and stores a new session token
func (m *Manager) issueSession(userID string) string {
	token := generateToken()
	m.mu.Lock()
	m.sessions[token] = session{userID: userID, expiry: time.Now().Add(SessionExpiry)}
	m.mu.Unlock()
	return token
}

// resolveSession returns the user id behind a token, expiring stale
// sessions as it goes
func (m *Manager) resolveSession(token string) (string, bool) {
	m.mu.RLock()
	sess, exists := m.sessions[token]
	m.mu.RUnlock()

	if !exists {
		return "", false
	}
	if time.Now().After(sess.expiry) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return "", false
	}
	return sess.userID, true
}

// SessionCount returns the number of live sessions
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// userFromRequest resolves the session cookie into a user record
func (m *Manager) userFromRequest(r *http.Request) (*models.User, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, false
	}
	userID, ok := m.resolveSession(cookie.Value)
	if !ok {
		return nil, false
	}
	user, err := m.users.GetUser(r.Context(), userID)
	if err != nil {
		return nil, false
	}
	return user, true
}

// RequireUser middleware rejects unauthenticated API requests with 401
// and stores the user on the request context
func (m *Manager) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := m.userFromRequest(r)
		if !ok {
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// RequireAdmin middleware additionally requires the admin role
func (m *Manager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := m.userFromRequest(r)
		if !ok {
			unauthorized(w)
			return
		}
		if user.Role != models.RoleAdmin {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"code":"FORBIDDEN","error":"Admin access required"}`))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"code":"UNAUTHORIZED","error":"Unauthorized - please log in"}`))
}

// WithUser stores a user on a context
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated user stored by the middleware
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

// SetSessionCookie sets the session cookie on the response
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionExpiry.Seconds()),
	})
}

// ClearSessionCookie removes the session cookie
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// generateToken creates a cryptographically random session token
func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("auth: cannot read random bytes: " + err.Error())
	}
	return hex.EncodeToString(b)
}
