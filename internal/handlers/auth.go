package handlers

import (
	"net/http"

	"github.com/ASHU191/Coding-Hub/internal/auth"
	"github.com/ASHU191/Coding-Hub/internal/services"
)

// handleLogin verifies credentials and starts a session
func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, token, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	auth.SetSessionCookie(w, token)
	respondOK(w, SessionResponse{User: *user, Token: token})
}

// handleSignup creates an account and starts a session
func (h *Handlers) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, token, err := h.Auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	auth.SetSessionCookie(w, token)
	respondCreated(w, SessionResponse{User: *user, Token: token})
}

// handleLogout ends the current session
func (h *Handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		h.Auth.Logout(cookie.Value)
	}
	auth.ClearSessionCookie(w)
	respondSuccess(w, "Logged out")
}

// handleMe returns the authenticated user's profile
func (h *Handlers) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	respondOK(w, user)
}

// handleUpdateProfile edits the authenticated user's profile
func (h *Handlers) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}

	var req ProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	updated, err := h.User.UpdateProfile(r.Context(), user.ID, services.ProfileUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, updated)
}
