package handlers

import (
	"net/http"
	"time"

	"github.com/ASHU191/Coding-Hub/internal/models"
	"github.com/ASHU191/Coding-Hub/internal/services"
)

// handleAdminSubmissions lists submissions for review, narrowed by the
// q, status and hackathon_id query parameters
func (h *Handlers) handleAdminSubmissions(w http.ResponseWriter, r *http.Request) {
	filter := services.SubmissionFilter{
		Query:       r.URL.Query().Get("q"),
		Status:      r.URL.Query().Get("status"),
		HackathonID: r.URL.Query().Get("hackathon_id"),
	}
	submissions, err := h.Submission.FilterSubmissions(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, submissions)
}

// handleReviewSubmission applies a review decision with optional feedback
func (h *Handlers) handleReviewSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req ReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	submission, err := h.Submission.SetStatus(r.Context(), id, req.Status, req.Feedback)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, submission)
}

// handleDeleteSubmission removes a submission
func (h *Handlers) handleDeleteSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.Submission.DeleteSubmission(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

// handleListUsers lists all users
func (h *Handlers) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.User.ListUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, users)
}

// handleAdminUpdateUser edits any user's profile
func (h *Handlers) handleAdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req ProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	user, err := h.User.UpdateProfile(r.Context(), id, services.ProfileUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, user)
}

// handleActiveUsers lists the users seen inside the activity window
func (h *Handlers) handleActiveUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.User.ActiveUsers(r.Context(), time.Now().UTC())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, users)
}

// handleStats returns the admin dashboard summary
func (h *Handlers) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hackathons, err := h.Hackathon.ListHackathons(ctx)
	if err != nil {
		respondError(w, err)
		return
	}
	users, err := h.User.ListUsers(ctx)
	if err != nil {
		respondError(w, err)
		return
	}
	active, err := h.User.ActiveUsers(ctx, time.Now().UTC())
	if err != nil {
		respondError(w, err)
		return
	}
	teams, err := h.Team.ListTeams(ctx)
	if err != nil {
		respondError(w, err)
		return
	}
	submissions, err := h.Submission.ListSubmissions(ctx)
	if err != nil {
		respondError(w, err)
		return
	}

	pending := 0
	for _, s := range submissions {
		if s.Status == models.StatusPending {
			pending++
		}
	}

	respondOK(w, StatsResponse{
		Hackathons:         len(hackathons),
		Users:              len(users),
		ActiveUsers:        len(active),
		Teams:              len(teams),
		Submissions:        len(submissions),
		PendingSubmissions: pending,
		LiveSessions:       h.Auth.SessionCount(),
	})
}
