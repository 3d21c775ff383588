package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ASHU191/Coding-Hub/internal/auth"
	"github.com/ASHU191/Coding-Hub/internal/models"
	"github.com/ASHU191/Coding-Hub/internal/services"
)

// canAccessSubmission reports whether the user owns the submission,
// belongs to its team, or is an admin
func canAccessSubmission(user *models.User, sub *models.Submission) bool {
	if user.Role == models.RoleAdmin || sub.UserID == user.ID {
		return true
	}
	if sub.TeamID == "" {
		return false
	}
	for _, teamID := range user.Teams {
		if teamID == sub.TeamID {
			return true
		}
	}
	return false
}

// handleStartTimer begins the countdown for the authenticated user
func (h *Handlers) handleStartTimer(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	submission, err := h.Submission.StartTimer(r.Context(), user.ID, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, submission)
}

// handleCountdown reports the timer state for the authenticated user
func (h *Handlers) handleCountdown(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	countdown, err := h.Submission.Countdown(r.Context(), user.ID, id, time.Now().UTC())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, countdown)
}

// handleSubmit records the authenticated user's project submission
func (h *Handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	var req SubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	submission, err := h.Submission.Submit(r.Context(), services.SubmissionInput{
		UserID:      user.ID,
		HackathonID: req.HackathonID,
		TeamID:      req.TeamID,
		ProjectName: req.ProjectName,
		Description: req.Description,
		RepoURL:     req.RepoURL,
		DemoURL:     req.DemoURL,
		FileURL:     req.FileURL,
		Tasks:       req.Tasks,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, submission)
}

// handleGetSubmission returns one submission, visible to its owner,
// their teammates and admins
func (h *Handlers) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	submission, err := h.Submission.GetSubmission(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !canAccessSubmission(user, submission) {
		respondError(w, NewAPIError(http.StatusForbidden, ErrCodeForbidden, "You do not have access to this submission"))
		return
	}
	respondOK(w, submission)
}

// handleUpdateTask toggles one checklist entry on a submission
func (h *Handlers) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	current, err := h.Submission.GetSubmission(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !canAccessSubmission(user, current) {
		respondError(w, NewAPIError(http.StatusForbidden, ErrCodeForbidden, "You do not have access to this submission"))
		return
	}
	indexParam := chi.URLParam(r, "index")
	index, err := strconv.Atoi(indexParam)
	if err != nil {
		respondError(w, BadRequest("Invalid index parameter"))
		return
	}
	var req UpdateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	submission, err := h.Submission.UpdateTask(r.Context(), id, index, req.Completed)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, submission)
}

// handleMySubmissions lists the authenticated user's submissions,
// including those made under their teams
func (h *Handlers) handleMySubmissions(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	submissions, err := h.Submission.SubmissionsForUser(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, submissions)
}

// handleHackathonSubmissions lists a hackathon's submissions
func (h *Handlers) handleHackathonSubmissions(w http.ResponseWriter, r *http.Request) {
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	submissions, err := h.Submission.SubmissionsForHackathon(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, submissions)
}
