package handlers

import (
	"net/http"

	"github.com/ASHU191/Coding-Hub/internal/auth"
)

// handleCreateTeam creates a team led by the authenticated user
func (h *Handlers) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	var req CreateTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	team, err := h.Team.CreateTeam(r.Context(), req.Name, req.HackathonID, user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, team)
}

// handleGetTeam returns one team
func (h *Handlers) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	team, err := h.Team.GetTeam(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, team)
}

// handleRenameTeam changes a team's name
func (h *Handlers) handleRenameTeam(w http.ResponseWriter, r *http.Request) {
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req RenameTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	team, err := h.Team.RenameTeam(r.Context(), id, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, team)
}

// handleDeleteTeam removes a team
func (h *Handlers) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.Team.DeleteTeam(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

// handleAddTeamMember adds a user to a team
func (h *Handlers) handleAddTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req TeamMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	team, err := h.Team.AddMember(r.Context(), id, req.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, team)
}

// handleRemoveTeamMember removes a user from a team
func (h *Handlers) handleRemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	userID, err := stringParam(r, "userID")
	if err != nil {
		respondError(w, err)
		return
	}
	team, err := h.Team.RemoveMember(r.Context(), id, userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, team)
}

// handleMyTeams lists the authenticated user's teams
func (h *Handlers) handleMyTeams(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	teams, err := h.Team.TeamsForUser(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, teams)
}

// handleHackathonTeams lists a hackathon's teams
func (h *Handlers) handleHackathonTeams(w http.ResponseWriter, r *http.Request) {
	id, err := stringParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	teams, err := h.Team.TeamsForHackathon(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, teams)
}
