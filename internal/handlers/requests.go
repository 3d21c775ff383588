package handlers

import "github.com/ASHU191/Coding-Hub/internal/models"

// LoginRequest is the payload for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the payload for POST /api/auth/signup
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileRequest is the payload for profile updates; nil fields are untouched
type ProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// CreateTeamRequest is the payload for POST /api/teams
type CreateTeamRequest struct {
	Name        string `json:"name"`
	HackathonID string `json:"hackathon_id"`
}

// RenameTeamRequest is the payload for PUT /api/teams/{id}
type RenameTeamRequest struct {
	Name string `json:"name"`
}

// TeamMemberRequest is the payload for POST /api/teams/{id}/members
type TeamMemberRequest struct {
	UserID string `json:"user_id"`
}

// StartTimerRequest is the payload for POST /api/hackathons/{id}/timer
type StartTimerRequest struct {
	HackathonID string `json:"hackathon_id,omitempty"`
}

// SubmitRequest is the payload for POST /api/submissions
type SubmitRequest struct {
	HackathonID string        `json:"hackathon_id"`
	TeamID      string        `json:"team_id,omitempty"`
	ProjectName string        `json:"project_name"`
	Description string        `json:"description"`
	RepoURL     string        `json:"repo_url"`
	DemoURL     string        `json:"demo_url,omitempty"`
	FileURL     string        `json:"file_url,omitempty"`
	Tasks       []models.Task `json:"tasks"`
}

// UpdateTaskRequest is the payload for PUT /api/submissions/{id}/tasks/{index}
type UpdateTaskRequest struct {
	Completed bool `json:"completed"`
}

// ReviewRequest is the payload for PUT /api/admin/submissions/{id}/status
type ReviewRequest struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback,omitempty"`
}
