package handlers

import "github.com/ASHU191/Coding-Hub/internal/models"

// SessionResponse is returned from login and signup
type SessionResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// RegistrationResponse reports where a user stands with a hackathon
type RegistrationResponse struct {
	UserID      string `json:"user_id"`
	HackathonID string `json:"hackathon_id"`
	Registered  bool   `json:"registered"`
}

// StatsResponse is the admin dashboard summary
type StatsResponse struct {
	Hackathons         int `json:"hackathons"`
	Users              int `json:"users"`
	ActiveUsers        int `json:"active_users"`
	Teams              int `json:"teams"`
	Submissions        int `json:"submissions"`
	PendingSubmissions int `json:"pending_submissions"`
	LiveSessions       int `json:"live_sessions"`
}
