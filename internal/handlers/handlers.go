package handlers

import (
	"github.com/ASHU191/Coding-Hub/internal/auth"
	"github.com/ASHU191/Coding-Hub/internal/services"
	"github.com/ASHU191/Coding-Hub/internal/websocket"
)

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Hackathon    services.HackathonServicer
	User         services.UserServicer
	Registration services.RegistrationServicer
	Team         services.TeamServicer
	Submission   services.SubmissionServicer
	Auth         *auth.Manager
	Hub          *websocket.Hub
	Log          HTTPLogger
	BaseURL      string
}

// New creates a new Handlers instance with all dependencies
func New(
	hackathon services.HackathonServicer,
	user services.UserServicer,
	registration services.RegistrationServicer,
	team services.TeamServicer,
	submission services.SubmissionServicer,
	sessions *auth.Manager,
	hub *websocket.Hub,
	log HTTPLogger,
	baseURL string,
) *Handlers {
	return &Handlers{
		Hackathon:    hackathon,
		User:         user,
		Registration: registration,
		Team:         team,
		Submission:   submission,
		Auth:         sessions,
		Hub:          hub,
		Log:          log,
		BaseURL:      baseURL,
	}
}
