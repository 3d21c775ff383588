package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ASHU191/Coding-Hub/internal/auth"
	"github.com/ASHU191/Coding-Hub/internal/handlers"
	"github.com/ASHU191/Coding-Hub/internal/logger"
	"github.com/ASHU191/Coding-Hub/internal/metrics"
	"github.com/ASHU191/Coding-Hub/internal/repository"
	"github.com/ASHU191/Coding-Hub/internal/services"
	"github.com/ASHU191/Coding-Hub/internal/websocket"
	"github.com/ASHU191/Coding-Hub/pkg/identity"
)

// Config carries application-level settings
type Config struct {
	DBPath  string
	BaseURL string
}

// App holds all application dependencies
type App struct {
	log      logger.Logger
	handlers *handlers.Handlers
	repo     *repository.Repository
}

// New creates and initializes a new application instance
func New(log logger.Logger, cfg Config, provider identity.Client) (*App, error) {
	repo, err := repository.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	metrics.Register()

	// Initialize services
	hackathonService := services.NewHackathonService(log, repo)
	userService := services.NewUserService(log, repo)
	registrationService := services.NewRegistrationService(log, repo)
	teamService := services.NewTeamService(log, repo)
	submissionService := services.NewSubmissionService(log, repo, registrationService, teamService)

	// Sessions
	sessions := auth.New(log, provider, repo)

	// WebSocket hub pushes review decisions to dashboards
	hub := websocket.New(log, submissionService)
	hub.Start()
	submissionService.SetBroadcaster(hub)

	h := handlers.New(
		hackathonService,
		userService,
		registrationService,
		teamService,
		submissionService,
		sessions,
		hub,
		log,
		cfg.BaseURL,
	)

	return &App{
		log:      log,
		handlers: h,
		repo:     repo,
	}, nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Close releases app resources
func (a *App) Close() {
	if a.repo != nil {
		_ = a.repo.Close()
	}
}

// Run starts the HTTP server
func (a *App) Run(addr string) error {
	a.log.Info("Server starting", "addr", addr, "base_url", a.handlers.BaseURL)
	return http.ListenAndServe(addr, a.Router())
}
