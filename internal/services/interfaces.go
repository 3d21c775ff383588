package services

import (
	"context"
	"time"

	"github.com/ASHU191/Coding-Hub/internal/models"
)

// HackathonServicer defines the interface for hackathon operations
type HackathonServicer interface {
	ListHackathons(ctx context.Context) ([]models.Hackathon, error)
	GetHackathon(ctx context.Context, id string) (*models.Hackathon, error)
	CreateHackathon(ctx context.Context, h models.Hackathon) (*models.Hackathon, error)
	UpdateHackathon(ctx context.Context, id string, h models.Hackathon) (*models.Hackathon, error)
	DeleteHackathon(ctx context.Context, id string) error
	CheckInQR(ctx context.Context, id, baseURL string) ([]byte, error)
}

// UserServicer defines the interface for user operations
type UserServicer interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*models.User, error)
	ActiveUsers(ctx context.Context, now time.Time) ([]models.User, error)
	TouchLastActive(ctx context.Context, id string, now time.Time) error
}

// RegistrationServicer defines the interface for registration operations
type RegistrationServicer interface {
	Register(ctx context.Context, userID, hackathonID string) error
	Unregister(ctx context.Context, userID, hackathonID string) error
	UserHackathons(ctx context.Context, userID string) ([]models.Hackathon, error)
	IsRegistered(ctx context.Context, userID, hackathonID string) (bool, error)
}

// TeamServicer defines the interface for team operations
type TeamServicer interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	CreateTeam(ctx context.Context, name, hackathonID, leaderID string) (*models.Team, error)
	RenameTeam(ctx context.Context, id, name string) (*models.Team, error)
	DeleteTeam(ctx context.Context, id string) error
	AddMember(ctx context.Context, teamID, userID string) (*models.Team, error)
	RemoveMember(ctx context.Context, teamID, userID string) (*models.Team, error)
	TeamsForUser(ctx context.Context, userID string) ([]models.Team, error)
	TeamsForHackathon(ctx context.Context, hackathonID string) ([]models.Team, error)
}

// SubmissionServicer defines the interface for submission lifecycle operations
type SubmissionServicer interface {
	StartTimer(ctx context.Context, userID, hackathonID string) (*models.Submission, error)
	Submit(ctx context.Context, input SubmissionInput) (*models.Submission, error)
	UpdateTask(ctx context.Context, submissionID string, taskIndex int, completed bool) (*models.Submission, error)
	SetStatus(ctx context.Context, id, status, feedback string) (*models.Submission, error)
	GetSubmission(ctx context.Context, id string) (*models.Submission, error)
	ListSubmissions(ctx context.Context) ([]models.Submission, error)
	SubmissionsForUser(ctx context.Context, userID string) ([]models.Submission, error)
	SubmissionsForHackathon(ctx context.Context, hackathonID string) ([]models.Submission, error)
	DeleteSubmission(ctx context.Context, id string) error
	FilterSubmissions(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error)
	Countdown(ctx context.Context, userID, hackathonID string, now time.Time) (*CountdownInfo, error)
	SetBroadcaster(b Broadcaster)
}

// Broadcaster defines the interface for pushing updates to connected clients
type Broadcaster interface {
	BroadcastSubmissionStatus(submissionID, status, feedback string)
}

// Ensure concrete types implement interfaces
var (
	_ HackathonServicer    = (*HackathonService)(nil)
	_ UserServicer         = (*UserService)(nil)
	_ RegistrationServicer = (*RegistrationService)(nil)
	_ TeamServicer         = (*TeamService)(nil)
	_ SubmissionServicer   = (*SubmissionService)(nil)
)
