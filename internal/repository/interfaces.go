package repository

import (
	"context"

	"github.com/ASHU191/Coding-Hub/internal/models"
)

// HackathonRepository defines hackathon data operations
type HackathonRepository interface {
	ListHackathons(ctx context.Context) ([]models.Hackathon, error)
	GetHackathon(ctx context.Context, id string) (*models.Hackathon, error)
	CreateHackathon(ctx context.Context, h models.Hackathon) error
	UpdateHackathon(ctx context.Context, h models.Hackathon) error
	// DeleteHackathon cascades: the hackathon's teams and submissions are
	// removed and its id is stripped from every user's registered set.
	DeleteHackathon(ctx context.Context, id string) error
}

// UserRepository defines user data operations
type UserRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u models.User) error
	UpdateUser(ctx context.Context, u models.User) error
	SetRegisteredHackathons(ctx context.Context, userID string, hackathonIDs []string) error
	SetUserTeams(ctx context.Context, userID string, teamIDs []string) error
	TouchLastActive(ctx context.Context, userID, lastActive string) error
}

// TeamRepository defines team data operations
type TeamRepository interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	ListTeamsForUser(ctx context.Context, userID string) ([]models.Team, error)
	ListTeamsForHackathon(ctx context.Context, hackathonID string) ([]models.Team, error)
	CreateTeam(ctx context.Context, t models.Team) error
	UpdateTeam(ctx context.Context, t models.Team) error
	SetTeamMembers(ctx context.Context, teamID string, members []models.TeamMember) error
	// DeleteTeam strips the team id from every former member's team list.
	DeleteTeam(ctx context.Context, id string) error
}

// SubmissionRepository defines submission data operations
type SubmissionRepository interface {
	ListSubmissions(ctx context.Context) ([]models.Submission, error)
	GetSubmission(ctx context.Context, id string) (*models.Submission, error)
	FindSubmission(ctx context.Context, userID, hackathonID string) (*models.Submission, error)
	ListSubmissionsForUser(ctx context.Context, userID string) ([]models.Submission, error)
	ListSubmissionsForHackathon(ctx context.Context, hackathonID string) ([]models.Submission, error)
	CreateSubmission(ctx context.Context, s models.Submission) error
	UpdateSubmission(ctx context.Context, s models.Submission) error
	DeleteSubmission(ctx context.Context, id string) error
}

// FullRepository combines all repository interfaces.
// Use this when a service needs access to multiple domains.
type FullRepository interface {
	HackathonRepository
	UserRepository
	TeamRepository
	SubmissionRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
