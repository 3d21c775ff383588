package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ASHU191/Coding-Hub/internal/errors"
	"github.com/ASHU191/Coding-Hub/internal/logger"
	"github.com/ASHU191/Coding-Hub/internal/models"
	"github.com/ASHU191/Coding-Hub/internal/repository"
)

// ErrLeaderRemoval is returned when a caller tries to remove a team's
// leader. Leaders leave a team by deleting it.
var ErrLeaderRemoval = errors.Conflict("team leader cannot be removed from the team")

// TeamServiceRepository defines the repository methods needed by TeamService
type TeamServiceRepository interface {
	repository.TeamRepository
	repository.UserRepository
	repository.HackathonRepository
}

// TeamService handles team membership business logic
type TeamService struct {
	log  logger.Logger
	repo TeamServiceRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(log logger.Logger, repo TeamServiceRepository) *TeamService {
	return &TeamService{log: log, repo: repo}
}

// ListTeams returns all teams
func (s *TeamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	return s.repo.ListTeams(ctx)
}

// GetTeam returns a team by id
func (s *TeamService) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	t, err := s.repo.GetTeam(ctx, id)
	if err == repository.ErrNotFound {
		return nil, errors.NotFoundf("team %s not found", id)
	}
	return t, err
}

// CreateTeam creates a team for a hackathon with the given user as its
// leader, and records the team on the leader's profile.
func (s *TeamService) CreateTeam(ctx context.Context, name, hackathonID, leaderID string) (*models.Team, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.Validation("team name is required")
	}
	if _, err := s.repo.GetHackathon(ctx, hackathonID); err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NotFoundf("hackathon %s not found", hackathonID)
		}
		return nil, err
	}
	leader, err := s.repo.GetUser(ctx, leaderID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NotFoundf("user %s not found", leaderID)
		}
		return nil, err
	}

	team := models.Team{
		ID:          "team-" + uuid.NewString(),
		Name:        name,
		HackathonID: hackathonID,
		LeaderID:    leaderID,
		Members: []models.TeamMember{
			{
				UserID: leader.ID,
				Name:   leader.Name,
				Email:  leader.Email,
				Role:   models.TeamRoleLeader,
				Avatar: leader.Avatar,
			},
		},
		CreatedAt: time.Now().UTC().Format("2006-01-02"),
	}
	if err := s.repo.CreateTeam(ctx, team); err != nil {
		return nil, errors.Wrap(err, "create team")
	}
	if err := s.repo.SetUserTeams(ctx, leaderID, appendUnique(leader.Teams, team.ID)); err != nil {
		return nil, errors.Wrap(err, "record team on leader")
	}
	s.log.Info("team created", "id", team.ID, "name", name, "leader_id", leaderID)
	return &team, nil
}

// RenameTeam changes a team's name
func (s *TeamService) RenameTeam(ctx context.Context, id, name string) (*models.Team, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.Validation("team name is required")
	}
	team, err := s.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Name = name
	if err := s.repo.UpdateTeam(ctx, *team); err != nil {
		return nil, errors.Wrap(err, "rename team")
	}
	return team, nil
}

// DeleteTeam removes a team and strips it from every member's profile
func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	err := s.repo.DeleteTeam(ctx, id)
	if err == repository.ErrNotFound {
		return errors.NotFoundf("team %s not found", id)
	}
	if err != nil {
		return errors.Wrap(err, "delete team")
	}
	s.log.Info("team deleted", "id", id)
	return nil
}

// AddMember adds a user to a team as a regular member. Adding someone
// who is already on the team is a no-op.
func (s *TeamService) AddMember(ctx context.Context, teamID, userID string) (*models.Team, error) {
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NotFoundf("user %s not found", userID)
		}
		return nil, err
	}

	for _, m := range team.Members {
		if m.UserID == userID {
			return team, nil
		}
	}

	team.Members = append(team.Members, models.TeamMember{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   models.TeamRoleMember,
		Avatar: user.Avatar,
	})
	if err := s.repo.SetTeamMembers(ctx, teamID, team.Members); err != nil {
		return nil, errors.Wrap(err, "add team member")
	}
	if err := s.repo.SetUserTeams(ctx, userID, appendUnique(user.Teams, teamID)); err != nil {
		return nil, errors.Wrap(err, "record team on user")
	}
	s.log.Info("team member added", "team_id", teamID, "user_id", userID)
	return team, nil
}

// RemoveMember removes a user from a team. The leader cannot be
// removed; removing someone who is not on the team is a no-op.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID string) (*models.Team, error) {
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.LeaderID == userID {
		return nil, ErrLeaderRemoval
	}

	members := team.Members[:0:0]
	found := false
	for _, m := range team.Members {
		if m.UserID == userID {
			found = true
			continue
		}
		members = append(members, m)
	}
	if !found {
		return team, nil
	}

	team.Members = members
	if err := s.repo.SetTeamMembers(ctx, teamID, members); err != nil {
		return nil, errors.Wrap(err, "remove team member")
	}

	if user, err := s.repo.GetUser(ctx, userID); err == nil {
		if err := s.repo.SetUserTeams(ctx, userID, removeID(user.Teams, teamID)); err != nil {
			return nil, errors.Wrap(err, "strip team from user")
		}
	}
	s.log.Info("team member removed", "team_id", teamID, "user_id", userID)
	return team, nil
}

// TeamsForUser returns the teams a user belongs to
func (s *TeamService) TeamsForUser(ctx context.Context, userID string) ([]models.Team, error) {
	return s.repo.ListTeamsForUser(ctx, userID)
}

// TeamsForHackathon returns a hackathon's teams
func (s *TeamService) TeamsForHackathon(ctx context.Context, hackathonID string) ([]models.Team, error) {
	return s.repo.ListTeamsForHackathon(ctx, hackathonID)
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func removeID(ids []string, id string) []string {
	out := ids[:0:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
