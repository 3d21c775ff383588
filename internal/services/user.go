package services

import (
	"context"
	"strings"
	"time"

	"github.com/ASHU191/Coding-Hub/internal/errors"
	"github.com/ASHU191/Coding-Hub/internal/logger"
	"github.com/ASHU191/Coding-Hub/internal/models"
	"github.com/ASHU191/Coding-Hub/internal/repository"
)

// ActiveWindow is how recently a user must have been seen to count as active
const ActiveWindow = 30 * 24 * time.Hour

// UserServiceRepository defines the repository methods needed by UserService
type UserServiceRepository interface {
	repository.UserRepository
}

// UserService handles user profile business logic
type UserService struct {
	log  logger.Logger
	repo UserServiceRepository
}

// NewUserService creates a new UserService
func NewUserService(log logger.Logger, repo UserServiceRepository) *UserService {
	return &UserService{log: log, repo: repo}
}

// ProfileUpdate carries the user fields that may be edited
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.ListUsers(ctx)
}

// GetUser returns a user by id
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err == repository.ErrNotFound {
		return nil, errors.NotFoundf("user %s not found", id)
	}
	return u, err
}

// UpdateProfile applies a partial edit to a user's profile
func (s *UserService) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*models.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, errors.Validation("name cannot be empty")
		}
		u.Name = *update.Name
	}
	if update.Email != nil {
		if strings.TrimSpace(*update.Email) == "" {
			return nil, errors.Validation("email cannot be empty")
		}
		u.Email = *update.Email
	}
	if update.Avatar != nil {
		u.Avatar = *update.Avatar
	}
	if err := s.repo.UpdateUser(ctx, *u); err != nil {
		return nil, errors.Wrap(err, "update user")
	}
	return u, nil
}

// ActiveUsers returns users whose last-active timestamp falls inside
// the activity window ending at now.
func (s *UserService) ActiveUsers(ctx context.Context, now time.Time) ([]models.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	cutoff := now.Add(-ActiveWindow)
	var active []models.User
	for _, u := range users {
		seen, ok := parseWhen(u.LastActive)
		if ok && !seen.Before(cutoff) {
			active = append(active, u)
		}
	}
	return active, nil
}

// TouchLastActive records that a user was seen at now
func (s *UserService) TouchLastActive(ctx context.Context, id string, now time.Time) error {
	return s.repo.TouchLastActive(ctx, id, now.UTC().Format(time.RFC3339))
}

// parseWhen accepts both RFC3339 timestamps and bare dates
func parseWhen(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
