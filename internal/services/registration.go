package services

import (
	"context"

	"github.com/ASHU191/Coding-Hub/internal/errors"
	"github.com/ASHU191/Coding-Hub/internal/logger"
	"github.com/ASHU191/Coding-Hub/internal/metrics"
	"github.com/ASHU191/Coding-Hub/internal/models"
	"github.com/ASHU191/Coding-Hub/internal/repository"
)

// RegistrationServiceRepository defines the repository methods needed by RegistrationService
type RegistrationServiceRepository interface {
	repository.UserRepository
	repository.HackathonRepository
}

// RegistrationService handles the link between users and the hackathons
// they are enrolled in
type RegistrationService struct {
	log  logger.Logger
	repo RegistrationServiceRepository
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(log logger.Logger, repo RegistrationServiceRepository) *RegistrationService {
	return &RegistrationService{log: log, repo: repo}
}

// Register enrolls a user in a hackathon. Registering twice is a no-op;
// unknown users and unknown hackathons are errors.
func (s *RegistrationService) Register(ctx context.Context, userID, hackathonID string) error {
	if _, err := s.repo.GetHackathon(ctx, hackathonID); err != nil {
		if err == repository.ErrNotFound {
			return errors.NotFoundf("hackathon %s not found", hackathonID)
		}
		return err
	}
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return errors.NotFoundf("user %s not found", userID)
		}
		return err
	}

	for _, id := range user.RegisteredHackathons {
		if id == hackathonID {
			return nil
		}
	}

	registered := append(user.RegisteredHackathons, hackathonID)
	if err := s.repo.SetRegisteredHackathons(ctx, userID, registered); err != nil {
		return errors.Wrap(err, "register for hackathon")
	}
	metrics.Registrations.Inc()
	s.log.Info("user registered", "user_id", userID, "hackathon_id", hackathonID)
	return nil
}

// Unregister removes a user's enrollment. Removing a registration that
// does not exist is a no-op; an unknown user is an error.
func (s *RegistrationService) Unregister(ctx context.Context, userID, hackathonID string) error {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return errors.NotFoundf("user %s not found", userID)
		}
		return err
	}

	registered := user.RegisteredHackathons[:0:0]
	found := false
	for _, id := range user.RegisteredHackathons {
		if id == hackathonID {
			found = true
			continue
		}
		registered = append(registered, id)
	}
	if !found {
		return nil
	}

	if err := s.repo.SetRegisteredHackathons(ctx, userID, registered); err != nil {
		return errors.Wrap(err, "unregister from hackathon")
	}
	s.log.Info("user unregistered", "user_id", userID, "hackathon_id", hackathonID)
	return nil
}

// IsRegistered reports whether a user is enrolled in a hackathon
func (s *RegistrationService) IsRegistered(ctx context.Context, userID, hackathonID string) (bool, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return false, errors.NotFoundf("user %s not found", userID)
		}
		return false, err
	}
	for _, id := range user.RegisteredHackathons {
		if id == hackathonID {
			return true, nil
		}
	}
	return false, nil
}

// UserHackathons resolves a user's registered ids into hackathon
// records, skipping ids that no longer resolve
func (s *RegistrationService) UserHackathons(ctx context.Context, userID string) ([]models.Hackathon, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NotFoundf("user %s not found", userID)
		}
		return nil, err
	}
	var hackathons []models.Hackathon
	for _, id := range user.RegisteredHackathons {
		h, err := s.repo.GetHackathon(ctx, id)
		if err == repository.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		hackathons = append(hackathons, *h)
	}
	return hackathons, nil
}
