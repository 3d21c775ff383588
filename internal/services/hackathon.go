package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/ASHU191/Coding-Hub/internal/errors"
	"github.com/ASHU191/Coding-Hub/internal/logger"
	"github.com/ASHU191/Coding-Hub/internal/models"
	"github.com/ASHU191/Coding-Hub/internal/repository"
)

// HackathonServiceRepository defines the repository methods needed by HackathonService
type HackathonServiceRepository interface {
	repository.HackathonRepository
}

// HackathonService handles hackathon catalog business logic
type HackathonService struct {
	log  logger.Logger
	repo HackathonServiceRepository
}

// NewHackathonService creates a new HackathonService
func NewHackathonService(log logger.Logger, repo HackathonServiceRepository) *HackathonService {
	return &HackathonService{log: log, repo: repo}
}

// ListHackathons returns all hackathons
func (s *HackathonService) ListHackathons(ctx context.Context) ([]models.Hackathon, error) {
	return s.repo.ListHackathons(ctx)
}

// GetHackathon returns a hackathon by id
func (s *HackathonService) GetHackathon(ctx context.Context, id string) (*models.Hackathon, error) {
	h, err := s.repo.GetHackathon(ctx, id)
	if err == repository.ErrNotFound {
		return nil, errors.NotFoundf("hackathon %s not found", id)
	}
	return h, err
}

// CreateHackathon creates a new hackathon, assigning it an id
func (s *HackathonService) CreateHackathon(ctx context.Context, h models.Hackathon) (*models.Hackathon, error) {
	if strings.TrimSpace(h.Title) == "" {
		return nil, errors.Validation("title is required")
	}
	h.ID = uuid.NewString()
	if err := s.repo.CreateHackathon(ctx, h); err != nil {
		return nil, errors.Wrap(err, "create hackathon")
	}
	s.log.Info("hackathon created", "id", h.ID, "title", h.Title)
	return &h, nil
}

// UpdateHackathon overwrites a hackathon's fields
func (s *HackathonService) UpdateHackathon(ctx context.Context, id string, h models.Hackathon) (*models.Hackathon, error) {
	h.ID = id
	err := s.repo.UpdateHackathon(ctx, h)
	if err == repository.ErrNotFound {
		return nil, errors.NotFoundf("hackathon %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "update hackathon")
	}
	return &h, nil
}

// DeleteHackathon removes a hackathon and everything attached to it:
// its teams, its submissions and every user's registration for it.
func (s *HackathonService) DeleteHackathon(ctx context.Context, id string) error {
	err := s.repo.DeleteHackathon(ctx, id)
	if err == repository.ErrNotFound {
		return errors.NotFoundf("hackathon %s not found", id)
	}
	if err != nil {
		return errors.Wrap(err, "delete hackathon")
	}
	s.log.Info("hackathon deleted", "id", id)
	return nil
}

// CheckInQR renders a QR code PNG pointing at the hackathon's check-in page
func (s *HackathonService) CheckInQR(ctx context.Context, id, baseURL string) ([]byte, error) {
	if _, err := s.GetHackathon(ctx, id); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/hackathons/%s/check-in", strings.TrimRight(baseURL, "/"), id)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return nil, errors.Wrap(err, "generate QR code")
	}
	return png, nil
}
