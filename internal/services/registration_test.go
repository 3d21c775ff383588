package services_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/ASHU191/Coding-Hub/internal/errors"
	"github.com/ASHU191/Coding-Hub/internal/logger"
	"github.com/ASHU191/Coding-Hub/internal/services"
	"github.com/ASHU191/Coding-Hub/internal/testutil"
)

func isNotFound(err error) bool {
	var appErr *errors.Error
	return stderrors.As(err, &appErr) && appErr.Kind == errors.ErrNotFound
}

func TestRegistrationService_Register(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	svc := services.NewRegistrationService(logger.New(), repo)
	ctx := context.Background()

	// user-1 starts registered for hackathons 1 and 3
	if err := svc.Register(ctx, "user-1", "5"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	registered, err := svc.IsRegistered(ctx, "user-1", "5")
	if err != nil {
		t.Fatalf("IsRegistered failed: %v", err)
	}
	if !registered {
		t.Error("expected user-1 to be registered for hackathon 5")
	}
}

func TestRegistrationService_Register_Idempotent(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	svc := services.NewRegistrationService(logger.New(), repo)
	ctx := context.Background()

	if err := svc.Register(ctx, "user-1", "1"); err != nil {
		t.Fatalf("repeat Register failed: %v", err)
	}

	hackathons, err := svc.UserHackathons(ctx, "user-1")
	if err != nil {
		t.Fatalf("UserHackathons failed: %v", err)
	}
	count := 0
	for _, h := range hackathons {
		if h.ID == "1" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected hackathon 1 exactly once, got %d", count)
	}
}

func TestRegistrationService_Register_UnknownUser(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	svc := services.NewRegistrationService(logger.New(), repo)

	err := svc.Register(context.Background(), "ghost", "1")
	if !isNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestRegistrationService_Register_UnknownHackathon(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	svc := services.NewRegistrationService(logger.New(), repo)

	err := svc.Register(context.Background(), "user-1", "999")
	if !isNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestRegistrationService_Unregister(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	svc := services.NewRegistrationService(logger.New(), repo)
	ctx := context.Background()

	if err := svc.Unregister(ctx, "user-1", "1"); err != nil {
		t.Fatalf("Unregister failed: %v", err)
	}
	registered, err := svc.IsRegistered(ctx, "user-1", "1")
	if err != nil {
		t.Fatalf("IsRegistered failed: %v", err)
	}
	if registered {
		t.Error("expected registration removed")
	}

	// Removing it again is a no-op
	if err := svc.Unregister(ctx, "user-1", "1"); err != nil {
		t.Errorf("repeat Unregister should be a no-op, got %v", err)
	}
}

func TestRegistrationService_UserHackathons_ResolvesRecords(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	svc := services.NewRegistrationService(logger.New(), repo)

	hackathons, err := svc.UserHackathons(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("UserHackathons failed: %v", err)
	}
	if len(hackathons) != 2 {
		t.Fatalf("expected 2 hackathons, got %d", len(hackathons))
	}
	if hackathons[0].Title == "" {
		t.Error("expected resolved hackathon records, got empty title")
	}
}
