package repository

import (
	"context"
	"testing"

	"github.com/ASHU191/Coding-Hub/internal/models"
)

// newTestRepo creates a new in-memory repository for testing. It comes
// pre-seeded with the sample dataset.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// ==================== Hackathon Tests ====================

func TestListHackathons_Seeded(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	hackathons, err := repo.ListHackathons(ctx)
	if err != nil {
		t.Fatalf("ListHackathons failed: %v", err)
	}
	if len(hackathons) != 5 {
		t.Fatalf("expected 5 seeded hackathons, got %d", len(hackathons))
	}
}

func TestGetHackathon_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	h, err := repo.GetHackathon(ctx, "1")
	if err != nil {
		t.Fatalf("GetHackathon failed: %v", err)
	}
	if h.Title != "AI Innovation Challenge" {
		t.Errorf("unexpected title %q", h.Title)
	}
	if len(h.TechStack) != 3 || h.TechStack[0] != "Python" {
		t.Errorf("tech stack not preserved: %v", h.TechStack)
	}
	if !h.Featured {
		t.Error("expected hackathon 1 to be featured")
	}
}

func TestGetHackathon_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetHackathon(context.Background(), "nope")
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateHackathon_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.UpdateHackathon(context.Background(), models.Hackathon{ID: "nope", Title: "X"})
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteHackathon_Cascades(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Hackathon 1 has team-1, submission-1, and user-1 registered
	if err := repo.DeleteHackathon(ctx, "1"); err != nil {
		t.Fatalf("DeleteHackathon failed: %v", err)
	}

	if _, err := repo.GetHackathon(ctx, "1"); err != ErrNotFound {
		t.Errorf("expected hackathon gone, got %v", err)
	}
	if _, err := repo.GetTeam(ctx, "team-1"); err != ErrNotFound {
		t.Errorf("expected team gone, got %v", err)
	}
	subs, err := repo.ListSubmissionsForHackathon(ctx, "1")
	if err != nil {
		t.Fatalf("ListSubmissionsForHackathon failed: %v", err)
	}
	if len(subs) != 0 {
		t.Errorf("expected no submissions left, got %d", len(subs))
	}

	user, err := repo.GetUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	for _, id := range user.RegisteredHackathons {
		if id == "1" {
			t.Error("hackathon 1 still on user-1's registered set")
		}
	}
	for _, id := range user.Teams {
		if id == "team-1" {
			t.Error("team-1 still on user-1's team list")
		}
	}
}

// ==================== User Tests ====================

func TestGetUserByEmail(t *testing.T) {
	repo := newTestRepo(t)

	u, err := repo.GetUserByEmail(context.Background(), "john@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if u.ID != "user-1" {
		t.Errorf("expected user-1, got %s", u.ID)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.CreateUser(context.Background(), models.User{
		ID:    "user-99",
		Name:  "Duplicate",
		Email: "john@example.com",
		Role:  models.RoleUser,
	})
	if err == nil {
		t.Error("expected unique constraint violation")
	}
}

func TestSetRegisteredHackathons_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SetRegisteredHackathons(ctx, "user-1", []string{"2", "4"}); err != nil {
		t.Fatalf("SetRegisteredHackathons failed: %v", err)
	}
	u, err := repo.GetUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if len(u.RegisteredHackathons) != 2 || u.RegisteredHackathons[0] != "2" {
		t.Errorf("registered set not replaced: %v", u.RegisteredHackathons)
	}
}

func TestSetRegisteredHackathons_UnknownUser(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.SetRegisteredHackathons(context.Background(), "nope", []string{"1"})
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTouchLastActive(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.TouchLastActive(ctx, "user-1", "2026-08-28T12:00:00Z"); err != nil {
		t.Fatalf("TouchLastActive failed: %v", err)
	}
	u, err := repo.GetUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if u.LastActive != "2026-08-28T12:00:00Z" {
		t.Errorf("last active not updated: %q", u.LastActive)
	}
}

// ==================== Team Tests ====================

func TestGetTeam_MembersPreserved(t *testing.T) {
	repo := newTestRepo(t)

	team, err := repo.GetTeam(context.Background(), "team-1")
	if err != nil {
		t.Fatalf("GetTeam failed: %v", err)
	}
	if len(team.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(team.Members))
	}
	if team.Members[0].Role != models.TeamRoleLeader {
		t.Errorf("expected first member to be leader, got %q", team.Members[0].Role)
	}
}

func TestListTeamsForUser(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	teams, err := repo.ListTeamsForUser(ctx, "user-2")
	if err != nil {
		t.Fatalf("ListTeamsForUser failed: %v", err)
	}
	if len(teams) != 1 || teams[0].ID != "team-1" {
		t.Errorf("expected team-1 for user-2, got %v", teams)
	}

	teams, err = repo.ListTeamsForUser(ctx, "admin-1")
	if err != nil {
		t.Fatalf("ListTeamsForUser failed: %v", err)
	}
	if len(teams) != 0 {
		t.Errorf("expected no teams for admin-1, got %d", len(teams))
	}
}

func TestDeleteTeam_StripsMembers(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.DeleteTeam(ctx, "team-1"); err != nil {
		t.Fatalf("DeleteTeam failed: %v", err)
	}
	for _, userID := range []string{"user-1", "user-2"} {
		u, err := repo.GetUser(ctx, userID)
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		for _, id := range u.Teams {
			if id == "team-1" {
				t.Errorf("team-1 still on %s's team list", userID)
			}
		}
	}
}

func TestUpdateTeam(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	team, err := repo.GetTeam(ctx, "team-1")
	if err != nil {
		t.Fatalf("GetTeam failed: %v", err)
	}
	team.Name = "Byte Bandits"
	if err := repo.UpdateTeam(ctx, *team); err != nil {
		t.Fatalf("UpdateTeam failed: %v", err)
	}
	got, err := repo.GetTeam(ctx, "team-1")
	if err != nil {
		t.Fatalf("GetTeam failed: %v", err)
	}
	if got.Name != "Byte Bandits" {
		t.Errorf("rename not persisted: %q", got.Name)
	}
}

// ==================== Submission Tests ====================

func TestFindSubmission(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	sub, err := repo.FindSubmission(ctx, "user-1", "1")
	if err != nil {
		t.Fatalf("FindSubmission failed: %v", err)
	}
	if sub.ID != "submission-1" {
		t.Errorf("expected submission-1, got %s", sub.ID)
	}

	if _, err := repo.FindSubmission(ctx, "user-1", "5"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmission_TasksPreserved(t *testing.T) {
	repo := newTestRepo(t)

	sub, err := repo.GetSubmission(context.Background(), "submission-1")
	if err != nil {
		t.Fatalf("GetSubmission failed: %v", err)
	}
	if len(sub.Tasks) != 5 {
		t.Fatalf("expected 5 tasks, got %d", len(sub.Tasks))
	}
	if !sub.Tasks[0].Completed || sub.Tasks[4].Completed {
		t.Error("task completion flags not preserved")
	}
}

func TestUpdateSubmission_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	sub, err := repo.GetSubmission(ctx, "submission-1")
	if err != nil {
		t.Fatalf("GetSubmission failed: %v", err)
	}
	sub.Status = models.StatusApproved
	sub.Feedback = "Well done"
	if err := repo.UpdateSubmission(ctx, *sub); err != nil {
		t.Fatalf("UpdateSubmission failed: %v", err)
	}

	got, err := repo.GetSubmission(ctx, "submission-1")
	if err != nil {
		t.Fatalf("GetSubmission failed: %v", err)
	}
	if got.Status != models.StatusApproved || got.Feedback != "Well done" {
		t.Errorf("update not persisted: %s %q", got.Status, got.Feedback)
	}
}

func TestDeleteSubmission_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.DeleteSubmission(context.Background(), "nope")
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
