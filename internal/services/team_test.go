package services_test

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/ASHU191/Coding-Hub/internal/logger"
	"github.com/ASHU191/Coding-Hub/internal/models"
	"github.com/ASHU191/Coding-Hub/internal/services"
	"github.com/ASHU191/Coding-Hub/internal/testutil"
)

func newTeamService(t *testing.T) *services.TeamService {
	t.Helper()
	return services.NewTeamService(logger.New(), testutil.NewTestRepository(t))
}

func TestTeamService_CreateTeam(t *testing.T) {
	svc := newTeamService(t)
	ctx := context.Background()

	team, err := svc.CreateTeam(ctx, "Night Owls", "2", "user-2")
	if err != nil {
		t.Fatalf("CreateTeam failed: %v", err)
	}
	if !strings.HasPrefix(team.ID, "team-") {
		t.Errorf("expected team- id prefix, got %q", team.ID)
	}
	if len(team.Members) != 1 || team.Members[0].Role != models.TeamRoleLeader {
		t.Fatalf("expected single leader member, got %+v", team.Members)
	}
	if team.Members[0].UserID != "user-2" {
		t.Errorf("leader member should be user-2, got %s", team.Members[0].UserID)
	}

	// Team recorded on the leader's profile
	teams, err := svc.TeamsForUser(ctx, "user-2")
	if err != nil {
		t.Fatalf("TeamsForUser failed: %v", err)
	}
	found := false
	for _, tm := range teams {
		if tm.ID == team.ID {
			found = true
		}
	}
	if !found {
		t.Error("new team missing from leader's teams")
	}
}

func TestTeamService_CreateTeam_Validation(t *testing.T) {
	svc := newTeamService(t)
	ctx := context.Background()

	if _, err := svc.CreateTeam(ctx, "   ", "1", "user-1"); err == nil {
		t.Error("expected validation error for blank name")
	}
	if _, err := svc.CreateTeam(ctx, "Ghosts", "999", "user-1"); !isNotFound(err) {
		t.Errorf("expected not-found for unknown hackathon, got %v", err)
	}
	if _, err := svc.CreateTeam(ctx, "Ghosts", "1", "ghost"); !isNotFound(err) {
		t.Errorf("expected not-found for unknown leader, got %v", err)
	}
}

func TestTeamService_AddMember(t *testing.T) {
	svc := newTeamService(t)
	ctx := context.Background()

	team, err := svc.CreateTeam(ctx, "Solo", "1", "user-1")
	if err != nil {
		t.Fatalf("CreateTeam failed: %v", err)
	}

	team, err = svc.AddMember(ctx, team.ID, "user-2")
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if len(team.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(team.Members))
	}
	if team.Members[1].Role != models.TeamRoleMember {
		t.Errorf("expected member role, got %q", team.Members[1].Role)
	}

	// Adding the same user again is a no-op
	team, err = svc.AddMember(ctx, team.ID, "user-2")
	if err != nil {
		t.Fatalf("repeat AddMember failed: %v", err)
	}
	if len(team.Members) != 2 {
		t.Errorf("expected no duplicate member, got %d members", len(team.Members))
	}
}

func TestTeamService_RemoveMember_Leader(t *testing.T) {
	svc := newTeamService(t)

	// team-1 is seeded with user-1 as leader
	_, err := svc.RemoveMember(context.Background(), "team-1", "user-1")
	if !stderrors.Is(err, services.ErrLeaderRemoval) {
		t.Errorf("expected ErrLeaderRemoval, got %v", err)
	}
}

func TestTeamService_RemoveMember(t *testing.T) {
	svc := newTeamService(t)
	ctx := context.Background()

	team, err := svc.RemoveMember(ctx, "team-1", "user-2")
	if err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}
	if len(team.Members) != 1 {
		t.Fatalf("expected 1 member left, got %d", len(team.Members))
	}

	// Team stripped from the removed member's profile
	teams, err := svc.TeamsForUser(ctx, "user-2")
	if err != nil {
		t.Fatalf("TeamsForUser failed: %v", err)
	}
	for _, tm := range teams {
		if tm.ID == "team-1" {
			t.Error("team-1 still on user-2's teams")
		}
	}

	// Removing a non-member is a no-op
	if _, err := svc.RemoveMember(ctx, "team-1", "user-2"); err != nil {
		t.Errorf("repeat RemoveMember should be a no-op, got %v", err)
	}
}

func TestTeamService_RenameTeam(t *testing.T) {
	svc := newTeamService(t)
	ctx := context.Background()

	team, err := svc.RenameTeam(ctx, "team-1", "Refactor Raiders")
	if err != nil {
		t.Fatalf("RenameTeam failed: %v", err)
	}
	if team.Name != "Refactor Raiders" {
		t.Errorf("unexpected name %q", team.Name)
	}

	got, err := svc.GetTeam(ctx, "team-1")
	if err != nil {
		t.Fatalf("GetTeam failed: %v", err)
	}
	if got.Name != "Refactor Raiders" {
		t.Errorf("rename not persisted: %q", got.Name)
	}
}

func TestTeamService_DeleteTeam(t *testing.T) {
	svc := newTeamService(t)
	ctx := context.Background()

	if err := svc.DeleteTeam(ctx, "team-1"); err != nil {
		t.Fatalf("DeleteTeam failed: %v", err)
	}
	if _, err := svc.GetTeam(ctx, "team-1"); !isNotFound(err) {
		t.Errorf("expected not-found after delete, got %v", err)
	}
	if err := svc.DeleteTeam(ctx, "team-1"); !isNotFound(err) {
		t.Errorf("expected not-found on repeat delete, got %v", err)
	}
}

func TestTeamService_TeamsForHackathon(t *testing.T) {
	svc := newTeamService(t)
	ctx := context.Background()

	teams, err := svc.TeamsForHackathon(ctx, "1")
	if err != nil {
		t.Fatalf("TeamsForHackathon failed: %v", err)
	}
	if len(teams) != 1 || teams[0].ID != "team-1" {
		t.Errorf("expected seeded team-1, got %v", teams)
	}

	teams, err = svc.TeamsForHackathon(ctx, "4")
	if err != nil {
		t.Fatalf("TeamsForHackathon failed: %v", err)
	}
	if len(teams) != 0 {
		t.Errorf("expected no teams for hackathon 4, got %d", len(teams))
	}
}
