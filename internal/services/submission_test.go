package services_test

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/ASHU191/Coding-Hub/internal/errors"
	"github.com/ASHU191/Coding-Hub/internal/logger"
	"github.com/ASHU191/Coding-Hub/internal/models"
	"github.com/ASHU191/Coding-Hub/internal/services"
	"github.com/ASHU191/Coding-Hub/internal/testutil"
)

func newSubmissionService(t *testing.T) *services.SubmissionService {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	log := logger.New()
	registration := services.NewRegistrationService(log, repo)
	team := services.NewTeamService(log, repo)
	return services.NewSubmissionService(log, repo, registration, team)
}

func validInput() services.SubmissionInput {
	return services.SubmissionInput{
		UserID:      "user-2",
		HackathonID: "3",
		ProjectName: "Realtime Whiteboard",
		Description: "A collaborative drawing board",
		RepoURL:     "https://github.com/janesmith/whiteboard",
		Tasks: []models.Task{
			{Name: "Project Setup", Completed: true},
			{Name: "Core Functionality"},
		},
	}
}

// ==================== Timer Tests ====================

func TestStartTimer_CreatesDraft(t *testing.T) {
	svc := newSubmissionService(t)
	ctx := context.Background()

	sub, err := svc.StartTimer(ctx, "user-2", "3")
	if err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	if !strings.HasPrefix(sub.ID, "submission-") {
		t.Errorf("expected submission- id prefix, got %q", sub.ID)
	}
	if sub.ProjectName != "Untitled Project" || sub.Description != "No description yet" {
		t.Errorf("unexpected placeholders: %q %q", sub.ProjectName, sub.Description)
	}
	if sub.Status != models.StatusPending {
		t.Errorf("expected pending status, got %q", sub.Status)
	}
	if len(sub.Tasks) != 5 || sub.Tasks[0].Name != "Project Setup" {
		t.Errorf("unexpected default tasks: %v", sub.Tasks)
	}
	if _, err := time.Parse(time.RFC3339, sub.StartTime); err != nil {
		t.Errorf("start time not RFC3339: %q", sub.StartTime)
	}
}

func TestStartTimer_Idempotent(t *testing.T) {
	svc := newSubmissionService(t)
	ctx := context.Background()

	first, err := svc.StartTimer(ctx, "user-2", "3")
	if err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	second, err := svc.StartTimer(ctx, "user-2", "3")
	if err != nil {
		t.Fatalf("repeat StartTimer failed: %v", err)
	}
	if second.ID != first.ID || second.StartTime != first.StartTime {
		t.Errorf("repeat StartTimer should return the existing draft: %+v vs %+v", first, second)
	}
}

func TestStartTimer_UnknownHackathon(t *testing.T) {
	svc := newSubmissionService(t)

	if _, err := svc.StartTimer(context.Background(), "user-1", "999"); !isNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}

// ==================== Submit Tests ====================

func TestSubmit_Valid(t *testing.T) {
	svc := newSubmissionService(t)
	ctx := context.Background()

	sub, err := svc.Submit(ctx, validInput())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if sub.Status != models.StatusPending {
		t.Errorf("expected pending status, got %q", sub.Status)
	}
	if sub.SubmissionDate == "" || sub.StartTime == "" {
		t.Error("expected submission date and start time to be stamped")
	}
}

func TestSubmit_ValidationFields(t *testing.T) {
	svc := newSubmissionService(t)

	input := services.SubmissionInput{
		UserID:      "user-1",
		HackathonID: "1",
		RepoURL:     "ftp://not-http",
		DemoURL:     "also wrong",
		Tasks:       []models.Task{{Name: "   "}},
	}
	_, err := svc.Submit(context.Background(), input)

	var appErr *errors.Error
	if !stderrors.As(err, &appErr) || appErr.Kind != errors.ErrValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	want := map[string]string{
		"projectName": "Project name is required",
		"description": "Project description is required",
		"repoUrl":     "Please enter a valid URL starting with http:// or https://",
		"demoUrl":     "Please enter a valid URL starting with http:// or https://",
		"tasks":       "At least one task is required",
	}
	for field, msg := range want {
		if appErr.Fields[field] != msg {
			t.Errorf("field %q: got %q, want %q", field, appErr.Fields[field], msg)
		}
	}
}

func TestSubmit_FiltersBlankTasks(t *testing.T) {
	svc := newSubmissionService(t)

	input := validInput()
	input.Tasks = []models.Task{
		{Name: "Real task"},
		{Name: ""},
		{Name: "  "},
		{Name: "Another"},
	}
	sub, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if len(sub.Tasks) != 2 {
		t.Errorf("expected blank tasks dropped, got %v", sub.Tasks)
	}
}

func TestSubmit_AutoRegisters(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	log := logger.New()
	registration := services.NewRegistrationService(log, repo)
	team := services.NewTeamService(log, repo)
	svc := services.NewSubmissionService(log, repo, registration, team)
	ctx := context.Background()

	// user-2 is not registered for hackathon 3
	if _, err := svc.Submit(ctx, validInput()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	registered, err := registration.IsRegistered(ctx, "user-2", "3")
	if err != nil {
		t.Fatalf("IsRegistered failed: %v", err)
	}
	if !registered {
		t.Error("expected Submit to register the user")
	}
}

func TestSubmit_UpdatesExistingDraft(t *testing.T) {
	svc := newSubmissionService(t)
	ctx := context.Background()

	draft, err := svc.StartTimer(ctx, "user-2", "3")
	if err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}

	sub, err := svc.Submit(ctx, validInput())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if sub.ID != draft.ID {
		t.Errorf("expected draft id kept, got %s vs %s", sub.ID, draft.ID)
	}
	if sub.StartTime != draft.StartTime {
		t.Errorf("expected start time preserved, got %s vs %s", sub.StartTime, draft.StartTime)
	}

	all, err := svc.SubmissionsForHackathon(ctx, "3")
	if err != nil {
		t.Fatalf("SubmissionsForHackathon failed: %v", err)
	}
	count := 0
	for _, s := range all {
		if s.UserID == "user-2" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected one submission for user-2, got %d", count)
	}
}

// ==================== Task Tests ====================

func TestSubmit_ResubmissionPreservesFeedback(t *testing.T) {
	svc := newSubmissionService(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, validInput())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := svc.SetStatus(ctx, first.ID, models.StatusRejected, "Please add tests"); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	input := validInput()
	input.Description = "Now with a test suite"
	second, err := svc.Submit(ctx, input)
	if err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected resubmission to keep id %s, got %s", first.ID, second.ID)
	}
	if second.Feedback != "Please add tests" {
		t.Errorf("expected reviewer feedback preserved, got %q", second.Feedback)
	}
	if second.Status != models.StatusPending {
		t.Errorf("expected resubmission to reopen review, got %s", second.Status)
	}

	stored, err := svc.GetSubmission(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetSubmission failed: %v", err)
	}
	if stored.Feedback != "Please add tests" {
		t.Errorf("expected stored feedback preserved, got %q", stored.Feedback)
	}
	if stored.Description != "Now with a test suite" {
		t.Errorf("expected description updated, got %q", stored.Description)
	}
}

func TestUpdateTask(t *testing.T) {
	svc := newSubmissionService(t)
	ctx := context.Background()

	sub, err := svc.UpdateTask(ctx, "submission-1", 3, true)
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if !sub.Tasks[3].Completed {
		t.Error("task 3 not marked completed")
	}

	sub, err = svc.UpdateTask(ctx, "submission-1", 3, false)
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if sub.Tasks[3].Completed {
		t.Error("task 3 not unmarked")
	}
}

func TestUpdateTask_OutOfRange(t *testing.T) {
	svc := newSubmissionService(t)
	ctx := context.Background()

	for _, index := range []int{-1, 99} {
		sub, err := svc.UpdateTask(ctx, "submission-1", index, true)
		if err != nil {
			t.Fatalf("UpdateTask(%d) failed: %v", index, err)
		}
		for i, task := range sub.Tasks {
			seeded := i < 3 // first three seeded tasks are complete
			if task.Completed != seeded {
				t.Errorf("index %d: task %d changed unexpectedly", index, i)
			}
		}
	}
}

// ==================== Review Tests ====================

type recordingBroadcaster struct {
	submissionID string
	status       string
	feedback     string
	calls        int
}

func (b *recordingBroadcaster) BroadcastSubmissionStatus(submissionID, status, feedback string) {
	b.submissionID = submissionID
	b.status = status
	b.feedback = feedback
	b.calls++
}

func TestSetStatus_ApproveWithFeedback(t *testing.T) {
	svc := newSubmissionService(t)
	b := &recordingBroadcaster{}
	svc.SetBroadcaster(b)
	ctx := context.Background()

	sub, err := svc.SetStatus(ctx, "submission-1", models.StatusApproved, "Nice work")
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if sub.Status != models.StatusApproved || sub.Feedback != "Nice work" {
		t.Errorf("unexpected result: %s %q", sub.Status, sub.Feedback)
	}
	if b.calls != 1 || b.submissionID != "submission-1" || b.status != models.StatusApproved {
		t.Errorf("broadcast not sent: %+v", b)
	}
}

func TestSetStatus_EmptyFeedbackPreserved(t *testing.T) {
	svc := newSubmissionService(t)
	ctx := context.Background()

	// submission-2 is approved with seeded feedback
	sub, err := svc.SetStatus(ctx, "submission-2", models.StatusRejected, "")
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if sub.Status != models.StatusRejected {
		t.Errorf("expected rejected, got %q", sub.Status)
	}
	if sub.Feedback != "Excellent implementation of real-time features. Great UI/UX design." {
		t.Errorf("expected seeded feedback preserved, got %q", sub.Feedback)
	}
}

func TestSetStatus_InvalidTarget(t *testing.T) {
	svc := newSubmissionService(t)

	_, err := svc.SetStatus(context.Background(), "submission-1", "archived", "")
	var appErr *errors.Error
	if !stderrors.As(err, &appErr) || appErr.Kind != errors.ErrInvalidInput {
		t.Errorf("expected invalid-input error, got %v", err)
	}
}

func TestSetStatus_AllTransitions(t *testing.T) {
	statuses := []string{models.StatusPending, models.StatusApproved, models.StatusRejected}
	svc := newSubmissionService(t)
	ctx := context.Background()

	// The review table is total: every move between known statuses works
	for _, from := range statuses {
		for _, to := range statuses {
			if _, err := svc.SetStatus(ctx, "submission-1", from, ""); err != nil {
				t.Fatalf("setup transition to %q failed: %v", from, err)
			}
			if _, err := svc.SetStatus(ctx, "submission-1", to, ""); err != nil {
				t.Errorf("transition %q -> %q failed: %v", from, to, err)
			}
		}
	}
}

// ==================== Listing and Filter Tests ====================

func TestSubmissionsForUser_IncludesTeamSubmissions(t *testing.T) {
	svc := newSubmissionService(t)

	// submission-1 belongs to user-1 under team-1; user-2 is a member
	subs, err := svc.SubmissionsForUser(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("SubmissionsForUser failed: %v", err)
	}
	ids := map[string]bool{}
	for _, s := range subs {
		ids[s.ID] = true
	}
	if !ids["submission-2"] {
		t.Error("expected user-2's own submission-2")
	}
	if !ids["submission-1"] {
		t.Error("expected team submission-1 via team-1 membership")
	}
}

func TestFilterSubmissions(t *testing.T) {
	svc := newSubmissionService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter services.SubmissionFilter
		want   []string
	}{
		{"query matches name", services.SubmissionFilter{Query: "voice"}, []string{"submission-1"}},
		{"query matches description", services.SubmissionFilter{Query: "COLLABORATE"}, []string{"submission-2"}},
		{"status", services.SubmissionFilter{Status: models.StatusRejected}, []string{"submission-3"}},
		{"hackathon", services.SubmissionFilter{HackathonID: "2"}, []string{"submission-2"}},
		{"combined", services.SubmissionFilter{Query: "platform", Status: models.StatusApproved}, []string{"submission-2"}},
		{"no match", services.SubmissionFilter{Query: "voice", Status: models.StatusRejected}, nil},
		{"empty filter returns all", services.SubmissionFilter{}, []string{"submission-1", "submission-2", "submission-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.FilterSubmissions(ctx, tt.filter)
			if err != nil {
				t.Fatalf("FilterSubmissions failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d submissions, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

// ==================== Countdown Tests ====================

func TestCountdown(t *testing.T) {
	svc := newSubmissionService(t)
	ctx := context.Background()

	// submission-1: started 2025-04-15T09:00:00Z, hackathon 1 is "48 hours"
	now := time.Date(2025, 4, 15, 9, 0, 1, 0, time.UTC)
	info, err := svc.Countdown(ctx, "user-1", "1", now)
	if err != nil {
		t.Fatalf("Countdown failed: %v", err)
	}
	if info.Remaining != "47h 59m 59s" {
		t.Errorf("Remaining = %q, want %q", info.Remaining, "47h 59m 59s")
	}
	if info.Expired {
		t.Error("countdown should not be expired")
	}

	// Past the deadline the countdown reports expiry but nothing blocks
	now = now.Add(72 * time.Hour)
	info, err = svc.Countdown(ctx, "user-1", "1", now)
	if err != nil {
		t.Fatalf("Countdown failed: %v", err)
	}
	if info.Remaining != "Time's up!" || !info.Expired {
		t.Errorf("expected expired countdown, got %+v", info)
	}
}

func TestCountdown_NoTimer(t *testing.T) {
	svc := newSubmissionService(t)

	_, err := svc.Countdown(context.Background(), "user-2", "3", time.Now())
	if !isNotFound(err) {
		t.Errorf("expected not-found before timer start, got %v", err)
	}
}

func TestSubmit_AfterDeadlineStillAccepted(t *testing.T) {
	svc := newSubmissionService(t)
	ctx := context.Background()

	// The seeded hackathon 1 deadline is long past; submission still works
	input := validInput()
	input.UserID = "user-1"
	input.HackathonID = "1"
	if _, err := svc.Submit(ctx, input); err != nil {
		t.Errorf("expected soft deadline to accept late submissions, got %v", err)
	}
}
