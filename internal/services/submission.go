package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ASHU191/Coding-Hub/internal/errors"
	"github.com/ASHU191/Coding-Hub/internal/logger"
	"github.com/ASHU191/Coding-Hub/internal/metrics"
	"github.com/ASHU191/Coding-Hub/internal/models"
	"github.com/ASHU191/Coding-Hub/internal/repository"
)

// urlPattern accepts anything that starts with an http or https scheme
var urlPattern = regexp.MustCompile(`(?i)^https?://`)

// defaultTasks is the checklist a submission starts with when the
// countdown timer begins
var defaultTasks = []string{
	"Project Setup",
	"Core Functionality",
	"UI Implementation",
	"Testing",
	"Documentation",
}

// statusTransitions is the full review state machine. Every allowed
// move is listed; anything absent is rejected.
var statusTransitions = map[string][]string{
	models.StatusPending:  {models.StatusPending, models.StatusApproved, models.StatusRejected},
	models.StatusApproved: {models.StatusPending, models.StatusApproved, models.StatusRejected},
	models.StatusRejected: {models.StatusPending, models.StatusApproved, models.StatusRejected},
}

// SubmissionServiceRepository defines the repository methods needed by SubmissionService
type SubmissionServiceRepository interface {
	repository.SubmissionRepository
	repository.HackathonRepository
	repository.UserRepository
}

// SubmissionService handles the project submission lifecycle: timer
// start, draft tasks, final submission, and admin review.
type SubmissionService struct {
	log          logger.Logger
	repo         SubmissionServiceRepository
	registration RegistrationServicer
	team         TeamServicer
	broadcaster  Broadcaster
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(log logger.Logger, repo SubmissionServiceRepository, registration RegistrationServicer, team TeamServicer) *SubmissionService {
	return &SubmissionService{
		log:          log,
		repo:         repo,
		registration: registration,
		team:         team,
	}
}

// SetBroadcaster sets the broadcaster for pushing review updates to clients
func (s *SubmissionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SubmissionInput carries the fields of a project submission
type SubmissionInput struct {
	UserID      string        `json:"user_id"`
	HackathonID string        `json:"hackathon_id"`
	TeamID      string        `json:"team_id,omitempty"`
	ProjectName string        `json:"project_name"`
	Description string        `json:"description"`
	RepoURL     string        `json:"repo_url"`
	DemoURL     string        `json:"demo_url,omitempty"`
	FileURL     string        `json:"file_url,omitempty"`
	Tasks       []models.Task `json:"tasks"`
}

// CountdownInfo describes the state of a submission countdown
type CountdownInfo struct {
	StartTime string `json:"start_time"`
	Deadline  string `json:"deadline"`
	Remaining string `json:"remaining"`
	Expired   bool   `json:"expired"`
}

// StartTimer begins the countdown for a (user, hackathon) pair by
// creating a draft submission stamped with the start time. Starting an
// already-running timer returns the existing draft unchanged.
func (s *SubmissionService) StartTimer(ctx context.Context, userID, hackathonID string) (*models.Submission, error) {
	existing, err := s.repo.FindSubmission(ctx, userID, hackathonID)
	if err == nil {
		return existing, nil
	}
	if err != repository.ErrNotFound {
		return nil, err
	}

	if _, err := s.repo.GetHackathon(ctx, hackathonID); err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NotFoundf("hackathon %s not found", hackathonID)
		}
		return nil, err
	}
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NotFoundf("user %s not found", userID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	tasks := make([]models.Task, len(defaultTasks))
	for i, name := range defaultTasks {
		tasks[i] = models.Task{Name: name}
	}
	draft := models.Submission{
		ID:             "submission-" + uuid.NewString(),
		UserID:         userID,
		HackathonID:    hackathonID,
		ProjectName:    "Untitled Project",
		Description:    "No description yet",
		SubmissionDate: now.Format("2006-01-02"),
		StartTime:      now.Format(time.RFC3339),
		Status:         models.StatusPending,
		Tasks:          tasks,
	}
	if err := s.repo.CreateSubmission(ctx, draft); err != nil {
		return nil, errors.Wrap(err, "start timer")
	}
	metrics.TimersStarted.Inc()
	s.log.Info("timer started", "submission_id", draft.ID, "user_id", userID, "hackathon_id", hackathonID)
	return &draft, nil
}

// Submit validates and records a project submission. When a draft
// already exists for the (user, hackathon) pair it is updated in place,
// keeping its id and start time. The submitter is registered for the
// hackathon as a side effect.
func (s *SubmissionService) Submit(ctx context.Context, input SubmissionInput) (*models.Submission, error) {
	if err := validateSubmission(&input); err != nil {
		return nil, err
	}

	// Registration also verifies the user and hackathon exist
	if err := s.registration.Register(ctx, input.UserID, input.HackathonID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	submission := models.Submission{
		UserID:         input.UserID,
		TeamID:         input.TeamID,
		HackathonID:    input.HackathonID,
		ProjectName:    input.ProjectName,
		Description:    input.Description,
		RepoURL:        input.RepoURL,
		DemoURL:        input.DemoURL,
		FileURL:        input.FileURL,
		SubmissionDate: now.Format("2006-01-02"),
		Status:         models.StatusPending,
		Tasks:          input.Tasks,
	}

	existing, err := s.repo.FindSubmission(ctx, input.UserID, input.HackathonID)
	switch {
	case err == nil:
		// Resubmission only replaces the fields the form carries;
		// reviewer feedback on the earlier version stays.
		submission.ID = existing.ID
		submission.StartTime = existing.StartTime
		submission.Feedback = existing.Feedback
		if err := s.repo.UpdateSubmission(ctx, submission); err != nil {
			return nil, errors.Wrap(err, "update submission")
		}
	case err == repository.ErrNotFound:
		submission.ID = "submission-" + uuid.NewString()
		submission.StartTime = now.Format(time.RFC3339)
		if err := s.repo.CreateSubmission(ctx, submission); err != nil {
			return nil, errors.Wrap(err, "create submission")
		}
	default:
		return nil, err
	}

	metrics.SubmissionsReceived.Inc()
	s.log.Info("project submitted", "submission_id", submission.ID, "user_id", input.UserID, "hackathon_id", input.HackathonID)
	return &submission, nil
}

// validateSubmission checks required fields and URL formats, and drops
// blank-named tasks. Failures come back as a field-keyed validation
// error covering every bad field at once.
func validateSubmission(input *SubmissionInput) error {
	fields := map[string]string{}

	if strings.TrimSpace(input.ProjectName) == "" {
		fields["projectName"] = "Project name is required"
	}
	if strings.TrimSpace(input.Description) == "" {
		fields["description"] = "Project description is required"
	}
	if strings.TrimSpace(input.RepoURL) == "" {
		fields["repoUrl"] = "Repository URL is required"
	} else if !urlPattern.MatchString(input.RepoURL) {
		fields["repoUrl"] = "Please enter a valid URL starting with http:// or https://"
	}
	if input.DemoURL != "" && !urlPattern.MatchString(input.DemoURL) {
		fields["demoUrl"] = "Please enter a valid URL starting with http:// or https://"
	}

	tasks := input.Tasks[:0:0]
	for _, task := range input.Tasks {
		if strings.TrimSpace(task.Name) != "" {
			tasks = append(tasks, task)
		}
	}
	if len(tasks) == 0 {
		fields["tasks"] = "At least one task is required"
	}
	input.Tasks = tasks

	if len(fields) > 0 {
		return errors.ValidationFields(fields)
	}
	return nil
}

// UpdateTask toggles one checklist entry. An index outside the task
// list is ignored.
func (s *SubmissionService) UpdateTask(ctx context.Context, submissionID string, taskIndex int, completed bool) (*models.Submission, error) {
	submission, err := s.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if taskIndex < 0 || taskIndex >= len(submission.Tasks) {
		return submission, nil
	}
	submission.Tasks[taskIndex].Completed = completed
	if err := s.repo.UpdateSubmission(ctx, *submission); err != nil {
		return nil, errors.Wrap(err, "update task")
	}
	return submission, nil
}

// SetStatus moves a submission through the review state machine and
// attaches reviewer feedback. Empty feedback keeps whatever feedback
// is already on the record.
func (s *SubmissionService) SetStatus(ctx context.Context, id, status, feedback string) (*models.Submission, error) {
	submission, err := s.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, known := statusTransitions[submission.Status]
	if !known {
		return nil, errors.InvalidInputf("submission %s has unknown status %q", id, submission.Status)
	}
	valid := false
	for _, next := range allowed {
		if next == status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, errors.InvalidInputf("cannot move submission from %q to %q", submission.Status, status)
	}

	submission.Status = status
	if feedback != "" {
		submission.Feedback = feedback
	}
	if err := s.repo.UpdateSubmission(ctx, *submission); err != nil {
		return nil, errors.Wrap(err, "set submission status")
	}

	metrics.ReviewDecisions.WithLabelValues(status).Inc()
	if s.broadcaster != nil {
		s.broadcaster.BroadcastSubmissionStatus(submission.ID, submission.Status, submission.Feedback)
	}
	s.log.Info("submission reviewed", "submission_id", id, "status", status)
	return submission, nil
}

// GetSubmission returns a submission by id
func (s *SubmissionService) GetSubmission(ctx context.Context, id string) (*models.Submission, error) {
	submission, err := s.repo.GetSubmission(ctx, id)
	if err == repository.ErrNotFound {
		return nil, errors.NotFoundf("submission %s not found", id)
	}
	return submission, err
}

// ListSubmissions returns all submissions
func (s *SubmissionService) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	return s.repo.ListSubmissions(ctx)
}

// SubmissionsForUser returns the submissions a user can see: their own
// plus any submitted under a team they belong to.
func (s *SubmissionService) SubmissionsForUser(ctx context.Context, userID string) ([]models.Submission, error) {
	own, err := s.repo.ListSubmissionsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	teams, err := s.team.TeamsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	teamIDs := map[string]bool{}
	for _, t := range teams {
		teamIDs[t.ID] = true
	}

	seen := map[string]bool{}
	for _, sub := range own {
		seen[sub.ID] = true
	}
	all, err := s.repo.ListSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	for _, sub := range all {
		if sub.TeamID != "" && teamIDs[sub.TeamID] && !seen[sub.ID] {
			own = append(own, sub)
			seen[sub.ID] = true
		}
	}
	return own, nil
}

// SubmissionsForHackathon returns a hackathon's submissions
func (s *SubmissionService) SubmissionsForHackathon(ctx context.Context, hackathonID string) ([]models.Submission, error) {
	return s.repo.ListSubmissionsForHackathon(ctx, hackathonID)
}

// DeleteSubmission removes a submission
func (s *SubmissionService) DeleteSubmission(ctx context.Context, id string) error {
	err := s.repo.DeleteSubmission(ctx, id)
	if err == repository.ErrNotFound {
		return errors.NotFoundf("submission %s not found", id)
	}
	return err
}

// SubmissionFilter narrows the admin review list. Query matches
// project name or description case-insensitively; Status and
// HackathonID match exactly when set.
type SubmissionFilter struct {
	Query       string
	Status      string
	HackathonID string
}

// FilterSubmissions returns the submissions matching a filter
func (s *SubmissionService) FilterSubmissions(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error) {
	all, err := s.repo.ListSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	query := strings.ToLower(filter.Query)
	var matched []models.Submission
	for _, sub := range all {
		if query != "" &&
			!strings.Contains(strings.ToLower(sub.ProjectName), query) &&
			!strings.Contains(strings.ToLower(sub.Description), query) {
			continue
		}
		if filter.Status != "" && sub.Status != filter.Status {
			continue
		}
		if filter.HackathonID != "" && sub.HackathonID != filter.HackathonID {
			continue
		}
		matched = append(matched, sub)
	}
	return matched, nil
}

// Countdown reports the timer state for a (user, hackathon) pair. The
// deadline is soft: Expired is informational and submissions are still
// accepted after it passes.
func (s *SubmissionService) Countdown(ctx context.Context, userID, hackathonID string, now time.Time) (*CountdownInfo, error) {
	submission, err := s.repo.FindSubmission(ctx, userID, hackathonID)
	if err == repository.ErrNotFound {
		return nil, errors.NotFound("timer has not been started")
	}
	if err != nil {
		return nil, err
	}
	start, err := time.Parse(time.RFC3339, submission.StartTime)
	if err != nil {
		return nil, errors.InvalidInputf("submission %s has malformed start time %q", submission.ID, submission.StartTime)
	}

	hackathon, err := s.repo.GetHackathon(ctx, hackathonID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, errors.NotFoundf("hackathon %s not found", hackathonID)
		}
		return nil, err
	}

	left := Remaining(start, hackathon.Duration, now)
	return &CountdownInfo{
		StartTime: submission.StartTime,
		Deadline:  Deadline(start, hackathon.Duration).Format(time.RFC3339),
		Remaining: FormatRemaining(left),
		Expired:   left <= 0,
	}, nil
}
