package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ASHU191/Coding-Hub/internal/models"
)

// Repository provides data access methods backed by SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new Repository, runs migrations and seeds the initial
// dataset on first run
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	if err := repo.migrate(); err != nil {
		return nil, err
	}

	if err := repo.seed(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for transactions)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS hackathons (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			start_date TEXT,
			end_date TEXT,
			duration TEXT,
			fee TEXT,
			category TEXT,
			tech_stack TEXT,
			team_size TEXT,
			difficulty TEXT,
			prerequisites TEXT,
			instructors TEXT,
			modules TEXT,
			image TEXT,
			featured BOOLEAN DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			registered_hackathons TEXT,
			avatar TEXT,
			join_date TEXT,
			last_active TEXT,
			teams TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS teams (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			hackathon_id TEXT NOT NULL,
			leader_id TEXT NOT NULL,
			members TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS submissions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			team_id TEXT,
			hackathon_id TEXT NOT NULL,
			project_name TEXT,
			description TEXT,
			repo_url TEXT,
			demo_url TEXT,
			file_url TEXT,
			submission_date TEXT,
			start_time TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			feedback TEXT,
			tasks TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_user ON submissions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_hackathon ON submissions(hackathon_id)`,
		`CREATE INDEX IF NOT EXISTS idx_teams_hackathon ON teams(hackathon_id)`,
		`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}

// marshalJSON encodes a value into a JSON column, mapping empty slices to NULL
func marshalJSON(v interface{}) sql.NullString {
	data, err := json.Marshal(v)
	if err != nil || string(data) == "null" || string(data) == "[]" {
		return sql.NullString{}
	}
	return sql.NullString{String: string(data), Valid: true}
}

// unmarshalStrings decodes a JSON column into a string slice
func unmarshalStrings(col sql.NullString) []string {
	if !col.Valid || col.String == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(col.String), &out); err != nil {
		return nil
	}
	return out
}

// ==================== Hackathon Methods ====================

const hackathonColumns = `id, title, description, start_date, end_date, duration, fee, category,
	tech_stack, team_size, difficulty, prerequisites, instructors, modules, image, featured`

func scanHackathon(scan func(dest ...interface{}) error) (models.Hackathon, error) {
	var h models.Hackathon
	var techStack, prerequisites, instructors, modules sql.NullString
	var description, startDate, endDate, duration, fee, category, teamSize, difficulty, image sql.NullString
	err := scan(&h.ID, &h.Title, &description, &startDate, &endDate, &duration, &fee, &category,
		&techStack, &teamSize, &difficulty, &prerequisites, &instructors, &modules, &image, &h.Featured)
	if err != nil {
		return h, err
	}
	h.Description = description.String
	h.StartDate = startDate.String
	h.EndDate = endDate.String
	h.Duration = duration.String
	h.Fee = fee.String
	h.Category = category.String
	h.TeamSize = teamSize.String
	h.Difficulty = difficulty.String
	h.Image = image.String
	h.TechStack = unmarshalStrings(techStack)
	h.Prerequisites = unmarshalStrings(prerequisites)
	h.Instructors = unmarshalStrings(instructors)
	h.Modules = unmarshalStrings(modules)
	return h, nil
}

// ListHackathons returns all hackathons ordered by start date
func (r *Repository) ListHackathons(ctx context.Context) ([]models.Hackathon, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+hackathonColumns+` FROM hackathons ORDER BY start_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hackathons []models.Hackathon
	for rows.Next() {
		h, err := scanHackathon(rows.Scan)
		if err != nil {
			return nil, err
		}
		hackathons = append(hackathons, h)
	}
	return hackathons, rows.Err()
}

// GetHackathon returns a hackathon by id
func (r *Repository) GetHackathon(ctx context.Context, id string) (*models.Hackathon, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+hackathonColumns+` FROM hackathons WHERE id = ?`, id)
	h, err := scanHackathon(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// CreateHackathon inserts a new hackathon
func (r *Repository) CreateHackathon(ctx context.Context, h models.Hackathon) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO hackathons (`+hackathonColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, h.ID, h.Title, h.Description, h.StartDate, h.EndDate, h.Duration, h.Fee, h.Category,
		marshalJSON(h.TechStack), h.TeamSize, h.Difficulty, marshalJSON(h.Prerequisites),
		marshalJSON(h.Instructors), marshalJSON(h.Modules), h.Image, h.Featured)
	return err
}

// UpdateHackathon overwrites a hackathon
func (r *Repository) UpdateHackathon(ctx context.Context, h models.Hackathon) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE hackathons SET title = ?, description = ?, start_date = ?, end_date = ?,
			duration = ?, fee = ?, category = ?, tech_stack = ?, team_size = ?,
			difficulty = ?, prerequisites = ?, instructors = ?, modules = ?, image = ?, featured = ?
		WHERE id = ?
	`, h.Title, h.Description, h.StartDate, h.EndDate, h.Duration, h.Fee, h.Category,
		marshalJSON(h.TechStack), h.TeamSize, h.Difficulty, marshalJSON(h.Prerequisites),
		marshalJSON(h.Instructors), marshalJSON(h.Modules), h.Image, h.Featured, h.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// DeleteHackathon deletes a hackathon and cascades: its teams and
// submissions are removed and its id is stripped from every user's
// registered set and team list.
func (r *Repository) DeleteHackathon(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM hackathons WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if err := requireRowAffected(res); err != nil {
		return err
	}

	// Collect the hackathon's team ids before removing them
	rows, err := tx.QueryContext(ctx, `SELECT id FROM teams WHERE hackathon_id = ?`, id)
	if err != nil {
		return err
	}
	var teamIDs []string
	for rows.Next() {
		var teamID string
		if err := rows.Scan(&teamID); err != nil {
			rows.Close()
			return err
		}
		teamIDs = append(teamIDs, teamID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE hackathon_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM submissions WHERE hackathon_id = ?`, id); err != nil {
		return err
	}

	// Strip the hackathon and its teams from user records
	if err := stripUserReferences(ctx, tx, id, teamIDs); err != nil {
		return err
	}

	return tx.Commit()
}

// stripUserReferences removes a hackathon id and a set of team ids from
// every user's registered set and team list
func stripUserReferences(ctx context.Context, tx *sql.Tx, hackathonID string, teamIDs []string) error {
	rows, err := tx.QueryContext(ctx, `SELECT id, registered_hackathons, teams FROM users`)
	if err != nil {
		return err
	}

	type userLists struct {
		id         string
		hackathons []string
		teams      []string
	}
	var updates []userLists

	for rows.Next() {
		var id string
		var regJSON, teamsJSON sql.NullString
		if err := rows.Scan(&id, &regJSON, &teamsJSON); err != nil {
			rows.Close()
			return err
		}
		reg := unmarshalStrings(regJSON)
		userTeams := unmarshalStrings(teamsJSON)

		newReg := removeString(reg, hackathonID)
		newTeams := userTeams
		for _, teamID := range teamIDs {
			newTeams = removeString(newTeams, teamID)
		}

		if len(newReg) != len(reg) || len(newTeams) != len(userTeams) {
			updates = append(updates, userLists{id: id, hackathons: newReg, teams: newTeams})
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, u := range updates {
		_, err := tx.ExecContext(ctx, `UPDATE users SET registered_hackathons = ?, teams = ? WHERE id = ?`,
			marshalJSON(u.hackathons), marshalJSON(u.teams), u.id)
		if err != nil {
			return err
		}
	}
	return nil
}

func removeString(values []string, target string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}

// ==================== User Methods ====================

const userColumns = `id, name, email, role, registered_hackathons, avatar, join_date, last_active, teams`

func scanUser(scan func(dest ...interface{}) error) (models.User, error) {
	var u models.User
	var registered, teams sql.NullString
	var avatar, joinDate, lastActive sql.NullString
	err := scan(&u.ID, &u.Name, &u.Email, &u.Role, &registered, &avatar, &joinDate, &lastActive, &teams)
	if err != nil {
		return u, err
	}
	u.RegisteredHackathons = unmarshalStrings(registered)
	u.Avatar = avatar.String
	u.JoinDate = joinDate.String
	u.LastActive = lastActive.String
	u.Teams = unmarshalStrings(teams)
	return u, nil
}

// ListUsers returns all users ordered by join date
func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY join_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetUser returns a user by id
func (r *Repository) GetUser(ctx context.Context, id string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail returns a user by email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a new user
func (r *Repository) CreateUser(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, u.ID, u.Name, u.Email, u.Role, marshalJSON(u.RegisteredHackathons),
		u.Avatar, u.JoinDate, u.LastActive, marshalJSON(u.Teams))
	return err
}

// UpdateUser overwrites a user
func (r *Repository) UpdateUser(ctx context.Context, u models.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET name = ?, email = ?, role = ?, registered_hackathons = ?,
			avatar = ?, join_date = ?, last_active = ?, teams = ?
		WHERE id = ?
	`, u.Name, u.Email, u.Role, marshalJSON(u.RegisteredHackathons),
		u.Avatar, u.JoinDate, u.LastActive, marshalJSON(u.Teams), u.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// SetRegisteredHackathons replaces a user's registered set
func (r *Repository) SetRegisteredHackathons(ctx context.Context, userID string, hackathonIDs []string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET registered_hackathons = ? WHERE id = ?`,
		marshalJSON(hackathonIDs), userID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// SetUserTeams replaces a user's team list
func (r *Repository) SetUserTeams(ctx context.Context, userID string, teamIDs []string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET teams = ? WHERE id = ?`,
		marshalJSON(teamIDs), userID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// TouchLastActive updates a user's last-active timestamp
func (r *Repository) TouchLastActive(ctx context.Context, userID, lastActive string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_active = ? WHERE id = ?`, lastActive, userID)
	return err
}

// ==================== Team Methods ====================

const teamColumns = `id, name, hackathon_id, leader_id, members, created_at`

func scanTeam(scan func(dest ...interface{}) error) (models.Team, error) {
	var t models.Team
	var members, createdAt sql.NullString
	err := scan(&t.ID, &t.Name, &t.HackathonID, &t.LeaderID, &members, &createdAt)
	if err != nil {
		return t, err
	}
	t.CreatedAt = createdAt.String
	if members.Valid && members.String != "" {
		if err := json.Unmarshal([]byte(members.String), &t.Members); err != nil {
			return t, err
		}
	}
	return t, nil
}

// ListTeams returns all teams
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	return r.queryTeams(ctx, `SELECT `+teamColumns+` FROM teams ORDER BY created_at, id`)
}

// ListTeamsForHackathon returns the teams scoped to one hackathon
func (r *Repository) ListTeamsForHackathon(ctx context.Context, hackathonID string) ([]models.Team, error) {
	return r.queryTeams(ctx, `SELECT `+teamColumns+` FROM teams WHERE hackathon_id = ? ORDER BY created_at, id`, hackathonID)
}

func (r *Repository) queryTeams(ctx context.Context, query string, args ...interface{}) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		t, err := scanTeam(rows.Scan)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// GetTeam returns a team by id
func (r *Repository) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = ?`, id)
	t, err := scanTeam(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTeamsForUser returns the teams a user is a member of.
// Membership lives in the members JSON column, so this filters in Go.
func (r *Repository) ListTeamsForUser(ctx context.Context, userID string) ([]models.Team, error) {
	teams, err := r.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Team
	for _, t := range teams {
		for _, m := range t.Members {
			if m.UserID == userID {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

// CreateTeam inserts a new team
func (r *Repository) CreateTeam(ctx context.Context, t models.Team) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO teams (`+teamColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, t.ID, t.Name, t.HackathonID, t.LeaderID, marshalJSON(t.Members), t.CreatedAt)
	return err
}

// UpdateTeam overwrites a team
func (r *Repository) UpdateTeam(ctx context.Context, t models.Team) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE teams SET name = ?, hackathon_id = ?, leader_id = ?, members = ?, created_at = ?
		WHERE id = ?
	`, t.Name, t.HackathonID, t.LeaderID, marshalJSON(t.Members), t.CreatedAt, t.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// SetTeamMembers replaces a team's member list
func (r *Repository) SetTeamMembers(ctx context.Context, teamID string, members []models.TeamMember) error {
	res, err := r.db.ExecContext(ctx, `UPDATE teams SET members = ? WHERE id = ?`,
		marshalJSON(members), teamID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// DeleteTeam deletes a team and strips its id from every former
// member's team list
func (r *Repository) DeleteTeam(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if err := requireRowAffected(res); err != nil {
		return err
	}

	if err := stripUserReferences(ctx, tx, "", []string{id}); err != nil {
		return err
	}

	return tx.Commit()
}

// ==================== Submission Methods ====================

const submissionColumns = `id, user_id, team_id, hackathon_id, project_name, description,
	repo_url, demo_url, file_url, submission_date, start_time, status, feedback, tasks`

func scanSubmission(scan func(dest ...interface{}) error) (models.Submission, error) {
	var s models.Submission
	var teamID, projectName, description, repoURL, demoURL, fileURL sql.NullString
	var submissionDate, startTime, feedback, tasks sql.NullString
	err := scan(&s.ID, &s.UserID, &teamID, &s.HackathonID, &projectName, &description,
		&repoURL, &demoURL, &fileURL, &submissionDate, &startTime, &s.Status, &feedback, &tasks)
	if err != nil {
		return s, err
	}
	s.TeamID = teamID.String
	s.ProjectName = projectName.String
	s.Description = description.String
	s.RepoURL = repoURL.String
	s.DemoURL = demoURL.String
	s.FileURL = fileURL.String
	s.SubmissionDate = submissionDate.String
	s.StartTime = startTime.String
	s.Feedback = feedback.String
	if tasks.Valid && tasks.String != "" {
		if err := json.Unmarshal([]byte(tasks.String), &s.Tasks); err != nil {
			return s, err
		}
	}
	return s, nil
}

func (r *Repository) querySubmissions(ctx context.Context, query string, args ...interface{}) ([]models.Submission, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []models.Submission
	for rows.Next() {
		s, err := scanSubmission(rows.Scan)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// ListSubmissions returns all submissions
func (r *Repository) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	return r.querySubmissions(ctx, `SELECT `+submissionColumns+` FROM submissions ORDER BY submission_date, id`)
}

// ListSubmissionsForUser returns submissions owned directly by a user
func (r *Repository) ListSubmissionsForUser(ctx context.Context, userID string) ([]models.Submission, error) {
	return r.querySubmissions(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE user_id = ? ORDER BY submission_date, id`, userID)
}

// ListSubmissionsForHackathon returns submissions for one hackathon
func (r *Repository) ListSubmissionsForHackathon(ctx context.Context, hackathonID string) ([]models.Submission, error) {
	return r.querySubmissions(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE hackathon_id = ? ORDER BY submission_date, id`, hackathonID)
}

// GetSubmission returns a submission by id
func (r *Repository) GetSubmission(ctx context.Context, id string) (*models.Submission, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = ?`, id)
	s, err := scanSubmission(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindSubmission returns the submission for a (user, hackathon) pair,
// or ErrNotFound. At most one exists (timer start is idempotent).
func (r *Repository) FindSubmission(ctx context.Context, userID, hackathonID string) (*models.Submission, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE user_id = ? AND hackathon_id = ? LIMIT 1`,
		userID, hackathonID)
	s, err := scanSubmission(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSubmission inserts a new submission
func (r *Repository) CreateSubmission(ctx context.Context, s models.Submission) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO submissions (`+submissionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.UserID, nullable(s.TeamID), s.HackathonID, s.ProjectName, s.Description,
		s.RepoURL, s.DemoURL, s.FileURL, s.SubmissionDate, s.StartTime, s.Status,
		s.Feedback, marshalJSON(s.Tasks))
	return err
}

// UpdateSubmission overwrites a submission
func (r *Repository) UpdateSubmission(ctx context.Context, s models.Submission) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE submissions SET user_id = ?, team_id = ?, hackathon_id = ?, project_name = ?,
			description = ?, repo_url = ?, demo_url = ?, file_url = ?, submission_date = ?,
			start_time = ?, status = ?, feedback = ?, tasks = ?
		WHERE id = ?
	`, s.UserID, nullable(s.TeamID), s.HackathonID, s.ProjectName, s.Description,
		s.RepoURL, s.DemoURL, s.FileURL, s.SubmissionDate, s.StartTime, s.Status,
		s.Feedback, marshalJSON(s.Tasks), s.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// DeleteSubmission deletes a submission
func (r *Repository) DeleteSubmission(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM submissions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// nullable maps an empty string to NULL
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// requireRowAffected converts a zero-row write into ErrNotFound
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
