package models

// Hackathon represents a timed event definition
type Hackathon struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	Duration      string   `json:"duration"` // free text, leading integer parsed as hours
	Fee           string   `json:"fee"`
	Category      string   `json:"category"`
	TechStack     []string `json:"tech_stack"`
	TeamSize      string   `json:"team_size"`
	Difficulty    string   `json:"difficulty"`
	Prerequisites []string `json:"prerequisites"`
	Instructors   []string `json:"instructors"`
	Modules       []string `json:"modules"`
	Image         string   `json:"image"`
	Featured      bool     `json:"featured,omitempty"`
}

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account
type User struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	Role                 string   `json:"role"` // "user" or "admin"
	RegisteredHackathons []string `json:"registered_hackathons"`
	Avatar               string   `json:"avatar,omitempty"`
	JoinDate             string   `json:"join_date"`
	LastActive           string   `json:"last_active"`
	Teams                []string `json:"teams"`
}

// Team member roles
const (
	TeamRoleLeader = "leader"
	TeamRoleMember = "member"
)

// TeamMember is a user's membership entry within a team
type TeamMember struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"` // "leader" or "member"
	Avatar string `json:"avatar,omitempty"`
}

// Team is a named group of users collaborating on one hackathon.
// Invariant: Members always contains an entry with role "leader"
// whose UserID equals LeaderID.
type Team struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	HackathonID string       `json:"hackathon_id"`
	LeaderID    string       `json:"leader_id"`
	Members     []TeamMember `json:"members"`
	CreatedAt   string       `json:"created_at"`
}

// Submission statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Task is a single checklist entry on a submission
type Task struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Submission is a user's (or team's) project entry for one hackathon
type Submission struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	TeamID         string `json:"team_id,omitempty"`
	HackathonID    string `json:"hackathon_id"`
	ProjectName    string `json:"project_name"`
	Description    string `json:"description"`
	RepoURL        string `json:"repo_url"`
	DemoURL        string `json:"demo_url,omitempty"`
	FileURL        string `json:"file_url,omitempty"`
	SubmissionDate string `json:"submission_date"`       // YYYY-MM-DD, last save date
	StartTime      string `json:"start_time,omitempty"`  // RFC3339, countdown baseline
	Status         string `json:"status"`
	Feedback       string `json:"feedback,omitempty"`
	Tasks          []Task `json:"tasks"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
