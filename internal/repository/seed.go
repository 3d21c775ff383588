package repository

import (
	"context"

	"github.com/ASHU191/Coding-Hub/internal/models"
)

// seed populates the database with the sample dataset on first run.
// It is a no-op when hackathons already exist.
func (r *Repository) seed() error {
	ctx := context.Background()

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hackathons`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, h := range seedHackathons() {
		if err := r.CreateHackathon(ctx, h); err != nil {
			return err
		}
	}
	for _, u := range seedUsers() {
		if err := r.CreateUser(ctx, u); err != nil {
			return err
		}
	}
	for _, t := range seedTeams() {
		if err := r.CreateTeam(ctx, t); err != nil {
			return err
		}
	}
	for _, s := range seedSubmissions() {
		if err := r.CreateSubmission(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func seedHackathons() []models.Hackathon {
	return []models.Hackathon{
		{
			ID:            "1",
			Title:         "AI Innovation Challenge",
			Description:   "Solve real-world AI problems using Python, TensorFlow, and OpenCV",
			StartDate:     "2025-04-15",
			EndDate:       "2025-04-17",
			Duration:      "48 hours",
			Fee:           "Free",
			Category:      "AI",
			TechStack:     []string{"Python", "TensorFlow", "OpenCV"},
			TeamSize:      "1-4",
			Difficulty:    "Intermediate",
			Prerequisites: []string{"Python", "ML knowledge"},
			Instructors:   []string{"Dr. Jane Smith", "Prof. Alan Turing"},
			Modules:       []string{"Problem statement", "Data preprocessing", "Model training", "Evaluation criteria"},
			Image:         "/placeholder.svg?height=400&width=600",
			Featured:      true,
		},
		{
			ID:            "2",
			Title:         "MERN Stack Hackathon",
			Description:   "Build a full-stack MERN app with real-time features",
			StartDate:     "2025-04-20",
			EndDate:       "2025-04-23",
			Duration:      "72 hours",
			Fee:           "Free",
			Category:      "Web",
			TechStack:     []string{"MongoDB", "Express", "React", "Node.js"},
			TeamSize:      "2-5",
			Difficulty:    "Intermediate",
			Prerequisites: []string{"JavaScript", "Basic React knowledge"},
			Instructors:   []string{"John Doe", "Jane Smith"},
			Modules: []string{
				"Backend setup (Node.js + Express)",
				"Frontend development (React)",
				"Database integration (MongoDB)",
				"Authentication and Deployment",
			},
			Image:    "/placeholder.svg?height=400&width=600",
			Featured: true,
		},
		{
			ID:            "3",
			Title:         "Full-Stack Challenge (Next.js + Firebase)",
			Description:   "Develop a scalable full-stack app using Next.js and Firebase",
			StartDate:     "2025-05-01",
			EndDate:       "2025-05-03",
			Duration:      "48 hours",
			Fee:           "Free",
			Category:      "Web",
			TechStack:     []string{"Next.js", "Firebase", "React", "TypeScript"},
			TeamSize:      "1-3",
			Difficulty:    "Intermediate",
			Prerequisites: []string{"JavaScript", "React knowledge"},
			Instructors:   []string{"Sarah Johnson", "Mike Peters"},
			Modules: []string{
				"Setup and deployment with Vercel",
				"Firebase authentication and database",
				"Real-time updates",
				"Performance optimization",
			},
			Image: "/placeholder.svg?height=400&width=600",
		},
		{
			ID:            "4",
			Title:         ".NET MVC Enterprise Hackathon",
			Description:   "Build an enterprise-grade app using .NET MVC and SQL Server",
			StartDate:     "2025-05-10",
			EndDate:       "2025-05-13",
			Duration:      "72 hours",
			Fee:           "Free",
			Category:      "Enterprise",
			TechStack:     []string{".NET", "C#", "SQL Server", "MVC"},
			TeamSize:      "2-4",
			Difficulty:    "Advanced",
			Prerequisites: []string{"C#", "Basic SQL knowledge"},
			Instructors:   []string{"Mark Wilson", "Emily Clark"},
			Modules:       []string{"MVC architecture", "Backend logic", "Database integration", "API development"},
			Image:         "/placeholder.svg?height=400&width=600",
		},
		{
			ID:            "5",
			Title:         "Blockchain Hackathon",
			Description:   "Create and deploy smart contracts on Ethereum using Solidity",
			StartDate:     "2025-06-01",
			EndDate:       "2025-06-04",
			Duration:      "72 hours",
			Fee:           "Free",
			Category:      "Blockchain",
			TechStack:     []string{"Solidity", "Ethereum", "Hardhat", "JavaScript"},
			TeamSize:      "1-3",
			Difficulty:    "Advanced",
			Prerequisites: []string{"JavaScript", "Basic blockchain knowledge"},
			Instructors:   []string{"Alex Johnson", "Maria Garcia"},
			Modules:       []string{"Smart contract development", "Testing with Hardhat", "Frontend integration", "Blockchain security"},
			Image:         "/placeholder.svg?height=400&width=600",
			Featured:      true,
		},
	}
}

func seedUsers() []models.User {
	return []models.User{
		{
			ID:                   "user-1",
			Name:                 "John Doe",
			Email:                "john@example.com",
			Role:                 models.RoleUser,
			RegisteredHackathons: []string{"1", "3"},
			Avatar:               "/placeholder.svg?height=32&width=32",
			JoinDate:             "2025-01-15",
			LastActive:           "2025-03-20",
			Teams:                []string{"team-1"},
		},
		{
			ID:                   "user-2",
			Name:                 "Jane Smith",
			Email:                "jane@example.com",
			Role:                 models.RoleUser,
			RegisteredHackathons: []string{"2", "5"},
			Avatar:               "/placeholder.svg?height=32&width=32",
			JoinDate:             "2025-02-10",
			LastActive:           "2025-03-21",
			Teams:                []string{"team-1"},
		},
		{
			ID:         "admin-1",
			Name:       "Admin User",
			Email:      "admin@hackathonhub.com",
			Role:       models.RoleAdmin,
			Avatar:     "/placeholder.svg?height=32&width=32",
			JoinDate:   "2025-01-01",
			LastActive: "2025-03-22",
		},
	}
}

func seedTeams() []models.Team {
	return []models.Team{
		{
			ID:          "team-1",
			Name:        "Code Wizards",
			HackathonID: "1",
			LeaderID:    "user-1",
			Members: []models.TeamMember{
				{
					UserID: "user-1",
					Name:   "John Doe",
					Email:  "john@example.com",
					Role:   models.TeamRoleLeader,
					Avatar: "/placeholder.svg?height=32&width=32",
				},
				{
					UserID: "user-2",
					Name:   "Jane Smith",
					Email:  "jane@example.com",
					Role:   models.TeamRoleMember,
					Avatar: "/placeholder.svg?height=32&width=32",
				},
			},
			CreatedAt: "2025-03-15",
		},
	}
}

func seedSubmissions() []models.Submission {
	return []models.Submission{
		{
			ID:             "submission-1",
			UserID:         "user-1",
			TeamID:         "team-1",
			HackathonID:    "1",
			ProjectName:    "AI Voice Assistant",
			Description:    "A voice assistant that can understand natural language and perform tasks",
			RepoURL:        "https://github.com/johndoe/ai-voice-assistant",
			DemoURL:        "https://ai-voice-assistant.vercel.app",
			SubmissionDate: "2025-04-17",
			StartTime:      "2025-04-15T09:00:00Z",
			Status:         models.StatusPending,
			Tasks: []models.Task{
				{Name: "Project Setup", Completed: true},
				{Name: "Core Functionality", Completed: true},
				{Name: "UI Implementation", Completed: true},
				{Name: "Testing", Completed: false},
				{Name: "Documentation", Completed: false},
			},
		},
		{
			ID:             "submission-2",
			UserID:         "user-2",
			HackathonID:    "2",
			ProjectName:    "Real-time Collaboration Platform",
			Description:    "A platform for teams to collaborate in real-time on projects",
			RepoURL:        "https://github.com/janesmith/collab-platform",
			DemoURL:        "https://collab-platform.vercel.app",
			SubmissionDate: "2025-04-23",
			StartTime:      "2025-04-20T10:30:00Z",
			Status:         models.StatusApproved,
			Feedback:       "Excellent implementation of real-time features. Great UI/UX design.",
			Tasks: []models.Task{
				{Name: "Project Setup", Completed: true},
				{Name: "Backend Development", Completed: true},
				{Name: "Frontend Development", Completed: true},
				{Name: "Real-time Features", Completed: true},
				{Name: "Testing", Completed: true},
				{Name: "Documentation", Completed: true},
			},
		},
		{
			ID:             "submission-3",
			UserID:         "user-1",
			HackathonID:    "3",
			ProjectName:    "Next.js E-commerce",
			Description:    "A full-stack e-commerce platform built with Next.js and Firebase",
			RepoURL:        "https://github.com/johndoe/nextjs-ecommerce",
			DemoURL:        "https://nextjs-ecommerce.vercel.app",
			SubmissionDate: "2025-05-03",
			StartTime:      "2025-05-01T08:15:00Z",
			Status:         models.StatusRejected,
			Feedback:       "The project is incomplete. Missing key features like checkout and user authentication.",
			Tasks: []models.Task{
				{Name: "Project Setup", Completed: true},
				{Name: "Product Listing", Completed: true},
				{Name: "Shopping Cart", Completed: true},
				{Name: "User Authentication", Completed: false},
				{Name: "Checkout Process", Completed: false},
				{Name: "Testing", Completed: false},
			},
		},
	}
}
