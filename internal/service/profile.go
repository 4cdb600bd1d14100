package service

import "github.com/fardannozami/portfolio/internal/model"

// ProfileService serves the static portfolio sections. The content ships
// with the binary; it changes with the owner's CV, not at runtime.
type ProfileService struct {
	profile model.Profile
}

func NewProfileService() *ProfileService {
	return &ProfileService{profile: defaultProfile}
}

func (s *ProfileService) Profile() model.Profile {
	return s.profile
}

var defaultProfile = model.Profile{
	Name:     "Fardan Nozami Ajitama",
	Headline: "Backend Developer",
	Summary: "Backend developer with 3+ years of experience designing and building " +
		"scalable services with Golang, Laravel, and Node.js, backed by PostgreSQL " +
		"and deployed with Docker on AWS.",
	Skills: []model.SkillGroup{
		{
			Category: "Languages & Frameworks",
			Skills: []model.Skill{
				{Name: "Laravel", Level: "Expert"},
				{Name: "Golang", Level: "Advanced"},
				{Name: "Node.js", Level: "Advanced"},
				{Name: "PHP", Level: "Expert"},
				{Name: "JavaScript", Level: "Advanced"},
			},
		},
		{
			Category: "Databases",
			Skills: []model.Skill{
				{Name: "PostgreSQL", Level: "Expert"},
				{Name: "MySQL", Level: "Expert"},
				{Name: "Redis", Level: "Advanced"},
				{Name: "MongoDB", Level: "Intermediate"},
			},
		},
		{
			Category: "DevOps & Tools",
			Skills: []model.Skill{
				{Name: "Docker", Level: "Advanced"},
				{Name: "Git", Level: "Expert"},
			},
		},
	},
	Experience: []model.Experience{
		{
			Title:   "Software Engineer (Backend)",
			Company: "PT Digdaya Inovasi Gemilang",
			Period:  "September 2023 — Present (Remote)",
			Description: "Developing and maintaining high-performance backend systems for " +
				"production-grade web applications. Designed scalable services with Golang " +
				"and PostgreSQL, optimized database performance, and automated testing and " +
				"deployment with GitHub Actions and Docker on AWS EC2.",
		},
		{
			Title:   "Backend Developer",
			Company: "PT Inosoft",
			Period:  "August 2022 — August 2023 (Remote)",
			Description: "Built and maintained Laravel services for enterprise clients, " +
				"focusing on API design, queue-driven workloads, and database tuning.",
		},
		{
			Title:   "Node.js Developer",
			Company: "PT Sambung Digital Indonesia",
			Period:  "January 2022 — December 2022 (Remote)",
			Description: "Delivered Node.js backend features and integrations for digital " +
				"platform products.",
		},
	},
	Projects: []model.Project{
		{
			Title:        "Jemput Jodohmu",
			Description:  "Matchmaking platform handling registration, profiles, and admin workflows.",
			Technologies: []string{"Laravel 12", "MySQL", "cPanel"},
		},
		{
			Title:        "Ship Management System",
			Description:  "Fleet operations backend covering vessel scheduling, crew, and maintenance records.",
			Technologies: []string{"Laravel", "PostgreSQL", "Redis", "Docker"},
		},
		{
			Title:        "Malinau Satu Inovasi",
			Description:  "Regional public-service portal aggregating government services and announcements.",
			Technologies: []string{"Laravel", "MySQL", "Docker"},
		},
	},
	Contact: model.Contact{
		Email:    "fardan.nozami@gmail.com",
		GitHub:   "https://github.com/fardannozami",
		LinkedIn: "https://linkedin.com/in/cah-bantul",
		YouTube:  "https://youtube.com/@programmertelo",
	},
}
