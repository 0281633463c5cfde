package store

import (
	"encoding/json"
	"os"
	"time"

	"hivemarket/internal/models"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// seedProjects returns the demo project board, most recent first
func seedProjects() []*models.Project {
	return []*models.Project{
		{
			ID:          "1",
			Title:       "Build a Modern E-commerce Website",
			Description: "Need a React-based e-commerce site with payment integration and admin dashboard.",
			Skills:      []string{"React", "Node.js", "MongoDB", "Payment Integration"},
			Budget:      1500,
			Deadline:    date("2024-01-15"),
			Status:      models.StatusOpen,
			ClientID:    "client1",
			Bids:        []models.Bid{},
			CreatedAt:   date("2023-12-01"),
		},
		{
			ID:           "2",
			Title:        "Logo Design for Tech Startup",
			Description:  "Modern, minimalist logo design for a AI-focused startup. Need multiple variations.",
			Skills:       []string{"Logo Design", "Branding", "Adobe Illustrator"},
			Budget:       500,
			Deadline:     date("2023-12-20"),
			Status:       models.StatusInProgress,
			ClientID:     "client2",
			FreelancerID: "freelancer1",
			Progress:     75,
			LastUpdate:   "Logo concepts approved, working on final versions",
			CreatedAt:    date("2023-11-25"),
		},
		{
			ID:          "3",
			Title:       "Mobile App Development",
			Description: "Create a cross-platform mobile app for a social networking platform.",
			Skills:      []string{"React Native", "Firebase", "iOS", "Android"},
			Budget:      2500,
			Deadline:    date("2024-02-01"),
			Status:      models.StatusOpen,
			ClientID:    "client1",
			Bids:        []models.Bid{},
			CreatedAt:   date("2023-12-05"),
		},
		{
			ID:          "4",
			Title:       "Video Editor for YouTube Channel",
			Description: "Edit weekly vlogs and promotional videos for a growing YouTube channel.",
			Skills:      []string{"Video Editing", "Adobe Premiere Pro", "After Effects"},
			Budget:      800,
			Deadline:    date("2024-01-10"),
			Status:      models.StatusOpen,
			ClientID:    "client2",
			Bids:        []models.Bid{},
			CreatedAt:   date("2023-12-02"),
		},
		{
			ID:          "5",
			Title:       "Blog Writer for Tech Blog",
			Description: "Write engaging articles on various tech topics, including AI, blockchain, and software development.",
			Skills:      []string{"Content Writing", "SEO", "WordPress"},
			Budget:      300,
			Deadline:    date("2023-12-25"),
			Status:      models.StatusOpen,
			ClientID:    "client1",
			Bids:        []models.Bid{},
			CreatedAt:   date("2023-11-30"),
		},
	}
}

// seedUsers returns the demo roster: four freelancers, two clients
func seedUsers() []*models.User {
	return []*models.User{
		{
			ID:       "freelancer1",
			Name:     "Alex Chen",
			Email:    "alex.chen@stanford.edu",
			Type:     models.TypeFreelancer,
			Verified: true,
			IsOnline: true,
			Freelancer: &models.FreelancerProfile{
				University:        "Stanford University",
				Skills:            []string{"React", "TypeScript", "UI/UX Design", "Node.js"},
				Endorsements:      map[string]int{"React": 15, "TypeScript": 12, "UI/UX Design": 18},
				Rating:            4.8,
				CompletedProjects: 23,
				Bio:               "A passionate frontend developer with a knack for creating beautiful and intuitive user interfaces. I have a strong background in React and TypeScript, and I am always eager to learn new technologies.",
			},
		},
		{
			ID:       "freelancer2",
			Name:     "Sarah Kim",
			Email:    "sarah.kim@mit.edu",
			Type:     models.TypeFreelancer,
			Verified: true,
			Freelancer: &models.FreelancerProfile{
				University:        "MIT",
				Skills:            []string{"Logo Design", "Branding", "Adobe Creative Suite", "Motion Graphics"},
				Endorsements:      map[string]int{"Logo Design": 22, "Branding": 19, "Adobe Creative Suite": 25},
				Rating:            4.9,
				CompletedProjects: 31,
				Bio:               "A creative designer with a passion for branding and visual storytelling. I specialize in creating memorable logos and brand identities that resonate with audiences.",
			},
		},
		{
			ID:       "freelancer3",
			Name:     "David Lee",
			Email:    "david.lee@berkeley.edu",
			Type:     models.TypeFreelancer,
			Verified: true,
			IsOnline: true,
			Freelancer: &models.FreelancerProfile{
				University:        "UC Berkeley",
				Skills:            []string{"Python", "Data Science", "Machine Learning", "TensorFlow"},
				Endorsements:      map[string]int{"Python": 20, "Data Science": 18, "Machine Learning": 15},
				Rating:            4.7,
				CompletedProjects: 15,
				Bio:               "A data scientist with a strong background in machine learning and statistical analysis. I am passionate about using data to solve complex problems and drive business insights.",
			},
		},
		{
			ID:       "freelancer4",
			Name:     "Maria Garcia",
			Email:    "maria.garcia@nyu.edu",
			Type:     models.TypeFreelancer,
			Verified: true,
			Freelancer: &models.FreelancerProfile{
				University:        "New York University",
				Skills:            []string{"Content Writing", "Copywriting", "SEO", "WordPress"},
				Endorsements:      map[string]int{"Content Writing": 30, "SEO": 25, "Copywriting": 28},
				Rating:            4.8,
				CompletedProjects: 42,
				Bio:               "A versatile writer with a passion for creating engaging and informative content. I specialize in writing blog posts, articles, and website copy that drives traffic and conversions.",
			},
		},
		{
			ID:       "client1",
			Name:     "Tech Innovations Inc",
			Email:    "hiring@techinnovations.com",
			Type:     models.TypeClient,
			Verified: true,
			IsOnline: true,
		},
		{
			ID:       "client2",
			Name:     "Creative Solutions LLC",
			Email:    "contact@creativesolutions.com",
			Type:     models.TypeClient,
			Verified: true,
		},
	}
}

// SeedFile is the on-disk shape accepted by NewSeededFromFile
type SeedFile struct {
	Users    []*models.User    `json:"users"`
	Projects []*models.Project `json:"projects"`
}

// NewSeededFromFile creates a store loaded from a JSON seed file instead
// of the built-in demo data.
func NewSeededFromFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, err
	}

	s := New()
	for _, u := range seed.Users {
		if _, err := s.RegisterUser(u); err != nil {
			return nil, err
		}
	}
	s.projects = seed.Projects
	return s, nil
}
