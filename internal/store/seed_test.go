package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"hivemarket/internal/models"
)

func TestSeededData(t *testing.T) {
	s := NewSeeded()

	projects := s.Projects()
	if len(projects) != 5 {
		t.Fatalf("projects: got %d, want 5", len(projects))
	}
	if len(s.Users()) != 6 {
		t.Fatalf("users: got %d, want 6", len(s.Users()))
	}

	p2, err := s.ProjectByID("2")
	if err != nil {
		t.Fatal(err)
	}
	if p2.Status != models.StatusInProgress || p2.FreelancerID != "freelancer1" {
		t.Errorf("project 2: %s/%s", p2.Status, p2.FreelancerID)
	}
	if p2.Progress != 75 || p2.LastUpdate == "" {
		t.Errorf("project 2 progress: %d %q", p2.Progress, p2.LastUpdate)
	}

	for _, id := range []string{"1", "3", "4", "5"} {
		p, err := s.ProjectByID(id)
		if err != nil {
			t.Fatal(err)
		}
		if p.Status != models.StatusOpen {
			t.Errorf("project %s: got %s, want open", id, p.Status)
		}
		if len(p.Bids) != 0 {
			t.Errorf("project %s seeded with bids", id)
		}
	}

	for _, id := range []string{"freelancer1", "freelancer2", "freelancer3", "freelancer4"} {
		u, err := s.UserByID(id)
		if err != nil {
			t.Fatal(err)
		}
		if !u.IsFreelancer() || u.Freelancer == nil {
			t.Errorf("%s missing freelancer profile", id)
		}
	}
	for _, id := range []string{"client1", "client2"} {
		u, err := s.UserByID(id)
		if err != nil {
			t.Fatal(err)
		}
		if u.Type != models.TypeClient {
			t.Errorf("%s: got %s, want client", id, u.Type)
		}
	}
}

func TestNewSeededFromFile(t *testing.T) {
	seed := SeedFile{
		Users: []*models.User{
			{ID: "c9", Name: "Acme", Email: "a@acme.io", Type: models.TypeClient},
			{ID: "f9", Name: "Jo", Email: "jo@uni.edu", Type: models.TypeFreelancer},
		},
		Projects: []*models.Project{
			{ID: "p9", Title: "Tiny site", Status: models.StatusOpen, ClientID: "c9", Budget: 100},
		},
	}

	data, err := json.Marshal(seed)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	s, err := NewSeededFromFile(path)
	if err != nil {
		t.Fatalf("NewSeededFromFile: %v", err)
	}

	if len(s.Users()) != 2 || len(s.Projects()) != 1 {
		t.Errorf("loaded %d users, %d projects", len(s.Users()), len(s.Projects()))
	}
	if _, err := s.AcceptBid("p9", "f9"); err != nil {
		t.Errorf("loaded store not operable: %v", err)
	}
}

func TestNewSeededFromFileMissing(t *testing.T) {
	if _, err := NewSeededFromFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("missing file accepted")
	}
}
