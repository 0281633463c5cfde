package session

import (
	"errors"
	"testing"

	"hivemarket/internal/models"
)

func freelancer() *models.User {
	return &models.User{ID: "f1", Name: "Jo", Type: models.TypeFreelancer}
}

func client() *models.User {
	return &models.User{ID: "c1", Name: "Acme", Type: models.TypeClient}
}

func TestLoginRoutesByRole(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want models.ViewType
	}{
		{"freelancer", freelancer(), models.ViewFreelancerDashboard},
		{"client", client(), models.ViewClientDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Login(tt.user)
			if s.CurrentView != tt.want {
				t.Errorf("view: got %s, want %s", s.CurrentView, tt.want)
			}
			if s.CurrentUser != tt.user {
				t.Error("current user not set")
			}
		})
	}
}

func TestNewSessionStartsOnAuth(t *testing.T) {
	s := New()
	if s.CurrentView != models.ViewAuth {
		t.Errorf("got %s, want auth", s.CurrentView)
	}
	if s.LoggedIn() {
		t.Error("fresh session reports logged in")
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	s := New()
	s.Login(client())
	s.ViewProject(&models.Project{ID: "p1"})
	s.StartChat("f1")
	if err := s.ViewFreelancer(freelancer()); err != nil {
		t.Fatal(err)
	}

	s.Logout()

	if s.CurrentView != models.ViewAuth {
		t.Errorf("view after logout: %s", s.CurrentView)
	}
	if s.CurrentUser != nil || s.SelectedProject != nil ||
		s.SelectedChatPeerID != "" || s.SelectedFreelancer != nil {
		t.Error("logout left selection context behind")
	}
}

func TestViewProjectRoundTrip(t *testing.T) {
	s := New()
	s.Login(freelancer())

	p := &models.Project{ID: "p1", Title: "Tiny site"}
	s.ViewProject(p)

	if s.CurrentView != models.ViewProjectDetails {
		t.Errorf("view: got %s", s.CurrentView)
	}
	if s.SelectedProject != p {
		t.Error("selected project is not the one passed in")
	}
}

func TestStartChat(t *testing.T) {
	s := New()
	s.Login(client())
	s.StartChat("f1")

	if s.CurrentView != models.ViewChat {
		t.Errorf("view: got %s", s.CurrentView)
	}
	if s.SelectedChatPeerID != "f1" {
		t.Errorf("peer: got %s", s.SelectedChatPeerID)
	}
}

func TestViewFreelancerRejectsClients(t *testing.T) {
	s := New()
	s.Login(freelancer())
	before := s.CurrentView

	err := s.ViewFreelancer(client())
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if s.CurrentView != before {
		t.Error("failed operation changed the view")
	}
	if s.SelectedFreelancer != nil {
		t.Error("failed operation set selection context")
	}
}

func TestViewFreelancer(t *testing.T) {
	s := New()
	s.Login(client())

	f := freelancer()
	if err := s.ViewFreelancer(f); err != nil {
		t.Fatal(err)
	}
	if s.CurrentView != models.ViewFreelancerProfile {
		t.Errorf("view: got %s", s.CurrentView)
	}
	if s.SelectedFreelancer != f {
		t.Error("selected freelancer not set")
	}
}

func TestNavigate(t *testing.T) {
	s := New()
	s.Login(freelancer())

	s.Navigate(models.ViewBuzzBoard)
	if s.CurrentView != models.ViewBuzzBoard {
		t.Errorf("view: got %s", s.CurrentView)
	}
}

func TestDashboard(t *testing.T) {
	s := New()
	if s.Dashboard() != models.ViewAuth {
		t.Error("anonymous dashboard should be auth")
	}
	s.Login(freelancer())
	if s.Dashboard() != models.ViewFreelancerDashboard {
		t.Error("freelancer dashboard wrong")
	}
}
