// Package session holds the navigation state of one user's interaction:
// who is logged in, which view is visible, and the selection context the
// context-requiring views render from. All writes go through the methods
// here; each one sets context and view together so a view can never be
// entered without the context it needs.
package session

import (
	"hivemarket/internal/models"
)

// Session is the navigation controller state. The zero value is not
// usable; construct with New.
type Session struct {
	CurrentUser        *models.User
	CurrentView        models.ViewType
	SelectedProject    *models.Project
	SelectedChatPeerID string
	SelectedFreelancer *models.User
}

// New returns a session on the auth view with nobody logged in
func New() *Session {
	return &Session{CurrentView: models.ViewAuth}
}

// LoggedIn reports whether a user is set
func (s *Session) LoggedIn() bool {
	return s.CurrentUser != nil
}

// Login sets the current user and routes to the role-appropriate
// dashboard. Credential verification happened upstream; the user handed
// in is taken as valid.
func (s *Session) Login(user *models.User) {
	s.CurrentUser = user
	s.CurrentView = models.DashboardFor(user.Type)
}

// Logout clears the user and every piece of selection context and
// returns to the auth view.
func (s *Session) Logout() {
	s.CurrentUser = nil
	s.SelectedProject = nil
	s.SelectedChatPeerID = ""
	s.SelectedFreelancer = nil
	s.CurrentView = models.ViewAuth
}

// ViewProject selects a project and opens the details view
func (s *Session) ViewProject(project *models.Project) {
	s.SelectedProject = project
	s.CurrentView = models.ViewProjectDetails
}

// StartChat selects a chat peer and opens the chat view
func (s *Session) StartChat(peerUserID string) {
	s.SelectedChatPeerID = peerUserID
	s.CurrentView = models.ViewChat
}

// ViewFreelancer selects a freelancer and opens their profile view.
// Fails if the user is not a freelancer; the current view is unchanged.
func (s *Session) ViewFreelancer(user *models.User) error {
	if !user.IsFreelancer() {
		return &models.ValidationError{Field: "user", Reason: "not a freelancer"}
	}
	s.SelectedFreelancer = user
	s.CurrentView = models.ViewFreelancerProfile
	return nil
}

// Navigate switches directly to a view that needs no selection context
func (s *Session) Navigate(view models.ViewType) {
	s.CurrentView = view
}

// Dashboard returns the logged-in user's dashboard view, or auth when
// nobody is logged in.
func (s *Session) Dashboard() models.ViewType {
	if s.CurrentUser == nil {
		return models.ViewAuth
	}
	return models.DashboardFor(s.CurrentUser.Type)
}
