// Package dispatch maps the current session onto the concrete screen to
// render and the exact slice of state that screen receives. It is a pure
// read: it never mutates the session or the store.
package dispatch

import (
	"hivemarket/internal/models"
	"hivemarket/internal/session"
	"hivemarket/internal/store"
)

// Screen is one renderable view plus its props. Each variant carries
// exactly the state its view is granted, nothing more.
type Screen interface {
	View() models.ViewType
}

// Auth is the login screen; it receives nothing
type Auth struct{}

func (Auth) View() models.ViewType { return models.ViewAuth }

// FreelancerDashboard shows the full project list to a freelancer
type FreelancerDashboard struct {
	User     *models.User
	Projects []*models.Project
}

func (FreelancerDashboard) View() models.ViewType { return models.ViewFreelancerDashboard }

// ClientDashboard shows a client only their own projects
type ClientDashboard struct {
	User     *models.User
	Projects []*models.Project
}

func (ClientDashboard) View() models.ViewType { return models.ViewClientDashboard }

// ProjectBrowser shows every project and the full roster
type ProjectBrowser struct {
	CurrentUser *models.User
	Projects    []*models.Project
	Users       []*models.User
}

func (ProjectBrowser) View() models.ViewType { return models.ViewProjectBrowser }

// ProjectDetails shows the selected project with its bids
type ProjectDetails struct {
	Project     *models.Project
	CurrentUser *models.User
	Users       []*models.User
}

func (ProjectDetails) View() models.ViewType { return models.ViewProjectDetails }

// ProfileBuilder edits the current user's record
type ProfileBuilder struct {
	User *models.User
}

func (ProfileBuilder) View() models.ViewType { return models.ViewProfile }

// Chat shows the conversation with the selected peer
type Chat struct {
	CurrentUser *models.User
	PeerID      string
	Users       []*models.User
	Messages    []*models.ChatMessage
}

func (Chat) View() models.ViewType { return models.ViewChat }

// BuzzBoard is the community feed over all projects and users
type BuzzBoard struct {
	CurrentUser *models.User
	Projects    []*models.Project
	Users       []*models.User
}

func (BuzzBoard) View() models.ViewType { return models.ViewBuzzBoard }

// FreelancerProfile shows the selected freelancer
type FreelancerProfile struct {
	Freelancer *models.User
}

func (FreelancerProfile) View() models.ViewType { return models.ViewFreelancerProfile }

// Dispatch resolves the screen for the session's current view. A missing
// piece of required context is a PreconditionError: the navigation
// controller sets context and view atomically, so it can only mean a
// defect, never a user-reachable state. Unrecognized views fall back to
// the auth screen.
func Dispatch(sess *session.Session, st *store.Store) (Screen, error) {
	switch sess.CurrentView {
	case models.ViewAuth:
		return Auth{}, nil

	case models.ViewFreelancerDashboard:
		if sess.CurrentUser == nil {
			return nil, &models.PreconditionError{View: sess.CurrentView, Missing: "current user"}
		}
		return FreelancerDashboard{User: sess.CurrentUser, Projects: st.Projects()}, nil

	case models.ViewClientDashboard:
		if sess.CurrentUser == nil {
			return nil, &models.PreconditionError{View: sess.CurrentView, Missing: "current user"}
		}
		return ClientDashboard{User: sess.CurrentUser, Projects: st.ProjectsByClient(sess.CurrentUser.ID)}, nil

	case models.ViewProjectBrowser:
		if sess.CurrentUser == nil {
			return nil, &models.PreconditionError{View: sess.CurrentView, Missing: "current user"}
		}
		return ProjectBrowser{CurrentUser: sess.CurrentUser, Projects: st.Projects(), Users: st.Users()}, nil

	case models.ViewProjectDetails:
		if sess.SelectedProject == nil {
			return nil, &models.PreconditionError{View: sess.CurrentView, Missing: "selected project"}
		}
		if sess.CurrentUser == nil {
			return nil, &models.PreconditionError{View: sess.CurrentView, Missing: "current user"}
		}
		return ProjectDetails{Project: sess.SelectedProject, CurrentUser: sess.CurrentUser, Users: st.Users()}, nil

	case models.ViewProfile:
		if sess.CurrentUser == nil {
			return nil, &models.PreconditionError{View: sess.CurrentView, Missing: "current user"}
		}
		return ProfileBuilder{User: sess.CurrentUser}, nil

	case models.ViewChat:
		if sess.SelectedChatPeerID == "" {
			return nil, &models.PreconditionError{View: sess.CurrentView, Missing: "selected chat peer"}
		}
		if sess.CurrentUser == nil {
			return nil, &models.PreconditionError{View: sess.CurrentView, Missing: "current user"}
		}
		return Chat{
			CurrentUser: sess.CurrentUser,
			PeerID:      sess.SelectedChatPeerID,
			Users:       st.Users(),
			Messages:    st.MessagesBetween(sess.CurrentUser.ID, sess.SelectedChatPeerID),
		}, nil

	case models.ViewBuzzBoard:
		if sess.CurrentUser == nil {
			return nil, &models.PreconditionError{View: sess.CurrentView, Missing: "current user"}
		}
		return BuzzBoard{CurrentUser: sess.CurrentUser, Projects: st.Projects(), Users: st.Users()}, nil

	case models.ViewFreelancerProfile:
		if sess.SelectedFreelancer == nil {
			return nil, &models.PreconditionError{View: sess.CurrentView, Missing: "selected freelancer"}
		}
		return FreelancerProfile{Freelancer: sess.SelectedFreelancer}, nil

	default:
		return Auth{}, nil
	}
}
