package models

// ViewType names a screen of the application
type ViewType string

const (
	ViewAuth                ViewType = "auth"
	ViewFreelancerDashboard ViewType = "freelancer-dashboard"
	ViewClientDashboard     ViewType = "client-dashboard"
	ViewProjectBrowser      ViewType = "project-browser"
	ViewProjectDetails      ViewType = "project-details"
	ViewProfile             ViewType = "profile"
	ViewChat                ViewType = "chat"
	ViewBuzzBoard           ViewType = "buzz-board"
	ViewFreelancerProfile   ViewType = "freelancer-profile"
)

// NeedsSelection reports whether the view can only render with selection
// context already set on the session.
func (v ViewType) NeedsSelection() bool {
	switch v {
	case ViewProjectDetails, ViewChat, ViewFreelancerProfile:
		return true
	}
	return false
}

// DashboardFor returns the role-appropriate dashboard view
func DashboardFor(t UserType) ViewType {
	if t == TypeFreelancer {
		return ViewFreelancerDashboard
	}
	return ViewClientDashboard
}
