package ui

import (
	"fmt"
	"strings"

	"hivemarket/internal/dispatch"
	"hivemarket/internal/models"
	"hivemarket/internal/session"
	"hivemarket/internal/store"
	"hivemarket/internal/ui/components"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// emojiShortcuts maps chat shortcuts to the emoji they send
var emojiShortcuts = map[string]string{
	":+1:":   "👍",
	":fire:": "🔥",
	":tada:": "🎉",
}

// App is the bubbletea model driving the whole application. It owns no
// entity state: everything it renders comes from the dispatcher, and
// every mutation is routed through the session or the store.
type App struct {
	Store   *store.Store
	Session *session.Session

	Width  int
	Height int
	Ready  bool

	StatusMessage string
	ErrorMessage  string

	projectList list.Model
	userList    list.Model
	peopleTab   bool
	bidCursor   int
	form        *form
	chatInput   textinput.Model
	chatLog     viewport.Model
}

// NewApp creates the application model
func NewApp(st *store.Store, sess *session.Session) *App {
	input := textinput.New()
	input.Placeholder = "Say something... (:+1: :fire: :tada:)"
	input.CharLimit = 280
	input.Width = 60

	return &App{
		Store:         st,
		Session:       sess,
		StatusMessage: "Welcome to hivemarket",
		chatInput:     input,
	}
}

// Init initializes the model
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles UI updates
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width = msg.Width
		a.Height = msg.Height
		if !a.Ready {
			a.chatLog = viewport.New(msg.Width, a.listHeight())
			a.Ready = true
		} else {
			a.chatLog.Width = msg.Width
			a.chatLog.Height = a.listHeight()
		}
		a.rebuild()
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			return a.updateForm(msg)
		}
		if a.Session.CurrentView == models.ViewChat {
			return a.updateChat(msg)
		}
		return a.updateKeys(msg)
	}

	if a.Session.CurrentView == models.ViewChat && a.Ready {
		var cmd tea.Cmd
		a.chatLog, cmd = a.chatLog.Update(msg)
		return a, cmd
	}
	return a, nil
}

// updateKeys handles navigation keys outside of forms and chat
func (a *App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.ErrorMessage = ""
	view := a.Session.CurrentView

	// View-specific keys first, then list movement.
	switch view {
	case models.ViewAuth:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "enter":
			if item, ok := a.userList.SelectedItem().(components.UserItem); ok {
				a.Session.Login(item.User)
				a.StatusMessage = fmt.Sprintf("Logged in as %s", item.User.Name)
				a.rebuild()
			}
			return a, nil
		}
		return a.updateUserList(msg)

	case models.ViewFreelancerDashboard, models.ViewClientDashboard:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "enter":
			if item, ok := a.projectList.SelectedItem().(components.ProjectItem); ok {
				a.Session.ViewProject(item.Project)
				a.bidCursor = 0
			}
			return a, nil
		case "n":
			if a.Session.CurrentUser.Type == models.TypeClient {
				a.form = newForm(formNewProject, "Post a Project", []formField{
					{Label: "Title", Placeholder: "What needs doing?"},
					{Label: "Description", Placeholder: "Describe the work"},
					{Label: "Skills (comma separated)", Placeholder: "React, Node.js"},
					{Label: "Budget ($)", Placeholder: "1500"},
					{Label: "Deadline (YYYY-MM-DD)", Placeholder: "2024-01-15"},
				})
			}
			return a, nil
		case "c":
			if item, ok := a.projectList.SelectedItem().(components.ProjectItem); ok {
				if peer := a.chatPeerFor(item.Project); peer != "" {
					a.Session.StartChat(peer)
					a.enterChat()
				}
			}
			return a, nil
		case "b":
			a.navigate(models.ViewProjectBrowser)
			return a, nil
		case "z":
			a.navigate(models.ViewBuzzBoard)
			return a, nil
		case "p":
			a.openProfile()
			return a, nil
		case "L":
			a.Session.Logout()
			a.StatusMessage = "Logged out"
			a.rebuild()
			return a, nil
		}
		return a.updateProjectList(msg)

	case models.ViewProjectBrowser, models.ViewBuzzBoard:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "tab":
			a.peopleTab = !a.peopleTab
			return a, nil
		case "esc":
			a.navigate(a.Session.Dashboard())
			return a, nil
		case "enter":
			if a.peopleTab {
				if item, ok := a.userList.SelectedItem().(components.UserItem); ok {
					if item.User.IsFreelancer() {
						if err := a.Session.ViewFreelancer(item.User); err != nil {
							a.ErrorMessage = err.Error()
						}
					} else {
						a.Session.StartChat(item.User.ID)
						a.enterChat()
					}
				}
			} else if item, ok := a.projectList.SelectedItem().(components.ProjectItem); ok {
				a.Session.ViewProject(item.Project)
				a.bidCursor = 0
			}
			return a, nil
		case "c":
			if a.peopleTab {
				if item, ok := a.userList.SelectedItem().(components.UserItem); ok {
					a.Session.StartChat(item.User.ID)
					a.enterChat()
				}
			}
			return a, nil
		}
		if a.peopleTab {
			return a.updateUserList(msg)
		}
		return a.updateProjectList(msg)

	case models.ViewProjectDetails:
		return a.updateDetails(msg)

	case models.ViewFreelancerProfile:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "esc":
			a.navigate(a.Session.Dashboard())
		case "c":
			a.Session.StartChat(a.Session.SelectedFreelancer.ID)
			a.enterChat()
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.navigate(a.Session.Dashboard())
	}
	return a, nil
}

// updateDetails handles keys on the project details screen
func (a *App) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	project := a.Session.SelectedProject
	user := a.Session.CurrentUser

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.navigate(a.Session.Dashboard())
	case "up", "k":
		if a.bidCursor > 0 {
			a.bidCursor--
		}
	case "down", "j":
		if a.bidCursor < len(project.Bids)-1 {
			a.bidCursor++
		}
	case "c":
		if peer := a.chatPeerFor(project); peer != "" {
			a.Session.StartChat(peer)
			a.enterChat()
		}
	case "a":
		if user.Type == models.TypeClient && user.ID == project.ClientID && len(project.Bids) > 0 {
			bid := project.Bids[a.bidCursor]
			updated, err := a.Store.AcceptBid(project.ID, bid.FreelancerID)
			if err != nil {
				a.ErrorMessage = err.Error()
				return a, nil
			}
			a.Session.ViewProject(updated)
			a.StatusMessage = "Bid accepted — project is now in progress"
		}
	case "b":
		if user.IsFreelancer() {
			a.form = newForm(formBid, fmt.Sprintf("Bid on %q", project.Title), []formField{
				{Label: "Message", Placeholder: "Why you?"},
				{Label: "Amount ($)", Placeholder: fmt.Sprintf("%.0f", project.Budget)},
			})
		}
	case "B":
		if user.IsFreelancer() {
			a.submitBid("I can start right away!", project.Budget, true)
		}
	}
	return a, nil
}

// updateChat handles keys on the chat screen
func (a *App) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.chatInput.Blur()
		a.navigate(a.Session.Dashboard())
		return a, nil
	case "enter":
		text := strings.TrimSpace(a.chatInput.Value())
		if text == "" {
			return a, nil
		}
		content, emoji := text, ""
		if e, ok := emojiShortcuts[text]; ok {
			content, emoji = "", e
		}
		_, err := a.Store.SendMessage(a.Session.CurrentUser.ID, a.Session.SelectedChatPeerID, content, emoji)
		if err != nil {
			a.ErrorMessage = err.Error()
			return a, nil
		}
		a.chatInput.SetValue("")
		a.refreshChatLog()
		return a, nil
	}

	var cmd tea.Cmd
	a.chatInput, cmd = a.chatInput.Update(msg)
	return a, cmd
}

// updateForm handles keys while a form is open
func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		wasProfile := a.form.purpose == formProfile
		a.form = nil
		if wasProfile {
			a.navigate(a.Session.Dashboard())
		}
		return a, nil
	case "tab":
		a.form.Next()
		return a, nil
	case "enter":
		if !a.form.OnLast() {
			a.form.Next()
			return a, nil
		}
		a.submitForm()
		return a, nil
	}

	cmd := a.form.Update(msg)
	return a, cmd
}

// submitForm routes a completed form to the right store operation
func (a *App) submitForm() {
	values := a.form.Values()
	switch a.form.purpose {
	case formNewProject:
		input := store.CreateProjectInput{
			Title:       values[0],
			Description: values[1],
			Skills:      splitSkills(values[2]),
			Budget:      values[3],
			Deadline:    values[4],
		}
		if _, err := a.Store.CreateProject(input, a.Session.CurrentUser.ID); err != nil {
			a.ErrorMessage = err.Error()
			return
		}
		a.form = nil
		a.StatusMessage = "Project posted"
		a.navigate(models.ViewClientDashboard)

	case formBid:
		amount := 0.0
		fmt.Sscanf(values[1], "%f", &amount)
		a.form = nil
		a.submitBid(values[0], amount, false)

	case formProfile:
		updated := a.Session.CurrentUser.Clone()
		updated.Name = values[0]
		updated.Email = values[1]
		if updated.IsFreelancer() {
			if updated.Freelancer == nil {
				updated.Freelancer = &models.FreelancerProfile{}
			}
			updated.Freelancer.University = values[2]
			updated.Freelancer.Skills = splitSkills(values[3])
			updated.Freelancer.Bio = values[4]
		}
		saved, err := a.Store.UpdateUser(updated)
		if err != nil {
			a.ErrorMessage = err.Error()
			return
		}
		a.Session.CurrentUser = saved
		a.form = nil
		a.StatusMessage = "Profile saved"
		a.navigate(a.Session.Dashboard())
	}
}

// submitBid sends a bid on the selected project and refreshes it
func (a *App) submitBid(message string, amount float64, quick bool) {
	project := a.Session.SelectedProject
	_, err := a.Store.SubmitBid(store.SubmitBidInput{
		ProjectID:    project.ID,
		FreelancerID: a.Session.CurrentUser.ID,
		Message:      message,
		Amount:       amount,
		IsQuickBid:   quick,
	})
	if err != nil {
		a.ErrorMessage = err.Error()
		return
	}
	refreshed, err := a.Store.ProjectByID(project.ID)
	if err != nil {
		a.ErrorMessage = err.Error()
		return
	}
	a.Session.ViewProject(refreshed)
	if quick {
		a.StatusMessage = "Quick bid sent"
	} else {
		a.StatusMessage = "Bid sent"
	}
}

// openProfile opens the profile builder form for the current user
func (a *App) openProfile() {
	user := a.Session.CurrentUser
	fields := []formField{
		{Label: "Name", Value: user.Name},
		{Label: "Email", Value: user.Email},
	}
	if user.IsFreelancer() {
		fp := user.Freelancer
		if fp == nil {
			fp = &models.FreelancerProfile{}
		}
		fields = append(fields,
			formField{Label: "University", Value: fp.University},
			formField{Label: "Skills (comma separated)", Value: strings.Join(fp.Skills, ", ")},
			formField{Label: "Bio", Value: fp.Bio},
		)
	}
	a.form = newForm(formProfile, "Edit Profile", fields)
	a.Session.Navigate(models.ViewProfile)
}

// navigate switches views and rebuilds the lists backing the new view
func (a *App) navigate(view models.ViewType) {
	a.Session.Navigate(view)
	a.rebuild()
}

// enterChat focuses the input and fills the history viewport
func (a *App) enterChat() {
	a.chatInput.Focus()
	a.refreshChatLog()
}

func (a *App) refreshChatLog() {
	if !a.Ready {
		return
	}
	messages := a.Store.MessagesBetween(a.Session.CurrentUser.ID, a.Session.SelectedChatPeerID)
	a.chatLog.SetContent(renderMessages(messages, a.Session.CurrentUser.ID, a.userNames()))
	a.chatLog.GotoBottom()
}

// chatPeerFor picks the other party of a project relative to the
// current user: the assigned freelancer for the owning client, the
// client for everyone else.
func (a *App) chatPeerFor(project *models.Project) string {
	if a.Session.CurrentUser.ID == project.ClientID {
		return project.FreelancerID
	}
	return project.ClientID
}

// rebuild recreates the list models for whatever the current view needs
func (a *App) rebuild() {
	if !a.Ready {
		return
	}
	screen, err := dispatch.Dispatch(a.Session, a.Store)
	if err != nil {
		return
	}

	width, height := a.Width, a.listHeight()
	switch screen := screen.(type) {
	case dispatch.Auth:
		a.userList = components.NewUserList("Who are you?", a.Store.Users(), width, height)
	case dispatch.FreelancerDashboard:
		a.projectList = components.NewProjectList("Open Board", screen.Projects, width, height)
	case dispatch.ClientDashboard:
		a.projectList = components.NewProjectList("Your Projects", screen.Projects, width, height)
	case dispatch.ProjectBrowser:
		a.projectList = components.NewProjectList("Browse Projects", screen.Projects, width, height)
		a.userList = components.NewUserList("Browse Freelancers", filterFreelancers(screen.Users), width, height)
	case dispatch.BuzzBoard:
		a.projectList = components.NewProjectList("Buzz Board", screen.Projects, width, height)
		a.userList = components.NewUserList("Who's Around", screen.Users, width, height)
	}
}

func (a *App) updateProjectList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.projectList, cmd = a.projectList.Update(msg)
	return a, cmd
}

func (a *App) updateUserList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.userList, cmd = a.userList.Update(msg)
	return a, cmd
}

// listHeight leaves room for the title, status and help lines
func (a *App) listHeight() int {
	h := a.Height - 6
	if h < 4 {
		h = 4
	}
	return h
}

// userNames maps user ids to display names
func (a *App) userNames() map[string]string {
	names := make(map[string]string)
	for _, u := range a.Store.Users() {
		names[u.ID] = u.Name
	}
	return names
}

func filterFreelancers(users []*models.User) []*models.User {
	var out []*models.User
	for _, u := range users {
		if u.IsFreelancer() {
			out = append(out, u)
		}
	}
	return out
}

func splitSkills(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
