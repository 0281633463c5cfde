package ui

import (
	"fmt"
	"strings"

	"hivemarket/internal/dispatch"
	"hivemarket/internal/models"
	"hivemarket/internal/util"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))
)

// View renders the UI
func (a *App) View() string {
	if !a.Ready {
		return "Initializing..."
	}

	screen, err := dispatch.Dispatch(a.Session, a.Store)
	if err != nil {
		// Never reachable through the controller's own operations.
		return errorStyle.Render(fmt.Sprintf("internal error: %v", err))
	}

	header := titleStyle.Render(a.headerFor(screen))
	var content string
	if a.form != nil {
		content = a.form.View()
	} else {
		content = a.renderScreen(screen)
	}

	sections := []string{header, content}
	if a.ErrorMessage != "" {
		sections = append(sections, errorStyle.Render(a.ErrorMessage))
	}
	sections = append(sections,
		statusStyle.Render(a.StatusMessage),
		statusStyle.Render(a.helpFor(screen)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) headerFor(screen dispatch.Screen) string {
	name := "hivemarket"
	if user := a.Session.CurrentUser; user != nil {
		name = fmt.Sprintf("hivemarket — %s (%s)", user.Name, user.Type)
	}
	return name
}

func (a *App) renderScreen(screen dispatch.Screen) string {
	switch screen := screen.(type) {
	case dispatch.Auth:
		return a.userList.View()
	case dispatch.FreelancerDashboard, dispatch.ClientDashboard:
		return a.projectList.View()
	case dispatch.ProjectBrowser, dispatch.BuzzBoard:
		if a.peopleTab {
			return a.userList.View()
		}
		return a.projectList.View()
	case dispatch.ProjectDetails:
		return a.renderDetails(screen)
	case dispatch.Chat:
		return a.renderChat(screen)
	case dispatch.FreelancerProfile:
		return renderFreelancer(screen.Freelancer)
	default:
		return ""
	}
}

func (a *App) renderDetails(screen dispatch.ProjectDetails) string {
	p := screen.Project
	names := a.userNames()

	lines := []string{
		headingStyle.Render(p.Title),
		dimStyle.Render(fmt.Sprintf("%s · %s · due %s · posted by %s",
			p.Status, util.FormatBudget(p.Budget), util.FormatDate(p.Deadline), names[p.ClientID])),
		"",
		p.Description,
		"",
		dimStyle.Render("Skills: " + strings.Join(p.Skills, ", ")),
	}

	if p.FreelancerID != "" {
		lines = append(lines, "", fmt.Sprintf("Assigned to %s", names[p.FreelancerID]))
		if p.LastUpdate != "" {
			lines = append(lines, dimStyle.Render(fmt.Sprintf("%d%% — %s", p.Progress, p.LastUpdate)))
		}
	}

	lines = append(lines, "", headingStyle.Render(fmt.Sprintf("Bids (%d)", len(p.Bids))))
	if len(p.Bids) == 0 {
		lines = append(lines, dimStyle.Render("  No bids yet"))
	}
	for i, bid := range p.Bids {
		line := fmt.Sprintf("  %s — %s", names[bid.FreelancerID], util.FormatBudget(bid.Amount))
		if bid.IsQuickBid {
			line += " ⚡"
		}
		if bid.Message != "" {
			line += dimStyle.Render("  " + util.Truncate(bid.Message, 40))
		}
		if i == a.bidCursor {
			line = selectedStyle.Render("▸" + line[1:])
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func (a *App) renderChat(screen dispatch.Chat) string {
	names := a.userNames()
	peer := names[screen.PeerID]
	if peer == "" {
		peer = screen.PeerID
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headingStyle.Padding(0, 1).Render("Chat with "+peer),
		a.chatLog.View(),
		"  "+a.chatInput.View(),
	)
}

// renderMessages formats a chat history, newest last
func renderMessages(messages []*models.ChatMessage, selfID string, names map[string]string) string {
	if len(messages) == 0 {
		return dimStyle.Render("  No messages yet — say hi!")
	}

	var lines []string
	for _, m := range messages {
		who := names[m.SenderID]
		if m.SenderID == selfID {
			who = "you"
		}
		body := m.Content
		if m.Emoji != "" {
			body = m.Emoji
		}
		stamp := m.Timestamp.Format("15:04")
		lines = append(lines, fmt.Sprintf("  %s %s: %s", dimStyle.Render(stamp), headingStyle.Render(who), body))
	}
	return strings.Join(lines, "\n")
}

func renderFreelancer(user *models.User) string {
	lines := []string{headingStyle.Render(user.Name)}
	if user.Verified {
		lines[0] += " ✓"
	}

	fp := user.Freelancer
	if fp != nil {
		lines = append(lines,
			dimStyle.Render(fmt.Sprintf("%s · %.1f★ · %d completed projects",
				fp.University, fp.Rating, fp.CompletedProjects)),
			"",
			fp.Bio,
			"",
			dimStyle.Render("Skills: "+strings.Join(fp.Skills, ", ")),
		)
		if len(fp.Endorsements) > 0 {
			var pairs []string
			for _, skill := range fp.Skills {
				if count, ok := fp.Endorsements[skill]; ok {
					pairs = append(pairs, fmt.Sprintf("%s (%d)", skill, count))
				}
			}
			lines = append(lines, dimStyle.Render("Endorsed: "+strings.Join(pairs, ", ")))
		}
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func (a *App) helpFor(screen dispatch.Screen) string {
	switch screen.(type) {
	case dispatch.Auth:
		return "↑/↓: choose · enter: log in · q: quit"
	case dispatch.FreelancerDashboard:
		return "enter: open · c: chat · b: browse · z: buzz · p: profile · L: log out · q: quit"
	case dispatch.ClientDashboard:
		return "enter: open · n: new project · c: chat · b: browse · z: buzz · p: profile · L: log out · q: quit"
	case dispatch.ProjectBrowser, dispatch.BuzzBoard:
		return "tab: projects/people · enter: open · c: chat · esc: back · q: quit"
	case dispatch.ProjectDetails:
		return "↑/↓: bids · a: accept bid · b: bid · B: quick bid · c: chat · esc: back · q: quit"
	case dispatch.Chat:
		return "enter: send · esc: back"
	case dispatch.FreelancerProfile:
		return "c: chat · esc: back · q: quit"
	default:
		return "esc: back · q: quit"
	}
}
