package components

import (
	"fmt"
	"strings"

	"hivemarket/internal/models"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// UserItem represents a user in a list
type UserItem struct {
	User *models.User
}

// FilterValue returns the filter value for the user item
func (i UserItem) FilterValue() string {
	return i.User.Name
}

// Title returns the title for the user item
func (i UserItem) Title() string {
	title := i.User.Name
	if i.User.Verified {
		title += " ✓"
	}
	if i.User.IsOnline {
		title += " ●"
	}
	return title
}

// Description returns the description line for the user item
func (i UserItem) Description() string {
	if i.User.Type == models.TypeClient {
		return fmt.Sprintf("client · %s", i.User.Email)
	}
	fp := i.User.Freelancer
	if fp == nil {
		return "freelancer"
	}
	return fmt.Sprintf("%.1f★ · %d projects · %s",
		fp.Rating, fp.CompletedProjects, strings.Join(fp.Skills, ", "))
}

// NewUserList creates a list over the given users
func NewUserList(title string, users []*models.User, width, height int) list.Model {
	items := make([]list.Item, len(users))
	for i, u := range users {
		items[i] = UserItem{User: u}
	}

	listModel := list.New(items, list.NewDefaultDelegate(), width, height)
	listModel.Title = title
	listModel.SetShowStatusBar(false)
	listModel.SetShowHelp(false)
	listModel.SetFilteringEnabled(true)
	listModel.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true).
		MarginLeft(2)

	return listModel
}
