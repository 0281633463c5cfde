package components

import (
	"fmt"

	"hivemarket/internal/models"
	"hivemarket/internal/util"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// ProjectItem represents a project in a list
type ProjectItem struct {
	Project *models.Project
}

// FilterValue returns the filter value for the project item
func (i ProjectItem) FilterValue() string {
	return i.Project.Title
}

// Title returns the title for the project item
func (i ProjectItem) Title() string {
	return i.Project.Title
}

// Description returns the description line for the project item
func (i ProjectItem) Description() string {
	status := string(i.Project.Status)
	if i.Project.Status == models.StatusInProgress && i.Project.Progress > 0 {
		status = fmt.Sprintf("%s %d%%", status, i.Project.Progress)
	}
	return fmt.Sprintf("%s · %s · due %s · %d bids",
		status,
		util.FormatBudget(i.Project.Budget),
		util.FormatDate(i.Project.Deadline),
		len(i.Project.Bids))
}

// NewProjectList creates a list over the given projects
func NewProjectList(title string, projects []*models.Project, width, height int) list.Model {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = ProjectItem{Project: p}
	}

	listModel := list.New(items, list.NewDefaultDelegate(), width, height)
	listModel.Title = title
	listModel.SetShowStatusBar(false)
	listModel.SetShowHelp(false)
	listModel.SetFilteringEnabled(true)
	listModel.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true).
		MarginLeft(2)

	return listModel
}
