package commands

import (
	"fmt"

	"hivemarket/internal/session"
	"hivemarket/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the marketplace app",
	Long:  `Launch the interactive terminal application.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp()
	},
}

func runApp() error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("error loading seed data: %w", err)
	}

	sess := session.New()
	if globalConfig != nil && globalConfig.DefaultUserID != "" {
		user, err := st.UserByID(globalConfig.DefaultUserID)
		if err != nil {
			return fmt.Errorf("configured default user: %w", err)
		}
		sess.Login(user)
	}

	program := tea.NewProgram(ui.NewApp(st, sess), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
