package commands

import (
	"fmt"
	"strings"

	"hivemarket/internal/models"
	"hivemarket/internal/util"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects on the board",
	Long:  `Print every project with its status, budget and deadline, most recent first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return fmt.Errorf("error loading seed data: %w", err)
		}

		if globalConfig != nil && globalConfig.NoColor {
			color.NoColor = true
		}

		projects := st.Projects()
		if len(projects) == 0 {
			fmt.Println("No projects on the board.")
			return nil
		}

		for _, p := range projects {
			switch p.Status {
			case models.StatusOpen:
				color.Green("open         %s", p.Title)
			case models.StatusInProgress:
				color.Yellow("in-progress  %s", p.Title)
			case models.StatusCompleted:
				color.Blue("completed    %s", p.Title)
			case models.StatusCancelled:
				color.Red("cancelled    %s", p.Title)
			}

			fmt.Printf("\t%s, due %s", util.FormatBudget(p.Budget), util.FormatDate(p.Deadline))
			if len(p.Bids) > 0 {
				fmt.Printf(", %d bids", len(p.Bids))
			}
			fmt.Println()
			fmt.Printf("\t%s\n", strings.Join(p.Skills, ", "))
			fmt.Println()
		}

		return nil
	},
}
