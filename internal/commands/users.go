package commands

import (
	"fmt"
	"strings"

	"hivemarket/internal/util"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the marketplace roster",
	Long:  `Print every registered user, freelancers first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return fmt.Errorf("error loading seed data: %w", err)
		}

		if globalConfig != nil && globalConfig.NoColor {
			color.NoColor = true
		}

		fmt.Println("Freelancers:")
		for _, u := range st.Users() {
			if !u.IsFreelancer() {
				continue
			}
			printName(u.Name, u.IsOnline)
			if fp := u.Freelancer; fp != nil {
				fmt.Printf("\t%s, %.1f★, %d completed\n", fp.University, fp.Rating, fp.CompletedProjects)
				fmt.Printf("\t%s\n", strings.Join(fp.Skills, ", "))
				if fp.Bio != "" {
					fmt.Printf("\t%s\n", util.Truncate(fp.Bio, 72))
				}
			}
			fmt.Println()
		}

		fmt.Println("Clients:")
		for _, u := range st.Users() {
			if u.IsFreelancer() {
				continue
			}
			printName(u.Name, u.IsOnline)
			fmt.Printf("\t%s\n\n", u.Email)
		}

		return nil
	},
}

func printName(name string, online bool) {
	if online {
		color.Green("  %s (online)", name)
	} else {
		fmt.Printf("  %s\n", name)
	}
}
