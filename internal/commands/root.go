package commands

import (
	"hivemarket/internal/config"
	"hivemarket/internal/store"

	"github.com/spf13/cobra"
)

var globalConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "hivemarket",
	Short: "hivemarket - a campus freelance marketplace",
	Long: `hivemarket is a terminal client for a campus freelance marketplace.
Clients post projects and accept bids; student freelancers browse the board,
bid on work and chat with clients. Run without arguments to open the app.`,
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp()
	},
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg
	return rootCmd.Execute()
}

// openStore builds the entity store, honoring a configured seed file
func openStore() (*store.Store, error) {
	if globalConfig != nil && globalConfig.SeedFile != "" {
		return store.NewSeededFromFile(globalConfig.SeedFile)
	}
	return store.NewSeeded(), nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(usersCmd)
}
