package cli

import (
	"os"

	"github.com/pankajredekar/taxongorm/internal/utils"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending migrations",
	Long:  "Creates or upgrades the taxonomies and taxons tables",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		db, _ := mustConnect(cfg)
		run, _ := mustRunner(cfg, db)

		pending, err := run.GetPendingMigrations()
		if err != nil {
			utils.PrintError("Failed to get pending migrations: %v", err)
			os.Exit(1)
		}

		if len(pending) == 0 {
			utils.PrintSuccess("No pending migrations")
			return
		}

		utils.PrintInfo("Applying %d migration(s)...", len(pending))

		applied, err := run.Migrate()
		for _, m := range applied {
			utils.PrintInfo("Applied %s - %s", m.Version(), m.Name())
		}
		if err != nil {
			utils.PrintError("Failed to apply migrations: %v", err)
			os.Exit(1)
		}

		utils.PrintSuccess("Applied %d migration(s)", len(applied))
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
