package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pankajredekar/taxongorm/internal/utils"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show migration status",
	Long:  "Shows all applied and pending migrations, and optionally the schema they produce",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		db, _ := mustConnect(cfg)
		run, _ := mustRunner(cfg, db)

		applied, err := run.GetAppliedMigrations()
		if err != nil {
			utils.PrintError("Failed to get applied migrations: %v", err)
			os.Exit(1)
		}

		pending, err := run.GetPendingMigrations()
		if err != nil {
			utils.PrintError("Failed to get pending migrations: %v", err)
			os.Exit(1)
		}

		fmt.Println("\n" + strings.Repeat("=", 60))
		fmt.Println("Migration Status")
		fmt.Println(strings.Repeat("=", 60))

		if len(applied) > 0 {
			fmt.Println("\n✓ Applied Migrations:")
			for _, m := range applied {
				fmt.Printf("  %s - %s\n", m.Version(), m.Name())
			}
		} else {
			fmt.Println("\n✓ Applied Migrations: (none)")
		}

		if len(pending) > 0 {
			fmt.Println("\n○ Pending Migrations:")
			for _, m := range pending {
				fmt.Printf("  %s - %s\n", m.Version(), m.Name())
			}
		} else {
			fmt.Println("\n○ Pending Migrations: (none)")
		}

		if withSchema, _ := cmd.Flags().GetBool("schema"); withSchema {
			fmt.Println("\nSchema:")
			fmt.Print(run.SimulateSchema().Schema.String())
		}

		fmt.Println()
	},
}

func init() {
	showCmd.Flags().Bool("schema", false, "Print the schema produced by all migrations")
	rootCmd.AddCommand(showCmd)
}
