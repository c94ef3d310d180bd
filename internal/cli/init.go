package cli

import (
	"os"

	"github.com/pankajredekar/taxongorm/internal/config"
	"github.com/pankajredekar/taxongorm/internal/utils"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a taxongorm project",
	Long:  "Creates a taxongorm.yml configuration file in the current directory",
	Run: func(cmd *cobra.Command, args []string) {
		if utils.FileExists(configPath) {
			utils.PrintWarning("%s already exists", configPath)
			return
		}

		cfg := config.Default()
		if url, _ := cmd.Flags().GetString("database-url"); url != "" {
			cfg.DatabaseURL = url
		}

		if err := cfg.Save(configPath); err != nil {
			utils.PrintError("%v", err)
			os.Exit(1)
		}

		utils.PrintSuccess("Initialized taxongorm project")
		utils.PrintInfo("Created %s", configPath)
		utils.PrintInfo("Run 'taxongorm migrate' to create the taxonomy tables")
	},
}

func init() {
	initCmd.Flags().String("database-url", "", "Database URL to write into the config")
	rootCmd.AddCommand(initCmd)
}
