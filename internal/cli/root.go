package cli

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/pankajredekar/taxongorm/internal/utils"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "taxongorm",
	Short: "Taxonomy and taxon trees on GORM",
	Long:  "taxongorm manages taxonomies and their hierarchical taxons (categories, brands, ...) with slugs and referential constraints",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			utils.PrintWarning("Failed to load .env: %v", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "taxongorm.yml", "Path to the configuration file")
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}
