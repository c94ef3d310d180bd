package cli

import (
	"fmt"
	"os"

	"github.com/pankajredekar/taxongorm/internal/category"
	"github.com/pankajredekar/taxongorm/internal/utils"
	"github.com/spf13/cobra"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Manage taxonomies",
}

var taxonomyCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a taxonomy",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustService()
		slugValue, _ := cmd.Flags().GetString("slug")

		taxonomy, err := svc.CreateTaxonomy(category.TaxonomyInput{Name: args[0], Slug: slugValue})
		if err != nil {
			utils.PrintError("Failed to create taxonomy: %v", err)
			os.Exit(1)
		}

		utils.PrintSuccess("Created taxonomy %d %s (%s)", taxonomy.ID, taxonomy.Name, taxonomy.Slug)
	},
}

var taxonomyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List taxonomies",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustService()

		taxonomies, err := svc.ListTaxonomies()
		if err != nil {
			utils.PrintError("Failed to list taxonomies: %v", err)
			os.Exit(1)
		}

		if len(taxonomies) == 0 {
			utils.PrintInfo("No taxonomies")
			return
		}
		for _, t := range taxonomies {
			fmt.Printf("  %d  %s (%s)\n", t.ID, t.Name, t.Slug)
		}
	},
}

var taxonomyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a taxonomy and all of its taxons",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustID(args[0], "taxonomy")
		svc := mustService()

		if err := svc.DeleteTaxonomy(id); err != nil {
			utils.PrintError("Failed to delete taxonomy: %v", err)
			os.Exit(1)
		}

		utils.PrintSuccess("Deleted taxonomy %d", id)
	},
}

func init() {
	taxonomyCreateCmd.Flags().String("slug", "", "Explicit slug (derived from the name when empty)")

	taxonomyCmd.AddCommand(taxonomyCreateCmd, taxonomyListCmd, taxonomyDeleteCmd)
	rootCmd.AddCommand(taxonomyCmd)
}
