package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pankajredekar/taxongorm/internal/category"
	"github.com/pankajredekar/taxongorm/internal/models"
	"github.com/pankajredekar/taxongorm/internal/utils"
	"github.com/spf13/cobra"
)

var taxonCmd = &cobra.Command{
	Use:   "taxon",
	Short: "Manage taxons",
}

var taxonCreateCmd = &cobra.Command{
	Use:   "create <taxonomy-id> <name>",
	Short: "Create a taxon",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		in := category.TaxonInput{
			TaxonomyID: mustID(args[0], "taxonomy"),
			Name:       args[1],
		}
		in.Slug, _ = cmd.Flags().GetString("slug")
		if cmd.Flags().Changed("parent") {
			parent, _ := cmd.Flags().GetUint("parent")
			in.ParentID = &parent
		}
		if cmd.Flags().Changed("priority") {
			priority, _ := cmd.Flags().GetInt("priority")
			in.Priority = &priority
		}

		svc := mustService()
		taxon, err := svc.CreateTaxon(in)
		if err != nil {
			utils.PrintError("Failed to create taxon: %v", err)
			os.Exit(1)
		}

		utils.PrintSuccess("Created taxon %d %s (%s)", taxon.ID, taxon.Name, taxon.Slug)
	},
}

var taxonShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a taxon with its taxonomy, ancestors and children",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustID(args[0], "taxon")
		svc := mustService()

		taxon, err := svc.FindTaxon(id)
		if err != nil {
			utils.PrintError("%v", err)
			os.Exit(1)
		}
		taxonomy, err := svc.Taxonomy(taxon)
		if err != nil {
			utils.PrintError("Failed to load taxonomy: %v", err)
			os.Exit(1)
		}
		ancestors, err := svc.Ancestors(taxon)
		if err != nil {
			utils.PrintError("Failed to load ancestors: %v", err)
			os.Exit(1)
		}
		children, err := svc.Children(taxon)
		if err != nil {
			utils.PrintError("Failed to load children: %v", err)
			os.Exit(1)
		}

		fmt.Printf("ID:       %d\n", taxon.ID)
		fmt.Printf("Name:     %s\n", taxon.Name)
		fmt.Printf("Slug:     %s\n", taxon.Slug)
		fmt.Printf("Taxonomy: %s (%d)\n", taxonomy.Name, taxonomy.ID)
		fmt.Printf("Level:    %d\n", len(ancestors))
		fmt.Printf("Path:     %s\n", breadcrumb(taxon, ancestors))
		if len(children) == 0 {
			fmt.Println("Children: (none)")
			return
		}
		fmt.Println("Children:")
		for _, c := range children {
			printTaxonLine(c, 1)
		}
	},
}

var taxonChildrenCmd = &cobra.Command{
	Use:   "children <id>",
	Short: "List the direct children of a taxon",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustID(args[0], "taxon")
		svc := mustService()

		taxon, err := svc.FindTaxon(id)
		if err != nil {
			utils.PrintError("%v", err)
			os.Exit(1)
		}
		children, err := svc.Children(taxon)
		if err != nil {
			utils.PrintError("Failed to load children: %v", err)
			os.Exit(1)
		}

		if len(children) == 0 {
			utils.PrintInfo("%s has no children", taxon.Name)
			return
		}
		for _, c := range children {
			printTaxonLine(c, 0)
		}
	},
}

var taxonTreeCmd = &cobra.Command{
	Use:   "tree <taxonomy-id>",
	Short: "Print the taxon tree of a taxonomy",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustID(args[0], "taxonomy")
		svc := mustService()

		tree, err := svc.Tree(id)
		if err != nil {
			utils.PrintError("Failed to load tree: %v", err)
			os.Exit(1)
		}

		if len(tree) == 0 {
			utils.PrintInfo("Taxonomy %d has no taxons", id)
			return
		}
		category.Walk(tree, func(n category.TreeNode) {
			printTaxonLine(n.Taxon, n.Level)
		})
	},
}

var taxonMoveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move a taxon under another parent or to the top level",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustID(args[0], "taxon")

		var update category.TaxonUpdate
		toRoot, _ := cmd.Flags().GetBool("root")
		switch {
		case toRoot:
			update.MakeRoot = true
		case cmd.Flags().Changed("parent"):
			parent, _ := cmd.Flags().GetUint("parent")
			update.ParentID = &parent
		default:
			utils.PrintError("Either --parent or --root is required")
			os.Exit(1)
		}

		svc := mustService()
		taxon, err := svc.UpdateTaxon(id, update)
		if err != nil {
			utils.PrintError("Failed to move taxon: %v", err)
			os.Exit(1)
		}

		if taxon.ParentID == nil {
			utils.PrintSuccess("Moved %s to the top level", taxon.Name)
			return
		}
		utils.PrintSuccess("Moved %s under taxon %d", taxon.Name, *taxon.ParentID)
	},
}

var taxonDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a taxon and its subtree",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustID(args[0], "taxon")
		svc := mustService()

		removed, err := svc.DeleteTaxon(id)
		if err != nil {
			utils.PrintError("Failed to delete taxon: %v", err)
			os.Exit(1)
		}

		utils.PrintSuccess("Deleted %d taxon(s)", removed)
	},
}

func printTaxonLine(t models.Taxon, level int) {
	fmt.Printf("%s%d  %s (%s)\n", strings.Repeat("  ", level+1), t.ID, t.Name, t.Slug)
}

func breadcrumb(taxon *models.Taxon, ancestors []models.Taxon) string {
	parts := make([]string, 0, len(ancestors)+1)
	for i := len(ancestors) - 1; i >= 0; i-- {
		parts = append(parts, ancestors[i].Name)
	}
	parts = append(parts, taxon.Name)
	return strings.Join(parts, " > ")
}

func init() {
	taxonCreateCmd.Flags().Uint("parent", 0, "Parent taxon id")
	taxonCreateCmd.Flags().String("slug", "", "Explicit slug (derived from the name when empty)")
	taxonCreateCmd.Flags().Int("priority", 0, "Ordering among siblings")

	taxonMoveCmd.Flags().Uint("parent", 0, "New parent taxon id")
	taxonMoveCmd.Flags().Bool("root", false, "Move to the top level")

	taxonCmd.AddCommand(taxonCreateCmd, taxonShowCmd, taxonChildrenCmd, taxonTreeCmd, taxonMoveCmd, taxonDeleteCmd)
	rootCmd.AddCommand(taxonCmd)
}
