package cli

import (
	"fmt"
	"strings"

	"github.com/pankajredekar/taxongorm/internal/slug"
	"github.com/spf13/cobra"
)

var slugifyCmd = &cobra.Command{
	Use:   "slugify <text...>",
	Short: "Print the slug a name would get",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), slug.Make(strings.Join(args, " ")))
	},
}

func init() {
	rootCmd.AddCommand(slugifyCmd)
}
