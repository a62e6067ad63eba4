package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/layerkit-labs/layerkit/internal/pathspec"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify <path>...",
	Short: "Show whether paths would be scaffolded as files or directories",
	Long: `Classify each path by the shape of its last segment. A segment ending in a
dot followed by 2-15 lowercase letters ("home_screen.dart") is a file;
everything else is a directory. Nothing on disk is consulted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range args {
			fmt.Fprintf(cmd.OutOrStdout(), "%s::%s\n", p, pathspec.Classify(p))
		}
		return nil
	},
}
