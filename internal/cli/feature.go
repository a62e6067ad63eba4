package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/layerkit-labs/layerkit/internal/catalogue"
	"github.com/layerkit-labs/layerkit/internal/config"
	"github.com/layerkit-labs/layerkit/internal/feature"
)

func init() {
	addScaffoldFlags(featureCmd)
	rootCmd.AddCommand(featureCmd)
}

var featureCmd = &cobra.Command{
	Use:   "feature [name]",
	Short: "Create the directory layout for a new feature",
	Long: `Create the data, domain, and presentation layers of a feature module under
lib/features/<name>/.

The name is lowercased and spaces become underscores. It must be at least three
characters, start with a letter, and end with a letter or digit. Without an
argument the name is read from standard input.

Examples:
  layerkit feature payments
  layerkit feature "User Profile" --tree`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Current()
		if err != nil {
			return err
		}

		cat, err := catalogue.Resolve(scaffoldCatalogue, catalogue.Feature)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		var raw string
		if len(args) == 1 {
			raw = args[0]
		} else {
			raw, err = feature.Prompt(cmd.InOrStdin(), out)
			if err != nil {
				return err
			}
		}

		name, err := feature.Parse(raw)
		if err != nil {
			fmt.Fprintln(out, err)
			return &reportedError{err: err}
		}

		token := cat.Token(settings.FeatureToken)
		return runScaffold(cmd, settings, cat.Render(token, name))
	},
}
