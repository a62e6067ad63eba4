package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/layerkit-labs/layerkit/internal/catalogue"
	"github.com/layerkit-labs/layerkit/internal/config"
)

func init() {
	addScaffoldFlags(baseCmd)
	rootCmd.AddCommand(baseCmd)
}

var baseCmd = &cobra.Command{
	Use:   "base",
	Short: "Create the base project skeleton",
	Long: `Create the base project skeleton in the current directory: common utilities,
configuration and theming, core extensions, and a sample "dashboard" feature.

Entries that already exist are skipped, so the command is safe to re-run.
Run it from the project root so that every path resolves under lib/.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Current()
		if err != nil {
			return err
		}

		cat, err := catalogue.Resolve(scaffoldCatalogue, catalogue.Base)
		if err != nil {
			return err
		}
		if cat.IsTemplate() {
			return fmt.Errorf("catalogue %q is a template; use the feature command", cat.Name)
		}

		return runScaffold(cmd, settings, cat.Specs())
	},
}
