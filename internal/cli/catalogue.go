package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/layerkit-labs/layerkit/internal/catalogue"
	"github.com/layerkit-labs/layerkit/internal/pathspec"
)

var catalogueJSON bool

func init() {
	catalogueListCmd.Flags().BoolVar(&catalogueJSON, "json", false, "Output in JSON format")
	catalogueCmd.AddCommand(catalogueListCmd)
	catalogueCmd.AddCommand(catalogueShowCmd)
	catalogueCmd.AddCommand(catalogueValidateCmd)
	rootCmd.AddCommand(catalogueCmd)
}

var catalogueCmd = &cobra.Command{
	Use:   "catalogue",
	Short: "Inspect scaffold catalogues",
	Long: `Inspect the built-in scaffold catalogues or validate a catalogue file.

A catalogue is a YAML document listing the paths to scaffold, grouped by area.
Catalogues with a placeholder (such as "feature") are templates that need a
name before they can be applied.`,
}

// catalogueEntry represents a catalogue for display.
type catalogueEntry struct {
	Name        string `json:"name"`
	Entries     int    `json:"entries"`
	Template    bool   `json:"template"`
	Description string `json:"description"`
}

var catalogueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in catalogues",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var entries []catalogueEntry
		for _, name := range catalogue.BuiltinNames() {
			c, err := catalogue.Builtin(name)
			if err != nil {
				return err
			}
			entries = append(entries, catalogueEntry{
				Name:        c.Name,
				Entries:     c.Len(),
				Template:    c.IsTemplate(),
				Description: c.Description,
			})
		}

		out := cmd.OutOrStdout()
		if catalogueJSON {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling catalogues: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tENTRIES\tTEMPLATE\tDESCRIPTION")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%d\t%t\t%s\n", e.Name, e.Entries, e.Template, e.Description)
		}
		return w.Flush()
	},
}

var catalogueShowCmd = &cobra.Command{
	Use:   "show <name|file>",
	Short: "Print the entries of a catalogue",
	Long: `Print every entry of a catalogue, grouped, with its file/directory kind.
The argument is a built-in catalogue name or a path to a catalogue file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalogueArg(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%d entries)\n", c.Name, c.Len())
		if c.IsTemplate() {
			fmt.Fprintf(out, "placeholder: %s\n", c.Placeholder)
		}
		for _, g := range c.Groups {
			fmt.Fprintf(out, "\n[%s]\n", g.Name)
			for _, e := range g.Entries {
				fmt.Fprintf(out, "  %-9s %s\n", pathspec.Classify(e), e)
			}
		}
		return nil
	},
}

var catalogueValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalogue file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := catalogue.ValidateFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Valid {
			fmt.Fprintf(out, "%s: valid\n", args[0])
			return nil
		}

		fmt.Fprintf(out, "%s: %d issue(s)\n", args[0], len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
		err = &catalogue.ValidationError{Source: args[0], Issues: result.Issues}
		return &reportedError{err: err}
	},
}

// loadCatalogueArg treats arg as a built-in name when one exists, otherwise
// as a file path.
func loadCatalogueArg(arg string) (*catalogue.Catalogue, error) {
	for _, name := range catalogue.BuiltinNames() {
		if name == arg {
			return catalogue.Builtin(arg)
		}
	}
	return catalogue.LoadFile(arg)
}
