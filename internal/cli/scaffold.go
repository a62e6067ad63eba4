package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/layerkit-labs/layerkit/internal/config"
	"github.com/layerkit-labs/layerkit/internal/pathspec"
	"github.com/layerkit-labs/layerkit/internal/scaffold"
)

// Flags shared by the scaffolding commands (base, feature).
var (
	scaffoldTree      bool
	scaffoldDryRun    bool
	scaffoldCatalogue string
)

func addScaffoldFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&scaffoldTree, "tree", false, "Print the processed entries as a tree")
	cmd.Flags().BoolVar(&scaffoldDryRun, "dry-run", false, "Report what would be created without writing to disk")
	cmd.Flags().StringVar(&scaffoldCatalogue, "catalogue", "", "Use a catalogue file instead of the built-in one")
}

// scaffoldFs returns the filesystem the builder writes to. Dry runs write
// into an in-memory layer over a read-only view of the disk.
func scaffoldFs() afero.Fs {
	disk := afero.NewOsFs()
	if scaffoldDryRun {
		return afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(disk), afero.NewMemMapFs())
	}
	return disk
}

// runScaffold creates specs under the working directory and prints one line
// per entry followed by a summary.
func runScaffold(cmd *cobra.Command, settings config.Settings, specs []pathspec.Spec) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	out := cmd.OutOrStdout()
	b := scaffold.New(scaffoldFs(), cwd, settings)
	report, err := b.Run(specs, scaffold.TextReporter{W: out, RootMarker: settings.RootMarker})
	if err != nil {
		return fmt.Errorf("scaffolding in %s: %w", cwd, err)
	}

	fmt.Fprintf(out, "\n%s\n", report.Summary())
	if scaffoldDryRun {
		fmt.Fprintln(out, "Dry run: nothing was written.")
	}

	if scaffoldTree {
		fmt.Fprintln(out)
		if err := scaffold.WriteTree(out, filepath.Base(cwd), report.Results); err != nil {
			return fmt.Errorf("rendering tree: %w", err)
		}
	}
	return nil
}
