package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/layerkit-labs/layerkit/internal/palette"
)

var (
	paletteSeed  string
	paletteCount int
	paletteList  bool
)

func init() {
	paletteCmd.Flags().StringVar(&paletteSeed, "seed", "129,43,73", "Seed color as r,g,b or #rrggbb")
	paletteCmd.Flags().IntVar(&paletteCount, "count", 10000, "Number of hue steps to generate")
	paletteCmd.Flags().BoolVar(&paletteList, "list", false, "Print every color in the palette")
	rootCmd.AddCommand(paletteCmd)
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Generate hue-rotated variants of a seed color",
	Long: `Generate colors similar to a seed by rotating its hue in 0.05 steps while
keeping saturation and value fixed. Duplicates are collapsed, so the palette
size is usually far smaller than --count.

Prints the palette size and one member; --list prints all of them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := palette.ParseColor(paletteSeed)
		if err != nil {
			return err
		}
		if paletteCount < 0 {
			return fmt.Errorf("--count must not be negative, got %d", paletteCount)
		}

		p := palette.Generate(seed, paletteCount)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, p.Len())
		if last, ok := p.Last(); ok {
			fmt.Fprintln(out, last)
		}

		if paletteList {
			for i, c := range p.Colors() {
				fmt.Fprintf(out, "Similar Color %d: %s %s\n", i+1, c, c.Hex())
			}
		}
		return nil
	},
}
