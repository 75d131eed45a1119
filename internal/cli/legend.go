package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxorbit/pkg/layout"
)

// legendCommand prints the legend for the configured palette. It needs no
// dataset: the legend depends only on the palette.
func (c *CLI) legendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "legend",
		Short: "Print the genre legend with colored swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			pal, err := layout.NewPalette(cfg.Palette)
			if err != nil {
				return err
			}
			fmt.Println(StyleTitle.Render("Legend"))
			fmt.Print(renderLegend(layout.Legend(pal)))
			return nil
		},
	}
}
