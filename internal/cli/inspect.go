package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxorbit/pkg/pipeline"
)

// inspectCommand browses the placement of every film.
func (c *CLI) inspectCommand() *cobra.Command {
	var flags sceneFlags
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect <source>",
		Short: "Browse film placements in an interactive table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, cfg, flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			spinner := newSpinnerWithContext(ctx, "Building scene from "+args[0]+"...")
			spinner.Start()
			restore := trackStages(spinner)
			b, err := runner.Build(ctx, pipeline.Options{
				Source:  args[0],
				Config:  &cfg,
				Refresh: flags.refresh,
				Logger:  loggerFromContext(ctx),
			})
			restore()
			spinner.Stop()
			if err != nil {
				return err
			}
			defer b.Close()

			if plain {
				idx := sortedOrder(b.Placements, sortDataset)
				fmt.Println(placementTable(b.Placements, idx, nil).Render())
				return nil
			}

			_, err = tea.NewProgram(NewPlacementListModel(b.Placements), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "print the table and exit")

	return cmd
}
