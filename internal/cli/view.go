package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxorbit/pkg/viewer"
)

// viewCommand creates the view command, which opens the interactive window.
func (c *CLI) viewCommand() *cobra.Command {
	var flags sceneFlags
	var width, height int

	cmd := &cobra.Command{
		Use:   "view <source>",
		Short: "Open the orbit scene in an interactive window",
		Long: `View builds the scene and opens a resizable window.

  drag left     orbit
  drag right    pan
  wheel         zoom
  arrows, +/-   orbit and zoom from the keyboard
  L             toggle legend
  R             reset camera
  Esc, Q        quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			vc := cfg.Viewer
			if width > 0 {
				vc.Width = width
			}
			if height > 0 {
				vc.Height = height
			}

			s, err := c.openScene(ctx, args[0], flags, vc.Width, vc.Height)
			if err != nil {
				return err
			}
			defer s.Close()

			v, err := viewer.New(s.Build, vc, loggerFromContext(ctx))
			if err != nil {
				return err
			}
			return v.Run()
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&width, "width", 0, "initial window width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "initial window height (default from config)")

	return cmd
}
