package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxorbit/pkg/pipeline"
	"github.com/matzehuels/boxorbit/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var flags sceneFlags
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <source>",
		Short: "Serve the scene, legend and previews over HTTP",
		Long: `Serve builds the scene once and exposes it until interrupted:

  GET /healthz
  GET /api/scene
  GET /api/legend
  GET /preview.{svg,png,webp}?width=&height=&supersample=&legend=`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.openScene(ctx, args[0], flags, pipeline.DefaultWidth, pipeline.DefaultHeight)
			if err != nil {
				return err
			}
			defer s.Close()

			srv, err := server.New(s.Runner, s.Build, loggerFromContext(ctx))
			if err != nil {
				return err
			}
			printSuccess("Serving %s", args[0])
			printKeyValue("Scene", "http://"+addr+"/api/scene")
			printKeyValue("Preview", "http://"+addr+"/preview.png")
			return srv.ListenAndServe(ctx, addr)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}
