package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxorbit/pkg/buildinfo"
	"github.com/matzehuels/boxorbit/pkg/errors"
)

// configCommand prints the effective configuration as TOML.
func (c *CLI) configCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Config prints the defaults merged with the --config file. The output is a
valid configuration file, so it doubles as a starting point:

  boxorbit config -o boxorbit.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if output == "" {
				return cfg.WriteTOML(cmd.OutOrStdout())
			}

			if err := errors.ValidateOutputPath(output); err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "create %s", output)
			}
			defer f.Close()
			if err := cfg.WriteTOML(f); err != nil {
				return err
			}
			printSuccess("Wrote configuration")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

// versionCommand prints build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
