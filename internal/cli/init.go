package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and a config.yaml holding the current settings.\nAn existing config.yaml is left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, written, err := writeConfigIfMissing(opts.settings.ConfigDir, opts.settings)
			if err != nil {
				return systemError("init: %w", err)
			}
			if written {
				fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Config already exists:", path)
			}
			return nil
		},
	}
}
