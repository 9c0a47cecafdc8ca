package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// initCmd: polish init
func (a *app) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.MaximumNArgs(1),
		// Skip loading the configuration this is about to replace.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgFile
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				path = DefaultConfigFile
			}
			if err := WriteConfig(path, DefaultConfig()); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", path)
			return nil
		},
	}
}
