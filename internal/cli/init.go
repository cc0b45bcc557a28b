package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/meridianapp/meridian/internal/config"
)

// AddInitCommand adds the init command to the root command.
func AddInitCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the Meridian home directory and a default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.WriteDefault()
			if err != nil {
				return err
			}

			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			dataDir, err := cfg.DataDir()
			if err != nil {
				return err
			}
			if err = os.MkdirAll(dataDir, 0o750); err != nil {
				return err
			}
			logsDir, err := cfg.LogsDir()
			if err != nil {
				return err
			}
			if err = os.MkdirAll(logsDir, 0o750); err != nil {
				return err
			}

			cmd.Printf("initialized %s\n", path)
			return nil
		},
	}
	root.AddCommand(cmd)
}
