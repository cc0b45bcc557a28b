package cli

import (
	"github.com/spf13/cobra"

	"github.com/meridianapp/meridian/internal/config"
)

// AddReloadCommand adds the reload command to the root command.
func AddReloadCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reload",
		Short: "Reload every collection from disk and report what loaded",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			repo, err := openRepository(cmd.Context(), cfg, GetLogger())
			if err != nil {
				return err
			}
			if err = repo.ReloadAll(cmd.Context()); err != nil {
				return err
			}
			cmd.Print(renderSummary(repo.Summarize()))
			return nil
		},
	}
	root.AddCommand(cmd)
}
