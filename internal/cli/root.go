// Package cli provides the command-line interface for Meridian.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meridianapp/meridian/internal/clock"
	"github.com/meridianapp/meridian/internal/config"
	"github.com/meridianapp/meridian/internal/repository"
	"github.com/meridianapp/meridian/internal/store"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// This is set during PersistentPreRunE and should be accessed via GetLogger.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands. It must
// only be called after the root command's PersistentPreRunE has executed.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet restricts logging to warnings and errors.
	Quiet bool
}

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "only log warnings and errors")
}

// openRepository builds the repository over the configured data directory
// and loads every collection.
func openRepository(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*repository.Repository, error) {
	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}
	repo := repository.New(store.New(dataDir, logger), clock.RealClock{}, logger)
	if err = repo.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	return repo, nil
}

// newRootCmd creates and returns the root command for the meridian CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meridian",
		Short: "Meridian - personal project and task manager",
		Long: `Meridian manages a hierarchy of projects, phases and tasks, with mindmaps
and a day planner, stored as plain JSON documents under ~/.meridian.

All reads come from a single in-memory repository, and every mutation is
validated against the structural rules of the hierarchy before it reaches
disk.`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			globalLoggerMu.Lock()
			globalLogger = InitLogger(cfg, flags.Verbose, flags.Quiet)
			globalLoggerMu.Unlock()
			return nil
		},
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	AddInitCommand(cmd)
	AddSummaryCommand(cmd)
	AddProjectsCommand(cmd)
	AddReloadCommand(cmd)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, info)
	defer CloseLogFile()
	return cmd.ExecuteContext(ctx)
}
