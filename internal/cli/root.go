// Package cli implements the Cobra command hierarchy for the harvestcx CLI
// tool. The root command defined here is the entry point for all
// subcommands and handles cross-cutting concerns like logging
// initialization and error handling.
package cli

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harvestcx/harvestcx/internal/config"
	"github.com/harvestcx/harvestcx/internal/contextdump"
	"github.com/harvestcx/harvestcx/internal/obs"
)

// flagValues holds the parsed global flag values, populated by
// config.BindFlags during command initialization and validated in
// PersistentPreRunE.
var flagValues *config.FlagValues

var rootCmd = &cobra.Command{
	Use:   "harvestcx",
	Short: "Build filtered context dumps of a codebase for LLM prompts.",
	Long: `harvestcx walks a project tree, applies gitignore-style filtering layered
from built-in defaults, .gitignore, .contextfiles, and an optional caller
override file, and concatenates the surviving text files into a single
context document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ValidateFlags(flagValues, cmd); err != nil {
			return err
		}

		profilePath := filepath.Join(flagValues.ProjectRoot, ".harvestcx.toml")
		profile, err := config.LoadProfile(profilePath)
		if err != nil {
			return err
		}
		config.ApplyProfile(flagValues, profile)

		level := obs.ResolveLogLevel(flagValues.Verbose, flagValues.Quiet)
		format := obs.ResolveLogFormat()
		obs.SetupLogging(level, format)

		slog.Debug("logging initialized", "level", level, "format", format)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDump(cmd, args)
	},
}

func init() {
	flagValues = config.BindFlags(rootCmd)
}

// Execute runs the root command and returns a process exit code. If the
// error is a *contextdump.DumpError, the exit code reflects its Kind;
// otherwise any error returns 1.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		return extractExitCode(err)
	}
	return 0
}

func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var dumpErr *contextdump.DumpError
	if errors.As(err, &dumpErr) {
		return int(dumpErr.Kind) + 1
	}
	return 1
}

// RootCmd returns the root cobra.Command, for use in testing and subcommand
// registration.
func RootCmd() *cobra.Command {
	return rootCmd
}

// GlobalFlags returns the parsed global flag values. Available after
// PersistentPreRunE has run.
func GlobalFlags() *config.FlagValues {
	return flagValues
}
