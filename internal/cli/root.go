// Package cli wires the trackboard commands: the interactive dashboard
// and the non-interactive stats dump.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/muse-labs/trackboard/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the trackboard CLI.
// It wires up logging, tracing, and the dashboard and stats subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:     "trackboard",
		Short:   "Song library dashboard",
		Long:    "Trackboard: browse a song-metadata export with aggregate charts, lyrics, and AI annotations",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("data", "", "path to the song-metadata CSV export")
	cmd.PersistentFlags().Bool("no-cache", false, "bypass the load cache and re-read the file every time")
	cmd.AddCommand(newDashboardCmd(), newStatsCmd())

	return cmd
}

const rootCmdExample = `  # Browse the default export interactively
  trackboard dashboard

  # Point at a specific export
  trackboard dashboard --data ~/exports/songs.csv

  # Dump the aggregate stats as JSON
  trackboard stats --output json`
