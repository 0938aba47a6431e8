package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muse-labs/trackboard/internal/catalog"
	"github.com/muse-labs/trackboard/internal/config"
	"github.com/muse-labs/trackboard/internal/stats"
	"github.com/muse-labs/trackboard/internal/tui"
)

// newDashboardCmd creates the interactive dashboard command.
func newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Browse the song library interactively",
		Long: "Load the song-metadata export and open the interactive dashboard: " +
			"aggregate charts on the overview, lyrics and AI annotations per song.",
		RunE: runDashboard,
	}
	cmd.Flags().Bool("no-watch", false, "disable live reload when the source file changes")
	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()
	path := resolveDataPath(cmd)

	noCache, _ := cmd.Flags().GetBool("no-cache")
	store := catalog.NewStore(!noCache, catalog.Options{NumericExtras: cfg.Data.NumericExtras})

	cat, err := store.Get(ctx, path)
	if err != nil {
		return describeLoadError(path, err)
	}
	logger.Info().Ctx(ctx).Str("path", path).Int("tracks", len(cat.Records)).Msg("catalog loaded")

	if !isTerminal(os.Stdout) {
		// Not a terminal: print the overview once instead of entering
		// the alternate screen.
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderOverview(stats.BuildOverview(cat, cfg.Charts.TopN, cfg.Charts.Bins)))
		return nil
	}

	opts := tui.DashboardOptions{
		TopN: cfg.Charts.TopN,
		Bins: cfg.Charts.Bins,
	}

	noWatch, _ := cmd.Flags().GetBool("no-watch")
	if !noWatch {
		watcher, werr := catalog.NewWatcher(path, store)
		if werr != nil {
			logger.Warn().Err(werr).Msg("file watching unavailable, live reload disabled")
		} else if werr = watcher.Start(ctx); werr != nil {
			logger.Warn().Err(werr).Msg("file watching unavailable, live reload disabled")
		} else {
			defer watcher.Stop()
			opts.Reload = watcher.C
			opts.Fetch = func(ctx context.Context) (*catalog.Catalog, error) {
				return store.Get(ctx, path)
			}
		}
	}

	model := tui.NewDashboardModel(ctx, cat, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}

// describeLoadError turns loader errors into actionable messages.
func describeLoadError(path string, err error) error {
	switch {
	case errors.Is(err, catalog.ErrSourceMissing):
		return fmt.Errorf("data file %q not found: run the export pipeline first or point --data at an existing export: %w", path, err)
	case errors.Is(err, catalog.ErrSourceMalformed):
		return fmt.Errorf("data file %q is not a readable CSV export: %w", path, err)
	default:
		return fmt.Errorf("loading %q: %w", path, err)
	}
}
