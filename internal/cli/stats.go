package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muse-labs/trackboard/internal/catalog"
	"github.com/muse-labs/trackboard/internal/config"
	"github.com/muse-labs/trackboard/internal/stats"
	"github.com/muse-labs/trackboard/internal/tui"
)

// Output formats for the stats command.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// newStatsCmd creates the non-interactive aggregate dump command.
func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the aggregate library stats",
		Long:  "Load the song-metadata export and print the overview charts without entering the dashboard.",
		RunE:  runStats,
	}
	cmd.Flags().StringP("output", "o", outputTable, "output format: table or json")
	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("output")
	if format != outputTable && format != outputJSON {
		return fmt.Errorf("unsupported output format: %s", format)
	}

	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()
	path := resolveDataPath(cmd)

	noCache, _ := cmd.Flags().GetBool("no-cache")
	store := catalog.NewStore(!noCache, catalog.Options{NumericExtras: cfg.Data.NumericExtras})

	cat, err := store.Get(ctx, path)
	if err != nil {
		return describeLoadError(path, err)
	}

	overview := stats.BuildOverview(cat, cfg.Charts.TopN, cfg.Charts.Bins)

	if format == outputJSON {
		data, merr := json.MarshalIndent(overview, "", "  ")
		if merr != nil {
			return fmt.Errorf("encoding stats: %w", merr)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderOverview(overview))
	return nil
}
