package cli

import (
	"github.com/spf13/cobra"

	"github.com/muse-labs/trackboard/internal/config"
)

// resolveDataPath decides which CSV to load: the --data flag wins, then
// the TRACKBOARD_DATA environment (applied into the global config at
// load time), then the config file, then the default filename in the
// working directory.
func resolveDataPath(cmd *cobra.Command) string {
	if flagPath, _ := cmd.Flags().GetString("data"); flagPath != "" {
		return flagPath
	}

	cfg := config.GetGlobalConfig()
	if cfg.Data.File != "" {
		return cfg.Data.File
	}
	return config.DefaultDataFile
}
