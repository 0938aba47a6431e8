package config

import "github.com/muse-labs/trackboard/internal/logging"

// ToLoggingConfig bridges the config document to the logging package.
// A configured file path switches output to "file"; otherwise stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := "stderr"
	if lc.File != "" {
		output = "file"
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
