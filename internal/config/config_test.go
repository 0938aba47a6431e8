package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, DefaultDataFile, cfg.Data.File)
	assert.Equal(t, DefaultTopN, cfg.Charts.TopN)
	assert.Equal(t, DefaultBins, cfg.Charts.Bins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestParseFull(t *testing.T) {
	doc := `
data:
  file: /exports/songs.csv
  numeric_extras:
    - tempo
charts:
  top_n: 5
  bins: 20
logging:
  level: debug
  format: json
  file: /tmp/trackboard.log
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "/exports/songs.csv", cfg.Data.File)
	assert.Equal(t, []string{"tempo"}, cfg.Data.NumericExtras)
	assert.Equal(t, 5, cfg.Charts.TopN)
	assert.Equal(t, 20, cfg.Charts.Bins)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestParsePartialFillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("charts:\n  top_n: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Charts.TopN)
	assert.Equal(t, DefaultBins, cfg.Charts.Bins)
	assert.Equal(t, DefaultDataFile, cfg.Data.File)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("data: [not: a: mapping"))
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvDataFile, "/env/songs.csv")
	t.Setenv(EnvLogLevel, "trace")

	cfg := New()
	assert.Equal(t, "/env/songs.csv", cfg.Data.File)
	assert.Equal(t, "trace", cfg.Logging.Level)
}

func TestGlobalConfig(t *testing.T) {
	t.Cleanup(func() { SetGlobalConfig(nil) })

	custom := &Config{Charts: ChartsConfig{TopN: 7, Bins: 7}}
	SetGlobalConfig(custom)
	assert.Same(t, custom, GetGlobalConfig())

	SetGlobalConfig(nil)
	assert.NotNil(t, GetGlobalConfig(), "first access loads lazily")
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json"}
	out := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", out.Output)

	lc.File = "/tmp/trackboard.log"
	out = lc.ToLoggingConfig()
	assert.Equal(t, "file", out.Output)
	assert.Equal(t, "/tmp/trackboard.log", out.File)
}
