package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `track_name,album_title,lyrics_text,ai_theme,ai_sentiment,ai_sentiment_category,ai_notes,genre_ros,danceability
Alpha,Album,alpha words,love,positive,warm,notes,pop,0.5
Beta,Album,,SKIPPED,,,,rock,0.7
`

func writeTestCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandWiring(t *testing.T) {
	root := NewRootCmd("1.2.3")

	assert.Equal(t, "trackboard", root.Use)
	assert.Equal(t, "1.2.3", root.Version)

	names := make([]string, 0, 2)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "dashboard")
	assert.Contains(t, names, "stats")
}

func TestStatsTableOutput(t *testing.T) {
	path := writeTestCSV(t)

	out, err := execute(t, "stats", "--data", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Tracks:")
	assert.Contains(t, out, "Genre")
}

func TestStatsJSONOutput(t *testing.T) {
	path := writeTestCSV(t)

	out, err := execute(t, "stats", "--data", path, "--output", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	summary, ok := doc["summary"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 2, summary["total"], 1e-9)
}

func TestStatsBadFormat(t *testing.T) {
	path := writeTestCSV(t)

	_, err := execute(t, "stats", "--data", path, "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestStatsMissingFile(t *testing.T) {
	_, err := execute(t, "stats", "--data", filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDashboardNonInteractiveFallback(t *testing.T) {
	// Stdout is not a terminal under go test, so the dashboard prints
	// the overview once instead of entering the alternate screen.
	path := writeTestCSV(t)

	out, err := execute(t, "dashboard", "--data", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Library Overview")
}

func TestResolveDataPathFlagWins(t *testing.T) {
	path := writeTestCSV(t)
	t.Setenv("TRACKBOARD_DATA", "/env/ignored.csv")

	out, err := execute(t, "stats", "--data", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Tracks:")
}
