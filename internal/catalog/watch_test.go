package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherInvalidatesOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "track_name,album_title\nOld,Album\n")
	store := NewStore(true, Options{})
	ctx := context.Background()

	_, err := store.Get(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 1, store.Loads())

	w, err := NewWatcher(path, store)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("track_name,album_title\nNew,Album\n"), 0o600))

	select {
	case <-w.C:
	case <-time.After(5 * time.Second):
		t.Fatal("no change signal within timeout")
	}

	c, err := store.Get(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Loads(), "invalidation must force a reload")
	track, _ := c.Records[0].Text(ColTrackName)
	assert.Equal(t, "New", track)
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, sampleCSV)
	store := NewStore(true, Options{})
	ctx := context.Background()

	w, err := NewWatcher(path, store)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(dir+"/other.csv", []byte("x\n"), 0o600))

	select {
	case <-w.C:
		t.Fatal("sibling file change must not signal")
	case <-time.After(1 * time.Second):
	}
}

func TestWatcherFailedStart(t *testing.T) {
	// Parent directory does not exist, so Add fails.
	path := filepath.Join(t.TempDir(), "missing", "songs.csv")
	store := NewStore(true, Options{})

	w, err := NewWatcher(path, store)
	require.NoError(t, err)
	require.Error(t, w.Start(context.Background()))

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked after a failed Start")
	}
}

func TestWatcherStopIdempotent(t *testing.T) {
	path := writeSource(t, t.TempDir(), sampleCSV)
	store := NewStore(true, Options{})

	w, err := NewWatcher(path, store)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	w.Stop()
	w.Stop()
}
