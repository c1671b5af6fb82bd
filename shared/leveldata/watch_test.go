package leveldata

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelIDFromPath(t *testing.T) {
	tests := []struct {
		path string
		id   int
		ok   bool
	}{
		{"levels/Level0.txt", 0, true},
		{"/tmp/x/Level12.tmx", 12, true},
		{"Level3.TXT", 3, true},
		{"levels/Level.txt", 0, false},
		{"levels/Levelx.txt", 0, false},
		{"levels/notes.txt", 0, false},
		{"levels/Level1.png", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			id, ok := LevelIDFromPath(tc.path)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.id, id)
		})
	}
}

func TestWatcherReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644))
	target := filepath.Join(dir, "Level2.txt")
	require.NoError(t, os.WriteFile(target, []byte("(1,1)"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for level write")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, open := <-w.Events
	assert.False(t, open)
}
