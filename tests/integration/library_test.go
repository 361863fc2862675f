package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fir3Fly1995/FlightListChk/internal/checklist"
	"github.com/Fir3Fly1995/FlightListChk/internal/install"
)

// TestStarterLibraryIsFlyable seeds the embedded starter packs and walks a
// full checklist sequence the way the viewer would.
func TestStarterLibraryIsFlyable(t *testing.T) {
	listsDir := t.TempDir()

	seeded, err := install.SeedSampleLists(listsDir, nil)
	require.NoError(t, err)
	require.NotEmpty(t, seeded, "starter packs should seed at least one file")

	aircraft, err := checklist.Scan(listsDir)
	require.NoError(t, err)
	require.NotEmpty(t, aircraft, "seeded library should contain aircraft")

	session := checklist.NewSession()
	for _, ac := range aircraft {
		require.NotEmpty(t, ac.Files, "aircraft %s has no checklists", ac.Name)

		// Walk the sequence front to back, checking every item.
		current := ac.Files[0]
		for {
			items, err := checklist.LoadItems(current.Path)
			require.NoError(t, err)
			require.NotEmpty(t, items, "checklist %s is empty", current.Name)

			for i := range items {
				session.Toggle(current.Path, i, len(items))
			}
			assert.True(t, session.Complete(current.Path, len(items)),
				"checklist %s should be complete after checking every item", current.Name)

			next, ok := checklist.Next(ac.Files, current.Name)
			if !ok {
				break
			}
			current = next
		}
	}
}

func TestSeededNamesReadCleanly(t *testing.T) {
	listsDir := t.TempDir()
	_, err := install.SeedSampleLists(listsDir, nil)
	require.NoError(t, err)

	aircraft, err := checklist.Scan(listsDir)
	require.NoError(t, err)

	for _, ac := range aircraft {
		for _, f := range ac.Files {
			name := f.DisplayName()
			assert.NotContains(t, name, "_", "display name %q keeps underscores", name)
			assert.NotContains(t, name, ".txt", "display name %q keeps the extension", name)
		}
	}
}

// TestWatcherDrivesRescan edits the library on disk and checks the watcher
// reports it, the way the running viewer refreshes its sidebar.
func TestWatcherDrivesRescan(t *testing.T) {
	listsDir := t.TempDir()
	_, err := install.SeedSampleLists(listsDir, nil)
	require.NoError(t, err)

	w, err := checklist.Watch(listsDir)
	require.NoError(t, err)
	defer w.Close()

	before, err := checklist.Scan(listsDir)
	require.NoError(t, err)

	newDir := filepath.Join(listsDir, "Piper PA-28")
	require.NoError(t, os.MkdirAll(newDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(newDir, "01Preflight.txt"), []byte("Fuel - CHECK"), 0o644))

	select {
	case <-w.Changed:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not report the new aircraft")
	}

	after, err := checklist.Scan(listsDir)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1, "rescan should pick up the new aircraft")
}
