// Package install prepares the on-disk layout for a FlightListChk install.
package install

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Fir3Fly1995/FlightListChk/internal/embedded"
	"github.com/Fir3Fly1995/FlightListChk/internal/paths"
)

// VersionFile is the viewer version bookkeeping file under Main/.
const VersionFile = "version.json"

// ReadmeFile is the authoring instructions file written into Lists/.
const ReadmeFile = "README.txt"

const readmeText = `FlightListChk checklist library
===============================

Create one folder per aircraft (for example "Boeing 737-800" or
"Cessna 172") and place your checklists inside it as plain .txt files,
one checklist item per line.

Files run in filename order, so number them with a prefix:

    01_Cold_and_Dark.txt
    02_Before_Start.txt
    03_Engine_Start.txt

When every item of a checklist is ticked, the viewer advances to the
next file automatically.
`

// EnsureLayout creates the application directory tree.
func EnsureLayout(root string) error {
	for _, dir := range []string{
		paths.MainDir(root),
		paths.ListsDir(root),
		paths.LogsDir(root),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// IsInstalled reports whether a usable viewer install exists: the managed
// binary plus its version bookkeeping.
func IsInstalled(root string) bool {
	if _, err := os.Stat(paths.ViewerBinary(root)); err != nil {
		return false
	}
	if _, err := os.Stat(filepath.Join(paths.MainDir(root), VersionFile)); err != nil {
		return false
	}
	return true
}

// WriteListsReadme writes the authoring instructions into the library
// directory. An existing README is left alone.
func WriteListsReadme(listsDir string) error {
	path := filepath.Join(listsDir, ReadmeFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(readmeText), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ReadmeFile, err)
	}
	return nil
}

// LibraryEmpty reports whether the library has no aircraft folders yet.
func LibraryEmpty(listsDir string) bool {
	entries, err := os.ReadDir(listsDir)
	if err != nil {
		return true
	}
	for _, entry := range entries {
		if entry.IsDir() && !paths.IsHidden(entry.Name()) {
			return false
		}
	}
	return true
}

// SeedSampleLists extracts the embedded starter pack when the library is
// empty. Returns the names of the seeded aircraft, or nil if the library
// already had content.
func SeedSampleLists(listsDir string, progress embedded.ProgressFunc) ([]string, error) {
	if !LibraryEmpty(listsDir) {
		return nil, nil
	}

	if err := embedded.ExtractTo(listsDir, progress); err != nil {
		return nil, fmt.Errorf("failed to seed starter checklists: %w", err)
	}
	return embedded.Aircraft()
}

// HasChecklistFiles reports whether any aircraft folder contains .txt files.
func HasChecklistFiles(listsDir string) bool {
	entries, err := os.ReadDir(listsDir)
	if err != nil {
		return false
	}

	for _, entry := range entries {
		if !entry.IsDir() || paths.IsHidden(entry.Name()) {
			continue
		}
		files, err := os.ReadDir(filepath.Join(listsDir, entry.Name()))
		if err != nil {
			continue
		}
		for _, f := range files {
			if !f.IsDir() && strings.HasSuffix(strings.ToLower(f.Name()), ".txt") {
				return true
			}
		}
	}
	return false
}
