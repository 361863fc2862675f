// Package embedded ships a starter checklist pack so a fresh install has
// something to show before the user authors their own lists.
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Fir3Fly1995/FlightListChk/internal/paths"
)

//go:embed lists
var starterLists embed.FS

// ProgressFunc is called as each starter file is written.
type ProgressFunc func(name string)

// Aircraft returns the aircraft folders in the starter pack.
func Aircraft() ([]string, error) {
	entries, err := starterLists.ReadDir("lists")
	if err != nil {
		return nil, fmt.Errorf("failed to read starter pack: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// ExtractTo writes the starter pack into targetDir, preserving the
// aircraft-folder layout. Existing files are never overwritten.
func ExtractTo(targetDir string, progress ProgressFunc) error {
	absTargetDir, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("failed to resolve target dir: %w", err)
	}

	return fs.WalkDir(starterLists, "lists", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath := strings.TrimPrefix(p, "lists")
		relPath = strings.TrimPrefix(relPath, "/")
		if relPath == "" {
			return nil
		}

		targetPath := filepath.Join(absTargetDir, paths.Denormalize(relPath))
		if !strings.HasPrefix(targetPath, absTargetDir+string(filepath.Separator)) {
			return fmt.Errorf("path traversal attempt detected: %s", relPath)
		}

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0755)
		}

		if _, err := os.Stat(targetPath); err == nil {
			return nil // Never clobber user edits
		}

		data, err := starterLists.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read embedded %s: %w", relPath, err)
		}

		if progress != nil {
			progress(relPath)
		}
		if err := os.WriteFile(targetPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", relPath, err)
		}
		return nil
	})
}
