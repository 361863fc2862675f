// Package changelog writes the human-readable summary of the last update.
package changelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Fir3Fly1995/FlightListChk/internal/version"
)

// FileName is the summary file, written next to the viewer binary.
const FileName = "last-update.txt"

// Build formats an update summary. previous is nil for a first install.
func Build(channel string, previous *version.Version, installed version.Version, now time.Time) string {
	var b strings.Builder

	b.WriteString("FlightListChk Update\n\n")
	b.WriteString(fmt.Sprintf("Channel: %s\n", channel))
	b.WriteString(fmt.Sprintf("Update completed: %s\n", now.Format("2006-01-02 15:04:05")))

	if previous == nil {
		b.WriteString("Previous version: none (first install)\n")
	} else {
		b.WriteString(fmt.Sprintf("Previous version: %s\n", previous.String()))
	}
	b.WriteString(fmt.Sprintf("Installed version: %s\n", installed.String()))

	if installed.Message != "" {
		b.WriteString("\n")
		b.WriteString(strings.Repeat("-", 60))
		b.WriteString("\nRelease notes:\n")
		b.WriteString(strings.Repeat("-", 60))
		b.WriteString("\n\n")
		b.WriteString(installed.Message)
		b.WriteString("\n")
	}

	return b.String()
}

// Save writes the summary into dir.
func Save(dir, content string) error {
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write update summary: %w", err)
	}
	return nil
}
