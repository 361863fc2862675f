// Package channel persists the update channel selection. The channel name is
// substituted into the manifest URL so stable and dev installs track
// different release lines.
package channel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is the channel marker file, written to the application root.
const File = ".update-channel"

const (
	Stable  = "stable"
	Dev     = "dev"
	Default = Stable
)

// Save writes the channel marker in baseDir.
func Save(baseDir, name string) error {
	if !IsBuiltIn(name) {
		return fmt.Errorf("unknown channel %q (expected %q or %q)", name, Stable, Dev)
	}
	return os.WriteFile(filepath.Join(baseDir, File), []byte(name+"\n"), 0644)
}

// Load reads the channel marker from baseDir, falling back to the default
// channel when the file is absent.
func Load(baseDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, File))
	if err != nil {
		if os.IsNotExist(err) {
			return Default, nil
		}
		return "", err
	}

	name := strings.TrimSpace(string(data))
	if !IsBuiltIn(name) {
		return "", fmt.Errorf("channel file contains unknown channel %q", name)
	}
	return name, nil
}

// IsBuiltIn reports whether name is a recognised channel.
func IsBuiltIn(name string) bool {
	return name == Stable || name == Dev
}
