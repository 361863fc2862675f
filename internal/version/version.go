package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DateLayout is the manifest date format: a compact calendar date.
const DateLayout = "20060102"

// Version records the installed viewer release. The manifest date is the sole
// version indicator; Message carries the release note that shipped with it.
type Version struct {
	Date      string    `json:"date"`
	Message   string    `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// ErrNotInstalled is returned by LoadLocal when no version file exists yet.
var ErrNotInstalled = errors.New("no installed version recorded")

// String returns the version in display form.
func (v Version) String() string {
	if v.Message == "" {
		return v.Date
	}
	return fmt.Sprintf("%s - %s", v.Date, v.Message)
}

// ValidDate reports whether a date string is a calendar-valid YYYYMMDD value.
func ValidDate(date string) bool {
	if len(date) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// Compare orders two versions by date. It returns -1 if a is older than b,
// +1 if newer, and 0 when the dates match (messages are not compared).
func Compare(a, b Version) int {
	switch {
	case a.Date < b.Date:
		return -1
	case a.Date > b.Date:
		return 1
	default:
		return 0
	}
}

// LoadLocal reads the installed version from version.json in baseDir.
func LoadLocal(baseDir, versionFile string) (*Version, error) {
	path := filepath.Join(baseDir, versionFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotInstalled
		}
		return nil, fmt.Errorf("failed to read local version: %w", err)
	}

	var v Version
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse local version: %w", err)
	}
	if !ValidDate(v.Date) {
		return nil, fmt.Errorf("local version has invalid date %q", v.Date)
	}

	return &v, nil
}

// Save writes version information to version.json in baseDir.
func Save(baseDir, versionFile string, v *Version) error {
	path := filepath.Join(baseDir, versionFile)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal version: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write version file: %w", err)
	}

	return nil
}
