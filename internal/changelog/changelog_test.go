package changelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Fir3Fly1995/FlightListChk/internal/version"
)

var testTime = time.Date(2025, 9, 28, 10, 30, 0, 0, time.UTC)

func TestBuildFirstInstall(t *testing.T) {
	installed := version.Version{Date: "20250928", Message: "Initial release"}

	got := Build("stable", nil, installed, testTime)

	for _, want := range []string{
		"Channel: stable",
		"Update completed: 2025-09-28 10:30:00",
		"Previous version: none (first install)",
		"Installed version: 20250928 - Initial release",
		"Release notes:",
		"Initial release",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Build() missing %q in:\n%s", want, got)
		}
	}
}

func TestBuildUpgrade(t *testing.T) {
	previous := &version.Version{Date: "20250901", Message: "September pack"}
	installed := version.Version{Date: "20250928", Message: "Fixes auto-advance"}

	got := Build("dev", previous, installed, testTime)

	if !strings.Contains(got, "Previous version: 20250901 - September pack") {
		t.Errorf("Build() missing previous version in:\n%s", got)
	}
	if !strings.Contains(got, "Channel: dev") {
		t.Errorf("Build() missing channel in:\n%s", got)
	}
}

func TestBuildWithoutMessage(t *testing.T) {
	got := Build("stable", nil, version.Version{Date: "20250928"}, testTime)

	if strings.Contains(got, "Release notes:") {
		t.Errorf("Build() rendered empty release notes section:\n%s", got)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	if err := Save(dir, "summary content\n"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("summary not written: %v", err)
	}
	if string(data) != "summary content\n" {
		t.Errorf("summary content = %q", data)
	}
}
