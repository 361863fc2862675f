package paths

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDirectoryLayout(t *testing.T) {
	root := filepath.Join("home", AppDirName)

	if got := MainDir(root); got != filepath.Join(root, "Main") {
		t.Errorf("MainDir() = %q", got)
	}
	if got := ListsDir(root); got != filepath.Join(root, "Lists") {
		t.Errorf("ListsDir() = %q", got)
	}
	if got := LogsDir(root); got != filepath.Join(root, "logs") {
		t.Errorf("LogsDir() = %q", got)
	}
}

func TestViewerBinary(t *testing.T) {
	root := filepath.Join("home", AppDirName)
	got := ViewerBinary(root)

	if !strings.HasPrefix(got, MainDir(root)) {
		t.Errorf("ViewerBinary() = %q, want path under %q", got, MainDir(root))
	}
	if !strings.Contains(filepath.Base(got), "FlightList") {
		t.Errorf("ViewerBinary() = %q, want FlightList binary name", got)
	}
}

func TestDenormalize(t *testing.T) {
	want := filepath.Join("Lists", "Boeing 737", "01_Preflight.txt")
	if got := Denormalize("Lists/Boeing 737/01_Preflight.txt"); got != want {
		t.Errorf("Denormalize() = %q, want %q", got, want)
	}
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		name   string
		hidden bool
	}{
		{".update-channel", true},
		{".git", true},
		{"Boeing 737", false},
		{"01_Preflight.txt", false},
	}

	for _, tt := range tests {
		if got := IsHidden(tt.name); got != tt.hidden {
			t.Errorf("IsHidden(%q) = %v, want %v", tt.name, got, tt.hidden)
		}
	}
}
