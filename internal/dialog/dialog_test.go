package dialog

import (
	"strings"
	"testing"
)

func TestSelectFolderNonInteractive(t *testing.T) {
	got, err := SelectFolder(Options{NonInteractive: true, Default: "/some/default"})
	if err != nil {
		t.Fatalf("SelectFolder() error = %v", err)
	}
	if got != "/some/default" {
		t.Errorf("SelectFolder() = %q, want the default", got)
	}
}

func TestReadFolderTyped(t *testing.T) {
	dir := t.TempDir()
	got, err := readFolder(Options{Input: strings.NewReader(dir + "\n")})
	if err != nil {
		t.Fatalf("readFolder() error = %v", err)
	}
	if got != dir {
		t.Errorf("readFolder() = %q, want %q", got, dir)
	}
}

func TestReadFolderEmptyUsesDefault(t *testing.T) {
	got, err := readFolder(Options{Input: strings.NewReader("\n"), Default: "/fallback"})
	if err != nil {
		t.Fatalf("readFolder() error = %v", err)
	}
	if got != "/fallback" {
		t.Errorf("readFolder() = %q, want /fallback", got)
	}
}

func TestReadFolderMissingPath(t *testing.T) {
	if _, err := readFolder(Options{Input: strings.NewReader("/no/such/folder\n")}); err == nil {
		t.Error("readFolder() should reject a nonexistent path")
	}
}
