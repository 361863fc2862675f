package embedded

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAircraft(t *testing.T) {
	aircraft, err := Aircraft()
	if err != nil {
		t.Fatalf("Aircraft() error = %v", err)
	}
	if len(aircraft) == 0 {
		t.Fatal("Aircraft() returned no starter aircraft")
	}
}

func TestExtractTo(t *testing.T) {
	targetDir := t.TempDir()

	var written []string
	if err := ExtractTo(targetDir, func(name string) {
		written = append(written, name)
	}); err != nil {
		t.Fatalf("ExtractTo() error = %v", err)
	}
	if len(written) == 0 {
		t.Fatal("ExtractTo() wrote no files")
	}

	aircraft, err := Aircraft()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range aircraft {
		entries, err := os.ReadDir(filepath.Join(targetDir, name))
		if err != nil {
			t.Fatalf("aircraft folder %q missing: %v", name, err)
		}
		if len(entries) == 0 {
			t.Errorf("aircraft folder %q is empty", name)
		}
	}
}

func TestExtractToPreservesExistingFiles(t *testing.T) {
	targetDir := t.TempDir()

	if err := ExtractTo(targetDir, nil); err != nil {
		t.Fatalf("ExtractTo() error = %v", err)
	}

	// Edit one extracted file, then extract again.
	aircraft, err := Aircraft()
	if err != nil {
		t.Fatal(err)
	}
	folder := filepath.Join(targetDir, aircraft[0])
	entries, err := os.ReadDir(folder)
	if err != nil {
		t.Fatal(err)
	}
	edited := filepath.Join(folder, entries[0].Name())
	if err := os.WriteFile(edited, []byte("user edit\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ExtractTo(targetDir, nil); err != nil {
		t.Fatalf("second ExtractTo() error = %v", err)
	}

	data, err := os.ReadFile(edited)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "user edit\n" {
		t.Error("ExtractTo() overwrote an existing file")
	}
}
