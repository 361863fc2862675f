package channel

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	if err := Save(tmpDir, Dev); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != Dev {
		t.Errorf("Load() = %q, want %q", got, Dev)
	}
}

func TestSaveRejectsUnknownChannel(t *testing.T) {
	if err := Save(t.TempDir(), "nightly"); err == nil {
		t.Error("Save() expected error for unknown channel")
	}
}

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	got, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != Default {
		t.Errorf("Load() = %q, want default %q", got, Default)
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, File), []byte("  stable \n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != Stable {
		t.Errorf("Load() = %q, want %q", got, Stable)
	}
}

func TestLoadRejectsUnknownChannel(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, File), []byte("nightly\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Error("Load() expected error for unknown channel")
	}
}

func TestIsBuiltIn(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{Stable, true},
		{Dev, true},
		{"nightly", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsBuiltIn(tt.name); got != tt.want {
			t.Errorf("IsBuiltIn(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
