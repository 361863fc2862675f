package version

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestVersionString(t *testing.T) {
	tests := []struct {
		name     string
		version  Version
		expected string
	}{
		{
			name:     "date and message",
			version:  Version{Date: "20250928", Message: "Initial release"},
			expected: "20250928 - Initial release",
		},
		{
			name:     "date only",
			version:  Version{Date: "20250928"},
			expected: "20250928",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.version.String(); got != tt.expected {
				t.Errorf("Version.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		date  string
		valid bool
	}{
		{"20250928", true},
		{"20240229", true}, // leap day
		{"20250230", false},
		{"20251301", false},
		{"2025092", false},
		{"202509281", false},
		{"2025-09-28", false},
		{"", false},
		{"abcdefgh", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			if got := ValidDate(tt.date); got != tt.valid {
				t.Errorf("ValidDate(%q) = %v, want %v", tt.date, got, tt.valid)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    Version
		b    Version
		want int
	}{
		{
			name: "older",
			a:    Version{Date: "20250101"},
			b:    Version{Date: "20250928"},
			want: -1,
		},
		{
			name: "newer",
			a:    Version{Date: "20251015"},
			b:    Version{Date: "20250928"},
			want: 1,
		},
		{
			name: "equal dates with different messages",
			a:    Version{Date: "20250928", Message: "one"},
			b:    Version{Date: "20250928", Message: "two"},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoadLocalAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	versionFile := "version.json"

	v := &Version{
		Date:      "20250928",
		Message:   "Checklist pack refresh",
		UpdatedAt: time.Date(2025, 9, 28, 10, 0, 0, 0, time.UTC),
	}

	if err := Save(tmpDir, versionFile, v); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadLocal(tmpDir, versionFile)
	if err != nil {
		t.Fatalf("LoadLocal() error = %v", err)
	}

	if loaded.Date != v.Date {
		t.Errorf("LoadLocal() Date = %q, want %q", loaded.Date, v.Date)
	}
	if loaded.Message != v.Message {
		t.Errorf("LoadLocal() Message = %q, want %q", loaded.Message, v.Message)
	}
	if !loaded.UpdatedAt.Equal(v.UpdatedAt) {
		t.Errorf("LoadLocal() UpdatedAt = %v, want %v", loaded.UpdatedAt, v.UpdatedAt)
	}
}

func TestLoadLocalNotInstalled(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := LoadLocal(tmpDir, "version.json")
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("LoadLocal() error = %v, want ErrNotInstalled", err)
	}
}

func TestLoadLocalErrors(t *testing.T) {
	tmpDir := t.TempDir()

	invalidPath := filepath.Join(tmpDir, "invalid.json")
	if err := os.WriteFile(invalidPath, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLocal(tmpDir, "invalid.json"); err == nil {
		t.Error("LoadLocal() expected error for invalid JSON")
	}

	badDatePath := filepath.Join(tmpDir, "baddate.json")
	if err := os.WriteFile(badDatePath, []byte(`{"date":"20250230"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLocal(tmpDir, "baddate.json"); err == nil {
		t.Error("LoadLocal() expected error for invalid date")
	}
}
