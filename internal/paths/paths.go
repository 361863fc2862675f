package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// AppDirName is the per-user application directory name.
	AppDirName = "FLTCHKLST"

	// MainDirName holds the managed viewer binary and its bookkeeping files.
	MainDirName = "Main"

	// ListsDirName holds the user-authored checklist library.
	ListsDirName = "Lists"

	// LogsDirName holds log output from both binaries.
	LogsDirName = "logs"
)

// Root returns the application root directory. On Windows this is
// %LOCALAPPDATA%\FLTCHKLST to stay compatible with existing installs;
// elsewhere it falls back to os.UserConfigDir.
func Root() (string, error) {
	if runtime.GOOS == "windows" {
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, AppDirName), nil
		}
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(configDir, AppDirName), nil
}

// MainDir returns the directory containing the managed viewer binary.
func MainDir(root string) string {
	return filepath.Join(root, MainDirName)
}

// ListsDir returns the checklist library directory.
func ListsDir(root string) string {
	return filepath.Join(root, ListsDirName)
}

// LogsDir returns the log directory.
func LogsDir(root string) string {
	return filepath.Join(root, LogsDirName)
}

// ViewerBinary returns the full path of the managed viewer binary.
func ViewerBinary(root string) string {
	return filepath.Join(MainDir(root), ViewerAssetName())
}

// ViewerAssetName returns the release asset name for the current platform.
func ViewerAssetName() string {
	if runtime.GOOS == "windows" {
		return "FlightList.exe"
	}
	return "FlightList"
}

// Denormalize converts a forward-slash path to platform-specific separators.
func Denormalize(p string) string {
	return strings.ReplaceAll(p, "/", string(filepath.Separator))
}

// IsHidden reports whether a directory entry should be skipped when scanning
// the checklist library.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
