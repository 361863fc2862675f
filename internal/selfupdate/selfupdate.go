// Package selfupdate keeps the launcher binary itself up to date.
package selfupdate

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// cleanupEnv marks a restarted process so it removes the .old backup.
const cleanupEnv = "LAUNCHER_CLEANUP_OLD"

// minBinarySize guards against replacing the launcher with an error page.
const minBinarySize = 1024 * 1024

// Config holds the configuration for self-update.
type Config struct {
	ReleasesAPIURL string
	CurrentVersion string
}

// release is the subset of the GitHub release response we need.
type release struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// AssetName returns the launcher release asset name for this platform.
func AssetName() string {
	if runtime.GOOS == "windows" {
		return "launcher.exe"
	}
	return "launcher"
}

// DefaultConfig returns the default self-update configuration.
func DefaultConfig(currentVersion string) Config {
	return Config{
		ReleasesAPIURL: "https://api.github.com/repos/Fir3Fly1995/FlightListChk/releases/latest",
		CurrentVersion: currentVersion,
	}
}

// Check looks for a newer launcher release and replaces the running binary
// when one exists, then restarts with the original arguments. Every failure
// is silent: self-update must never block the main update flow.
func Check(cfg Config) error {
	exePath, err := os.Executable()
	if err != nil {
		return nil
	}

	quickClient := &http.Client{
		Timeout: 5 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	req, err := http.NewRequest(http.MethodGet, cfg.ReleasesAPIURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "FlightListChk-launcher")

	resp, err := quickClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil
	}

	remoteVersion := strings.TrimPrefix(rel.TagName, "v")
	if remoteVersion == "" || remoteVersion == cfg.CurrentVersion {
		return nil
	}

	binaryURL := ""
	for _, asset := range rel.Assets {
		if asset.Name == AssetName() {
			binaryURL = asset.BrowserDownloadURL
			break
		}
	}
	if binaryURL == "" {
		return nil
	}

	return downloadAndReplace(binaryURL, exePath)
}

// downloadAndReplace swaps the running executable for the downloaded one
// and restarts with the original arguments.
func downloadAndReplace(binaryURL, exePath string) error {
	downloadClient := &http.Client{Timeout: 60 * time.Second}

	resp, err := downloadClient.Get(binaryURL)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}
	if len(data) < minBinarySize {
		return nil
	}

	oldExe := exePath + ".old"
	_ = os.Remove(oldExe)
	if err := os.Rename(exePath, oldExe); err != nil {
		return nil
	}

	if err := os.WriteFile(exePath, data, 0755); err != nil {
		_ = os.Rename(oldExe, exePath)
		return nil
	}

	cmd := exec.Command(exePath, os.Args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), cleanupEnv+"=1")

	if err := cmd.Start(); err != nil {
		_ = os.Remove(exePath)
		_ = os.Rename(oldExe, exePath)
		return err
	}

	// Give the new process a moment to initialize before we exit.
	time.Sleep(100 * time.Millisecond)
	os.Exit(0)

	return nil
}

// CleanupOld removes the .old backup if this process was started by a
// self-update restart.
func CleanupOld() {
	if os.Getenv(cleanupEnv) != "1" {
		return
	}

	exePath, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Remove(exePath + ".old")
}
