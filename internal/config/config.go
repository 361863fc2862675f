// Package config loads the launcher configuration from launcher.yaml.
package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name under the application root.
const FileName = "launcher.yaml"

// channelPlaceholder in ManifestURL is replaced with the active channel.
const channelPlaceholder = "{channel}"

// Config holds the launcher configuration.
type Config struct {
	// SimulatorPath is the optional flight-simulator executable launched
	// after the viewer. Empty means the second launch stage is skipped.
	SimulatorPath string `yaml:"simulator_path"`

	// LaunchDelay is the fixed delay between spawning the viewer and the
	// simulator, as a duration string ("2s", "1500ms").
	LaunchDelay string `yaml:"launch_delay"`

	// ManifestURL is the remote manifest location. The {channel} placeholder
	// is substituted with the active update channel.
	ManifestURL string `yaml:"manifest_url"`

	// DownloadURL optionally points directly at the viewer binary. When
	// empty the launcher resolves it from the latest GitHub release asset.
	DownloadURL string `yaml:"download_url"`

	Quiet   bool `yaml:"quiet"`
	Verbose bool `yaml:"verbose"`
}

// DefaultLaunchDelay is used when launch_delay is unset.
const DefaultLaunchDelay = 2 * time.Second

// Default returns the stock configuration.
func Default() Config {
	return Config{
		LaunchDelay: DefaultLaunchDelay.String(),
		ManifestURL: "https://raw.githubusercontent.com/Fir3Fly1995/FlightListChk/main/manifest/{channel}.txt",
	}
}

// Load reads the configuration file at path. A missing file yields the
// defaults; a malformed or invalid file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the configuration to path.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// GetLaunchDelay parses the configured launch delay, falling back to the
// default when unset.
func (c Config) GetLaunchDelay() time.Duration {
	if c.LaunchDelay == "" {
		return DefaultLaunchDelay
	}
	d, err := time.ParseDuration(c.LaunchDelay)
	if err != nil {
		return DefaultLaunchDelay
	}
	return d
}

// Validate checks field values without touching the filesystem.
func (c Config) Validate() error {
	if c.LaunchDelay != "" {
		d, err := time.ParseDuration(c.LaunchDelay)
		if err != nil {
			return fmt.Errorf("launch_delay is not a valid duration: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("launch_delay must not be negative")
		}
	}
	if err := validateURL("manifest_url", c.ManifestURL, false); err != nil {
		return err
	}
	if err := validateURL("download_url", c.DownloadURL, true); err != nil {
		return err
	}
	return nil
}

// ManifestURLFor returns the manifest URL with the channel substituted.
func (c Config) ManifestURLFor(ch string) string {
	return strings.ReplaceAll(c.ManifestURL, channelPlaceholder, ch)
}

func validateURL(field, raw string, optional bool) error {
	if raw == "" {
		if optional {
			return nil
		}
		return fmt.Errorf("%s must be set", field)
	}

	u, err := url.Parse(strings.ReplaceAll(raw, channelPlaceholder, "stable"))
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", field, err)
	}
	if !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%s must be an absolute http(s) URL", field)
	}
	return nil
}
