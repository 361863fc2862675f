// Package update orchestrates a single check-and-install run: fetch the
// remote manifest, compare against the local install, and download the
// viewer binary when the remote build is newer.
package update

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Fir3Fly1995/FlightListChk/internal/audio"
	"github.com/Fir3Fly1995/FlightListChk/internal/changelog"
	"github.com/Fir3Fly1995/FlightListChk/internal/config"
	"github.com/Fir3Fly1995/FlightListChk/internal/download"
	"github.com/Fir3Fly1995/FlightListChk/internal/github"
	"github.com/Fir3Fly1995/FlightListChk/internal/install"
	"github.com/Fir3Fly1995/FlightListChk/internal/manifest"
	"github.com/Fir3Fly1995/FlightListChk/internal/paths"
	"github.com/Fir3Fly1995/FlightListChk/internal/prompt"
	"github.com/Fir3Fly1995/FlightListChk/internal/version"
)

// Action reports what a run actually did.
type Action int

const (
	// ActionUpToDate means the installed viewer already matches the manifest.
	ActionUpToDate Action = iota
	// ActionInstalled means a fresh install was performed.
	ActionInstalled
	// ActionUpdated means an existing install was replaced with a newer build.
	ActionUpdated
	// ActionOffline means the manifest could not be fetched but an existing
	// install is present, so the run fell back to it.
	ActionOffline
)

var (
	// ErrNoInstall is returned when the manifest is unreachable and there is
	// no existing install to fall back to.
	ErrNoInstall = errors.New("update server unreachable and no viewer installed")

	// ErrDeclined is returned when the user answers no to the update prompt.
	ErrDeclined = errors.New("update declined by user")
)

// Outcome describes the result of a completed run.
type Outcome struct {
	Action    Action
	Installed version.Version
}

// Updater wires the manifest client, release lookup, and install layout
// together for one update run. Construct it with New.
type Updater struct {
	cfg      config.Config
	root     string
	channel  string
	logger   *zap.Logger
	prompts  prompt.Config
	manifest *manifest.Client
	releases *github.Client
	now      func() time.Time
}

// Option adjusts an Updater during construction.
type Option func(*Updater)

// WithManifestClient overrides the manifest client built from the config.
func WithManifestClient(c *manifest.Client) Option {
	return func(u *Updater) { u.manifest = c }
}

// WithReleaseClient overrides the GitHub release client.
func WithReleaseClient(c *github.Client) Option {
	return func(u *Updater) { u.releases = c }
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(u *Updater) { u.now = now }
}

// New builds an Updater rooted at the install directory.
func New(cfg config.Config, root, channel string, logger *zap.Logger, prompts prompt.Config, opts ...Option) *Updater {
	u := &Updater{
		cfg:     cfg,
		root:    root,
		channel: channel,
		logger:  logger,
		prompts: prompts,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.manifest == nil {
		u.manifest = manifest.NewClient(cfg.ManifestURLFor(channel), nil)
	}
	if u.releases == nil {
		u.releases = github.NewClient("Fir3Fly1995", "FlightListChk", nil)
	}
	return u
}

// Run performs one full update pass. The Main and Lists directories are
// created first so a failed fetch still leaves a usable layout behind.
func (u *Updater) Run(ctx context.Context) (Outcome, error) {
	if err := install.EnsureLayout(u.root); err != nil {
		return Outcome{}, fmt.Errorf("preparing install directories: %w", err)
	}
	if err := install.WriteListsReadme(paths.ListsDir(u.root)); err != nil {
		u.logger.Warn("could not write library readme", zap.Error(err))
	}
	u.seedLibrary()

	mainDir := paths.MainDir(u.root)
	local, err := version.LoadLocal(mainDir, install.VersionFile)
	installed := err == nil
	if err != nil && !errors.Is(err, version.ErrNotInstalled) {
		u.logger.Warn("local version record unreadable, treating as fresh install", zap.Error(err))
	}

	man, err := u.manifest.Fetch(ctx)
	if err != nil {
		if install.IsInstalled(u.root) {
			u.logger.Warn("manifest fetch failed, launching installed version",
				zap.String("channel", u.channel), zap.Error(err))
			if !u.prompts.NonInteractive {
				fmt.Println("Could not reach the update server; using the installed viewer.")
			}
			return Outcome{Action: ActionOffline}, nil
		}
		u.logger.Error("manifest fetch failed with no existing install", zap.Error(err))
		return Outcome{}, fmt.Errorf("%w: %v", ErrNoInstall, err)
	}

	remote := man.Version()
	u.logger.Info("manifest fetched",
		zap.String("channel", u.channel),
		zap.String("remote", remote.Date),
		zap.String("message", remote.Message))

	if installed && version.Compare(remote, *local) <= 0 && install.IsInstalled(u.root) {
		u.logger.Info("viewer up to date", zap.String("installed", local.Date))
		return Outcome{Action: ActionUpToDate, Installed: *local}, nil
	}

	if installed {
		fmt.Printf("Update available: %s (installed: %s)\n", remote.String(), local.Date)
	} else {
		fmt.Printf("Installing checklist viewer: %s\n", remote.String())
	}
	if !prompt.Confirm("Download now?", u.prompts) {
		u.logger.Info("update declined")
		return Outcome{}, ErrDeclined
	}

	if err := u.installViewer(ctx); err != nil {
		return Outcome{}, err
	}

	remote.UpdatedAt = u.now()
	if err := version.Save(mainDir, install.VersionFile, &remote); err != nil {
		return Outcome{}, fmt.Errorf("recording installed version: %w", err)
	}
	summary := changelog.Build(u.channel, local, remote, u.now())
	if err := changelog.Save(mainDir, summary); err != nil {
		u.logger.Warn("could not save update summary", zap.Error(err))
	}

	action := ActionUpdated
	if !installed {
		action = ActionInstalled
	}
	u.logger.Info("viewer installed", zap.String("version", remote.Date))
	return Outcome{Action: action, Installed: remote}, nil
}

// installViewer downloads the viewer binary to a temp file and swaps it into
// place, keeping the previous binary as a .old backup.
func (u *Updater) installViewer(ctx context.Context) error {
	url, err := u.resolveDownloadURL(ctx)
	if err != nil {
		return err
	}
	u.logger.Debug("downloading viewer", zap.String("url", url))
	if !u.cfg.Quiet {
		audio.PlayAsync(audio.Downloading)
	}

	var progress download.ProgressCallback
	if !u.cfg.Quiet && !u.prompts.NonInteractive {
		progress = func(complete, total int64, pct int) {
			if total > 0 {
				fmt.Printf("\rDownloading: %d%% (%d/%d bytes)    ", pct, complete, total)
			}
		}
	}
	tmp, err := download.ToTemp(ctx, url, "flightlist-", progress)
	if err != nil {
		return fmt.Errorf("downloading viewer: %w", err)
	}
	defer os.Remove(tmp)
	if progress != nil {
		fmt.Println()
	}

	info, err := os.Stat(tmp)
	if err != nil {
		return fmt.Errorf("verifying download: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("downloaded viewer is empty")
	}

	target, err := download.ValidatePath(u.root, paths.ViewerBinary(u.root))
	if err != nil {
		return err
	}
	if _, err := os.Stat(target); err == nil {
		backup := target + ".old"
		os.Remove(backup)
		if err := os.Rename(target, backup); err != nil {
			return fmt.Errorf("backing up previous viewer: %w", err)
		}
	}
	if err := moveFile(tmp, target); err != nil {
		return fmt.Errorf("installing viewer: %w", err)
	}
	if err := os.Chmod(target, 0o755); err != nil {
		u.logger.Warn("could not mark viewer executable", zap.Error(err))
	}
	return nil
}

// resolveDownloadURL prefers a direct URL from the config and falls back to
// the latest GitHub release asset matching the viewer name.
func (u *Updater) resolveDownloadURL(ctx context.Context) (string, error) {
	if u.cfg.DownloadURL != "" {
		return u.cfg.DownloadURL, nil
	}
	rel, err := u.releases.LatestRelease(ctx)
	if err != nil {
		return "", fmt.Errorf("looking up latest release: %w", err)
	}
	asset := paths.ViewerAssetName()
	url := rel.AssetURL(asset)
	if url == "" {
		return "", fmt.Errorf("release %s has no asset named %s", rel.TagName, asset)
	}
	return url, nil
}

// seedLibrary extracts the starter checklist packs when the library has no
// checklists yet. Failures are logged and ignored; the library is optional.
func (u *Updater) seedLibrary() {
	listsDir := paths.ListsDir(u.root)
	if !install.LibraryEmpty(listsDir) {
		return
	}
	seeded, err := install.SeedSampleLists(listsDir, func(name string) {
		u.logger.Debug("seeded starter checklist", zap.String("file", name))
	})
	if err != nil {
		u.logger.Warn("could not seed starter checklists", zap.Error(err))
		return
	}
	if len(seeded) > 0 {
		u.logger.Info("seeded starter checklist library", zap.Int("files", len(seeded)))
	}
}

// moveFile renames src to dst, falling back to a copy when the rename
// crosses filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
