// Package integration exercises the full update pipeline against a mock
// update server: manifest fetch, release lookup, download, and install
// layout, end to end on a real temp directory.
package integration

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Fir3Fly1995/FlightListChk/internal/config"
	"github.com/Fir3Fly1995/FlightListChk/internal/github"
	"github.com/Fir3Fly1995/FlightListChk/internal/install"
	"github.com/Fir3Fly1995/FlightListChk/internal/paths"
	"github.com/Fir3Fly1995/FlightListChk/internal/prompt"
	"github.com/Fir3Fly1995/FlightListChk/internal/update"
	"github.com/Fir3Fly1995/FlightListChk/internal/version"
	mocks "github.com/Fir3Fly1995/FlightListChk/testing"
)

const (
	testOwner = "Fir3Fly1995"
	testRepo  = "FlightListChk"
)

// TestEnvironment is a complete install rooted in a temp directory, wired
// to a mock update server.
type TestEnvironment struct {
	T      *testing.T
	Root   string
	Server *mocks.MockUpdateServer
	Config config.Config
}

// SetupTestEnvironment creates the environment. The manifest is expected at
// /manifest/<channel>.txt on the mock server.
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	server := mocks.NewMockUpdateServer(t)
	return &TestEnvironment{
		T:      t,
		Root:   t.TempDir(),
		Server: server,
		Config: config.Config{
			ManifestURL: server.URL + "/manifest/{channel}.txt",
			Quiet:       true,
		},
	}
}

// PublishRelease points the mock server's latest release at a binary served
// from the same server.
func (e *TestEnvironment) PublishRelease(tag string, binary []byte) {
	e.T.Helper()
	e.Server.SetBinary("/download/"+paths.ViewerAssetName(), binary)
	if err := e.Server.SetRelease(testOwner, testRepo, tag, paths.ViewerAssetName(),
		e.Server.URL+"/download/"+paths.ViewerAssetName()); err != nil {
		e.T.Fatalf("publishing mock release: %v", err)
	}
}

// RunUpdate performs one update pass on the given channel.
func (e *TestEnvironment) RunUpdate(channel string) (update.Outcome, error) {
	e.T.Helper()
	gh := github.NewClient(testOwner, testRepo, nil)
	gh.SetBaseURL(e.Server.URL)

	u := update.New(e.Config, e.Root, channel, zap.NewNop(),
		prompt.Config{NonInteractive: true}, update.WithReleaseClient(gh))
	return u.Run(context.Background())
}

// InstalledVersion reads back the recorded viewer version.
func (e *TestEnvironment) InstalledVersion() (*version.Version, error) {
	return version.LoadLocal(paths.MainDir(e.Root), install.VersionFile)
}
