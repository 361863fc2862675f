// FlightList is the interactive checklist viewer. It renders the checklist
// library as aircraft tabs and checkbox lists, auto-advancing to the next
// checklist when the current one is fully checked.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Fir3Fly1995/FlightListChk/internal/audio"
	"github.com/Fir3Fly1995/FlightListChk/internal/checklist"
	"github.com/Fir3Fly1995/FlightListChk/internal/install"
	"github.com/Fir3Fly1995/FlightListChk/internal/logging"
	"github.com/Fir3Fly1995/FlightListChk/internal/paths"
	"github.com/Fir3Fly1995/FlightListChk/internal/tui"
)

var buildVersion = "dev"

var (
	listsDirFlag string
	quietFlag    bool
	verboseFlag  bool
)

var rootCmd = &cobra.Command{
	Use:           "flightlist",
	Short:         "Interactive flight checklist viewer",
	Version:       buildVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, args []string) error {
	listsDir := listsDirFlag
	if listsDir == "" {
		root, err := paths.Root()
		if err != nil {
			return err
		}
		if err := install.EnsureLayout(root); err != nil {
			return err
		}
		listsDir = paths.ListsDir(root)
	}

	logger, err := logging.New(filepath.Join(filepath.Dir(listsDir), "logs", "flightlist.log"), verboseFlag, true)
	if err != nil {
		logger = logging.Nop()
	}
	defer logger.Sync()

	audio.Init(quietFlag, logger.Sugar().Debugf)
	defer audio.StopAll()

	opts := []tui.Option{
		tui.WithCompletionSound(func() { audio.PlayAsync(audio.Complete) }),
	}
	watcher, err := checklist.Watch(listsDir)
	if err != nil {
		logger.Warn("library watcher unavailable", zap.Error(err))
	} else {
		opts = append(opts, tui.WithWatcher(watcher))
	}

	logger.Info("viewer starting", zap.String("lists_dir", listsDir), zap.String("version", buildVersion))
	return tui.Run(listsDir, opts...)
}

func main() {
	rootCmd.Flags().StringVar(&listsDirFlag, "lists-dir", "", "checklist library directory (default: the standard install location)")
	rootCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "disable sounds")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug detail")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
