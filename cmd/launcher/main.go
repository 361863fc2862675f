// The launcher keeps the checklist viewer up to date and starts a flight:
// it checks the remote manifest, downloads the viewer when a newer build is
// published, then spawns the viewer followed by the simulator.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Fir3Fly1995/FlightListChk/internal/audio"
	"github.com/Fir3Fly1995/FlightListChk/internal/channel"
	"github.com/Fir3Fly1995/FlightListChk/internal/checklist"
	"github.com/Fir3Fly1995/FlightListChk/internal/config"
	"github.com/Fir3Fly1995/FlightListChk/internal/console"
	"github.com/Fir3Fly1995/FlightListChk/internal/dialog"
	"github.com/Fir3Fly1995/FlightListChk/internal/install"
	"github.com/Fir3Fly1995/FlightListChk/internal/launch"
	"github.com/Fir3Fly1995/FlightListChk/internal/logging"
	"github.com/Fir3Fly1995/FlightListChk/internal/paths"
	"github.com/Fir3Fly1995/FlightListChk/internal/prompt"
	"github.com/Fir3Fly1995/FlightListChk/internal/selfupdate"
	"github.com/Fir3Fly1995/FlightListChk/internal/update"
	"github.com/Fir3Fly1995/FlightListChk/internal/version"
)

// buildVersion is set at build time with -ldflags "-X main.buildVersion=...".
var buildVersion = "dev"

var (
	quietFlag    bool
	verboseFlag  bool
	yesFlag      bool
	noUpdateFlag bool
	cfgPathFlag  string

	appRoot    string
	cfg        config.Config
	curChannel string
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "launcher",
	Short: "Update the checklist viewer and start a flight",
	Long: `The flight checklist launcher.

Checks the update channel for a newer build of the checklist viewer,
installs it when one is published, then starts the viewer followed by
the simulator. Run without arguments for the full flow.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		audio.StopAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		audio.PlayAsync(audio.Start)
		if !noUpdateFlag {
			if err := runUpdate(ctx); err != nil {
				return err
			}
		}
		if err := runLaunch(ctx); err != nil {
			return err
		}
		// Keep an allocated console window readable until the user is done.
		prompt.WaitForKey("\nPress Enter to close...", promptConfig())
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for and install viewer updates without launching",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(cmd.Context())
	},
}

var flyCmd = &cobra.Command{
	Use:   "fly",
	Short: "Start the viewer and simulator without checking for updates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLaunch(cmd.Context())
	},
}

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show the checklist library and its contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		listsDir := paths.ListsDir(appRoot)
		if err := install.EnsureLayout(appRoot); err != nil {
			return err
		}
		if err := install.WriteListsReadme(listsDir); err != nil {
			logger.Warn("could not write library readme", zap.Error(err))
		}
		aircraft, err := checklist.Scan(listsDir)
		if err != nil {
			return err
		}
		fmt.Printf("Checklist library: %s\n\n", listsDir)
		if len(aircraft) == 0 {
			fmt.Println("No checklists yet. Create an aircraft folder and add numbered .txt files.")
			return nil
		}
		for _, ac := range aircraft {
			fmt.Printf("%s\n", ac.Name)
			for _, f := range ac.Files {
				fmt.Printf("  %s\n", f.DisplayName())
			}
		}
		openFolder(listsDir)
		return nil
	},
}

// openFolder shows the directory in the platform file manager. Failure is
// not worth surfacing; the path was already printed.
func openFolder(dir string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", dir)
	case "darwin":
		cmd = exec.Command("open", dir)
	default:
		cmd = exec.Command("xdg-open", dir)
	}
	if err := cmd.Start(); err == nil {
		_ = cmd.Process.Release()
	}
}

var switchCmd = &cobra.Command{
	Use:   "switch [stable|dev]",
	Short: "Switch between the stable and dev update channels",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var selected string
		if len(args) == 1 {
			selected = args[0]
			if !channel.IsBuiltIn(selected) {
				return fmt.Errorf("unknown channel %q (expected %s or %s)", selected, channel.Stable, channel.Dev)
			}
		} else {
			selected = prompt.ChannelMenu(curChannel, promptConfig())
		}
		if selected == curChannel {
			fmt.Printf("Staying on the %s channel.\n", curChannel)
			return nil
		}
		if err := channel.Save(appRoot, selected); err != nil {
			return err
		}
		fmt.Printf("Switched to the %s channel. The next update check uses it.\n", selected)
		logger.Info("channel switched",
			zap.String("from", curChannel), zap.String("to", selected))
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Set the simulator location",
	RunE: func(cmd *cobra.Command, args []string) error {
		folder, err := dialog.SelectFolder(dialog.Options{
			Title:          "Select the folder containing your simulator executable",
			Default:        filepath.Dir(cfg.SimulatorPath),
			NonInteractive: yesFlag,
		})
		if err != nil {
			return err
		}
		if folder == "" {
			fmt.Println("No folder selected; configuration unchanged.")
			return nil
		}
		sim, err := findSimulator(folder)
		if err != nil {
			return err
		}
		cfg.SimulatorPath = sim
		if err := config.Save(configPath(), cfg); err != nil {
			return err
		}
		fmt.Printf("Simulator set to %s\n", sim)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the launcher and viewer versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("launcher %s\n", buildVersion)
		local, err := version.LoadLocal(paths.MainDir(appRoot), install.VersionFile)
		if errors.Is(err, version.ErrNotInstalled) {
			fmt.Println("viewer: not installed")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("viewer: %s (channel: %s)\n", local.String(), curChannel)
		return nil
	},
}

func setup(cmd *cobra.Command, args []string) error {
	console.Attach()
	selfupdate.CleanupOld()

	root, err := paths.Root()
	if err != nil {
		return err
	}
	appRoot = root
	if err := install.EnsureLayout(appRoot); err != nil {
		return err
	}

	logFile := filepath.Join(paths.LogsDir(appRoot), "launcher.log")
	logger, err = logging.New(logFile, verboseFlag, !verboseFlag)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	cfg, err = config.Load(configPath())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	curChannel, err = channel.Load(appRoot)
	if err != nil {
		logger.Warn("channel file unreadable, using default", zap.Error(err))
		curChannel = channel.Default
	}

	audio.Init(quietFlag || cfg.Quiet, logger.Sugar().Debugf)
	selfupdate.Check(selfupdate.DefaultConfig(buildVersion))
	return nil
}

func runUpdate(ctx context.Context) error {
	u := update.New(cfg, appRoot, curChannel, logger, promptConfig())
	out, err := u.Run(ctx)
	switch {
	case errors.Is(err, update.ErrDeclined):
		if install.IsInstalled(appRoot) {
			fmt.Println("Skipping update; using the installed viewer.")
			return nil
		}
		audio.Play(audio.Error)
		return fmt.Errorf("the checklist viewer is not installed; run the update to install it")
	case err != nil:
		audio.Play(audio.Error)
		return err
	}

	switch out.Action {
	case update.ActionUpToDate:
		fmt.Printf("Checklist viewer is up to date (%s).\n", out.Installed.Date)
		audio.PlayAsync(audio.UpToDate)
	case update.ActionInstalled:
		fmt.Printf("Installed checklist viewer %s.\n", out.Installed.String())
		audio.Play(audio.Success)
	case update.ActionUpdated:
		fmt.Printf("Updated checklist viewer to %s.\n", out.Installed.String())
		audio.Play(audio.Success)
	case update.ActionOffline:
		// Warning already printed by the updater.
	}
	return nil
}

func runLaunch(ctx context.Context) error {
	plan := launch.Plan{
		ViewerPath:    paths.ViewerBinary(appRoot),
		SimulatorPath: cfg.SimulatorPath,
		Delay:         cfg.GetLaunchDelay(),
	}
	result, err := launch.Run(ctx, plan, logger)
	if err != nil {
		audio.Play(audio.Error)
		return err
	}
	fmt.Println("Checklist viewer started. Happy flying!")
	logger.Info("flight session started",
		zap.Int("viewer_pid", result.ViewerPID),
		zap.Int("simulator_pid", result.SimulatorPID))
	if cfg.SimulatorPath == "" {
		fmt.Println("No simulator configured; run 'launcher config' to set one.")
	}
	return nil
}

// findSimulator looks for an executable in the chosen folder.
func findSimulator(folder string) (string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == ".exe" {
			return filepath.Join(folder, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("no executable found in %s", folder)
}

func configPath() string {
	if cfgPathFlag != "" {
		return cfgPathFlag
	}
	return filepath.Join(appRoot, config.FileName)
}

func promptConfig() prompt.Config {
	return prompt.Config{NonInteractive: yesFlag, Sound: audio.Cues{}}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress sounds and progress output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug detail to the console")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "answer yes to every prompt")
	rootCmd.PersistentFlags().StringVar(&cfgPathFlag, "config", "", "path to launcher.yaml")
	rootCmd.Flags().BoolVar(&noUpdateFlag, "no-update", false, "skip the update check and launch immediately")
	rootCmd.AddCommand(updateCmd, flyCmd, listsCmd, switchCmd, configCmd, versionCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
