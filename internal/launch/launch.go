// Package launch performs the sequenced process launch: the checklist
// viewer first, then (after a fixed delay) the flight simulator.
package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// ErrViewerMissing is returned when the managed viewer binary is absent.
var ErrViewerMissing = errors.New("viewer binary not found; run the launcher update first")

// Plan describes the launch sequence.
type Plan struct {
	ViewerPath string
	ViewerArgs []string

	// SimulatorPath is optional; empty skips the second stage.
	SimulatorPath string

	// Delay is the fixed wait between the two spawns.
	Delay time.Duration
}

// Result reports the spawned process IDs. SimulatorPID is zero when no
// simulator was configured.
type Result struct {
	ViewerPID    int
	SimulatorPID int
}

// startProcess spawns an executable detached from the launcher. Package
// level so tests can stub it.
var startProcess = func(path string, args []string) (int, error) {
	cmd := exec.Command(path, args...)
	cmd.Dir = filepath.Dir(path)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	// The launcher exits before either child; don't hold process handles.
	_ = cmd.Process.Release()
	return pid, nil
}

// Run executes the plan. The viewer must exist; a configured but missing
// simulator is an error, an unconfigured one is skipped.
func Run(ctx context.Context, plan Plan, logger *zap.Logger) (Result, error) {
	var result Result

	if _, err := os.Stat(plan.ViewerPath); err != nil {
		return result, fmt.Errorf("%w (%s)", ErrViewerMissing, plan.ViewerPath)
	}

	logger.Info("launching checklist viewer", zap.String("path", plan.ViewerPath))
	pid, err := startProcess(plan.ViewerPath, plan.ViewerArgs)
	if err != nil {
		return result, fmt.Errorf("failed to launch viewer: %w", err)
	}
	result.ViewerPID = pid

	if plan.SimulatorPath == "" {
		return result, nil
	}

	if _, err := os.Stat(plan.SimulatorPath); err != nil {
		return result, fmt.Errorf("simulator executable not found: %w", err)
	}

	if plan.Delay > 0 {
		logger.Info("waiting before simulator launch", zap.Duration("delay", plan.Delay))
		timer := time.NewTimer(plan.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-timer.C:
		}
	}

	logger.Info("launching simulator", zap.String("path", plan.SimulatorPath))
	pid, err = startProcess(plan.SimulatorPath, nil)
	if err != nil {
		return result, fmt.Errorf("failed to launch simulator: %w", err)
	}
	result.SimulatorPID = pid

	return result, nil
}
