// Package prompt handles the launcher's interactive stdin prompts.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Fir3Fly1995/FlightListChk/internal/channel"
)

// SoundPlayer plays named cue sounds. Satisfied by the audio package.
type SoundPlayer interface {
	Play(name string)
	PlayAsync(name string)
}

// Config holds prompting behaviour.
type Config struct {
	// NonInteractive answers every prompt with its default.
	NonInteractive bool

	// Input overrides os.Stdin (used by tests).
	Input io.Reader

	Sound SoundPlayer
}

func (cfg Config) reader() *bufio.Reader {
	if cfg.Input != nil {
		return bufio.NewReader(cfg.Input)
	}
	return bufio.NewReader(os.Stdin)
}

// WaitForKey waits for the user to press Enter.
func WaitForKey(prompt string, cfg Config) {
	if cfg.NonInteractive {
		return
	}
	fmt.Print(prompt)
	_, _ = cfg.reader().ReadBytes('\n')
}

// Confirm asks a yes/no question. Non-interactive mode answers yes.
func Confirm(prompt string, cfg Config) bool {
	if cfg.NonInteractive {
		return true
	}

	fmt.Printf("%s (y/n): ", prompt)
	response, err := cfg.reader().ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	confirmed := response == "y" || response == "yes"

	if cfg.Sound != nil && confirmed {
		cfg.Sound.PlayAsync("success")
	}

	return confirmed
}

// ChannelMenu asks the user to pick an update channel. Returns the default
// channel on read errors or in non-interactive mode.
func ChannelMenu(current string, cfg Config) string {
	if cfg.NonInteractive {
		return current
	}

	fmt.Println("\nFlightListChk Update Channel Selection")
	fmt.Println()
	fmt.Printf("  1. Stable%s\n", marker(current, channel.Stable))
	fmt.Println("     Tested releases only, updates less often")
	fmt.Println()
	fmt.Printf("  2. Dev%s\n", marker(current, channel.Dev))
	fmt.Println("     Latest checklist packs and fixes, may have rough edges")
	fmt.Println()
	fmt.Print("Enter your choice (1 or 2): ")

	reader := cfg.reader()
	for {
		response, err := reader.ReadString('\n')
		if err != nil {
			fmt.Printf("\nError reading input, keeping %s.\n", current)
			return current
		}

		switch strings.TrimSpace(response) {
		case "1":
			if cfg.Sound != nil {
				cfg.Sound.PlayAsync("success")
			}
			return channel.Stable
		case "2":
			if cfg.Sound != nil {
				cfg.Sound.PlayAsync("success")
			}
			return channel.Dev
		default:
			fmt.Print("Invalid choice. Please enter 1 or 2: ")
		}
	}
}

func marker(current, name string) string {
	if current == name {
		return " (current)"
	}
	return ""
}
