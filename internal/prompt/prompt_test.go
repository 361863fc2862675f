package prompt

import (
	"strings"
	"testing"

	"github.com/Fir3Fly1995/FlightListChk/internal/channel"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes short", "y\n", true},
		{"yes long", "yes\n", true},
		{"uppercase", "Y\n", true},
		{"no", "n\n", false},
		{"anything else", "maybe\n", false},
		{"empty line", "\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Input: strings.NewReader(tt.input)}
			if got := Confirm("Update now?", cfg); got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

type recordingPlayer struct {
	played []string
}

func (p *recordingPlayer) Play(name string)      { p.played = append(p.played, name) }
func (p *recordingPlayer) PlayAsync(name string) { p.played = append(p.played, name) }

func TestConfirmPlaysSound(t *testing.T) {
	player := &recordingPlayer{}
	cfg := Config{Input: strings.NewReader("y\n"), Sound: player}
	if !Confirm("Update now?", cfg) {
		t.Fatal("Confirm() = false, want true")
	}
	if len(player.played) != 1 || player.played[0] != "success" {
		t.Errorf("played = %v, want [success]", player.played)
	}

	player.played = nil
	cfg.Input = strings.NewReader("n\n")
	if Confirm("Update now?", cfg) {
		t.Fatal("Confirm() = true, want false")
	}
	if len(player.played) != 0 {
		t.Errorf("played = %v after declining, want none", player.played)
	}
}

func TestConfirmNonInteractive(t *testing.T) {
	cfg := Config{NonInteractive: true}
	if !Confirm("Update now?", cfg) {
		t.Error("Confirm() = false in non-interactive mode, want true")
	}
}

func TestChannelMenu(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"choose stable", "1\n", channel.Stable},
		{"choose dev", "2\n", channel.Dev},
		{"invalid then dev", "7\n2\n", channel.Dev},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Input: strings.NewReader(tt.input)}
			if got := ChannelMenu(channel.Stable, cfg); got != tt.want {
				t.Errorf("ChannelMenu() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChannelMenuFallsBackOnEOF(t *testing.T) {
	cfg := Config{Input: strings.NewReader("")}
	if got := ChannelMenu(channel.Dev, cfg); got != channel.Dev {
		t.Errorf("ChannelMenu() = %q, want current channel on EOF", got)
	}
}

func TestChannelMenuNonInteractive(t *testing.T) {
	cfg := Config{NonInteractive: true}
	if got := ChannelMenu(channel.Dev, cfg); got != channel.Dev {
		t.Errorf("ChannelMenu() = %q, want current channel", got)
	}
}
