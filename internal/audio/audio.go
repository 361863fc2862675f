// Package audio plays short cue sounds for launcher and viewer events.
package audio

import (
	"bytes"
	"embed"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

//go:embed sounds/*.wav
var sounds embed.FS

// Cue names.
const (
	Start       = "start"
	Downloading = "downloading"
	Success     = "success"
	UpToDate    = "up_to_date"
	Error       = "error"
	Complete    = "complete"
)

var (
	speakerOnce  sync.Once
	speakerReady bool
	quiet        bool
	logFunc      func(string, ...interface{})
)

// Init configures the package. With quietMode set all cues are no-ops.
func Init(quietMode bool, logger func(string, ...interface{})) {
	quiet = quietMode
	logFunc = logger
}

func logf(format string, args ...interface{}) {
	if logFunc != nil {
		logFunc(format, args...)
	}
}

func ensureSpeaker(format beep.Format) {
	speakerOnce.Do(func() {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			logf("audio unavailable: %v", err)
			return
		}
		speakerReady = true
	})
}

func decode(name string) (beep.StreamSeekCloser, beep.Format, bool) {
	data, err := sounds.ReadFile("sounds/" + name + ".wav")
	if err != nil {
		logf("unknown cue %q: %v", name, err)
		return nil, beep.Format{}, false
	}

	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		logf("cue %q couldn't be decoded: %v", name, err)
		return nil, beep.Format{}, false
	}
	return streamer, format, true
}

// Play plays a cue synchronously, blocking until it finishes.
func Play(name string) {
	if quiet {
		return
	}

	streamer, format, ok := decode(name)
	if !ok {
		return
	}
	defer streamer.Close()

	ensureSpeaker(format)
	if !speakerReady {
		return
	}

	done := make(chan bool)
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		done <- true
	})))
	<-done
}

// PlayAsync starts a cue without blocking.
func PlayAsync(name string) {
	if quiet {
		return
	}

	streamer, format, ok := decode(name)
	if !ok {
		return
	}

	ensureSpeaker(format)
	if !speakerReady {
		streamer.Close()
		return
	}

	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		streamer.Close()
	})))
}

// StopAll stops any playing cues.
func StopAll() {
	if !speakerReady {
		return
	}
	speaker.Clear()
}

// Cues is a value handle over the package's playback functions, for callers
// that take a sound player rather than importing this package directly.
type Cues struct{}

// Play plays a cue synchronously.
func (Cues) Play(name string) { Play(name) }

// PlayAsync starts a cue without blocking.
func (Cues) PlayAsync(name string) { PlayAsync(name) }
