// Package audio plays one looping background track at a time.
package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// ErrAudioDevice reports that the output device could not be opened.
var ErrAudioDevice = errors.New("audio: device unavailable")

const sampleRate = beep.SampleRate(44100)

// Jukebox streams WAV tracks from an asset file system through the speaker.
// Switching tracks closes the previous stream.
type Jukebox struct {
	mu     sync.Mutex
	fsys   fs.FS
	tracks map[string]string
	logger *log.Logger

	mixer   *beep.Mixer
	ctrl    *beep.Ctrl
	stream  beep.StreamSeekCloser
	current string
	open    bool
}

// Open initialises the speaker and returns a jukebox serving tracks, a map
// from track name to path inside fsys.
func Open(fsys fs.FS, tracks map[string]string, logger *log.Logger) (*Jukebox, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAudioDevice, err)
	}
	j := newJukebox(fsys, tracks, logger)
	speaker.Play(j.mixer)
	return j, nil
}

func newJukebox(fsys fs.FS, tracks map[string]string, logger *log.Logger) *Jukebox {
	return &Jukebox{
		fsys:   fsys,
		tracks: tracks,
		logger: logger,
		mixer:  &beep.Mixer{},
		open:   true,
	}
}

// Play starts track from the beginning unless it is already playing. Unknown
// or undecodable tracks are logged and leave the jukebox silent.
func (j *Jukebox) Play(track string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.open || track == j.current {
		return
	}
	j.stopLocked()

	path, ok := j.tracks[track]
	if !ok {
		j.logf("audio: no file for track %q", track)
		return
	}
	f, err := j.fsys.Open(path)
	if err != nil {
		j.logf("audio: open %s: %v", path, err)
		return
	}
	// Decode closes f on failure.
	stream, format, err := wav.Decode(f)
	if err != nil {
		j.logf("audio: decode %s: %v", path, err)
		return
	}

	var s beep.Streamer = beep.Loop(-1, stream)
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, s)
	}
	ctrl := &beep.Ctrl{Streamer: s}

	speaker.Lock()
	j.mixer.Add(ctrl)
	speaker.Unlock()

	j.ctrl = ctrl
	j.stream = stream
	j.current = track
	j.logf("audio: playing %s", track)
}

// Stop silences the current track.
func (j *Jukebox) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopLocked()
}

// Close stops playback and releases the stream. Play is a no-op afterwards.
func (j *Jukebox) Close() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.open {
		return
	}
	j.stopLocked()
	speaker.Clear()
	j.open = false
}

func (j *Jukebox) stopLocked() {
	if j.ctrl == nil {
		return
	}
	speaker.Lock()
	j.ctrl.Paused = true
	j.mixer.Clear()
	speaker.Unlock()

	if err := j.stream.Close(); err != nil {
		j.logf("audio: close %s: %v", j.current, err)
	}
	j.ctrl = nil
	j.stream = nil
	j.current = ""
}

func (j *Jukebox) logf(format string, args ...any) {
	if j.logger != nil {
		j.logger.Printf(format, args...)
	}
}
