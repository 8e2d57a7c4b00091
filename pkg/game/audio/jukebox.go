// Package audio plays the looping background music of the menus and the maze.
package audio

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"mazerun/pkg/game/level"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

// ErrTrackUnavailable is returned when a track cannot be opened or decoded
var ErrTrackUnavailable = errors.New("track unavailable")

// Track identifies a piece of music
type Track int

const (
	TrackNone Track = iota
	TrackMenu
	TrackGame
)

// String returns the track name, used in logs
func (t Track) String() string {
	switch t {
	case TrackMenu:
		return "menu"
	case TrackGame:
		return "game"
	default:
		return "none"
	}
}

// Output is where streams are played. The real one is the beep speaker.
type Output interface {
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

// Decoder opens a track file
type Decoder func(path string) (beep.StreamSeekCloser, beep.Format, error)

type speakerOutput struct{}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Clear()               { speaker.Clear() }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }

// decodeMP3 opens and decodes an mp3 file. The returned stream owns the file.
func decodeMP3(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	s, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, err
	}
	return s, format, nil
}

// Jukebox loops one track at a time. Without an audio device it stays silent.
type Jukebox struct {
	mu sync.Mutex

	out    Output
	decode Decoder
	paths  map[Track]string
	volume float64

	current Track
	stream  beep.StreamSeekCloser
	ctrl    *beep.Ctrl
	gain    *effects.Volume
	silent  bool
}

// NewJukebox opens the speaker and loads track paths from assetDir.
// A disabled or failed speaker gives a silent jukebox, never an error.
func NewJukebox(assetDir string, volume float64, enabled bool) *Jukebox {
	paths := map[Track]string{
		TrackMenu: filepath.Join(assetDir, level.AssetMenuMusic),
		TrackGame: filepath.Join(assetDir, level.AssetGameMusic),
	}
	if !enabled {
		log.Printf("Audio disabled")
		return &Jukebox{silent: true, paths: paths, volume: volume}
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		log.Printf("Audio unavailable, continuing without music: %v", err)
		return &Jukebox{silent: true, paths: paths, volume: volume}
	}
	return NewJukeboxWithOutput(speakerOutput{}, decodeMP3, paths, volume)
}

// NewJukeboxWithOutput builds a jukebox on an explicit output and decoder
func NewJukeboxWithOutput(out Output, decode Decoder, paths map[Track]string, volume float64) *Jukebox {
	return &Jukebox{
		out:    out,
		decode: decode,
		paths:  paths,
		volume: volume,
	}
}

// Silent reports whether the jukebox has no output
func (j *Jukebox) Silent() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.silent
}

// Current returns the track being played
func (j *Jukebox) Current() Track {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.current
}

// PlayMenu switches to the menu music
func (j *Jukebox) PlayMenu() error {
	return j.Play(TrackMenu)
}

// PlayGame switches to the in-game music
func (j *Jukebox) PlayGame() error {
	return j.Play(TrackGame)
}

// Play stops whatever is playing and loops track forever.
// Asking for the current track again keeps it playing from where it is.
func (j *Jukebox) Play(track Track) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.silent {
		return nil
	}
	if track == j.current && j.ctrl != nil {
		return nil
	}
	j.stopLocked()

	path, ok := j.paths[track]
	if !ok {
		return fmt.Errorf("%w: no file for %s", ErrTrackUnavailable, track)
	}
	stream, format, err := j.decode(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTrackUnavailable, path, err)
	}

	var s beep.Streamer = beep.Loop(-1, stream)
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, s)
	}
	gain, silent := volumeLevel(j.volume)
	j.gain = &effects.Volume{Streamer: s, Base: 2, Volume: gain, Silent: silent}
	j.ctrl = &beep.Ctrl{Streamer: j.gain, Paused: false}
	j.stream = stream
	j.current = track

	j.out.Play(j.ctrl)
	return nil
}

// Stop silences the current track
func (j *Jukebox) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopLocked()
}

func (j *Jukebox) stopLocked() {
	if j.silent || j.ctrl == nil {
		j.current = TrackNone
		return
	}
	j.out.Lock()
	j.ctrl.Paused = true
	j.out.Unlock()
	j.out.Clear()

	if err := j.stream.Close(); err != nil {
		log.Printf("Closing %s track: %v", j.current, err)
	}
	j.ctrl = nil
	j.gain = nil
	j.stream = nil
	j.current = TrackNone
}

// SetVolume changes the volume (0.0 - 1.0), including the track in progress
func (j *Jukebox) SetVolume(v float64) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.volume = math.Max(0, math.Min(1, v))
	if j.gain == nil {
		return
	}
	gain, silent := volumeLevel(j.volume)
	j.out.Lock()
	j.gain.Volume = gain
	j.gain.Silent = silent
	j.out.Unlock()
}

// Volume returns the configured volume
func (j *Jukebox) Volume() float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.volume
}

// Close stops playback
func (j *Jukebox) Close() {
	j.Stop()
}

// volumeLevel converts a linear volume to a base-2 gain.
// math.Log2(0) is -Inf, so zero and below are reported as silent.
func volumeLevel(v float64) (gain float64, silent bool) {
	if v <= 0 {
		return 0, true
	}
	return math.Log2(v), false
}
