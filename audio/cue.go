// Package audio plays short synthesized cues for session events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(48000)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Cue identifies one sound effect.
type Cue int

const (
	CueRotate Cue = iota
	CueLock
	CueSingle
	CueDouble
	CueTriple
	CueTetris
	CueGameOver
	cueCount
)

// LinesCue returns the cue for a landing that cleared n rows. It returns
// CueLock when nothing was cleared.
func LinesCue(n int) Cue {
	switch {
	case n <= 0:
		return CueLock
	case n >= 4:
		return CueTetris
	default:
		return CueSingle + Cue(n-1)
	}
}

func (c Cue) String() string {
	switch c {
	case CueRotate:
		return "rotate"
	case CueLock:
		return "lock"
	case CueSingle:
		return "single"
	case CueDouble:
		return "double"
	case CueTriple:
		return "triple"
	case CueTetris:
		return "tetris"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// note is one tone of a cue. A zero freq is a rest.
type note struct {
	freq float64
	dur  time.Duration
	vol  float64
}

// C major, fifth octave.
const (
	c5 = 523.25
	e5 = 659.25
	g5 = 783.99
	c6 = 1046.50
)

var cueNotes = [cueCount][]note{
	CueRotate: {{freq: 660, dur: 30 * time.Millisecond, vol: 0.2}},
	CueLock:   {{freq: 220, dur: 60 * time.Millisecond, vol: 0.4}},
	CueSingle: {{freq: c5, dur: 90 * time.Millisecond, vol: 0.5}},
	CueDouble: {
		{freq: c5, dur: 70 * time.Millisecond, vol: 0.5},
		{freq: e5, dur: 90 * time.Millisecond, vol: 0.5},
	},
	CueTriple: {
		{freq: c5, dur: 70 * time.Millisecond, vol: 0.5},
		{freq: e5, dur: 70 * time.Millisecond, vol: 0.5},
		{freq: g5, dur: 90 * time.Millisecond, vol: 0.5},
	},
	CueTetris: {
		{freq: c5, dur: 70 * time.Millisecond, vol: 0.6},
		{freq: e5, dur: 70 * time.Millisecond, vol: 0.6},
		{freq: g5, dur: 70 * time.Millisecond, vol: 0.6},
		{freq: c6, dur: 160 * time.Millisecond, vol: 0.6},
	},
	CueGameOver: {
		{freq: g5 / 2, dur: 150 * time.Millisecond, vol: 0.5},
		{dur: 40 * time.Millisecond},
		{freq: e5 / 2, dur: 150 * time.Millisecond, vol: 0.5},
		{dur: 40 * time.Millisecond},
		{freq: c5 / 2, dur: 300 * time.Millisecond, vol: 0.5},
	},
}

// render synthesizes a cue into a buffer at the package sample rate.
func render(c Cue) (*beep.Buffer, error) {
	buf := beep.NewBuffer(format)
	if c < 0 || c >= cueCount {
		return buf, nil
	}

	parts := make([]beep.Streamer, 0, len(cueNotes[c]))
	for _, n := range cueNotes[c] {
		samples := sampleRate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}

		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, volume(beep.Take(samples, tone), n.vol))
	}

	buf.Append(beep.Seq(parts...))
	return buf, nil
}

// volume scales s linearly; zero or less is silent.
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
