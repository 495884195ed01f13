package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays cues. SoundManager is the speaker-backed implementation.
type Player interface {
	Play(cue Cue)
}

// SoundManager mixes cues onto the default audio device.
type SoundManager struct {
	mu          sync.Mutex
	cache       *cueCache
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a manager that stays silent until Initialize
// succeeds.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		cache: newCueCache(),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := sm.cache.preload(); err != nil {
		return fmt.Errorf("render cues: %w", err)
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("open speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play starts a cue on top of whatever is already playing.
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	buf, err := sm.cache.get(cue)
	if err != nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// SetMuted silences or restores playback. Muting also cuts cues that are
// still sounding.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
}

// Muted reports whether playback is silenced.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.muted
}

// Cleanup stops every cue. The speaker itself stays open for the life of
// the process.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
