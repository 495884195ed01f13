package audio

import "github.com/plus3/blockfall/loop"

// SoundSystem turns the events of a frame into cues. Register it after the
// systems that emit events.
type SoundSystem struct {
	Player Player
}

func (s *SoundSystem) Execute(frame *loop.Frame) {
	if s.Player == nil {
		return
	}

	for i, ev := range frame.Events {
		switch ev.Kind {
		case loop.EventRotated:
			s.Player.Play(CueRotate)
		case loop.EventLanded:
			// A clear or a game over from this landing has its own cue.
			if !followedByOutcome(frame.Events[i+1:]) {
				s.Player.Play(CueLock)
			}
		case loop.EventLinesCleared:
			s.Player.Play(LinesCue(ev.Lines))
		case loop.EventGameOver:
			s.Player.Play(CueGameOver)
		}
	}
}

// followedByOutcome reports whether the events emitted right after a landing
// carry a clear or a game over.
func followedByOutcome(rest []loop.Event) bool {
	if len(rest) == 0 {
		return false
	}
	kind := rest[0].Kind
	return kind == loop.EventLinesCleared || kind == loop.EventGameOver
}
