package loop

// InputSystem applies the player actions queued in Commands since the
// previous frame, in arrival order.
type InputSystem struct {
	Commands *Commands

	buf []Action
}

func (s *InputSystem) Execute(frame *Frame) {
	if s.Commands == nil {
		return
	}

	s.buf = s.Commands.Drain(s.buf[:0])
	e := frame.Engine

	for _, action := range s.buf {
		switch action {
		case ActionQuit:
			frame.Stop()
			return
		case ActionRestart:
			e.Reset()
			frame.Emit(Event{Kind: EventRestarted})
		case ActionMoveLeft:
			if e.MoveLeft() {
				frame.Emit(Event{Kind: EventShifted})
			}
		case ActionMoveRight:
			if e.MoveRight() {
				frame.Emit(Event{Kind: EventShifted})
			}
		case ActionRotate:
			if e.Rotate() {
				frame.Emit(Event{Kind: EventRotated})
			}
		case ActionSoftDrop:
			frame.RecordTick(e.SoftDrop())
		case ActionHardDrop:
			frame.RecordTick(e.HardDrop())
		}
	}
}
