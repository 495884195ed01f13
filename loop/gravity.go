package loop

import "time"

// DefaultPeriod is the gravity interval used when GravitySystem.Period is
// not set.
const DefaultPeriod = time.Second

// GravitySystem is the tick driver. It accumulates frame time and calls
// Engine.Tick once every Period. Once the session is over it stops
// ticking, and with StopOnGameOver it also ends the scheduler's Run.
type GravitySystem struct {
	Period         time.Duration
	StopOnGameOver bool
	// Paused freezes the accumulator; player input still applies.
	Paused bool

	accumulator float64
}

func (s *GravitySystem) Execute(frame *Frame) {
	if frame.Engine.GameOver() {
		s.accumulator = 0
		if s.StopOnGameOver {
			frame.Stop()
		}
		return
	}

	if s.Paused {
		return
	}

	period := s.Period
	if period <= 0 {
		period = DefaultPeriod
	}

	s.accumulator += frame.DeltaTime
	if s.accumulator < period.Seconds() {
		return
	}
	s.accumulator = 0

	res := frame.Engine.Tick()
	frame.RecordTick(res)

	if res.GameOver() && s.StopOnGameOver {
		frame.Stop()
	}
}

// Pending returns the time accumulated toward the next tick.
func (s *GravitySystem) Pending() time.Duration {
	return time.Duration(s.accumulator * float64(time.Second))
}
