package loop

import (
	"github.com/plus3/blockfall/engine"
	"go.uber.org/zap"
)

// Frame is passed to every system during one scheduler pass.
type Frame struct {
	DeltaTime float64
	Engine    *engine.Engine
	Logger    *zap.Logger
	Events    []Event

	defers  []func()
	stopped bool
}

func newFrame(dt float64, e *engine.Engine, logger *zap.Logger) *Frame {
	return &Frame{
		DeltaTime: dt,
		Engine:    e,
		Logger:    logger,
	}
}

// Emit records an event for the systems that run later in the same frame.
func (f *Frame) Emit(ev Event) {
	f.Events = append(f.Events, ev)
}

// Has reports whether an event of the given kind was emitted this frame.
func (f *Frame) Has(kind EventKind) bool {
	for _, ev := range f.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

// Defer queues fn to run after every system has executed.
func (f *Frame) Defer(fn func()) {
	f.defers = append(f.defers, fn)
}

// Stop asks the scheduler to leave Run once this frame completes.
func (f *Frame) Stop() {
	f.stopped = true
}

// Stopped reports whether a system called Stop during this frame.
func (f *Frame) Stopped() bool {
	return f.stopped
}

// RecordTick turns an engine step result into frame events.
func (f *Frame) RecordTick(res engine.TickResult) {
	switch res.Outcome {
	case engine.Moved:
		f.Emit(Event{Kind: EventFell})
	case engine.Landed:
		f.Emit(Event{Kind: EventLanded})
		if res.Lines > 0 {
			f.Emit(Event{Kind: EventLinesCleared, Lines: res.Lines, Points: res.Points})
		}
		if res.GameOver() {
			f.Emit(Event{Kind: EventGameOver})
		}
	}
}

func (f *Frame) flush() {
	for _, fn := range f.defers {
		fn()
	}
	f.defers = f.defers[:0]
}
