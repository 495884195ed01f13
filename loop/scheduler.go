// Package loop drives an engine session: it runs an ordered list of
// systems once per frame, applies queued player input, advances gravity on
// a fixed period and collects per-system timing statistics.
package loop

import (
	"context"
	"reflect"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/engine"
	"go.uber.org/zap"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount int
	Frames      int64
	Systems     []SystemStats
	// Events counts every event emitted since the scheduler was created.
	Events map[EventKind]int64
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemTimer struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func (t *systemTimer) observe(d time.Duration) {
	t.count++
	t.last = d
	t.total += d
	if d < t.min {
		t.min = d
	}
	if d > t.max {
		t.max = d
	}
}

// Scheduler runs systems against one engine session.
type Scheduler struct {
	engine  *engine.Engine
	logger  *zap.Logger
	systems []System
	timers  []*systemTimer
	events  *intmap.Map[EventKind, int64]
	frames  int64
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger handed to systems through the frame.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// NewScheduler creates a scheduler for the given session.
func NewScheduler(e *engine.Engine, opts ...Option) *Scheduler {
	s := &Scheduler{
		engine: e,
		logger: zap.NewNop(),
		events: intmap.New[EventKind, int64](8),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine returns the session the scheduler drives.
func (s *Scheduler) Engine() *engine.Engine {
	return s.engine
}

// Register appends a system to the frame pipeline.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.timers = append(s.timers, &systemTimer{
		name: systemName(system),
		min:  time.Duration(1<<63 - 1),
	})
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

// Once executes all registered systems with the given delta time in
// seconds, then runs the callbacks they deferred. It returns false if a
// system asked the loop to stop.
func (s *Scheduler) Once(dt float64) bool {
	frame := newFrame(dt, s.engine, s.logger)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timers[i].observe(time.Since(start))
	}

	frame.flush()
	s.frames++
	s.record(frame)

	return !frame.Stopped()
}

func (s *Scheduler) record(frame *Frame) {
	for _, ev := range frame.Events {
		n, _ := s.events.Get(ev.Kind)
		s.events.Put(ev.Kind, n+1)

		switch ev.Kind {
		case EventLinesCleared:
			s.logger.Debug("lines cleared",
				zap.Int("lines", ev.Lines),
				zap.Int("points", ev.Points))
		case EventGameOver:
			st := s.engine.State()
			s.logger.Info("game over",
				zap.Int("score", st.Score),
				zap.Int("lines", st.Lines),
				zap.Int("pieces", st.Pieces))
		case EventRestarted:
			s.logger.Info("session restarted")
		}
	}
}

// Run executes frames at the given interval until the context is cancelled
// or a system calls Frame.Stop. It returns the context's error in the
// first case and nil in the second.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	rows, cols := s.engine.Size()
	s.logger.Info("session started",
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Duration("frame", interval))

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if !s.Once(dt) {
				return nil
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.timers)),
		Events:      make(map[EventKind]int64, s.events.Len()),
	}

	for i, t := range s.timers {
		var avg time.Duration
		if t.count > 0 {
			avg = t.total / time.Duration(t.count)
		}

		stats.Systems[i] = SystemStats{
			Name:           t.name,
			ExecutionCount: t.count,
			MinDuration:    t.min,
			MaxDuration:    t.max,
			AvgDuration:    avg,
			LastDuration:   t.last,
			TotalDuration:  t.total,
		}
	}

	s.events.ForEach(func(kind EventKind, n int64) bool {
		stats.Events[kind] = n
		return true
	})

	return stats
}
