package main

import (
	"context"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"go.uber.org/zap"
)

// sessionStats is owned by one session goroutine until it returns.
type sessionStats struct {
	frames     int64
	updateTime Stats
	games      GameStats
}

func (s *sessionStats) finishGame(score, lines, pieces int) {
	s.games.Finished++
	s.games.TotalScore += score
	s.games.BestScore = max(s.games.BestScore, score)
	s.games.Lines += lines
	s.games.Pieces += pieces
}

// runSession plays one engine with the bot until ctx is done.
func runSession(ctx context.Context, e *engine.Engine, logger *zap.Logger) *sessionStats {
	stats := &sessionStats{}
	commands := loop.NewCommands()

	scheduler := loop.NewScheduler(e, loop.WithLogger(logger))
	scheduler.Register(&loop.InputSystem{Commands: commands})
	scheduler.Register(&botSystem{commands: commands, stats: stats})

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(0)
			stats.updateTime.Observe(time.Since(updateStart))
			stats.frames++
		}
	}

	// Count the game in progress toward play totals but not toward scores.
	if !e.GameOver() {
		stats.games.Lines += e.Lines()
		stats.games.Pieces += e.Pieces()
	}

	return stats
}
