package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	d := config.Default()
	cmd := &cli.Command{
		Name:  "blockfall-stress",
		Usage: "run headless sessions with an autoplay bot and report throughput",
		Flags: []cli.Flag{
			&cli.DurationFlag{Name: "duration", Value: 10 * time.Second, Usage: "The total duration the test should run for."},
			&cli.IntFlag{Name: "sessions", Value: runtime.GOMAXPROCS(0), Usage: "The number of sessions played concurrently."},
			&cli.IntFlag{Name: "rows", Value: d.Rows, Usage: "board height in cells"},
			&cli.IntFlag{Name: "cols", Value: d.Cols, Usage: "board width in cells"},
			&cli.StringFlag{Name: "randomizer", Value: config.RandomizerBag, Usage: "piece randomizer: uniform or bag"},
			&cli.Uint64Flag{Name: "seed", Usage: "base seed; session i uses seed+i (0 picks one)"},
			&cli.BoolFlag{Name: "gc-pause-metrics", Usage: "Enable detailed GC pause metrics in the report."},
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.Default()
	cfg.Rows = cmd.Int("rows")
	cfg.Cols = cmd.Int("cols")
	cfg.Randomizer = cmd.String("randomizer")
	cfg.Seed = cmd.Uint64("seed")
	cfg.Debug = cmd.Bool("debug")
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	sessions := cmd.Int("sessions")
	if sessions < 1 {
		return fmt.Errorf("sessions must be positive, got %d", sessions)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	duration := cmd.Duration("duration")
	report := &Report{
		Duration:       duration,
		Sessions:       sessions,
		Rows:           cfg.Rows,
		Cols:           cfg.Cols,
		Randomizer:     cfg.Randomizer,
		Seed:           cfg.Seed,
		GCPauseMetrics: cmd.Bool("gc-pause-metrics"),
	}

	engines := make([]*engine.Engine, sessions)
	for i := range engines {
		sc := cfg
		sc.Seed = cfg.Seed + uint64(i)
		if engines[i], err = sc.NewEngine(); err != nil {
			return err
		}
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running stress test",
		zap.Int("sessions", sessions),
		zap.Duration("duration", duration),
		zap.Uint64("seed", cfg.Seed))

	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	startTime := time.Now()
	results := make([]*sessionStats, sessions)

	var wg sync.WaitGroup
	for i, e := range engines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = runSession(ctx, e, logger.With(zap.Int("session", i)))
		}()
	}
	wg.Wait()

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)

	for _, res := range results {
		report.TotalFrames += res.frames
		report.UpdateTime.Merge(res.updateTime)
		report.Games.Finished += res.games.Finished
		report.Games.Pieces += res.games.Pieces
		report.Games.Lines += res.games.Lines
		report.Games.TotalScore += res.games.TotalScore
		report.Games.BestScore = max(report.Games.BestScore, res.games.BestScore)
	}
	report.UpdateTime.Finalize()

	logger.Info("stress test finished",
		zap.Int64("frames", report.TotalFrames),
		zap.Int("games", report.Games.Finished))

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return err
	}
	fmt.Println("--- End of Report ---")

	return nil
}
