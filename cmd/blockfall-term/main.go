package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	flags := append(config.Flags(), &cli.DurationFlag{
		Name:    "frame",
		Value:   16 * time.Millisecond,
		Usage:   "redraw interval",
		Sources: cli.EnvVars(config.EnvPrefix + "FRAME"),
	})

	cmd := &cli.Command{
		Name:   "blockfall-term",
		Usage:  "play the falling-block puzzle in a terminal",
		Flags:  flags,
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.FromCommand(cmd)
	if err != nil {
		return err
	}

	// The screen owns stderr, so only log when a file was given.
	logger := zap.NewNop()
	if cfg.LogFile != "" {
		if logger, err = config.NewLogger(cfg); err != nil {
			return err
		}
	}
	defer logger.Sync()

	e, err := cfg.NewEngine()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	sound := audio.NewSoundManager()
	sound.SetMuted(cfg.Mute)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
	}
	defer sound.Cleanup()

	commands := loop.NewCommands()
	controls := &controls{}
	gravity := &loop.GravitySystem{Period: cfg.Period}

	scheduler := loop.NewScheduler(e, loop.WithLogger(logger))
	scheduler.Register(&loop.InputSystem{Commands: commands})
	scheduler.Register(&controlSystem{controls: controls, gravity: gravity, sound: sound})
	scheduler.Register(gravity)
	scheduler.Register(&audio.SoundSystem{Player: sound})
	scheduler.Register(&renderSystem{screen: screen, gravity: gravity, sound: sound})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go pollEvents(screen, commands, controls)

	err = scheduler.Run(ctx, cmd.Duration("frame"))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollEvents feeds key presses into the command buffer until the screen is
// finalized.
func pollEvents(screen tcell.Screen, commands *loop.Commands, controls *controls) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if action, ok := keyAction(ev.Key(), ev.Rune()); ok {
				commands.Push(action)
				continue
			}
			controls.press(ev.Rune())
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
