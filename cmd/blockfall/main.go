package main

import (
	"context"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const windowTitle = "Blockfall"

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	cmd := &cli.Command{
		Name:   "blockfall",
		Usage:  "play the falling-block puzzle in a window",
		Flags:  config.Flags(),
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

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	e, err := cfg.NewEngine()
	if err != nil {
		return err
	}

	commands := loop.NewCommands()
	scheduler := loop.NewScheduler(e, loop.WithLogger(logger))
	scheduler.Register(&loop.InputSystem{Commands: commands})

	gravity := &loop.GravitySystem{Period: cfg.Period}
	scheduler.Register(gravity)

	sound := audio.NewSoundManager()
	sound.SetMuted(cfg.Mute)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
	}
	defer sound.Cleanup()
	scheduler.Register(&audio.SoundSystem{Player: sound})

	layout := newLayout(cfg.Rows, cfg.Cols, cfg.DebugUI)
	game := &Game{
		scheduler: scheduler,
		commands:  commands,
		gravity:   gravity,
		sound:     sound,
		keys:      newKeyboard(),
		layout:    layout,
	}

	if cfg.DebugUI {
		game.imgui = debugui_ebiten.NewImguiBackend(windowTitle, layout.width, layout.height)
		game.ui = &debugui.ImguiSystem{}
		debugui.Install(game.ui, scheduler, gravity, commands)
		scheduler.Register(game.ui)
	} else {
		ebiten.SetWindowSize(layout.width, layout.height)
		ebiten.SetWindowTitle(windowTitle)
	}

	logger.Info("window opened",
		zap.Int("rows", cfg.Rows),
		zap.Int("cols", cfg.Cols),
		zap.Duration("period", cfg.Period),
		zap.String("randomizer", cfg.Randomizer),
		zap.Bool("debug_ui", cfg.DebugUI))

	return ebiten.RunGame(game)
}
