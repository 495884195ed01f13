package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// EnvPrefix is prepended to every flag's environment variable.
const EnvPrefix = "BLOCKFALL_"

// Flags returns the command-line flags that populate a Config. Each flag can
// also be set through a BLOCKFALL_* environment variable.
func Flags() []cli.Flag {
	d := Default()

	return []cli.Flag{
		&cli.IntFlag{
			Name:    "rows",
			Value:   d.Rows,
			Usage:   "board height in cells",
			Sources: cli.EnvVars(EnvPrefix + "ROWS"),
		},
		&cli.IntFlag{
			Name:    "cols",
			Value:   d.Cols,
			Usage:   "board width in cells",
			Sources: cli.EnvVars(EnvPrefix + "COLS"),
		},
		&cli.DurationFlag{
			Name:    "period",
			Value:   d.Period,
			Usage:   "gravity interval",
			Sources: cli.EnvVars(EnvPrefix + "PERIOD"),
		},
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "randomizer seed (0 picks one)",
			Sources: cli.EnvVars(EnvPrefix + "SEED"),
		},
		&cli.StringFlag{
			Name:    "randomizer",
			Value:   d.Randomizer,
			Usage:   "piece randomizer: uniform or bag",
			Sources: cli.EnvVars(EnvPrefix + "RANDOMIZER"),
		},
		&cli.BoolFlag{
			Name:    "mute",
			Usage:   "disable sound",
			Sources: cli.EnvVars(EnvPrefix + "MUTE"),
		},
		&cli.BoolFlag{
			Name:    "debug-ui",
			Usage:   "show the inspector panels",
			Sources: cli.EnvVars(EnvPrefix + "DEBUG_UI"),
		},
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "enable debug logging",
			Sources: cli.EnvVars(EnvPrefix + "DEBUG"),
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "write logs to this file instead of stderr",
			Sources: cli.EnvVars(EnvPrefix + "LOG_FILE"),
		},
	}
}

// FromCommand reads the flags declared by Flags and validates the result.
func FromCommand(cmd *cli.Command) (Config, error) {
	c := Config{
		Rows:       cmd.Int("rows"),
		Cols:       cmd.Int("cols"),
		Period:     cmd.Duration("period"),
		Seed:       cmd.Uint64("seed"),
		Randomizer: cmd.String("randomizer"),
		Mute:       cmd.Bool("mute"),
		DebugUI:    cmd.Bool("debug-ui"),
		Debug:      cmd.Bool("debug"),
		LogFile:    cmd.String("log-file"),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadEnv copies variables from the given dotenv files (".env" when none
// are named) into the process environment. Variables that are already set
// win, and missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return fmt.Errorf("load %s: %w", file, err)
	}
	return nil
}
