// Package config holds the settings shared by the blockfall commands and
// turns them into an engine session and a logger.
package config

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/plus3/blockfall/engine"
)

// Randomizer names accepted by Config.Randomizer.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// MinSize is the smallest row or column count a board may have. Every
// catalog piece fits in a 4×4 area.
const MinSize = 4

var (
	ErrInvalidSize       = errors.New("invalid board size")
	ErrInvalidPeriod     = errors.New("invalid tick period")
	ErrUnknownRandomizer = errors.New("unknown randomizer")
	randomizers          = []string{RandomizerUniform, RandomizerBag}
)

// Config describes one session and the surroundings it runs in.
type Config struct {
	Rows   int
	Cols   int
	Period time.Duration
	// Seed feeds the piece randomizer. Zero picks a random seed.
	Seed       uint64
	Randomizer string

	Mute    bool
	DebugUI bool
	Debug   bool
	// LogFile redirects log output away from stderr.
	LogFile string
}

// Default returns the standard 20×10 board with one-second gravity.
func Default() Config {
	return Config{
		Rows:       engine.DefaultRows,
		Cols:       engine.DefaultCols,
		Period:     time.Second,
		Randomizer: RandomizerUniform,
	}
}

// Validate reports the first setting that cannot start a session.
func (c Config) Validate() error {
	if c.Rows < MinSize || c.Cols < MinSize {
		return fmt.Errorf("%w: %d×%d, need at least %d×%d", ErrInvalidSize, c.Rows, c.Cols, MinSize, MinSize)
	}
	if c.Period <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPeriod, c.Period)
	}
	if !slices.Contains(randomizers, c.Randomizer) {
		return fmt.Errorf("%w: %q", ErrUnknownRandomizer, c.Randomizer)
	}
	return nil
}

// Source builds the piece generator named by Randomizer.
func (c Config) Source() (engine.Source, error) {
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	switch c.Randomizer {
	case RandomizerUniform:
		return engine.NewUniformSource(seed), nil
	case RandomizerBag:
		return engine.NewBagSource(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRandomizer, c.Randomizer)
	}
}

// NewEngine validates the config and starts a session with it.
func (c Config) NewEngine() (*engine.Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	src, err := c.Source()
	if err != nil {
		return nil, err
	}
	return engine.New(c.Rows, c.Cols, engine.WithSource(src)), nil
}
