// Package config holds the game rules and the settings of the presentation shells.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// Renderer backends
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Configuration errors
var (
	ErrBadRenderer = errors.New("unknown renderer")
	ErrBadRule     = errors.New("invalid rule value")
	ErrBadWindow   = errors.New("invalid window size")
)

// Rules are the numbers the engine plays by.
type Rules struct {
	StartBattery    int           // battery percentage at the start of a night
	TurnBudget      int           // turns to survive
	LightCost       int           // battery spent switching a light on, and the minimum needed to toggle one
	DrainedInterval time.Duration // wall-clock time between automatic turns once drained
	DrainedCanWin   bool          // let the drained countdown reach zero and win
}

// Config is the full runtime configuration.
type Config struct {
	Rules Rules

	Renderer     string
	TPS          int
	WindowWidth  int
	WindowHeight int

	AssetDir   string
	LocaleDir  string
	Locale     string
	LayoutPath string // empty uses the embedded layout

	Seed    int64 // 0 picks a time-based seed
	Verbose bool
}

// DefaultRules returns the standard ruleset.
func DefaultRules() Rules {
	return Rules{
		StartBattery:    100,
		TurnBudget:      20,
		LightCost:       2,
		DrainedInterval: 3 * time.Second,
	}
}

// Default returns a config with the standard rules and a TUI shell.
func Default() *Config {
	return &Config{
		Rules:        DefaultRules(),
		Renderer:     RendererTUI,
		TPS:          60,
		WindowWidth:  1024,
		WindowHeight: 768,
		AssetDir:     "assets",
		LocaleDir:    "locales",
		Locale:       "en",
	}
}

// RegisterFlags binds the command line flags to c. Values already in c are the defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer backend: tui or ebiten")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
	fs.StringVar(&c.LayoutPath, "layout", c.LayoutPath, "path to a facility layout YAML file")
	fs.StringVar(&c.AssetDir, "assets", c.AssetDir, "directory holding agent sprites and jumpscares")
	fs.StringVar(&c.LocaleDir, "locales", c.LocaleDir, "directory holding translation catalogues")
	fs.StringVar(&c.Locale, "locale", c.Locale, "language of in-game text")
	fs.BoolVar(&c.Rules.DrainedCanWin, "drained-can-win", c.Rules.DrainedCanWin, "allow surviving the night after the battery runs out")
	fs.DurationVar(&c.Rules.DrainedInterval, "drained-interval", c.Rules.DrainedInterval, "time between automatic turns once drained")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "log every game event to stderr")
}

// Validate checks the config for values the game cannot run with.
func (c *Config) Validate() error {
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("%q: %w", c.Renderer, ErrBadRenderer)
	}

	r := c.Rules
	if r.StartBattery <= 0 {
		return fmt.Errorf("start battery %d: %w", r.StartBattery, ErrBadRule)
	}
	if r.TurnBudget <= 0 {
		return fmt.Errorf("turn budget %d: %w", r.TurnBudget, ErrBadRule)
	}
	if r.LightCost < 0 {
		return fmt.Errorf("light cost %d: %w", r.LightCost, ErrBadRule)
	}
	if r.DrainedInterval <= 0 {
		return fmt.Errorf("drained interval %v: %w", r.DrainedInterval, ErrBadRule)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d: %w", c.TPS, ErrBadRule)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%dx%d: %w", c.WindowWidth, c.WindowHeight, ErrBadWindow)
	}
	return nil
}
