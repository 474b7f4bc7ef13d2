package config

import (
	"errors"
	"flag"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
	r := c.Rules
	if r.StartBattery != 100 || r.TurnBudget != 20 || r.LightCost != 2 {
		t.Errorf("rules = %+v, want battery 100, budget 20, light cost 2", r)
	}
	if r.DrainedInterval != 3*time.Second {
		t.Errorf("DrainedInterval = %v, want 3s", r.DrainedInterval)
	}
	if r.DrainedCanWin {
		t.Error("DrainedCanWin defaults to true, want false")
	}
	if c.WindowWidth != 1024 || c.WindowHeight != 768 || c.TPS != 60 {
		t.Errorf("window = %dx%d @%d, want 1024x768 @60", c.WindowWidth, c.WindowHeight, c.TPS)
	}
}

func TestRegisterFlags(t *testing.T) {
	c := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.RegisterFlags(fs)

	args := []string{"-renderer", "ebiten", "-seed", "7", "-layout", "night.yaml", "-drained-can-win", "-drained-interval", "500ms", "-verbose"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if c.Renderer != RendererEbiten {
		t.Errorf("Renderer = %q, want %q", c.Renderer, RendererEbiten)
	}
	if c.Seed != 7 {
		t.Errorf("Seed = %d, want 7", c.Seed)
	}
	if c.LayoutPath != "night.yaml" {
		t.Errorf("LayoutPath = %q, want %q", c.LayoutPath, "night.yaml")
	}
	if !c.Rules.DrainedCanWin || !c.Verbose {
		t.Errorf("DrainedCanWin = %v, Verbose = %v, want both true", c.Rules.DrainedCanWin, c.Verbose)
	}
	if c.Rules.DrainedInterval != 500*time.Millisecond {
		t.Errorf("DrainedInterval = %v, want 500ms", c.Rules.DrainedInterval)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"BadRenderer", func(c *Config) { c.Renderer = "sdl" }, ErrBadRenderer},
		{"NoBattery", func(c *Config) { c.Rules.StartBattery = 0 }, ErrBadRule},
		{"NoTurns", func(c *Config) { c.Rules.TurnBudget = -1 }, ErrBadRule},
		{"NegativeLightCost", func(c *Config) { c.Rules.LightCost = -2 }, ErrBadRule},
		{"ZeroInterval", func(c *Config) { c.Rules.DrainedInterval = 0 }, ErrBadRule},
		{"ZeroTPS", func(c *Config) { c.TPS = 0 }, ErrBadRule},
		{"NoWindow", func(c *Config) { c.WindowWidth = 0 }, ErrBadWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
