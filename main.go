package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"

	"nightshift/pkg/engine/input"
	"nightshift/pkg/engine/logger"
	"nightshift/pkg/game/config"
	"nightshift/pkg/game/gameplay"
	"nightshift/pkg/game/layout"
	"nightshift/pkg/game/renderer"
	ebitenrenderer "nightshift/pkg/game/renderer/ebiten"
	"nightshift/pkg/game/renderer/tui"
)

func initGettext(cfg *config.Config) {
	gotext.Configure(cfg.LocaleDir, cfg.Locale, "default")
}

// loadLayout returns the facility to play: a file when one is given, the
// built-in night otherwise
func loadLayout(cfg *config.Config) (*layout.Layout, error) {
	if cfg.LayoutPath == "" {
		return layout.Default()
	}
	return layout.Load(cfg.LayoutPath)
}

// newRenderer picks the presentation shell
func newRenderer(cfg *config.Config) renderer.Renderer {
	if cfg.Renderer == config.RendererEbiten {
		return ebitenrenderer.New(*cfg)
	}
	return tui.New()
}

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	initGettext(cfg)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logr := logger.NewStderr(cfg.Verbose)
	logr.Info("seed %d, renderer %s", seed, cfg.Renderer)

	l, err := loadLayout(cfg)
	if err != nil {
		log.Fatalf("Could not load layout: %v", err)
	}

	g, err := gameplay.BuildGame(cfg.Rules, l, rand.New(rand.NewSource(seed)), logr, time.Now())
	if err != nil {
		log.Fatalf("Could not start the night: %v", err)
	}

	renderer.SetRenderer(newRenderer(cfg))
	if err := renderer.Current.Init(); err != nil {
		log.Fatalf("Could not initialize renderer: %v", err)
	}

	err = renderer.Current.Run(g, func(intents []input.Intent, now time.Time) bool {
		return gameplay.Step(g, intents, now)
	})
	if err != nil {
		log.Fatalf("Renderer stopped: %v", err)
	}

	logr.Info("night over: %s, battery %d, %d turns left", g.Status, g.Battery, g.TurnsRemaining)
	if ending := gameplay.Ending(g); ending != "" {
		renderer.Current.ShowMessage(ending)
	}
}
