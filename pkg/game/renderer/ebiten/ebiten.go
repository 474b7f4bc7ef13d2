package ebiten

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"nightshift/pkg/game/config"
	"nightshift/pkg/game/renderer"
	"nightshift/pkg/game/state"
	gameworld "nightshift/pkg/game/world"
)

// New creates a new Ebiten renderer
func New(cfg config.Config) *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  cfg.WindowWidth,
		windowHeight: cfg.WindowHeight,
		tps:          cfg.TPS,
		assetDir:     cfg.AssetDir,
		sprites:      make(map[string]*ebiten.Image),
		jumpscares:   make(map[string]*ebiten.Image),
	}
}

// Init loads fonts. Pictures are loaded when the night starts.
func (e *EbitenRenderer) Init() error {
	return e.loadFonts()
}

// FormatText formats a message, keeping markup for drawColoredTextSegments
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// ShowMessage writes a line to the console overlay and to stdout, which
// outlives the window
func (e *EbitenRenderer) ShowMessage(msg string) {
	line := renderer.StripMarkup(e.FormatText(msg))
	e.addConsoleOutput(line)
	fmt.Println(line)
}

// Run opens the window and drives the game from Update until the player
// quits, closes the window, or the capture scene has played out.
func (e *EbitenRenderer) Run(g *state.Game, step renderer.StepFunc) error {
	e.gameMutex.Lock()
	e.game = g
	e.step = step
	e.log = g.Log
	e.gameMutex.Unlock()

	e.RenderFrame(g)

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Night Shift"))
	ebiten.SetTPS(e.tps)

	log.Printf("Opening window (%dx%d, %d TPS)", e.windowWidth, e.windowHeight, e.tps)

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run ebiten: %w", err)
	}
	return nil
}

// Layout returns the game's logical screen size. Layouts are authored for a
// fixed screen, so the window scales it rather than revealing more.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gameworld.ScreenWidth, gameworld.ScreenHeight
}
