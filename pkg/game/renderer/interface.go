package renderer

import (
	"time"

	"nightshift/pkg/engine/input"
	"nightshift/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleRoomLit
	StyleOffice
	StyleHallway
	StyleBlocked
	StyleAgent
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
)

// StepFunc advances the game by one logic tick with the intents gathered
// since the previous tick. It returns false when the player asked to quit.
type StepFunc func(intents []input.Intent, now time.Time) bool

// Renderer defines the interface for game rendering backends
// Implementations can include TUI (terminal), Ebiten, etc.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, assets, etc.)
	Init() error

	// RenderFrame captures a complete game frame: the facility, the battery
	// HUD, messages and, once the night is over, its ending.
	RenderFrame(g *state.Game)

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message outside the game view, such as the
	// ending once Run has returned
	ShowMessage(msg string)

	// Run owns the main loop until the night ends or the player quits.
	// step is called once per logic tick and RenderFrame after every change.
	Run(g *state.Game, step StepFunc) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}
