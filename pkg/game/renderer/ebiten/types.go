// Package ebiten provides an Ebiten-based 2D graphical renderer for the facility.
package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "nightshift/pkg/engine/input"
	"nightshift/pkg/engine/logger"
	"nightshift/pkg/game/renderer"
	"nightshift/pkg/game/state"
)

// renderSnapshot holds a consistent snapshot of game state for rendering
// This prevents tearing between the logic tick and Draw
type renderSnapshot struct {
	valid bool
	state.Snapshot
}

// jumpscare tracks the capture picture fading in
type jumpscare struct {
	alpha    int   // 0-255
	opaqueAt int64 // Unix milliseconds when alpha reached 255 (0 = not yet)
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int
	tps          int

	// assetDir holds agent sprites and jumpscare pictures
	assetDir string

	// log reports asset problems; taken from the game in Run
	log *logger.Logger

	// Font sources for text rendering
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource

	// Cached font faces
	cachedSansFace     *text.GoTextFace
	cachedSmallFace    *text.GoTextFace
	cachedSansBoldFace *text.GoTextFace
	cachedTitleFace    *text.GoTextFace

	// Agent pictures keyed by asset name
	sprites    map[string]*ebiten.Image
	jumpscares map[string]*ebiten.Image
	assetMutex sync.Mutex

	// Current game state (set by Run)
	game      *state.Game
	step      renderer.StepFunc
	gameMutex sync.RWMutex

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	// Capture fade-in
	scare jumpscare

	// Console state
	consoleActive        bool
	consoleText          string   // Current input text
	consoleHistory       []string // Command history
	consoleHistoryIndex  int      // Current position in history (for up/down navigation)
	consoleOutput        []string // Console output lines
	consoleAnimProgress  float64  // 0.0 (closed) to 1.0 (open)
	consoleAnimating     bool
	consoleAnimStartTime int64 // Timestamp when animation started
	consolePending       []engineinput.Intent
	consoleMutex         sync.RWMutex
}
