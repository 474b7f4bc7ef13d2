package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "nightshift/pkg/engine/input"
	"nightshift/pkg/game/state"
)

// keyBinding pairs an Ebiten key with the raw code the input layer binds
type keyBinding struct {
	key  ebiten.Key
	code string
}

// keyCodes lists the keys checked every frame, in priority order
var keyCodes = []keyBinding{
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyNumpadEnter, "enter"},
	{ebiten.KeyN, "n"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyQ, "q"},
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	e.gameMutex.RLock()
	g, step := e.game, e.step
	e.gameMutex.RUnlock()

	if g == nil {
		return nil
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
		e.preloadAssets(g)
	}

	now := time.Now()

	// A capture plays the jumpscare and then closes the window.
	if g.Status == state.StatusLost {
		if e.advanceJumpscare(now) {
			return ebiten.Termination
		}
		return nil
	}

	toggled := false
	if inpututil.IsKeyJustPressed(ebiten.KeyGraveAccent) {
		e.ToggleConsole()
		toggled = true
	}

	var intents []engineinput.Intent
	if e.IsConsoleActive() {
		if !toggled {
			e.HandleConsoleInput()
		}
		intents = e.takeConsoleIntents()
	} else {
		intents = e.checkInput()
	}

	if g.Status == state.StatusWon {
		for _, intent := range intents {
			if intent.Action == engineinput.ActionQuit {
				return ebiten.Termination
			}
		}
		return nil
	}

	if !step(intents, now) {
		return ebiten.Termination
	}
	e.RenderFrame(g)
	return nil
}

// checkInput gathers this frame's presses from mouse, touch and keyboard and
// maps them through the input layers.
func (e *EbitenRenderer) checkInput() []engineinput.Intent {
	var raws []engineinput.RawInput
	now := time.Now()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		raws = append(raws, engineinput.RawInput{Device: engineinput.DeviceMouse, Code: "mouse_left", X: x, Y: y, Timestamp: now})
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		raws = append(raws, engineinput.RawInput{Device: engineinput.DeviceTouch, Code: "touch", X: x, Y: y, Timestamp: now})
	}

	for _, kb := range keyCodes {
		if inpututil.IsKeyJustPressed(kb.key) {
			raws = append(raws, engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: kb.code, Timestamp: now})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		raws = append(raws, engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: "?", Timestamp: now})
	}

	var intents []engineinput.Intent
	for _, raw := range raws {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		if intent.Action != engineinput.ActionNone {
			intents = append(intents, intent)
		}
	}
	return intents
}
