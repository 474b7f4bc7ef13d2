// Package ebiten provides console implementation for the Ebiten renderer.
package ebiten

import (
	"image/color"
	"sort"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	engineinput "nightshift/pkg/engine/input"
)

const (
	consoleMaxHistory = 100
	consoleMaxOutput  = 50
)

// ToggleConsole toggles the console open/closed state
func (e *EbitenRenderer) ToggleConsole() {
	e.consoleMutex.Lock()
	defer e.consoleMutex.Unlock()

	if e.consoleAnimating {
		// Don't toggle while animating
		return
	}

	e.consoleActive = !e.consoleActive
	e.consoleAnimating = true
	e.consoleAnimStartTime = time.Now().UnixMilli()

	if !e.consoleActive {
		// Clear input when closing
		e.consoleText = ""
		e.consoleHistoryIndex = len(e.consoleHistory)
	}
}

// IsConsoleActive returns whether the console is currently active
func (e *EbitenRenderer) IsConsoleActive() bool {
	e.consoleMutex.RLock()
	defer e.consoleMutex.RUnlock()
	return e.consoleActive || e.consoleAnimating
}

// HandleConsoleInput processes typing while the console is open. Commands
// use the same grammar as the terminal: light <room>, block <hallway>, next.
func (e *EbitenRenderer) HandleConsoleInput() {
	e.consoleMutex.Lock()
	defer e.consoleMutex.Unlock()

	if !e.consoleActive {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		e.consoleActive = false
		e.consoleAnimating = true
		e.consoleAnimStartTime = time.Now().UnixMilli()
		e.consoleText = ""
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if r := []rune(e.consoleText); len(r) > 0 {
			e.consoleText = string(r[:len(r)-1])
		}
		return
	}

	// Handle Enter to execute command
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		if strings.TrimSpace(e.consoleText) != "" {
			e.consoleHistory = append(e.consoleHistory, e.consoleText)
			if len(e.consoleHistory) > consoleMaxHistory {
				e.consoleHistory = e.consoleHistory[1:]
			}
			e.consoleHistoryIndex = len(e.consoleHistory)

			cmdText := e.consoleText
			e.consoleText = ""
			e.executeCommandUnlocked(cmdText)
		}
		return
	}

	// Handle history navigation
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		if e.consoleHistoryIndex > 0 {
			e.consoleHistoryIndex--
			e.consoleText = e.consoleHistory[e.consoleHistoryIndex]
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		if e.consoleHistoryIndex < len(e.consoleHistory)-1 {
			e.consoleHistoryIndex++
			e.consoleText = e.consoleHistory[e.consoleHistoryIndex]
		} else {
			e.consoleHistoryIndex = len(e.consoleHistory)
			e.consoleText = ""
		}
		return
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if r == '`' {
			continue
		}
		e.consoleText += string(r)
	}
}

// executeCommandUnlocked parses a console command and queues its intent for
// the next logic tick. Caller must hold consoleMutex.
func (e *EbitenRenderer) executeCommandUnlocked(cmd string) {
	cmd = strings.TrimSpace(cmd)
	e.addConsoleOutputUnlocked("> " + cmd)

	if strings.EqualFold(cmd, "bindings") {
		e.listBindingsUnlocked()
		return
	}

	intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.FromLine(cmd)))
	if intent.Action == engineinput.ActionNone {
		e.addConsoleOutputUnlocked(gotext.Get("Unknown command: %s", cmd))
		return
	}
	e.consolePending = append(e.consolePending, intent)
}

// listBindingsUnlocked prints every bound code per action.
// Caller must hold consoleMutex.
func (e *EbitenRenderer) listBindingsUnlocked() {
	byAction := engineinput.GetBindingsByAction()

	actions := make([]engineinput.Action, 0, len(byAction))
	for act := range byAction {
		actions = append(actions, act)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	for _, act := range actions {
		e.addConsoleOutputUnlocked(engineinput.ActionName(act) + ": " + strings.Join(byAction[act], ", "))
	}
}

// takeConsoleIntents returns and clears the intents typed since the last tick
func (e *EbitenRenderer) takeConsoleIntents() []engineinput.Intent {
	e.consoleMutex.Lock()
	defer e.consoleMutex.Unlock()
	intents := e.consolePending
	e.consolePending = nil
	return intents
}

// addConsoleOutput adds a line to the console output
func (e *EbitenRenderer) addConsoleOutput(line string) {
	e.consoleMutex.Lock()
	defer e.consoleMutex.Unlock()
	e.addConsoleOutputUnlocked(line)
}

// addConsoleOutputUnlocked adds a line to the console output without locking
// Caller must hold consoleMutex
func (e *EbitenRenderer) addConsoleOutputUnlocked(line string) {
	e.consoleOutput = append(e.consoleOutput, line)
	if len(e.consoleOutput) > consoleMaxOutput {
		e.consoleOutput = e.consoleOutput[len(e.consoleOutput)-consoleMaxOutput:]
	}
}

// drawConsole draws the console overlay with animation
func (e *EbitenRenderer) drawConsole(screen *ebiten.Image) {
	e.consoleMutex.Lock()
	active := e.consoleActive
	consoleText := e.consoleText
	output := append([]string(nil), e.consoleOutput...)

	const animDuration = 200 // milliseconds
	if e.consoleAnimating {
		elapsed := time.Now().UnixMilli() - e.consoleAnimStartTime
		if elapsed >= animDuration {
			e.consoleAnimating = false
			e.consoleAnimProgress = 0
			if active {
				e.consoleAnimProgress = 1
			}
		} else {
			eased := easeInOut(float64(elapsed) / animDuration)
			e.consoleAnimProgress = eased
			if !active {
				e.consoleAnimProgress = 1 - eased
			}
		}
	}
	progress := e.consoleAnimProgress
	e.consoleMutex.Unlock()

	if progress <= 0 {
		return // Console fully closed
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Console takes up bottom portion of screen
	consoleHeight := int(float64(screenHeight) * 0.4 * progress)
	consoleY := screenHeight - consoleHeight

	bgColor := color.RGBA{0, 0, 0, uint8(220 * progress)}
	vector.DrawFilledRect(screen, 0, float32(consoleY), float32(screenWidth), float32(consoleHeight), bgColor, false)

	borderColor := color.RGBA{100, 100, 150, uint8(255 * progress)}
	vector.DrawFilledRect(screen, 0, float32(consoleY), float32(screenWidth), 2, borderColor, false)

	if consoleHeight <= 20 {
		return
	}

	face := e.getSmallFontFace()
	lineHeight := int(face.Size) + 6
	paddingX := 10
	paddingY := 10

	// Output lines fill the space above the input line, newest at the bottom
	linesToShow := (consoleHeight - paddingY*2 - lineHeight*2) / lineHeight
	startIdx := max(len(output)-linesToShow, 0)
	outputY := consoleY + paddingY
	textColor := color.RGBA{200, 200, 200, uint8(255 * progress)}
	for i := startIdx; i < len(output); i++ {
		e.drawColoredTextWithFace(screen, output[i], paddingX, outputY, textColor, face)
		outputY += lineHeight
	}

	// Draw cursor (blinking)
	cursor := "_"
	if int(time.Now().UnixMilli()/500)%2 == 0 {
		cursor = " "
	}
	inputText := "> " + consoleText + cursor
	_, inputHeight := text.Measure(inputText, face, 0)
	inputY := consoleY + consoleHeight - paddingY - int(inputHeight*2)
	e.drawColoredTextWithFace(screen, inputText, paddingX, inputY, color.RGBA{255, 255, 255, uint8(255 * progress)}, face)
}
