package input

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTouch
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Facility
	ActionPointerDown // press at screen coordinates; the game resolves what was hit
	ActionToggleLight
	ActionToggleBlock
	ActionNextTurn

	// Meta / UI
	ActionHelp
	ActionQuit

	// Developer
	ActionDebugDump
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Target carries a typed room or hallway reference; X and Y carry pointer coordinates.
type Intent struct {
	Action Action
	Target string
	X, Y   int
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "space", "mouse_left") or, for
// the terminal, the whole typed line.
type RawInput struct {
	Device    Device
	Code      string
	X, Y      int
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten reports presses once per frame through inpututil and the terminal
// delivers whole lines, so this is a thin copy that keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
	X, Y   int
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.TrimSpace(raw.Code)),
		X:      raw.X,
		Y:      raw.Y,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Turn
	"space": ActionNextTurn,
	"enter": ActionNextTurn,
	"n":     ActionNextTurn,
	"next":  ActionNextTurn,

	// Help
	"?":    ActionHelp,
	"h":    ActionHelp,
	"help": ActionHelp,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,

	// Developer
	"dump": ActionDebugDump,
}

// targetCommands are terminal verbs that take a room or hallway reference.
var targetCommands = map[string]Action{
	"light": ActionToggleLight,
	"l":     ActionToggleLight,
	"block": ActionToggleBlock,
	"b":     ActionToggleBlock,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	switch ev.Device {
	case DeviceMouse, DeviceTouch:
		return Intent{Action: ActionPointerDown, X: ev.X, Y: ev.Y}
	case DeviceTerminal:
		return parseCommand(ev.Code)
	}

	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// parseCommand reads one terminal line: a bound code, "light <room>",
// "block <hallway>" or "click <x> <y>".
func parseCommand(line string) Intent {
	if act, ok := bindings[line]; ok {
		return Intent{Action: act}
	}

	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	if act, ok := targetCommands[verb]; ok && rest != "" {
		return Intent{Action: act, Target: rest}
	}

	if verb == "click" {
		fields := strings.Fields(rest)
		if len(fields) != 2 {
			return Intent{Action: ActionNone}
		}
		x, errX := strconv.Atoi(fields[0])
		y, errY := strconv.Atoi(fields[1])
		if errX != nil || errY != nil {
			return Intent{Action: ActionNone}
		}
		return Intent{Action: ActionPointerDown, X: x, Y: y}
	}

	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionPointerDown:
		return "Click"
	case ActionToggleLight:
		return "Toggle Light"
	case ActionToggleBlock:
		return "Toggle Block"
	case ActionNextTurn:
		return "Next Turn"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionDebugDump:
		return "Dump Facility"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
