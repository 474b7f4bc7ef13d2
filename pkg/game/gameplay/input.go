package gameplay

import (
	"time"

	engineinput "nightshift/pkg/engine/input"
	"nightshift/pkg/engine/world"
	"nightshift/pkg/game/devtools"
	"nightshift/pkg/game/state"
	gameworld "nightshift/pkg/game/world"
)

// Step runs one logic tick: the tick's intents in order, then the drained
// timer. It returns false when the player asked to quit.
func Step(g *state.Game, intents []engineinput.Intent, now time.Time) bool {
	for _, intent := range intents {
		if intent.Action == engineinput.ActionQuit {
			g.Log.Info("quit requested")
			return false
		}
		ProcessIntent(g, intent)
	}
	Tick(g, now)
	return true
}

// ProcessIntent handles a high-level input intent from the tiered input system.
// Facility actions are ignored unless the night is being played.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone, engineinput.ActionQuit:
		return
	case engineinput.ActionHelp:
		showHelp(g)
		return
	case engineinput.ActionDebugDump:
		path, err := devtools.DumpFacilityToFile(g)
		if err != nil {
			g.Log.Error("facility dump: %v", err)
			logMessage(g, "Facility dump failed: %v", err)
		} else {
			logMessage(g, "Facility dumped to SUBTLE{%s}", path)
		}
		return
	}

	if !g.AcceptsActions() {
		return
	}

	switch intent.Action {
	case engineinput.ActionPointerDown:
		handleClick(g, world.Point{X: intent.X, Y: intent.Y})

	case engineinput.ActionToggleLight:
		id, ok := gameworld.FindRoom(g.Graph, intent.Target)
		if !ok {
			logMessage(g, "There is no room called %q.", intent.Target)
			return
		}
		ToggleLight(g, id)

	case engineinput.ActionToggleBlock:
		id, ok := gameworld.FindHallway(g.Graph, intent.Target)
		if !ok {
			logMessage(g, "There is no hallway called %q.", intent.Target)
			return
		}
		ToggleBlock(g, id)

	case engineinput.ActionNextTurn:
		AdvanceTurn(g)
	}
}

// handleClick maps a pointer press onto whatever it landed on
func handleClick(g *state.Game, p world.Point) {
	target := gameworld.HitTest(g.Graph, p)
	switch target.Kind {
	case gameworld.TargetRoom:
		ToggleLight(g, target.Room)
	case gameworld.TargetHallway:
		ToggleBlock(g, target.Hallway)
	case gameworld.TargetNextTurn:
		AdvanceTurn(g)
	}
}
