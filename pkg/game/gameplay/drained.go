package gameplay

import (
	"time"

	"nightshift/pkg/game/state"
)

// EnterDrained switches the night into drained mode: every light comes on,
// every block drops and the player can no longer act. Turns then pass on
// their own, see Tick.
func EnterDrained(g *state.Game) {
	switch g.Status {
	case state.StatusPlaying:
		g.Status = state.StatusDrained
		logMessage(g, "DENIED{Battery drained}. The lights are stuck on.")
		g.Log.Event("DRAINED", "engine", "battery=%d turns=%d", g.Battery, g.TurnsRemaining)
	case state.StatusDrained:
	default:
		return
	}
	forceDrainedView(g)
}

func forceDrainedView(g *state.Game) {
	g.Graph.SetAllLit(true)
	g.Graph.ClearBlocks()
}

// Tick drives drained mode from the frame loop. Once DrainedInterval has
// passed since the last forced turn, a turn is counted down and the agents
// move. Drained nights only end in capture unless Rules.DrainedCanWin is set.
// Returns true when a forced turn ran.
func Tick(g *state.Game, now time.Time) bool {
	if g.Status != state.StatusDrained {
		return false
	}
	forceDrainedView(g)

	if now.Sub(g.LastDrainedTick) < g.Rules.DrainedInterval {
		return false
	}
	g.LastDrainedTick = now

	g.TurnsRemaining--
	g.Log.Event("TICK", "engine", "turns=%d", g.TurnsRemaining)
	if moveAgents(g) {
		return true
	}

	if g.Rules.DrainedCanWin && g.TurnsRemaining <= 0 {
		win(g)
	}
	return true
}
