package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"nightshift/pkg/game/entities"
	"nightshift/pkg/game/state"
)

// AdvanceTurn ends the player's turn.
//
// The blocks are paid for first. If the battery cannot cover them (or is
// already below zero) the night drops into drained mode and nothing else
// happens this call. Otherwise every agent moves in roster order; a capture
// ends the night at once. A turn without capture counts down the budget and
// switches every light off, and the last turn wins the night.
func AdvanceTurn(g *state.Game) {
	if !g.AcceptsActions() {
		return
	}

	if g.Battery < 0 {
		EnterDrained(g)
		return
	}

	cost := EndOfTurnCost(g)
	if g.Battery <= cost {
		EnterDrained(g)
		return
	}
	g.Battery -= cost

	if moveAgents(g) {
		return
	}

	g.TurnsRemaining--
	g.Graph.SetAllLit(false)
	g.Log.Event("TURN", "engine", "turns=%d battery=%d cost=%d", g.TurnsRemaining, g.Battery, cost)

	if g.TurnsRemaining <= 0 {
		win(g)
		return
	}
	logMessage(g, "ACTION{%d} turns to go.", g.TurnsRemaining)
}

// moveAgents runs every agent's movement in order and reports whether one of
// them reached the office. Agents after the capturing one do not move.
func moveAgents(g *state.Game) bool {
	for _, a := range g.Agents {
		m := a.TakeTurn(g.Rand, g.Graph)
		if m.Kind != entities.MoveNone {
			g.Log.Event("MOVE", a.Name, "%s %s -> %s hops=%d", m.Kind, m.From, m.To, m.Hops)
		}
		if m.Captured {
			capture(g, a)
			return true
		}
	}
	return false
}

func capture(g *state.Game, a *entities.Agent) {
	g.Status = state.StatusLost
	g.CaughtBy = a
	g.DeathReason = gotext.Get("You were caught by %s!", a.Name)
	g.AddMessage(g.DeathReason)
	g.Log.Event("CAPTURE", a.Name, "turns=%d battery=%d", g.TurnsRemaining, g.Battery)
}

func win(g *state.Game) {
	g.Status = state.StatusWon
	logMessage(g, "You Survived!")
	g.Log.Event("WIN", "engine", "battery=%d", g.Battery)
}
