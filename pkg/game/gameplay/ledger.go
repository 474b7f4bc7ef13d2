package gameplay

import (
	"nightshift/pkg/engine/world"
	"nightshift/pkg/game/state"
)

// ToggleLight flips the light in a room. The player needs at least LightCost
// battery to touch a light; switching one on spends LightCost, switching it
// off is free. Returns true if the light changed.
func ToggleLight(g *state.Game, id world.RoomID) bool {
	if !g.AcceptsActions() {
		return false
	}
	r := g.Graph.Room(id)
	if r == nil {
		return false
	}
	if g.Battery < g.Rules.LightCost {
		logMessage(g, "DENIED{Not enough battery} for the ROOM{%s} light.", r.Name)
		return false
	}

	if g.Graph.ToggleLight(id) {
		g.Battery -= g.Rules.LightCost
	}
	g.Log.Event("LIGHT", string(id), "lit=%v battery=%d", r.Lit, g.Battery)
	return true
}

// ToggleBlock flips a hallway's block. Blocking is paid for at the end of
// each turn, not when toggled. Returns true if the block changed.
func ToggleBlock(g *state.Game, id world.HallwayID) bool {
	if !g.AcceptsActions() {
		return false
	}
	if g.Graph.Hallway(id) == nil {
		return false
	}

	blocked := g.Graph.ToggleBlock(id)
	g.Log.Event("BLOCK", string(id), "blocked=%v cost=%d", blocked, EndOfTurnCost(g))
	return true
}

// EndOfTurnCost is the battery the current blocks will cost when the turn ends
func EndOfTurnCost(g *state.Game) int {
	return g.Graph.TotalBlockCost()
}
