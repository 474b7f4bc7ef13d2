package state

import (
	"nightshift/pkg/engine/world"
	"nightshift/pkg/game/entities"
)

// AgentView is an agent as the player can see it.
type AgentView struct {
	Name  string
	Asset string
}

// RoomView is a room as drawn on screen.
type RoomView struct {
	ID     world.RoomID
	Name   string
	Bounds world.Rect
	Lit    bool
	Office bool

	// Agents is only filled for lit rooms; darkness hides who is inside.
	Agents []AgentView
}

// HallwayView is a hallway as drawn on screen.
type HallwayView struct {
	ID      world.HallwayID
	Name    string
	A       world.RoomID
	B       world.RoomID
	Start   world.Point
	End     world.Point
	Mid     world.Point
	Bounds  world.Rect
	Blocked bool
	Cost    int
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Renderers never touch Game directly, so drawing can happen off the logic tick.
type Snapshot struct {
	Rooms    []RoomView
	Hallways []HallwayView

	Battery        int
	TurnsRemaining int
	BlockCost      int

	Status      Status
	DeathReason string
	CaughtBy    *AgentView

	Messages []string
}

// Snapshot copies the current state for presentation.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Battery:        g.Battery,
		TurnsRemaining: g.TurnsRemaining,
		BlockCost:      g.Graph.TotalBlockCost(),
		Status:         g.Status,
		DeathReason:    g.DeathReason,
		Messages:       append([]string(nil), g.Messages...),
	}

	office := g.Graph.Office()
	g.Graph.ForEachRoom(func(r *world.Room) {
		v := RoomView{
			ID:     r.ID,
			Name:   r.Name,
			Bounds: r.Bounds,
			Lit:    r.Lit,
			Office: r.ID == office,
		}
		if r.Lit {
			for _, a := range g.AgentsIn(r.ID) {
				v.Agents = append(v.Agents, viewOf(a))
			}
		}
		s.Rooms = append(s.Rooms, v)
	})

	g.Graph.ForEachHallway(func(h *world.Hallway) {
		s.Hallways = append(s.Hallways, HallwayView{
			ID:      h.ID,
			Name:    h.Name,
			A:       h.A,
			B:       h.B,
			Start:   h.Start,
			End:     h.End,
			Mid:     h.Midpoint(),
			Bounds:  h.Bounds,
			Blocked: h.Blocked,
			Cost:    h.BlockCost,
		})
	})

	if g.CaughtBy != nil {
		v := viewOf(g.CaughtBy)
		s.CaughtBy = &v
	}

	return s
}

func viewOf(a *entities.Agent) AgentView {
	return AgentView{Name: a.Name, Asset: a.Asset}
}
