package entities

import (
	"nightshift/pkg/engine/world"
)

// Rand is the random source agents draw from. *math/rand.Rand satisfies it,
// so a seeded generator makes every turn reproducible.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// MoveKind describes what an agent did on a turn
type MoveKind int

const (
	MoveNone     MoveKind = iota // stayed put (failed the move roll, or nowhere to go)
	MoveTeleport                 // blinked to a random room
	MoveWalk                     // walked one or more hops
)

// String returns a short name for the move kind
func (k MoveKind) String() string {
	switch k {
	case MoveTeleport:
		return "teleport"
	case MoveWalk:
		return "walk"
	default:
		return "none"
	}
}

// Move is the outcome of one agent's turn.
type Move struct {
	Kind     MoveKind
	From     world.RoomID
	To       world.RoomID
	Hops     int
	Captured bool // the agent entered the office
}

// TakeTurn runs the movement policy for one turn and updates CurrentRoom.
//
// The agent first rolls against MoveProbability, then against
// TeleportProbability. A teleport lands on any room except the office and is
// the whole move. Otherwise the agent walks StepSize hops through unblocked
// hallways, stopping early when it has nowhere to go or when it walks into
// the office.
func (a *Agent) TakeTurn(rng Rand, g *world.Graph) Move {
	m := Move{Kind: MoveNone, From: a.CurrentRoom, To: a.CurrentRoom}

	if rng.Float64() > a.MoveProbability || a.MoveProbability == 0 {
		return m
	}

	if rng.Float64() < a.TeleportProbability {
		if a.teleport(rng, g) {
			m.Kind = MoveTeleport
			m.To = a.CurrentRoom
		}
		return m
	}

	for hop := 0; hop < a.StepSize; hop++ {
		choices := world.SortedRooms(g.NeighborsViaUnblocked(a.CurrentRoom))
		if len(choices) == 0 {
			break
		}
		a.CurrentRoom = choices[rng.Intn(len(choices))]
		m.Hops++
		if a.CurrentRoom == g.Office() {
			m.Captured = true
			break
		}
	}

	if m.Hops > 0 {
		m.Kind = MoveWalk
	}
	m.To = a.CurrentRoom
	return m
}

// teleport moves the agent to a uniformly chosen non-office room
func (a *Agent) teleport(rng Rand, g *world.Graph) bool {
	office := g.Office()
	var candidates []world.RoomID
	for _, id := range g.RoomIDs() {
		if id != office {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	a.CurrentRoom = candidates[rng.Intn(len(candidates))]
	return true
}
