package world

// HallwayID identifies a hallway in the facility.
type HallwayID string

// Hallway is an edge of the facility graph. Blocking it costs BlockCost
// battery per turn and stops agents from walking through it.
type Hallway struct {
	ID   HallwayID
	Name string

	// A and B are the rooms at either end.
	A RoomID
	B RoomID

	// Reachable lists the rooms an agent can step into through this hallway.
	// For a plain hallway it is exactly A and B.
	Reachable []RoomID

	BlockCost int
	Blocked   bool

	// Derived geometry, filled in once the graph is built.
	Start  Point
	End    Point
	Bounds Rect
}

// NewHallway creates an unblocked hallway between a and b
func NewHallway(id HallwayID, name string, a, b RoomID, cost int) *Hallway {
	return &Hallway{
		ID:        id,
		Name:      name,
		A:         a,
		B:         b,
		Reachable: []RoomID{a, b},
		BlockCost: cost,
	}
}

// Reaches returns true if an agent in room r can use this hallway
func (h *Hallway) Reaches(r RoomID) bool {
	for _, id := range h.Reachable {
		if id == r {
			return true
		}
	}
	return false
}

// Midpoint returns the point halfway between the hallway's end points
func (h *Hallway) Midpoint() Point {
	return Point{X: (h.Start.X + h.End.X) / 2, Y: (h.Start.Y + h.End.Y) / 2}
}

// updatePositions derives the hallway's drawing and hit-test geometry from
// the centers of its two end rooms.
func (h *Hallway) updatePositions(rooms map[RoomID]*Room) {
	h.Start = rooms[h.A].Center()
	h.End = rooms[h.B].Center()
	h.Bounds = hallwayBounds(h.Start, h.End)
}
