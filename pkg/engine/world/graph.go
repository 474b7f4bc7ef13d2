package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Construction errors. Build wraps them with the offending identifier.
var (
	ErrNoRooms      = errors.New("facility has no rooms")
	ErrDuplicateID  = errors.New("duplicate id")
	ErrUnknownRoom  = errors.New("unknown room")
	ErrNoOffice     = errors.New("office room not defined")
	ErrBadCost      = errors.New("block cost must be positive")
	ErrBadReachable = errors.New("reachable rooms must be the hallway's end points")
)

// RoomSpec describes one room of a facility layout.
type RoomSpec struct {
	ID     RoomID
	Name   string
	Bounds Rect
}

// HallwaySpec describes one hallway of a facility layout.
type HallwaySpec struct {
	ID        HallwayID
	Name      string
	A         RoomID
	B         RoomID
	Reachable []RoomID // optional; defaults to A and B
	BlockCost int
}

// Spec is the full topology table a Graph is built from.
type Spec struct {
	Office   RoomID
	Rooms    []RoomSpec
	Hallways []HallwaySpec
}

// Graph is the facility: rooms, hallways and the office.
type Graph struct {
	rooms     map[RoomID]*Room
	roomOrder []RoomID

	hallways     map[HallwayID]*Hallway
	hallwayOrder []HallwayID

	office RoomID
}

// Build validates a topology table and creates the facility graph.
// Every problem with the table is reported here; a built Graph is always
// consistent.
func Build(spec Spec) (*Graph, error) {
	if len(spec.Rooms) == 0 {
		return nil, ErrNoRooms
	}

	g := &Graph{
		rooms:    make(map[RoomID]*Room, len(spec.Rooms)),
		hallways: make(map[HallwayID]*Hallway, len(spec.Hallways)),
		office:   spec.Office,
	}

	for _, rs := range spec.Rooms {
		if _, found := g.rooms[rs.ID]; found {
			return nil, fmt.Errorf("room %q: %w", rs.ID, ErrDuplicateID)
		}
		name := rs.Name
		if name == "" {
			name = string(rs.ID)
		}
		g.rooms[rs.ID] = NewRoom(rs.ID, name, rs.Bounds)
		g.roomOrder = append(g.roomOrder, rs.ID)
	}

	if _, found := g.rooms[spec.Office]; !found {
		return nil, fmt.Errorf("office %q: %w", spec.Office, ErrNoOffice)
	}

	for _, hs := range spec.Hallways {
		if _, found := g.hallways[hs.ID]; found {
			return nil, fmt.Errorf("hallway %q: %w", hs.ID, ErrDuplicateID)
		}
		for _, end := range []RoomID{hs.A, hs.B} {
			if _, found := g.rooms[end]; !found {
				return nil, fmt.Errorf("hallway %q end %q: %w", hs.ID, end, ErrUnknownRoom)
			}
		}
		if hs.BlockCost <= 0 {
			return nil, fmt.Errorf("hallway %q cost %d: %w", hs.ID, hs.BlockCost, ErrBadCost)
		}

		name := hs.Name
		if name == "" {
			name = string(hs.ID)
		}
		h := NewHallway(hs.ID, name, hs.A, hs.B, hs.BlockCost)
		if len(hs.Reachable) > 0 {
			for _, r := range hs.Reachable {
				if r != hs.A && r != hs.B {
					return nil, fmt.Errorf("hallway %q reaches %q: %w", hs.ID, r, ErrBadReachable)
				}
			}
			h.Reachable = append([]RoomID(nil), hs.Reachable...)
		}

		g.hallways[hs.ID] = h
		g.hallwayOrder = append(g.hallwayOrder, hs.ID)
		for _, r := range h.Reachable {
			g.rooms[r].Hallways.Put(h.ID)
		}
	}

	// Geometry depends on every room being placed, so it is derived last.
	for _, h := range g.hallways {
		h.updatePositions(g.rooms)
	}

	return g, nil
}

// Office returns the id of the player's room
func (g *Graph) Office() RoomID {
	return g.office
}

// Room returns the room with the given id, or nil
func (g *Graph) Room(id RoomID) *Room {
	return g.rooms[id]
}

// Hallway returns the hallway with the given id, or nil
func (g *Graph) Hallway(id HallwayID) *Hallway {
	return g.hallways[id]
}

// HasRoom reports whether id names a room of this facility
func (g *Graph) HasRoom(id RoomID) bool {
	_, found := g.rooms[id]
	return found
}

// RoomIDs returns room ids in declaration order
func (g *Graph) RoomIDs() []RoomID {
	return append([]RoomID(nil), g.roomOrder...)
}

// HallwayIDs returns hallway ids in declaration order
func (g *Graph) HallwayIDs() []HallwayID {
	return append([]HallwayID(nil), g.hallwayOrder...)
}

// ForEachRoom calls fn for every room in declaration order
func (g *Graph) ForEachRoom(fn func(r *Room)) {
	for _, id := range g.roomOrder {
		fn(g.rooms[id])
	}
}

// ForEachHallway calls fn for every hallway in declaration order
func (g *Graph) ForEachHallway(fn func(h *Hallway)) {
	for _, id := range g.hallwayOrder {
		fn(g.hallways[id])
	}
}

// ToggleLight flips a room's light and returns the new state.
// Unknown rooms are ignored.
func (g *Graph) ToggleLight(id RoomID) bool {
	r := g.rooms[id]
	if r == nil {
		return false
	}
	r.Lit = !r.Lit
	return r.Lit
}

// ToggleBlock flips a hallway's blocked flag and returns the new state.
// Unknown hallways are ignored.
func (g *Graph) ToggleBlock(id HallwayID) bool {
	h := g.hallways[id]
	if h == nil {
		return false
	}
	h.Blocked = !h.Blocked
	return h.Blocked
}

// IsBlocked reports whether the hallway is currently blocked
func (g *Graph) IsBlocked(id HallwayID) bool {
	h := g.hallways[id]
	return h != nil && h.Blocked
}

// SetAllLit sets every room's light
func (g *Graph) SetAllLit(lit bool) {
	for _, r := range g.rooms {
		r.Lit = lit
	}
}

// ClearBlocks unblocks every hallway
func (g *Graph) ClearBlocks() {
	for _, h := range g.hallways {
		h.Blocked = false
	}
}

// TotalBlockCost sums the block cost of every blocked hallway
func (g *Graph) TotalBlockCost() int {
	total := 0
	for _, h := range g.hallways {
		if h.Blocked {
			total += h.BlockCost
		}
	}
	return total
}

// NeighborsViaUnblocked returns the rooms reachable from id in one hop
// through hallways that are not blocked. The room itself is never included.
func (g *Graph) NeighborsViaUnblocked(id RoomID) RoomSet {
	neighbors := mapset.New[RoomID]()
	r := g.rooms[id]
	if r == nil {
		return neighbors
	}
	r.Hallways.Each(func(hid HallwayID) {
		h := g.hallways[hid]
		if h.Blocked || !h.Reaches(id) {
			return
		}
		for _, other := range h.Reachable {
			if other != id {
				neighbors.Put(other)
			}
		}
	})
	return neighbors
}
