// Package world provides the facility graph: rooms joined by hallways.
// Topology is fixed once built; only the lit and blocked flags change.
package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// RoomID identifies a room in the facility.
type RoomID string

// RoomSet is a set of room identifiers.
type RoomSet = mapset.Set[RoomID]

// HallwaySet is a set of hallway identifiers.
type HallwaySet = mapset.Set[HallwayID]

// Room is a node of the facility graph.
type Room struct {
	ID   RoomID
	Name string

	// Bounds is used for layout and pointer hit-testing only.
	Bounds Rect

	// Hallways holds every hallway that can reach this room.
	Hallways HallwaySet

	Lit bool
}

// NewRoom creates an unlit room with no hallways attached yet
func NewRoom(id RoomID, name string, bounds Rect) *Room {
	return &Room{
		ID:       id,
		Name:     name,
		Bounds:   bounds,
		Hallways: mapset.New[HallwayID](),
	}
}

// Center returns the center of the room's bounds
func (r *Room) Center() Point {
	return r.Bounds.Center()
}

// SortedRooms returns the members of a room set in ascending id order so that
// random picks over it are reproducible for a given seed.
func SortedRooms(s RoomSet) []RoomID {
	ids := make([]RoomID, 0, s.Size())
	s.Each(func(id RoomID) {
		ids = append(ids, id)
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
