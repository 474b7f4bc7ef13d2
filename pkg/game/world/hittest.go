// Package world provides game-specific helpers over the engine facility graph:
// screen hit testing and lookups by player-typed names.
package world

import (
	"strings"

	"nightshift/pkg/engine/world"
)

// Logical screen size every layout is drawn on
const (
	ScreenWidth  = 1024
	ScreenHeight = 768
)

// NextTurnButton is the on-screen control that advances a turn
var NextTurnButton = world.Rect{X: ScreenWidth - 150, Y: ScreenHeight - 50, W: 120, H: 40}

// Target is what a pointer press landed on.
type Target struct {
	Kind    TargetKind
	Room    world.RoomID
	Hallway world.HallwayID
}

// TargetKind says which kind of thing was hit
type TargetKind int

// Hit targets
const (
	TargetNone TargetKind = iota
	TargetRoom
	TargetHallway
	TargetNextTurn
)

// HitTest resolves a screen point. Rooms win over hallways, hallways over the
// next turn button; within a kind the first declared match wins.
func HitTest(g *world.Graph, p world.Point) Target {
	if id, ok := RoomAt(g, p); ok {
		return Target{Kind: TargetRoom, Room: id}
	}
	if id, ok := HallwayAt(g, p); ok {
		return Target{Kind: TargetHallway, Hallway: id}
	}
	if NextTurnButton.Contains(p) {
		return Target{Kind: TargetNextTurn}
	}
	return Target{}
}

// RoomAt returns the first room whose bounds contain p
func RoomAt(g *world.Graph, p world.Point) (world.RoomID, bool) {
	for _, id := range g.RoomIDs() {
		if g.Room(id).Bounds.Contains(p) {
			return id, true
		}
	}
	return "", false
}

// HallwayAt returns the first hallway whose hit rectangle contains p
func HallwayAt(g *world.Graph, p world.Point) (world.HallwayID, bool) {
	for _, id := range g.HallwayIDs() {
		if g.Hallway(id).Bounds.Contains(p) {
			return id, true
		}
	}
	return "", false
}

// FindRoom resolves a typed room reference: an id, or a display name in any case.
func FindRoom(g *world.Graph, ref string) (world.RoomID, bool) {
	ref = strings.TrimSpace(ref)
	if g.HasRoom(world.RoomID(ref)) {
		return world.RoomID(ref), true
	}
	for _, id := range g.RoomIDs() {
		if strings.EqualFold(g.Room(id).Name, ref) || strings.EqualFold(string(id), ref) {
			return id, true
		}
	}
	return "", false
}

// FindHallway resolves a typed hallway reference the same way as FindRoom.
func FindHallway(g *world.Graph, ref string) (world.HallwayID, bool) {
	ref = strings.TrimSpace(ref)
	if g.Hallway(world.HallwayID(ref)) != nil {
		return world.HallwayID(ref), true
	}
	for _, id := range g.HallwayIDs() {
		if strings.EqualFold(g.Hallway(id).Name, ref) || strings.EqualFold(string(id), ref) {
			return id, true
		}
	}
	return "", false
}
