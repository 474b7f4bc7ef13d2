package world

// HallwayWidth is the thickness of a hallway's hit rectangle in pixels.
const HallwayWidth = 20

// Point is an integer screen position.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Center returns the rectangle's center, rounded down.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// hallwayBounds derives the hit rectangle for a hallway drawn between two
// room centers. The rectangle runs along the dominant axis and is centered
// on the midpoint of the other axis.
func hallwayBounds(start, end Point) Rect {
	dx := end.X - start.X
	dy := end.Y - start.Y
	if abs(dx) < abs(dy) {
		return Rect{
			X: (start.X+end.X)/2 - HallwayWidth/2,
			Y: min(start.Y, end.Y),
			W: HallwayWidth,
			H: abs(dy),
		}
	}
	return Rect{
		X: min(start.X, end.X),
		Y: (start.Y+end.Y)/2 - HallwayWidth/2,
		W: abs(dx),
		H: HallwayWidth,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
