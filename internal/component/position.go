package component

import "math"

// Position is a tile coordinate on the current map.
type Position struct {
	X, Y int
}

// DistanceTo returns the Euclidean distance between two positions.
func (p Position) DistanceTo(o Position) float64 {
	return Distance(p.X, p.Y, o.X, o.Y)
}

// Distance returns the Euclidean distance between (x1,y1) and (x2,y2).
func Distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	return math.Sqrt(dx*dx + dy*dy)
}
