package gamemap

// Rect is an axis-aligned rectangle used for rooms. X2 and Y2 are the far
// border, so a room's carved interior is (X1,X2) x (Y1,Y2) exclusive.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a Rect from a top-left corner and a size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether (x, y) lies in the carved interior of r.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}

// GameMap holds the tile grid for one dungeon level, indexed [y][x].
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsBlocked reports whether (x, y) is impassable terrain. Out-of-bounds
// coordinates are blocked.
func (m *GameMap) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[y][x].Blocked
}

// IsOpaque reports whether (x, y) blocks sight. Out-of-bounds coordinates
// are opaque.
func (m *GameMap) IsOpaque(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[y][x].BlockSight
}

// MarkExplored remembers (x, y) as seen. It never clears the flag.
func (m *GameMap) MarkExplored(x, y int) {
	if m.InBounds(x, y) {
		m.Tiles[y][x].Explored = true
	}
}

// IsExplored reports whether (x, y) has ever been seen.
func (m *GameMap) IsExplored(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y][x].Explored
}
