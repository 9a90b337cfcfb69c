package gamemap

// Tile holds the passability, sight and memory state for one map cell.
type Tile struct {
	Blocked    bool
	BlockSight bool
	Explored   bool
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// MakeEmpty returns a passable, transparent floor tile.
func MakeEmpty() Tile {
	return Tile{}
}

// IsWall reports whether the tile is an impassable wall.
func (t Tile) IsWall() bool { return t.Blocked }
