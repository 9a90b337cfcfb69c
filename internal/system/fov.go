package system

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"

	"tombs/internal/gamemap"
)

// TorchRadius is the player's sight radius in tiles.
const TorchRadius = 10

// Viewer answers whether a tile is currently seen by the player.
type Viewer interface {
	InFOV(x, y int) bool
}

// FOV is the player's field of view, computed with symmetric shadow
// casting. Walls bordering lit floor are visible.
type FOV struct {
	fov     *rl.FOV
	radius  int
	width   int
	height  int
	visible []bool
}

// NewFOV returns an empty field of view for a width x height map.
func NewFOV(width, height, radius int) *FOV {
	f := &FOV{radius: radius}
	f.resize(width, height)
	return f
}

func (f *FOV) resize(width, height int) {
	f.width, f.height = width, height
	f.fov = rl.NewFOV(gruid.NewRange(0, 0, width, height))
	f.visible = make([]bool, width*height)
}

// Reset clears visibility and adapts to m's size. Call it whenever the map
// is replaced, such as after a level transition or a load.
func (f *FOV) Reset(m *gamemap.GameMap) {
	if m.Width != f.width || m.Height != f.height {
		f.resize(m.Width, m.Height)
		return
	}
	clear(f.visible)
}

// Compute recalculates the visible set from (x, y) and marks every
// visible tile explored on m.
func (f *FOV) Compute(m *gamemap.GameMap, x, y int) {
	if m.Width != f.width || m.Height != f.height {
		f.resize(m.Width, m.Height)
	}
	clear(f.visible)
	if !m.InBounds(x, y) {
		return
	}
	passable := func(p gruid.Point) bool {
		return !m.IsOpaque(p.X, p.Y)
	}
	r2 := f.radius * f.radius
	for _, p := range f.fov.SSCVisionMap(gruid.Point{X: x, Y: y}, f.radius, passable, false) {
		dx, dy := p.X-x, p.Y-y
		if dx*dx+dy*dy > r2 || !m.InBounds(p.X, p.Y) {
			continue
		}
		f.visible[p.Y*f.width+p.X] = true
		m.MarkExplored(p.X, p.Y)
	}
	f.visible[y*f.width+x] = true
	m.MarkExplored(x, y)
}

// InFOV reports whether (x, y) was visible at the last Compute.
func (f *FOV) InFOV(x, y int) bool {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return false
	}
	return f.visible[y*f.width+x]
}

// Radius returns the sight radius.
func (f *FOV) Radius() int { return f.radius }
