package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tombs/internal/ecs"
	"tombs/internal/game"
)

// PanelHeight is the number of rows reserved below the map.
const PanelHeight = 7

// Renderer draws a game onto a tcell screen and turns terminal events into
// game input. It implements game.Frontend.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
	game   *game.Game

	mouseX, mouseY int
	closed         bool // PollEvent has reported the screen finalized
}

// New creates a Renderer for an initialized screen and enables the mouse.
func New(screen tcell.Screen) *Renderer {
	screen.EnableMouse()
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(w, max(h-PanelHeight, 1)),
		theme:  DefaultTheme,
		mouseX: -1,
		mouseY: -1,
	}
}

// Render draws g and shows the frame.
func (r *Renderer) Render(g *game.Game) {
	r.game = g
	r.draw()
	r.screen.Show()
}

// draw paints the current frame without showing it, so menus can be
// layered on top.
func (r *Renderer) draw() {
	r.screen.Clear()
	g := r.game
	if g == nil {
		return
	}
	s := g.Session
	w, h := r.screen.Size()
	r.camera.Resize(w, max(h-PanelHeight, 1))
	p := s.Player()
	r.camera.Follow(p.Pos.X, p.Pos.Y, s.Map.Width, s.Map.Height)

	r.drawMap(g)
	r.drawEntities(g)
	r.drawPanel(g)
}

// drawMap renders visible and explored tiles.
func (r *Renderer) drawMap(g *game.Game) {
	m := g.Session.Map
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			visible := g.FOV.InFOV(x, y)
			if !visible && !m.IsExplored(x, y) {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			bg := r.theme.tileColor(m.At(x, y).BlockSight, visible)
			r.screen.SetContent(sx, sy, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}
}

// drawOrder puts non-blocking entities first so corpses and items never
// hide a monster, and the player last.
func drawOrder(g *game.Game) []*ecs.Entity {
	ents := append([]*ecs.Entity(nil), g.Session.World.Entities...)
	rank := func(e *ecs.Entity) int {
		switch {
		case g.Session.World.IsPlayer(e):
			return 2
		case e.Blocks:
			return 1
		}
		return 0
	}
	sort.SliceStable(ents, func(i, j int) bool { return rank(ents[i]) < rank(ents[j]) })
	return ents
}

// shown reports whether e should be drawn: in view, or remembered on an
// explored tile.
func shown(g *game.Game, e *ecs.Entity) bool {
	if g.FOV.InFOV(e.Pos.X, e.Pos.Y) {
		return true
	}
	return e.AlwaysVisible && g.Session.Map.IsExplored(e.Pos.X, e.Pos.Y)
}

func (r *Renderer) drawEntities(g *game.Game) {
	m := g.Session.Map
	for _, e := range drawOrder(g) {
		if !shown(g, e) {
			continue
		}
		sx, sy, onScreen := r.camera.WorldToScreen(e.Pos.X, e.Pos.Y)
		if !onScreen {
			continue
		}
		bg := r.theme.tileColor(m.At(e.Pos.X, e.Pos.Y).BlockSight, g.FOV.InFOV(e.Pos.X, e.Pos.Y))
		style := tcell.StyleDefault.Foreground(e.Render.Color).Background(bg)
		r.screen.SetContent(sx, sy, e.Render.Glyph, nil, style)
	}
}

// drawText writes text at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}

// NextAction blocks for the next terminal event. Mouse motion and resizes
// yield game.ActionNone so the caller redraws.
func (r *Renderer) NextAction() game.Action {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			r.closed = true
			return game.ActionQuit
		case *tcell.EventResize:
			r.screen.Sync()
			return game.ActionNone
		case *tcell.EventMouse:
			r.mouseX, r.mouseY = ev.Position()
			return game.ActionNone
		case *tcell.EventKey:
			return game.KeyToAction(ev)
		}
	}
}

// PickTile runs the targeting loop: left click on an accepted map tile
// selects it, right click or escape cancels, anything else keeps waiting.
func (r *Renderer) PickTile(accept func(x, y int) bool) (int, int, bool) {
	for {
		r.draw()
		r.screen.Show()
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			r.closed = true
			return 0, 0, false
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				return 0, 0, false
			}
		case *tcell.EventMouse:
			r.mouseX, r.mouseY = ev.Position()
			buttons := ev.Buttons()
			if buttons&tcell.Button2 != 0 {
				return 0, 0, false
			}
			if buttons&tcell.Button1 == 0 {
				continue
			}
			x, y, ok := r.mouseTile()
			if ok && accept(x, y) {
				return x, y, true
			}
		}
	}
}

// mouseTile returns the map tile under the mouse, if any.
func (r *Renderer) mouseTile() (int, int, bool) {
	if r.game == nil || r.mouseX < 0 || r.mouseY < 0 || r.mouseY >= r.camera.ViewHeight {
		return 0, 0, false
	}
	x, y := r.camera.ScreenToWorld(r.mouseX, r.mouseY)
	return x, y, r.game.Session.Map.InBounds(x, y)
}
