package render

import "github.com/gdamore/tcell/v2"

// Theme holds the colors used to draw terrain. Tiles are drawn as colored
// cells; dark variants are for explored tiles outside the field of view.
type Theme struct {
	DarkWall    tcell.Color
	LightWall   tcell.Color
	DarkGround  tcell.Color
	LightGround tcell.Color
}

// DefaultTheme is the classic blue-and-ochre dungeon palette.
var DefaultTheme = Theme{
	DarkWall:    tcell.NewRGBColor(0, 0, 100),
	LightWall:   tcell.NewRGBColor(130, 110, 50),
	DarkGround:  tcell.NewRGBColor(50, 50, 150),
	LightGround: tcell.NewRGBColor(200, 180, 50),
}

// tileColor picks the background for a tile.
func (t Theme) tileColor(wall, visible bool) tcell.Color {
	switch {
	case wall && visible:
		return t.LightWall
	case wall:
		return t.DarkWall
	case visible:
		return t.LightGround
	default:
		return t.DarkGround
	}
}

// Panel and menu colors.
var (
	colorPanel     = tcell.ColorBlack
	colorHPFull    = tcell.NewRGBColor(255, 114, 114)
	colorHPEmpty   = tcell.NewRGBColor(127, 0, 0)
	colorLightGrey = tcell.NewRGBColor(159, 159, 159)
	colorMenuBG    = tcell.NewRGBColor(20, 20, 20)
	colorTitle     = tcell.NewRGBColor(255, 255, 63)
	colorHighlight = tcell.NewRGBColor(180, 100, 255)
)
