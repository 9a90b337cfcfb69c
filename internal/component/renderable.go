package component

import "github.com/gdamore/tcell/v2"

type Renderable struct {
	Glyph rune
	Color tcell.Color
}
