package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tombs/internal/game"
	"tombs/internal/message"
	"tombs/internal/system"
)

// BarWidth is the width of the hp bar; the message log starts after it.
const BarWidth = 20

// drawPanel renders the status panel and message log below the map.
func (r *Renderer) drawPanel(g *game.Game) {
	sw, sh := r.screen.Size()
	top := sh - PanelHeight
	bg := tcell.StyleDefault.Background(colorPanel)
	for y := top; y < sh; y++ {
		for x := 0; x < sw; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	s := g.Session
	p := s.Player()
	hp, maxHP := 0, system.MaxHP(s, p)
	if p.Fighter != nil {
		hp = p.Fighter.HP
	}
	r.drawBar(1, top+1, BarWidth, "HP", hp, maxHP)
	r.drawText(1, top+3, fmt.Sprintf("Dungeon level: %d", s.Depth), bg.Foreground(tcell.ColorWhite))
	r.drawText(1, top, r.namesUnderMouse(g), bg.Foreground(colorLightGrey))

	msgX := BarWidth + 2
	r.drawMessages(g, msgX, top+1, sw-msgX, PanelHeight-1)
}

// drawBar draws a labelled value/maximum bar.
func (r *Renderer) drawBar(x, y, width int, name string, value, maximum int) {
	filled := 0
	if maximum > 0 {
		filled = max(0, min(width, value*width/maximum))
	}
	for i := 0; i < width; i++ {
		color := colorHPEmpty
		if i < filled {
			color = colorHPFull
		}
		r.screen.SetContent(x+i, y, ' ', nil, tcell.StyleDefault.Background(color))
	}
	label := fmt.Sprintf("%s: %d/%d", name, value, maximum)
	lx := x + (width-runewidth.StringWidth(label))/2
	for i, ch := range label {
		color := colorHPEmpty
		if lx+i-x < filled {
			color = colorHPFull
		}
		r.screen.SetContent(lx+i, y, ch, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(color))
	}
}

// drawMessages fills a width x height box with the newest messages at the
// bottom, stopping when the next message no longer fits once wrapped.
func (r *Renderer) drawMessages(g *game.Game, x, y, width, height int) {
	if width <= 0 {
		return
	}
	row := height
	g.Session.Messages.Recent(func(e message.Entry) bool {
		lines := wrap(e.Text, width)
		row -= len(lines)
		if row < 0 {
			return false
		}
		for i, line := range lines {
			r.drawText(x, y+row+i, line, tcell.StyleDefault.Foreground(e.Color).Background(colorPanel))
		}
		return true
	})
}

// namesUnderMouse lists the entities on the hovered tile that the player
// can see.
func (r *Renderer) namesUnderMouse(g *game.Game) string {
	x, y, ok := r.mouseTile()
	if !ok || !g.FOV.InFOV(x, y) {
		return ""
	}
	var names []string
	for _, e := range g.Session.World.Entities {
		if e.At(x, y) {
			names = append(names, e.Name)
		}
	}
	return strings.Join(names, ", ")
}

// wrap breaks text into lines no wider than width display columns. Explicit
// newlines are kept; words longer than width are split.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			for runewidth.StringWidth(word) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					_, size := utf8.DecodeRuneInString(word)
					head = word[:size]
				}
				lines = append(lines, head)
				word = word[len(head):]
			}
			switch {
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}
