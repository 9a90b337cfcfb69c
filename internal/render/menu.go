package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"tombs/internal/system"
)

// MaxMenuOptions is one option per letter.
const MaxMenuOptions = 26

// LevelScreenWidth is the width of the level-up menu.
const LevelScreenWidth = 40

// Menu shows header and lettered options over the current frame and waits
// for a key. A letter naming an option selects it; any other key cancels.
func (r *Renderer) Menu(header string, options []string, width int) (int, bool) {
	return r.menu(r.draw, header, options, width)
}

// MessageBox shows text until a key is pressed.
func (r *Renderer) MessageBox(text string, width int) {
	r.Menu(text, nil, width)
}

// ChooseUpgrade shows the level-up menu. A key that names no option yields
// -1; a finalized screen yields system.ErrInputClosed.
func (r *Renderer) ChooseUpgrade(title string, options []string) (int, error) {
	i, ok := r.Menu(title, options, LevelScreenWidth)
	if r.closed {
		return -1, system.ErrInputClosed
	}
	if !ok {
		return -1, nil
	}
	return i, nil
}

func (r *Renderer) menu(background func(), header string, options []string, width int) (int, bool) {
	if len(options) > MaxMenuOptions {
		panic(fmt.Sprintf("render: menu with %d options, at most %d allowed", len(options), MaxMenuOptions))
	}
	for {
		background()
		r.drawMenuWindow(header, options, width)
		r.screen.Show()

		switch ev := r.screen.PollEvent().(type) {
		case nil:
			r.closed = true
			return 0, false
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventMouse:
			r.mouseX, r.mouseY = ev.Position()
		case *tcell.EventKey:
			return menuChoice(ev, len(options))
		}
	}
}

// menuChoice maps a key to an option index.
func menuChoice(ev *tcell.EventKey, n int) (int, bool) {
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	i := int(ev.Rune() - 'a')
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// drawMenuWindow draws the menu box centered on the screen.
func (r *Renderer) drawMenuWindow(header string, options []string, width int) {
	var headerLines []string
	if header != "" {
		headerLines = wrap(header, width)
	}
	height := len(headerLines) + len(options)
	sw, sh := r.screen.Size()
	x0 := max(0, (sw-width)/2)
	y0 := max(0, (sh-height)/2)

	bg := tcell.StyleDefault.Background(colorMenuBG)
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}
	text := bg.Foreground(tcell.ColorWhite)
	for i, line := range headerLines {
		r.drawText(x0, y0+i, line, text)
	}
	for i, opt := range options {
		r.drawText(x0, y0+len(headerLines)+i, fmt.Sprintf("(%c) %s", 'a'+rune(i), opt), text)
	}
}
