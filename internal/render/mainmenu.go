package render

import (
	"github.com/gdamore/tcell/v2"
)

// MenuChoice is a main menu entry.
type MenuChoice int

const (
	ChoiceNewGame MenuChoice = iota
	ChoiceContinue
	ChoiceQuit
)

var mainMenuOptions = []string{"Play a new game", "Continue last game", "Quit"}

const mainMenuWidth = 24

// MainMenu shows the title screen and blocks until an entry is picked,
// either by letter or by moving the highlight and pressing Enter. Escape
// quits.
func (r *Renderer) MainMenu() MenuChoice {
	r.game = nil
	selected := 0
	n := len(mainMenuOptions)
	for {
		r.drawMainMenu(selected)
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			r.closed = true
			return ChoiceQuit
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp:
				selected = (selected - 1 + n) % n
				continue
			case tcell.KeyDown:
				selected = (selected + 1) % n
				continue
			case tcell.KeyEnter:
				return MenuChoice(selected)
			case tcell.KeyEscape:
				return ChoiceQuit
			}
			switch ev.Rune() {
			case 'k':
				selected = (selected - 1 + n) % n
			case 'j':
				selected = (selected + 1) % n
			default:
				if i, ok := menuChoice(ev, n); ok {
					return MenuChoice(i)
				}
			}
		}
	}
}

// drawMainMenu renders the title screen.
func (r *Renderer) drawMainMenu(selected int) {
	r.screen.Clear()
	w, h := r.screen.Size()

	titleStyle := tcell.StyleDefault.Foreground(colorTitle).Bold(true)
	dimStyle := tcell.StyleDefault.Foreground(colorLightGrey)
	normalStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	highlightStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(colorHighlight)

	centerText := func(y int, text string, style tcell.Style) {
		x := max(0, (w-len([]rune(text)))/2)
		r.drawText(x, y, text, style)
	}

	top := h/2 - 4
	centerText(top, "TOMBS OF THE ANCIENT KINGS", titleStyle)
	centerText(top+2, "By Yours Truly", dimStyle)

	x := max(0, (w-mainMenuWidth)/2)
	for i, opt := range mainMenuOptions {
		style := normalStyle
		if i == selected {
			style = highlightStyle
		}
		r.drawText(x, top+5+i, "("+string('a'+rune(i))+") "+opt, style)
	}
	centerText(top+5+len(mainMenuOptions)+1, "[j/k or ↑/↓] Navigate   [Enter] Confirm   [Esc] Quit", dimStyle)
	r.screen.Show()
}

// ShowMessage displays text over the title screen until a key is pressed.
func (r *Renderer) ShowMessage(text string, width int) {
	r.menu(func() { r.drawMainMenu(-1) }, text, nil, width)
}
