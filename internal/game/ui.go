package game

import "tombs/internal/system"

// UI is what the turn controller needs from the presentation layer. Every
// method blocks until the player gives a terminating input.
type UI interface {
	system.Targeter
	system.UpgradeChooser

	// Menu shows header and up to 26 lettered options and returns the
	// chosen index. ok is false when a non-option key is pressed.
	Menu(header string, options []string, width int) (index int, ok bool)

	// MessageBox shows text until any key is pressed.
	MessageBox(text string, width int)
}

// Frontend drives a Game interactively: Render draws the current frame and
// NextAction waits for the next player command.
type Frontend interface {
	UI
	Render(g *Game)
	NextAction() Action
}

const (
	inventoryWidth = 50
	characterWidth = 30
)
