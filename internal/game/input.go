package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionWait
	ActionPickup
	ActionInventory
	ActionDrop
	ActionCharacter
	ActionDescend
	ActionQuit
)

// KeyToAction maps a tcell key event to a game action.
func KeyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyHome:
		return ActionMoveNW
	case tcell.KeyPgUp:
		return ActionMoveNE
	case tcell.KeyEnd:
		return ActionMoveSW
	case tcell.KeyPgDn:
		return ActionMoveSE
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys: vi keys, numpad digits, and the command letters.
	switch ev.Rune() {
	case 'k', '8':
		return ActionMoveN
	case 'j', '2':
		return ActionMoveS
	case 'l', '6':
		return ActionMoveE
	case 'h', '4':
		return ActionMoveW
	case 'y', '7':
		return ActionMoveNW
	case 'u', '9':
		return ActionMoveNE
	case 'b', '1':
		return ActionMoveSW
	case 'n', '3':
		return ActionMoveSE
	case '.', '5':
		return ActionWait
	case 'g', ',':
		return ActionPickup
	case 'i':
		return ActionInventory
	case 'd':
		return ActionDrop
	case 'c':
		return ActionCharacter
	case '<', '>':
		return ActionDescend
	}
	return ActionNone
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	case ActionMoveNE:
		return 1, -1
	case ActionMoveNW:
		return -1, -1
	case ActionMoveSE:
		return 1, 1
	case ActionMoveSW:
		return -1, 1
	}
	return 0, 0
}
