package game

import (
	"fmt"

	"tombs/internal/system"
)

// InventoryOptions returns one menu line per inventory item, marking worn
// gear with its slot.
func InventoryOptions(g *Game) []string {
	inv := g.Session.Inventory
	if len(inv) == 0 {
		return []string{"Inventory is empty."}
	}
	options := make([]string, 0, len(inv))
	for _, it := range inv {
		if eq := it.Equipment; eq != nil && eq.Equipped {
			options = append(options, fmt.Sprintf("%s (on %s)", it.Name, eq.Slot))
			continue
		}
		options = append(options, it.Name)
	}
	return options
}

// inventoryMenu asks for an inventory item. An empty inventory still shows
// the menu but never yields a choice.
func (g *Game) inventoryMenu(header string) (int, bool) {
	i, ok := g.ui.Menu(header, InventoryOptions(g), inventoryWidth)
	if !ok || len(g.Session.Inventory) == 0 || i < 0 || i >= len(g.Session.Inventory) {
		return 0, false
	}
	return i, true
}

func (g *Game) characterInfo() string {
	s := g.Session
	p := s.Player()
	xp := 0
	if p.Fighter != nil {
		xp = p.Fighter.XP
	}
	return fmt.Sprintf(
		"Character information\n\nLevel: %d\nExperience: %d\nExperience to level up: %d\n\nMaximum HP: %d\nAttack: %d\nDefense: %d",
		p.Level, xp, system.XPToLevel(p.Level),
		system.MaxHP(s, p), system.Power(s, p), system.Defense(s, p),
	)
}
