package factory

import (
	"tombs/internal/component"
	"tombs/internal/ecs"
	"tombs/internal/generate"

	"github.com/gdamore/tcell/v2"
)

// Player starting stats.
const (
	PlayerMaxHP   = 100
	PlayerDefense = 1
	PlayerPower   = 2
)

// NewPlayer creates the player as the first roster entry at (x, y).
func NewPlayer(w *ecs.World, x, y int) *ecs.Entity {
	e := w.CreatePlayer()
	e.Pos = component.Position{X: x, Y: y}
	e.Render = component.Renderable{Glyph: '@', Color: tcell.ColorWhite}
	e.Name = "player"
	e.Blocks = true
	e.Alive = true
	e.Level = 1
	e.Fighter = &component.Fighter{
		BaseMaxHP:   PlayerMaxHP,
		HP:          PlayerMaxHP,
		BaseDefense: PlayerDefense,
		BasePower:   PlayerPower,
		OnDeath:     component.DeathPlayer,
	}
	return e
}

// NewDagger creates the equipped starting weapon outside the roster so it
// can go straight into the inventory.
func NewDagger(w *ecs.World) *ecs.Entity {
	e := w.Detached()
	e.Render = component.Renderable{Glyph: '-', Color: tcell.GetColor("#00BFFF")}
	e.Name = "dagger"
	e.Item = &component.Item{Kind: component.ItemSword}
	e.Equipment = &component.Equipment{
		Slot:       component.SlotLeftHand,
		Equipped:   true,
		PowerBonus: 2,
	}
	return e
}

// NewMonster creates a hostile fighter from a spawn template.
func NewMonster(w *ecs.World, t generate.MonsterTemplate, x, y int) *ecs.Entity {
	e := w.CreateEntity()
	e.Pos = component.Position{X: x, Y: y}
	e.Render = component.Renderable{Glyph: glyph(t.Glyph), Color: tcell.GetColor(t.Color)}
	e.Name = t.Name
	e.Blocks = true
	e.Alive = true
	e.Fighter = &component.Fighter{
		BaseMaxHP:   t.HP,
		HP:          t.HP,
		BaseDefense: t.Defense,
		BasePower:   t.Power,
		XP:          t.XP,
		OnDeath:     component.DeathMonster,
	}
	e.AI = component.Basic()
	return e
}

// NewItem creates a floor item from a spawn template. Floor items stay
// drawn once their tile has been explored.
func NewItem(w *ecs.World, t generate.ItemTemplate, x, y int) *ecs.Entity {
	e := w.CreateEntity()
	e.Pos = component.Position{X: x, Y: y}
	e.Render = component.Renderable{Glyph: glyph(t.Glyph), Color: tcell.GetColor(t.Color)}
	e.Name = t.Name
	e.AlwaysVisible = true
	kind, _ := component.ParseItemKind(t.Kind)
	e.Item = &component.Item{Kind: kind}
	if eq := t.Equipment; eq != nil {
		slot, _ := component.ParseSlot(eq.Slot)
		e.Equipment = &component.Equipment{
			Slot:         slot,
			MaxHPBonus:   eq.MaxHP,
			PowerBonus:   eq.Power,
			DefenseBonus: eq.Defense,
			MagicBonus:   eq.Magic,
		}
	}
	return e
}

// NewStairs creates the non-blocking descent marker.
func NewStairs(w *ecs.World, x, y int) *ecs.Entity {
	e := w.CreateEntity()
	e.Pos = component.Position{X: x, Y: y}
	e.Render = component.Renderable{Glyph: '<', Color: tcell.ColorWhite}
	e.Name = "stairs"
	e.AlwaysVisible = true
	e.Stairs = true
	return e
}

// IsStairs reports whether e is the descent marker.
func IsStairs(e *ecs.Entity) bool {
	return e.Stairs
}

// Spawn adds every monster and item of lvl to the roster, then the stairs.
func Spawn(w *ecs.World, lvl *generate.Level) {
	for _, m := range lvl.Monsters {
		NewMonster(w, m.Template, m.X, m.Y)
	}
	for _, it := range lvl.Items {
		NewItem(w, it.Template, it.X, it.Y)
	}
	NewStairs(w, lvl.StairsX, lvl.StairsY)
}

func glyph(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}
