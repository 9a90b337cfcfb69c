package system

import (
	"tombs/internal/component"
	"tombs/internal/ecs"
	"tombs/internal/gamemap"
	"tombs/internal/message"
	"tombs/internal/session"
)

// newSession returns a session with a 20x20 map whose border is wall and
// whose interior is floor, and the player at (5,5) with starting stats.
func newSession() *session.Session {
	s := session.New()
	s.Map = gamemap.New(20, 20)
	for y := 1; y < 19; y++ {
		for x := 1; x < 19; x++ {
			s.Map.Set(x, y, gamemap.MakeEmpty())
		}
	}
	p := s.World.CreatePlayer()
	p.Name = "player"
	p.Pos = component.Position{X: 5, Y: 5}
	p.Render = component.Renderable{Glyph: '@', Color: message.White}
	p.Blocks = true
	p.Alive = true
	p.Level = 1
	p.Fighter = &component.Fighter{BaseMaxHP: 100, HP: 100, BaseDefense: 1, BasePower: 2, OnDeath: component.DeathPlayer}
	return s
}

func addMonster(s *session.Session, name string, x, y, hp, def, pow, xp int) *ecs.Entity {
	e := s.World.CreateEntity()
	e.Name = name
	e.Pos = component.Position{X: x, Y: y}
	e.Render = component.Renderable{Glyph: 'o', Color: message.Green}
	e.Blocks = true
	e.Alive = true
	e.Fighter = &component.Fighter{BaseMaxHP: hp, HP: hp, BaseDefense: def, BasePower: pow, XP: xp, OnDeath: component.DeathMonster}
	e.AI = component.Basic()
	return e
}

func addItem(s *session.Session, name string, kind component.ItemKind, x, y int) *ecs.Entity {
	e := s.World.CreateEntity()
	e.Name = name
	e.Pos = component.Position{X: x, Y: y}
	e.AlwaysVisible = true
	e.Item = &component.Item{Kind: kind}
	return e
}

func addGear(s *session.Session, name string, slot component.Slot, power, defense, x, y int) *ecs.Entity {
	e := addItem(s, name, component.ItemSword, x, y)
	e.Equipment = &component.Equipment{Slot: slot, PowerBonus: power, DefenseBonus: defense}
	return e
}

// inventoryItem creates an item straight into the inventory.
func inventoryItem(s *session.Session, name string, kind component.ItemKind) *ecs.Entity {
	e := s.World.Detached()
	e.Name = name
	e.Item = &component.Item{Kind: kind}
	s.Inventory = append(s.Inventory, e)
	return e
}

type seeAll struct{}

func (seeAll) InFOV(int, int) bool { return true }

type seeNothing struct{}

func (seeNothing) InFOV(int, int) bool { return false }

// seeSet sees only the listed tiles.
type seeSet map[component.Position]bool

func (v seeSet) InFOV(x, y int) bool { return v[component.Position{X: x, Y: y}] }

// scriptedTargeter replays clicks in order. Clicks the predicate rejects
// are counted and skipped; running out of clicks cancels.
type scriptedTargeter struct {
	clicks   []component.Position
	rejected int
	calls    int
}

func (t *scriptedTargeter) PickTile(accept func(x, y int) bool) (int, int, bool) {
	t.calls++
	for len(t.clicks) > 0 {
		c := t.clicks[0]
		t.clicks = t.clicks[1:]
		if accept(c.X, c.Y) {
			return c.X, c.Y, true
		}
		t.rejected++
	}
	return 0, 0, false
}

// scriptedChooser replays menu answers in order. Once the answers run out
// a closed chooser reports ErrInputClosed.
type scriptedChooser struct {
	answers []int
	closed  bool
	asked   int
	title   string
	options []string
}

func (c *scriptedChooser) ChooseUpgrade(title string, options []string) (int, error) {
	c.asked++
	c.title, c.options = title, options
	if len(c.answers) == 0 {
		if c.closed {
			return -1, ErrInputClosed
		}
		panic("scriptedChooser: out of answers")
	}
	a := c.answers[0]
	c.answers = c.answers[1:]
	return a, nil
}

func lastText(s *session.Session) string {
	return s.Messages.Last().Text
}

func texts(s *session.Session) []string {
	out := make([]string, 0, s.Messages.Len())
	for _, e := range s.Messages.Entries {
		out = append(out, e.Text)
	}
	return out
}
