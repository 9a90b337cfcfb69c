package game

import (
	"math/rand"
	"path/filepath"
	"testing"

	"tombs/assets"
	"tombs/internal/component"
	"tombs/internal/ecs"
	"tombs/internal/factory"
	"tombs/internal/gamemap"
	"tombs/internal/generate"
	"tombs/internal/session"
	"tombs/internal/system"
)

// fakeUI replays scripted answers for every modal prompt and records what
// it was shown.
type fakeUI struct {
	clicks    []component.Position
	upgrades  []int
	menuPicks []int // -1 cancels
	actions   []Action

	// closed makes ChooseUpgrade report closed input once upgrades run out.
	closed bool

	upgradeAsks int
	upgradeHP   []int // player HP when each upgrade prompt was shown
	upgradeMsgs []int // message count when each upgrade prompt was shown
	menuHeaders []string
	menuOptions [][]string
	boxes       []string
	renders     int

	game *Game
}

func (u *fakeUI) PickTile(accept func(x, y int) bool) (int, int, bool) {
	for len(u.clicks) > 0 {
		c := u.clicks[0]
		u.clicks = u.clicks[1:]
		if accept(c.X, c.Y) {
			return c.X, c.Y, true
		}
	}
	return 0, 0, false
}

func (u *fakeUI) ChooseUpgrade(_ string, _ []string) (int, error) {
	u.upgradeAsks++
	if u.game != nil {
		s := u.game.Session
		u.upgradeHP = append(u.upgradeHP, s.Player().Fighter.HP)
		u.upgradeMsgs = append(u.upgradeMsgs, s.Messages.Len())
	}
	if len(u.upgrades) == 0 {
		if u.closed {
			return -1, system.ErrInputClosed
		}
		panic("fakeUI: unexpected level up")
	}
	i := u.upgrades[0]
	u.upgrades = u.upgrades[1:]
	return i, nil
}

func (u *fakeUI) Menu(header string, options []string, _ int) (int, bool) {
	u.menuHeaders = append(u.menuHeaders, header)
	u.menuOptions = append(u.menuOptions, options)
	if len(u.menuPicks) == 0 {
		return 0, false
	}
	i := u.menuPicks[0]
	u.menuPicks = u.menuPicks[1:]
	return i, i >= 0
}

func (u *fakeUI) MessageBox(text string, _ int) {
	u.boxes = append(u.boxes, text)
}

func (u *fakeUI) Render(*Game) { u.renders++ }

func (u *fakeUI) NextAction() Action {
	if len(u.actions) == 0 {
		return ActionQuit
	}
	a := u.actions[0]
	u.actions = u.actions[1:]
	return a
}

var (
	orcTemplate = generate.MonsterTemplate{
		Key: "orc", Name: "orc", Glyph: "o", Color: "#3F7F3F",
		HP: 20, Defense: 0, Power: 4, XP: 35,
	}
	trollTemplate = generate.MonsterTemplate{
		Key: "troll", Name: "troll", Glyph: "T", Color: "#007F00",
		HP: 30, Defense: 2, Power: 8, XP: 100,
	}
)

func testOptions(t *testing.T) Options {
	t.Helper()
	opts := DefaultOptions()
	opts.SavePath = filepath.Join(t.TempDir(), session.DefaultSaveName)
	opts.RunLogDir = t.TempDir()
	return opts
}

// testGame builds a hand-made level: a 30x20 room with the player at (5,5)
// carrying the equipped starting dagger.
func testGame(t *testing.T, ui *fakeUI) *Game {
	t.Helper()
	s := session.New()
	s.Map = gamemap.New(30, 20)
	for y := 1; y < 19; y++ {
		for x := 1; x < 29; x++ {
			s.Map.Set(x, y, gamemap.MakeEmpty())
		}
	}
	factory.NewPlayer(s.World, 5, 5)
	s.Inventory = append(s.Inventory, factory.NewDagger(s.World))
	g := Resume(s, testOptions(t), assets.MustSpawnTables(), rand.New(rand.NewSource(1)), ui)
	ui.game = g
	return g
}

func addOrc(g *Game, x, y int) *ecs.Entity {
	return factory.NewMonster(g.Session.World, orcTemplate, x, y)
}

func messages(g *Game) []string {
	var out []string
	for _, e := range g.Session.Messages.Entries {
		out = append(out, e.Text)
	}
	return out
}
