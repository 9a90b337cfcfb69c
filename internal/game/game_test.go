package game

import (
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tombs/assets"
	"tombs/internal/component"
	"tombs/internal/factory"
	"tombs/internal/generate"
	"tombs/internal/session"
	"tombs/internal/system"
)

func TestNewGame(t *testing.T) {
	ui := &fakeUI{}
	g, err := New(testOptions(t), assets.MustSpawnTables(), rand.New(rand.NewSource(42)), ui)
	require.NoError(t, err)
	s := g.Session

	p := s.World.Entities[0]
	assert.Same(t, p, s.Player())
	assert.Equal(t, "player", p.Name)
	assert.Equal(t, 100, p.Fighter.BaseMaxHP)
	assert.Equal(t, 100, p.Fighter.HP)
	assert.Equal(t, 1, p.Fighter.BaseDefense)
	assert.Equal(t, 2, p.Fighter.BasePower)
	assert.False(t, s.Map.IsBlocked(p.Pos.X, p.Pos.Y))
	assert.True(t, g.FOV.InFOV(p.Pos.X, p.Pos.Y))

	stairs := 0
	for i, e := range s.World.Entities {
		if factory.IsStairs(e) {
			stairs++
		}
		if i > 0 {
			assert.NotEqual(t, p.ID, e.ID)
		}
	}
	assert.Equal(t, 1, stairs)

	require.Len(t, s.Inventory, 1)
	assert.Equal(t, "dagger", s.Inventory[0].Name)
	assert.True(t, s.Inventory[0].Equipment.Equipped)
	assert.Equal(t, 4, system.Power(s, p))

	assert.Equal(t, 1, s.Depth)
	assert.Equal(t, "Welcome stranger! Prepare to perish in the Tombs of the Ancient Kings!", s.Messages.Last().Text)
	assert.Equal(t, StateAwaitingInput, g.State())
}

func TestNewGameNoRooms(t *testing.T) {
	opts := testOptions(t)
	opts.MaxRooms = 0
	_, err := New(opts, assets.MustSpawnTables(), rand.New(rand.NewSource(1)), &fakeUI{})
	require.ErrorIs(t, err, generate.ErrNoRooms)
}

func TestTurnConsumingActionsRunMonsters(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		setup  func(g *Game)
	}{
		{"wait", ActionWait, nil},
		{"move", ActionMoveS, nil},
		{"attack", ActionMoveE, nil},
		{"pickup", ActionPickup, func(g *Game) {
			factory.NewItem(g.Session.World, assets.MustSpawnTables().Items[0], 5, 5)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGame(t, &fakeUI{})
			addOrc(g, 6, 5)
			if tt.setup != nil {
				tt.setup(g)
			}
			res, err := g.Step(tt.action)
			require.NoError(t, err)
			assert.Equal(t, TookTurn, res)
			assert.Equal(t, 1, g.Session.Turn)
			assert.Less(t, g.Session.Player().Fighter.HP, 100, "the orc gets its turn")
			assert.Equal(t, StateAwaitingInput, g.State())
		})
	}
}

func TestIdleActionsSkipMonsters(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{"character screen", ActionCharacter},
		{"failed pickup", ActionPickup},
		{"cancelled inventory", ActionInventory},
		{"cancelled drop", ActionDrop},
		{"descend away from stairs", ActionDescend},
		{"unmapped key", ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{}
			g := testGame(t, ui)
			addOrc(g, 6, 5)

			res, err := g.Step(tt.action)
			require.NoError(t, err)
			assert.Equal(t, DidntTakeTurn, res)
			assert.Zero(t, g.Session.Turn)
			assert.Equal(t, 100, g.Session.Player().Fighter.HP)
			assert.Equal(t, StateAwaitingInput, g.State())
		})
	}
}

func TestCharacterScreen(t *testing.T) {
	ui := &fakeUI{}
	g := testGame(t, ui)
	g.Step(ActionCharacter)
	require.Len(t, ui.boxes, 1)
	assert.Contains(t, ui.boxes[0], "Level: 1")
	assert.Contains(t, ui.boxes[0], "Experience to level up: 350")
	assert.Contains(t, ui.boxes[0], "Attack: 4")
	assert.Contains(t, ui.boxes[0], "Defense: 1")
}

func TestInventoryMenuOptions(t *testing.T) {
	ui := &fakeUI{}
	g := testGame(t, ui)
	g.Step(ActionInventory)
	require.Len(t, ui.menuOptions, 1)
	assert.Equal(t, []string{"dagger (on left hand)"}, ui.menuOptions[0])

	g.Session.Inventory = nil
	g.Step(ActionInventory)
	assert.Equal(t, []string{"Inventory is empty."}, ui.menuOptions[1])
}

func TestDropEquippedDagger(t *testing.T) {
	ui := &fakeUI{menuPicks: []int{0}}
	g := testGame(t, ui)
	s := g.Session
	p := s.Player()
	p.Pos = component.Position{X: 7, Y: 9}
	before := system.Power(s, p)

	res, err := g.Step(ActionDrop)
	require.NoError(t, err)
	assert.Equal(t, TookTurn, res)

	assert.Equal(t, before-2, system.Power(s, p))
	assert.Empty(t, s.Inventory)
	dagger := s.World.Entities[s.World.Len()-1]
	assert.Equal(t, "dagger", dagger.Name)
	assert.Equal(t, p.Pos, dagger.Pos)
	assert.False(t, dagger.AlwaysVisible)
	assert.False(t, dagger.Equipment.Equipped)
}

func TestConfuseScenario(t *testing.T) {
	ui := &fakeUI{menuPicks: []int{1}, clicks: []component.Position{{X: 12, Y: 12}}}
	g := testGame(t, ui)
	s := g.Session
	scroll := s.World.Detached()
	scroll.Name = "scroll of confusion"
	scroll.Item = &component.Item{Kind: component.ItemConfuse}
	s.Inventory = append(s.Inventory, scroll)
	s.Player().Pos = component.Position{X: 8, Y: 8}
	g.recomputeFOV()
	orc := addOrc(g, 12, 12)

	// The casting turn is the first evaluation.
	res, err := g.Step(ActionInventory)
	require.NoError(t, err)
	require.Equal(t, TookTurn, res)
	require.Equal(t, component.AIConfused, orc.AI.Kind)
	assert.Equal(t, 9, orc.AI.NumTurns)
	assert.Len(t, s.Inventory, 1, "scroll is used up")

	for i := 2; i <= 10; i++ {
		_, err := g.Step(ActionWait)
		require.NoError(t, err)
		require.Equal(t, component.AIConfused, orc.AI.Kind, "evaluation %d", i)
	}
	assert.Equal(t, 0, orc.AI.NumTurns)
	assert.Equal(t, 100, s.Player().Fighter.HP)

	_, err = g.Step(ActionWait)
	require.NoError(t, err)
	assert.Equal(t, component.AIBasic, orc.AI.Kind)
	assert.Nil(t, orc.AI.Previous)
	assert.Contains(t, messages(g), "The orc is no longer confused!")
}

func TestLevelUpBeforeMonsterPhase(t *testing.T) {
	ui := &fakeUI{upgrades: []int{int(system.UpgradeAgility)}}
	g := testGame(t, ui)
	s := g.Session
	s.Player().Fighter.XP = 340
	orc := addOrc(g, 6, 5)
	orc.Fighter.HP = 4
	orc.Fighter.XP = 10
	factory.NewMonster(s.World, trollTemplate, 4, 5)

	res, err := g.Step(ActionMoveE)
	require.NoError(t, err)
	require.Equal(t, TookTurn, res)

	require.Equal(t, 1, ui.upgradeAsks)
	assert.Equal(t, []int{100}, ui.upgradeHP, "no monster acted before the choice")
	assert.Equal(t, 2, s.Player().Level)
	assert.Zero(t, s.Player().Fighter.XP)
	assert.Equal(t, 2, s.Player().Fighter.BaseDefense)

	// The troll hits 8 against the upgraded defense of 2.
	assert.Equal(t, 94, s.Player().Fighter.HP)
	msgs := messages(g)
	hit := slices.Index(msgs, "troll attacks player for 6 damage!")
	require.NotEqual(t, -1, hit, "messages: %v", msgs)
	assert.GreaterOrEqual(t, hit, ui.upgradeMsgs[0])
}

func TestMonsterPhaseContinuesAfterPlayerDies(t *testing.T) {
	ui := &fakeUI{}
	g := testGame(t, ui)
	s := g.Session
	s.Player().Fighter.HP = 1
	factory.NewMonster(s.World, trollTemplate, 6, 5)
	orc := addOrc(g, 20, 15)
	orc.AI = component.Confuse(orc.AI, 5)

	_, err := g.Step(ActionWait)
	require.NoError(t, err)

	assert.False(t, s.Player().Alive)
	assert.Equal(t, 4, orc.AI.NumTurns, "monsters after the killer still take their turn")
}

func TestClosedInputDuringLevelUpSavesAndExits(t *testing.T) {
	ui := &fakeUI{closed: true, actions: []Action{ActionWait}}
	g := testGame(t, ui)
	s := g.Session
	s.Player().Fighter.XP = 400

	require.NoError(t, g.Run(ui))
	assert.Equal(t, StateExit, g.State())
	assert.Equal(t, 1, ui.upgradeAsks)
	assert.Len(t, ui.actions, 0, "the action was read before the prompt")

	saved, err := session.Load(g.opts.SavePath)
	require.NoError(t, err)
	assert.Equal(t, 1, saved.Player().Level)
	assert.Equal(t, 400, saved.Player().Fighter.XP, "the level is still owed on resume")
}

func TestDescendStairs(t *testing.T) {
	ui := &fakeUI{}
	g := testGame(t, ui)
	s := g.Session
	g.tables = &generate.SpawnTables{}
	factory.NewStairs(s.World, 5, 5)
	orc := addOrc(g, 10, 10)
	s.Player().Fighter.HP = 20
	dagger := s.Inventory[0]

	res, err := g.Step(ActionDescend)
	require.NoError(t, err)
	assert.Equal(t, TookTurn, res)

	p := s.Player()
	assert.Same(t, p, s.World.Entities[0])
	assert.Equal(t, 2, s.Depth)
	assert.Equal(t, 70, p.Fighter.HP)
	assert.Equal(t, DefaultOptions().MapWidth, s.Map.Width)
	assert.Same(t, dagger, s.Inventory[0])
	assert.True(t, g.FOV.InFOV(p.Pos.X, p.Pos.Y))
	assert.Contains(t, messages(g), "You take a moment to rest and recover your strength.")
	assert.Contains(t, messages(g), "After a moment of rest, you venture deeper into the dungeon...")

	assert.Equal(t, -1, s.World.Index(orc.ID), "old level entities are discarded")
	require.Equal(t, 2, s.World.Len(), "empty tables leave only the stairs")
	assert.True(t, factory.IsStairs(s.World.Entities[1]))
}

func TestDescendFailureKeepsCurrentLevel(t *testing.T) {
	ui := &fakeUI{}
	g := testGame(t, ui)
	s := g.Session
	g.opts.MaxRooms = 0
	factory.NewStairs(s.World, 5, 5)
	orc := addOrc(g, 10, 10)
	s.Player().Fighter.HP = 20
	oldMap := s.Map
	logged := s.Messages.Len()

	res, err := g.Step(ActionDescend)
	require.ErrorIs(t, err, generate.ErrNoRooms)
	assert.Equal(t, DidntTakeTurn, res)

	assert.Equal(t, 1, s.Depth)
	assert.Same(t, oldMap, s.Map)
	assert.NotEqual(t, -1, s.World.Index(orc.ID), "roster untouched")
	assert.Equal(t, 20, s.Player().Fighter.HP, "no rest without a new level")
	assert.Equal(t, logged, s.Messages.Len())
	assert.Equal(t, StateAwaitingInput, g.State())
}

func TestDeadPlayerFreezesSimulation(t *testing.T) {
	ui := &fakeUI{}
	g := testGame(t, ui)
	s := g.Session
	p := s.Player()
	p.Fighter.HP = 1
	troll := factory.NewMonster(s.World, trollTemplate, 6, 5)

	res, err := g.Step(ActionWait)
	require.NoError(t, err)
	assert.Equal(t, TookTurn, res)
	require.False(t, p.Alive)
	assert.Equal(t, "You died!", s.Messages.Last().Text)

	data, err := os.ReadFile(filepath.Join(g.opts.RunLogDir, "runs.jsonl"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"died":true`)

	troll.Pos = component.Position{X: 9, Y: 9}
	for _, a := range []Action{ActionWait, ActionMoveE, ActionPickup} {
		res, err := g.Step(a)
		require.NoError(t, err)
		assert.Equal(t, DidntTakeTurn, res)
	}
	assert.Equal(t, component.Position{X: 9, Y: 9}, troll.Pos)
}

func TestQuitSavesAndLoads(t *testing.T) {
	ui := &fakeUI{}
	g := testGame(t, ui)
	g.Session.Depth = 4
	g.Session.Player().Pos = component.Position{X: 9, Y: 3}

	res, err := g.Step(ActionQuit)
	require.NoError(t, err)
	assert.Equal(t, Exit, res)
	assert.Equal(t, StateExit, g.State())

	res, err = g.Step(ActionWait)
	require.NoError(t, err)
	assert.Equal(t, Exit, res, "exit is final")

	require.NoError(t, g.Close())
	loaded, err := Load(g.opts, assets.MustSpawnTables(), rand.New(rand.NewSource(2)), ui)
	require.NoError(t, err)
	assert.Equal(t, g.Session.RunID, loaded.Session.RunID)
	assert.Equal(t, 4, loaded.Session.Depth)
	assert.Equal(t, component.Position{X: 9, Y: 3}, loaded.Session.Player().Pos)
	assert.True(t, loaded.FOV.InFOV(9, 3))
	assert.Equal(t, StateAwaitingInput, loaded.State())
}

func TestLoadWithoutSave(t *testing.T) {
	_, err := Load(testOptions(t), assets.MustSpawnTables(), rand.New(rand.NewSource(1)), &fakeUI{})
	require.ErrorIs(t, err, session.ErrNoSave)
}

func TestCloseAfterDeathRemovesSave(t *testing.T) {
	g := testGame(t, &fakeUI{})
	require.NoError(t, g.Close())
	require.FileExists(t, g.opts.SavePath)

	system.TakeDamage(g.Session, g.Session.Player(), 500)
	require.NoError(t, g.Close())
	assert.NoFileExists(t, g.opts.SavePath)
	assert.FileExists(t, filepath.Join(g.opts.RunLogDir, "runs.jsonl"))
}

func TestRunLoop(t *testing.T) {
	ui := &fakeUI{actions: []Action{ActionWait, ActionMoveE, ActionCharacter, ActionQuit}}
	g := testGame(t, ui)

	require.NoError(t, g.Run(ui))
	assert.Equal(t, 4, ui.renders)
	assert.Equal(t, 2, g.Session.Turn)
	assert.FileExists(t, g.opts.SavePath)
}
