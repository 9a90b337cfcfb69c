package game

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"tombs/internal/factory"
	"tombs/internal/generate"
	"tombs/internal/logger"
	"tombs/internal/message"
	"tombs/internal/session"
	"tombs/internal/system"
)

// TurnResult tells the caller what a Step did.
type TurnResult uint8

const (
	DidntTakeTurn TurnResult = iota
	TookTurn
	Exit
)

func (r TurnResult) String() string {
	switch r {
	case TookTurn:
		return "took turn"
	case Exit:
		return "exit"
	default:
		return "didn't take turn"
	}
}

// Options are the tunables of a game.
type Options struct {
	MapWidth, MapHeight int
	RoomMinSize         int
	RoomMaxSize         int
	MaxRooms            int
	FOVRadius           int

	// SavePath is written on exit; empty disables saving.
	SavePath string
	// RunLogDir receives runs.jsonl when the player dies; empty disables it.
	RunLogDir string
}

// DefaultOptions returns the classic 80x43 dungeon settings.
func DefaultOptions() Options {
	return Options{
		MapWidth:    80,
		MapHeight:   43,
		RoomMinSize: 6,
		RoomMaxSize: 10,
		MaxRooms:    30,
		FOVRadius:   system.TorchRadius,
	}
}

// Game is the top-level orchestrator: it owns the session, the field of
// view and the turn controller, and asks ui for every modal decision.
type Game struct {
	Session *session.Session
	FOV     *system.FOV

	opts     Options
	tables   *generate.SpawnTables
	rng      *rand.Rand
	ui       UI
	turn     *fsm.FSM
	recorded bool
}

func newGame(s *session.Session, opts Options, tables *generate.SpawnTables, rng *rand.Rand, ui UI) *Game {
	return &Game{
		Session: s,
		FOV:     system.NewFOV(opts.MapWidth, opts.MapHeight, opts.FOVRadius),
		opts:    opts,
		tables:  tables,
		rng:     rng,
		ui:      ui,
		turn:    newTurnFSM(),
	}
}

// New starts a fresh run at depth 1: the player first, then the generated
// level, then the starting dagger.
func New(opts Options, tables *generate.SpawnTables, rng *rand.Rand, ui UI) (*Game, error) {
	g := newGame(session.New(), opts, tables, rng, ui)
	s := g.Session
	factory.NewPlayer(s.World, 0, 0)
	if err := g.makeLevel(); err != nil {
		return nil, err
	}
	s.Inventory = append(s.Inventory, factory.NewDagger(s.World))
	s.Log("Welcome stranger! Prepare to perish in the Tombs of the Ancient Kings!", message.Red)

	logger.Log.WithFields(logrus.Fields{"run": s.RunID}).Info("new game")
	return g, nil
}

// Resume continues a loaded session. Visibility is not saved, so it is
// recomputed from the player's position.
func Resume(s *session.Session, opts Options, tables *generate.SpawnTables, rng *rand.Rand, ui UI) *Game {
	g := newGame(s, opts, tables, rng, ui)
	g.recomputeFOV()
	return g
}

// Load reads the save at opts.SavePath and resumes it. A missing file
// returns an error wrapping session.ErrNoSave.
func Load(opts Options, tables *generate.SpawnTables, rng *rand.Rand, ui UI) (*Game, error) {
	s, err := session.Load(opts.SavePath)
	if err != nil {
		return nil, err
	}
	logger.Log.WithFields(logrus.Fields{"run": s.RunID, "depth": s.Depth}).Info("game loaded")
	return Resume(s, opts, tables, rng, ui), nil
}

// Run alternates rendering and Step until the player exits, then saves.
func (g *Game) Run(f Frontend) error {
	for {
		f.Render(g)
		res, err := g.Step(f.NextAction())
		if err != nil {
			return err
		}
		if res == Exit {
			return g.Close()
		}
	}
}

// Step resolves one player action. Turn-consuming actions are followed by
// a level-up check and then, while the player lives, one AI evaluation for
// every monster on the roster.
func (g *Game) Step(a Action) (TurnResult, error) {
	if g.turn.Is(StateExit) {
		return Exit, nil
	}
	s := g.Session
	if err := g.levelUp(); err != nil {
		return g.abort(err)
	}

	if a == ActionQuit {
		g.fire(eventQuit)
		return Exit, nil
	}

	took, err := g.handle(a)
	if err != nil {
		return DidntTakeTurn, err
	}
	if !took {
		g.fire(eventIdle)
		g.fire(eventResume)
		return DidntTakeTurn, nil
	}

	g.fire(eventAct)
	s.Turn++
	if err := g.levelUp(); err != nil {
		return g.abort(err)
	}
	if s.Player().Alive {
		g.fire(eventMonsters)
		g.monsterPhase()
	}
	g.fire(eventResume)

	if !s.Player().Alive {
		g.recordDeath()
	}
	return TookTurn, nil
}

// monsterPhase walks the live roster by index so entities added or removed
// mid-phase are handled as they stand.
func (g *Game) monsterPhase() {
	s := g.Session
	for i := 1; i < s.World.Len(); i++ {
		if s.World.Entities[i].AI == nil {
			continue
		}
		system.TakeTurn(s, i, g.FOV, g.rng)
	}
}

// levelUp grants every level the player's xp has earned.
func (g *Game) levelUp() error {
	for {
		leveled, err := system.LevelUp(g.Session, g.ui)
		if err != nil || !leveled {
			return err
		}
	}
}

// abort ends the step after a failed prompt. Closed input exits the game
// normally so Run still saves it; any other error is returned.
func (g *Game) abort(err error) (TurnResult, error) {
	if !errors.Is(err, system.ErrInputClosed) {
		return DidntTakeTurn, err
	}
	logger.Log.WithFields(logrus.Fields{"run": g.Session.RunID, "turn": g.Session.Turn}).Info("input closed, leaving game")
	g.fire(eventQuit)
	return Exit, nil
}

// handle performs the player's action and reports whether it took a turn.
// A dead player can only quit.
func (g *Game) handle(a Action) (bool, error) {
	s := g.Session
	p := s.Player()
	if !p.Alive {
		return false, nil
	}

	switch a {
	case ActionWait:
		return true, nil

	case ActionPickup:
		idx := system.ItemAt(s, p.Pos.X, p.Pos.Y)
		if idx < 0 {
			return false, nil
		}
		return system.PickUp(s, idx), nil

	case ActionInventory:
		i, ok := g.inventoryMenu("Press the key next to an item to use it, or any other to cancel.\n")
		if !ok {
			return false, nil
		}
		return system.Use(s, i, g.FOV, g.ui) != system.Cancelled, nil

	case ActionDrop:
		i, ok := g.inventoryMenu("Press the key next to an item to drop it, or any other to cancel.\n")
		if !ok {
			return false, nil
		}
		system.Drop(s, i)
		return true, nil

	case ActionCharacter:
		g.ui.MessageBox(g.characterInfo(), characterWidth)
		return false, nil

	case ActionDescend:
		if !g.onStairs() {
			return false, nil
		}
		if err := g.nextLevel(); err != nil {
			return false, err
		}
		return true, nil
	}

	dx, dy := actionToDelta(a)
	if dx == 0 && dy == 0 {
		return false, nil
	}
	system.PlayerMoveOrAttack(s, dx, dy)
	g.recomputeFOV()
	return true, nil
}

func (g *Game) onStairs() bool {
	p := g.Session.Player()
	for _, e := range g.Session.World.Entities {
		if factory.IsStairs(e) && e.At(p.Pos.X, p.Pos.Y) {
			return true
		}
	}
	return false
}

func (g *Game) recomputeFOV() {
	p := g.Session.Player()
	g.FOV.Compute(g.Session.Map, p.Pos.X, p.Pos.Y)
}

// Close saves a living game. A dead player's run is recorded instead and
// any stale save is removed so it cannot be continued.
func (g *Game) Close() error {
	s := g.Session
	if s.Player().Alive {
		if g.opts.SavePath == "" {
			return nil
		}
		if err := session.Save(g.opts.SavePath, s); err != nil {
			return fmt.Errorf("save on exit: %w", err)
		}
		logger.Log.WithFields(logrus.Fields{"run": s.RunID, "path": g.opts.SavePath}).Info("game saved")
		return nil
	}

	g.recordDeath()
	if g.opts.SavePath != "" {
		if err := os.Remove(g.opts.SavePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove save of dead run: %w", err)
		}
	}
	return nil
}
