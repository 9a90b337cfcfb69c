package game

import (
	"context"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"tombs/internal/logger"
)

// Turn controller states.
const (
	StateAwaitingInput = "awaiting_input"
	StatePlayerActed   = "player_acted"
	StatePlayerIdle    = "player_idle"
	StateMonsterPhase  = "monster_phase"
	StateExit          = "exit"
)

const (
	eventAct      = "act"
	eventIdle     = "idle"
	eventMonsters = "monsters"
	eventResume   = "resume"
	eventQuit     = "quit"
)

// newTurnFSM builds the per-game turn state machine. Exit is reachable
// from every state and has no way out.
func newTurnFSM() *fsm.FSM {
	live := []string{StateAwaitingInput, StatePlayerActed, StatePlayerIdle, StateMonsterPhase}
	return fsm.NewFSM(
		StateAwaitingInput,
		fsm.Events{
			{Name: eventAct, Src: []string{StateAwaitingInput}, Dst: StatePlayerActed},
			{Name: eventIdle, Src: []string{StateAwaitingInput}, Dst: StatePlayerIdle},
			{Name: eventMonsters, Src: []string{StatePlayerActed}, Dst: StateMonsterPhase},
			{Name: eventResume, Src: []string{StatePlayerActed, StatePlayerIdle, StateMonsterPhase}, Dst: StateAwaitingInput},
			{Name: eventQuit, Src: live, Dst: StateExit},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Log.WithFields(logrus.Fields{
					"event": e.Event,
					"from":  e.Src,
					"to":    e.Dst,
				}).Trace("turn state")
			},
		},
	)
}

// fire applies a turn event. The table above makes every call site a legal
// transition, so a failure is a programming error.
func (g *Game) fire(event string) {
	if err := g.turn.Event(context.Background(), event); err != nil {
		panic("game: turn controller: " + err.Error())
	}
}

// State returns the turn controller's current state.
func (g *Game) State() string {
	return g.turn.Current()
}
