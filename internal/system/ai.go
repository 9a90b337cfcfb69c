package system

import (
	"fmt"
	"math/rand"

	"tombs/internal/component"
	"tombs/internal/message"
	"tombs/internal/session"
)

// TakeTurn runs one AI evaluation for the entity at roster index idx. A
// monster acts only while its tile is in the player's view; sight is
// treated as symmetric.
func TakeTurn(s *session.Session, idx int, v Viewer, rng *rand.Rand) {
	e := s.World.Entities[idx]
	if e.AI == nil || idx == 0 {
		return
	}
	switch e.AI.Kind {
	case component.AIConfused:
		confusedTurn(s, idx, rng)
	default:
		basicTurn(s, idx, v)
	}
}

func basicTurn(s *session.Session, idx int, v Viewer) {
	monster, player := s.World.Pair(idx, 0)
	if !v.InFOV(monster.Pos.X, monster.Pos.Y) {
		return
	}
	if monster.Pos.DistanceTo(player.Pos) >= 2 {
		MoveTowards(s, monster, player.Pos.X, player.Pos.Y)
		return
	}
	if player.Fighter != nil && player.Fighter.HP > 0 && monster.Fighter != nil {
		Attack(s, monster, player)
	}
}

// confusedTurn counts down first: the first NumTurns evaluations stumble
// randomly and the next one hands control back to the wrapped AI.
func confusedTurn(s *session.Session, idx int, rng *rand.Rand) {
	e := s.World.Entities[idx]
	ai := e.AI
	ai.NumTurns--
	if ai.NumTurns < 0 {
		s.Log(fmt.Sprintf("The %s is no longer confused!", e.Name), message.Red)
		e.AI = ai.Previous
		if e.AI == nil {
			e.AI = component.Basic()
		}
		return
	}
	MoveBy(s, e, rng.Intn(3)-1, rng.Intn(3)-1)
}
