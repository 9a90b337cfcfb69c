package system

import (
	"math"

	"tombs/internal/ecs"
	"tombs/internal/session"
)

// IsBlocked reports whether (x, y) is impassable terrain or holds a
// blocking entity.
func IsBlocked(s *session.Session, x, y int) bool {
	if s.Map.IsBlocked(x, y) {
		return true
	}
	return s.World.BlockingAt(x, y) != nil
}

// MoveBy steps e by (dx, dy) unless the destination is blocked. It reports
// whether e moved.
func MoveBy(s *session.Session, e *ecs.Entity, dx, dy int) bool {
	x, y := e.Pos.X+dx, e.Pos.Y+dy
	if IsBlocked(s, x, y) {
		return false
	}
	e.Pos.X, e.Pos.Y = x, y
	return true
}

// MoveTowards steps e one tile toward (tx, ty): the displacement is
// normalized and each axis rounded independently, so the step may be
// diagonal. This is not pathfinding.
func MoveTowards(s *session.Session, e *ecs.Entity, tx, ty int) bool {
	dx := float64(tx - e.Pos.X)
	dy := float64(ty - e.Pos.Y)
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return false
	}
	return MoveBy(s, e, int(math.Round(dx/dist)), int(math.Round(dy/dist)))
}

// PlayerMoveOrAttack moves the player by (dx, dy), attacking instead if a
// fighter stands on the destination. It reports whether an attack happened.
func PlayerMoveOrAttack(s *session.Session, dx, dy int) bool {
	p := s.Player()
	x, y := p.Pos.X+dx, p.Pos.Y+dy
	for i, e := range s.World.Entities {
		if i == 0 || e.Fighter == nil || !e.At(x, y) {
			continue
		}
		player, target := s.World.Pair(0, i)
		Attack(s, player, target)
		return true
	}
	MoveBy(s, p, dx, dy)
	return false
}
