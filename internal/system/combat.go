package system

import (
	"fmt"

	"tombs/internal/component"
	"tombs/internal/ecs"
	"tombs/internal/logger"
	"tombs/internal/message"
	"tombs/internal/session"

	"github.com/sirupsen/logrus"
)

// TakeDamage subtracts amount from e's hp when amount is positive. If that
// kills a living entity its death behavior runs and its xp value is
// returned with died=true. Crediting the xp is left to the caller.
func TakeDamage(s *session.Session, e *ecs.Entity, amount int) (xp int, died bool) {
	f := e.Fighter
	if f == nil {
		return 0, false
	}
	if amount > 0 {
		f.HP -= amount
	}
	if f.HP > 0 || !e.Alive {
		return 0, false
	}
	e.Alive = false
	xp = f.XP
	die(s, e)
	return xp, true
}

// Attack resolves a melee hit: damage is attacker power minus target
// defense, with no randomness. Both entities must be fighters.
func Attack(s *session.Session, attacker, target *ecs.Entity) {
	if attacker.Fighter == nil || target.Fighter == nil {
		panic(fmt.Sprintf("system: attack between non-fighters %q and %q", attacker.Name, target.Name))
	}
	damage := Power(s, attacker) - Defense(s, target)

	logger.Log.WithFields(logrus.Fields{
		"run":      s.RunID,
		"attacker": attacker.Name,
		"target":   target.Name,
		"damage":   damage,
	}).Debug("attack")

	if damage <= 0 {
		s.Log(fmt.Sprintf("%s attacks %s but it has no effect!", attacker.Name, target.Name), message.White)
		return
	}
	s.Log(fmt.Sprintf("%s attacks %s for %d damage!", attacker.Name, target.Name, damage), message.White)
	if xp, died := TakeDamage(s, target, damage); died && attacker != target {
		attacker.Fighter.XP += xp
	}
}

func die(s *session.Session, e *ecs.Entity) {
	switch e.Fighter.OnDeath {
	case component.DeathPlayer:
		playerDeath(s, e)
	default:
		monsterDeath(s, e)
	}
}

func playerDeath(s *session.Session, e *ecs.Entity) {
	s.Log("You died!", message.Red)
	e.Render.Glyph = '%'
	e.Render.Color = message.DarkRed

	logger.Log.WithFields(logrus.Fields{"run": s.RunID, "depth": s.Depth}).Info("player died")
}

// monsterDeath turns a monster into an inert corpse.
func monsterDeath(s *session.Session, e *ecs.Entity) {
	s.Log(fmt.Sprintf("%s is dead! You gain %d experience", e.Name, e.Fighter.XP), message.Orange)
	e.Render.Glyph = '%'
	e.Render.Color = message.DarkRed
	e.Blocks = false
	e.Fighter = nil
	e.AI = nil
	e.Name = "remains of " + e.Name
}
