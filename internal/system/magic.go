package system

import (
	"fmt"

	"tombs/internal/component"
	"tombs/internal/message"
	"tombs/internal/session"
)

const (
	HealAmount      = 40
	LightningRange  = 5
	LightningDamage = 40
	ConfuseRange    = 8
	ConfuseNumTurns = 10
	FireballRadius  = 3
	FireballDamage  = 25
)

// CastHeal restores HealAmount hp to the player. It refuses at full health.
func CastHeal(s *session.Session) UseResult {
	p := s.Player()
	if p.Fighter == nil {
		return Cancelled
	}
	if p.Fighter.HP >= MaxHP(s, p) {
		s.Log("You are already at full health!", message.Red)
		return Cancelled
	}
	s.Log("Your wounds start to heal!", message.LightViolet)
	Heal(s, p, HealAmount)
	return UsedUp
}

// ClosestMonster returns the roster index of the nearest visible monster
// within maxRange of the player, or -1.
func ClosestMonster(s *session.Session, v Viewer, maxRange int) int {
	p := s.Player()
	best := -1
	bestDist := float64(maxRange + 1)
	for i, e := range s.World.Entities {
		if i == 0 || e.Fighter == nil || e.AI == nil || !v.InFOV(e.Pos.X, e.Pos.Y) {
			continue
		}
		if d := p.Pos.DistanceTo(e.Pos); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// CastLightning strikes the closest visible monster for LightningDamage,
// ignoring defense.
func CastLightning(s *session.Session, v Viewer) UseResult {
	idx := ClosestMonster(s, v, LightningRange)
	if idx < 0 {
		s.Log("No enemy close enough to strike!", message.Red)
		return Cancelled
	}
	player, target := s.World.Pair(0, idx)
	s.Log(fmt.Sprintf("A lightning bolt strikes %s! Damage is %d hit points.", target.Name, LightningDamage), message.LightBlue)
	if xp, died := TakeDamage(s, target, LightningDamage); died {
		player.Fighter.XP += xp
	}
	return UsedUp
}

// CastConfuse asks the player for a monster within ConfuseRange and wraps
// its AI in a Confused state.
func CastConfuse(s *session.Session, v Viewer, t Targeter) UseResult {
	s.Log("Left click an enemy to confuse it, or right click to cancel.", message.LightCyan)
	idx, ok := TargetMonster(s, v, t, ConfuseRange)
	if !ok {
		s.Log("No enemy is close enough to confuse.", message.Red)
		return Cancelled
	}
	target := s.World.Entities[idx]
	target.AI = component.Confuse(target.AI, ConfuseNumTurns)
	s.Log(fmt.Sprintf("The eyes of %s look vacant, as they start to stumble around", target.Name), message.LightGreen)
	return UsedUp
}

// CastFireball asks the player for a visible tile and burns every fighter
// within FireballRadius of it, the player included. The player earns xp
// only for others it kills.
func CastFireball(s *session.Session, v Viewer, t Targeter) UseResult {
	s.Log("Left click tile to target fireball, or Right click to cancel.", message.LightCyan)
	x, y, ok := TargetTile(s, v, t, 0)
	if !ok {
		return Cancelled
	}
	s.Log(fmt.Sprintf("The fireball explodes, burning everything within %d tiles!", FireballRadius), message.Orange)

	center := component.Position{X: x, Y: y}
	gained := 0
	for i, e := range s.World.Entities {
		if e.Fighter == nil || e.Pos.DistanceTo(center) > FireballRadius {
			continue
		}
		s.Log(fmt.Sprintf("The %s gets burned for %d hit points!", e.Name, FireballDamage), message.Orange)
		if xp, died := TakeDamage(s, e, FireballDamage); died && i != 0 {
			gained += xp
		}
	}
	if p := s.Player(); p.Fighter != nil {
		p.Fighter.XP += gained
	}
	return UsedUp
}
