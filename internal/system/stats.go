package system

import (
	"tombs/internal/ecs"
	"tombs/internal/session"
)

// equipBonus sums a bonus over the player's equipped items. Only the player
// wears equipment; every other entity gets zero.
func equipBonus(s *session.Session, e *ecs.Entity, pick func(b bonus) int) int {
	if !s.World.IsPlayer(e) {
		return 0
	}
	total := 0
	for _, it := range s.Equipped() {
		eq := it.Equipment
		total += pick(bonus{eq.MaxHPBonus, eq.PowerBonus, eq.DefenseBonus, eq.MagicBonus})
	}
	return total
}

type bonus struct{ maxHP, power, defense, magic int }

// Power returns e's attack power including equipment.
func Power(s *session.Session, e *ecs.Entity) int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.BasePower + equipBonus(s, e, func(b bonus) int { return b.power })
}

// Defense returns e's defense including equipment.
func Defense(s *session.Session, e *ecs.Entity) int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.BaseDefense + equipBonus(s, e, func(b bonus) int { return b.defense })
}

// MaxHP returns e's maximum hp including equipment.
func MaxHP(s *session.Session, e *ecs.Entity) int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.BaseMaxHP + equipBonus(s, e, func(b bonus) int { return b.maxHP })
}

// Magic returns e's magic including equipment.
func Magic(s *session.Session, e *ecs.Entity) int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.BaseMagic + equipBonus(s, e, func(b bonus) int { return b.magic })
}

// Heal restores amount hp, never above MaxHP.
func Heal(s *session.Session, e *ecs.Entity, amount int) {
	if e.Fighter == nil {
		return
	}
	e.Fighter.HP = min(e.Fighter.HP+amount, MaxHP(s, e))
}
