package system

import (
	"tombs/internal/component"
	"tombs/internal/session"
)

// Targeter runs an interactive selection loop outside the rules code. The
// loop keeps polling until the player picks a tile for which accept returns
// true (ok=true) or cancels explicitly (ok=false).
type Targeter interface {
	PickTile(accept func(x, y int) bool) (x, y int, ok bool)
}

// tileInReach builds the predicate shared by tile and monster targeting:
// the tile must be in view and, when maxRange > 0, within that distance
// of the player.
func tileInReach(s *session.Session, v Viewer, maxRange float64) func(x, y int) bool {
	p := s.Player()
	return func(x, y int) bool {
		if !v.InFOV(x, y) {
			return false
		}
		return maxRange <= 0 || p.Pos.DistanceTo(component.Position{X: x, Y: y}) <= maxRange
	}
}

// TargetTile asks for a visible tile within maxRange (unlimited when
// maxRange <= 0).
func TargetTile(s *session.Session, v Viewer, t Targeter, maxRange float64) (int, int, bool) {
	return t.PickTile(tileInReach(s, v, maxRange))
}

// monsterAt returns the roster index of the first non-player fighter on
// (x, y), or -1.
func monsterAt(s *session.Session, x, y int) int {
	for i, e := range s.World.Entities {
		if i != 0 && e.Fighter != nil && e.At(x, y) {
			return i
		}
	}
	return -1
}

// TargetMonster asks for a visible non-player fighter within maxRange and
// returns its roster index. Clicks on empty tiles keep the loop going.
func TargetMonster(s *session.Session, v Viewer, t Targeter, maxRange float64) (int, bool) {
	inReach := tileInReach(s, v, maxRange)
	x, y, ok := t.PickTile(func(x, y int) bool {
		return inReach(x, y) && monsterAt(s, x, y) >= 0
	})
	if !ok {
		return -1, false
	}
	idx := monsterAt(s, x, y)
	return idx, idx >= 0
}
