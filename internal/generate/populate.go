package generate

import "tombs/internal/gamemap"

// placer tracks which tiles already hold a blocking spawn while rooms are
// populated one at a time.
type placer struct {
	lvl     *Level
	cfg     *Config
	blocked map[[2]int]bool
}

func newPlacer(lvl *Level, cfg *Config) *placer {
	return &placer{lvl: lvl, cfg: cfg, blocked: make(map[[2]int]bool)}
}

func (p *placer) claim(x, y int) { p.blocked[[2]int{x, y}] = true }

func (p *placer) isBlocked(x, y int) bool {
	return p.lvl.Map.IsBlocked(x, y) || p.blocked[[2]int{x, y}]
}

// randomInRoom picks a uniformly random interior tile of room.
func (p *placer) randomInRoom(room gamemap.Rect) (int, int) {
	x := room.X1 + 1 + p.cfg.Rand.Intn(room.X2-room.X1-1)
	y := room.Y1 + 1 + p.cfg.Rand.Intn(room.Y2-room.Y1-1)
	return x, y
}

// populate rolls monsters then items for one room. A sampled tile that is
// already blocked drops that spawn; there is no retry.
func (p *placer) populate(room gamemap.Rect) {
	tables := p.cfg.Tables
	if tables == nil {
		return
	}
	depth := p.cfg.Depth

	monsters := tables.MonsterChoices(depth)
	n := p.cfg.Rand.Intn(tables.MaxMonsters.At(depth) + 1)
	for i := 0; i < n; i++ {
		x, y := p.randomInRoom(room)
		if p.isBlocked(x, y) {
			continue
		}
		tmpl, ok := Choose(p.cfg.Rand, monsters)
		if !ok {
			continue
		}
		p.claim(x, y)
		p.lvl.Monsters = append(p.lvl.Monsters, MonsterSpawn{Template: tmpl, X: x, Y: y})
	}

	items := tables.ItemChoices(depth)
	n = p.cfg.Rand.Intn(tables.MaxItems.At(depth) + 1)
	for i := 0; i < n; i++ {
		x, y := p.randomInRoom(room)
		if p.isBlocked(x, y) {
			continue
		}
		tmpl, ok := Choose(p.cfg.Rand, items)
		if !ok {
			continue
		}
		p.lvl.Items = append(p.lvl.Items, ItemSpawn{Template: tmpl, X: x, Y: y})
	}
}
