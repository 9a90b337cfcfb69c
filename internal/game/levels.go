package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"tombs/internal/factory"
	"tombs/internal/generate"
	"tombs/internal/logger"
	"tombs/internal/message"
	"tombs/internal/system"
)

// levelConfig builds a generate.Config for the given depth.
func (g *Game) levelConfig(depth int) *generate.Config {
	return &generate.Config{
		MapWidth:    g.opts.MapWidth,
		MapHeight:   g.opts.MapHeight,
		RoomMinSize: g.opts.RoomMinSize,
		RoomMaxSize: g.opts.RoomMaxSize,
		MaxRooms:    g.opts.MaxRooms,
		Depth:       depth,
		Tables:      g.tables,
		Rand:        g.rng,
	}
}

// generateLevel builds the level for depth without touching the session.
func (g *Game) generateLevel(depth int) (*generate.Level, error) {
	lvl, err := generate.Generate(g.levelConfig(depth))
	if err != nil {
		return nil, fmt.Errorf("generate depth %d: %w", depth, err)
	}
	return lvl, nil
}

// makeLevel generates a level at the current depth and enters it.
func (g *Game) makeLevel() error {
	lvl, err := g.generateLevel(g.Session.Depth)
	if err != nil {
		return err
	}
	g.enterLevel(lvl)
	return nil
}

// enterLevel replaces the map and every non-player entity with lvl. The
// player must already be the first roster entry.
func (g *Game) enterLevel(lvl *generate.Level) {
	s := g.Session
	w := s.World
	w.KeepPlayerOnly()

	s.Map = lvl.Map
	p := s.Player()
	p.Pos.X, p.Pos.Y = lvl.StartX, lvl.StartY
	factory.Spawn(w, lvl)

	g.FOV.Reset(s.Map)
	g.recomputeFOV()

	logger.Log.WithFields(logrus.Fields{
		"run":      s.RunID,
		"depth":    s.Depth,
		"rooms":    len(lvl.Rooms),
		"monsters": len(lvl.Monsters),
		"items":    len(lvl.Items),
	}).Info("level generated")
}

// nextLevel rests the player for half their hit points and descends. The
// next level is generated first, so a failure leaves the current one as is.
func (g *Game) nextLevel() error {
	s := g.Session
	lvl, err := g.generateLevel(s.Depth + 1)
	if err != nil {
		return err
	}

	p := s.Player()
	s.Log("You take a moment to rest and recover your strength.", message.Violet)
	system.Heal(s, p, system.MaxHP(s, p)/2)
	s.Log("After a moment of rest, you venture deeper into the dungeon...", message.Red)
	s.Depth++
	g.enterLevel(lvl)
	return nil
}
