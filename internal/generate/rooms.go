package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"tombs/internal/gamemap"
)

// ErrNoRooms is returned when every room attempt was rejected, leaving no
// room to hold the player or the stairs.
var ErrNoRooms = errors.New("generate: no rooms were placed")

// Config drives procedural generation for one level.
type Config struct {
	MapWidth, MapHeight int
	RoomMinSize         int
	RoomMaxSize         int
	MaxRooms            int
	Depth               int
	Tables              *SpawnTables
	Rand                *rand.Rand
}

// MonsterSpawn is a monster to create at (X, Y).
type MonsterSpawn struct {
	Template MonsterTemplate
	X, Y     int
}

// ItemSpawn is an item to create at (X, Y).
type ItemSpawn struct {
	Template ItemTemplate
	X, Y     int
}

// Level is the result of one generation pass.
type Level struct {
	Map              *gamemap.GameMap
	Rooms            []gamemap.Rect
	StartX, StartY   int
	StairsX, StairsY int
	Monsters         []MonsterSpawn
	Items            []ItemSpawn
}

func (cfg *Config) validate() error {
	switch {
	case cfg.Rand == nil:
		return errors.New("generate: nil random source")
	case cfg.RoomMinSize < 2 || cfg.RoomMinSize > cfg.RoomMaxSize:
		return fmt.Errorf("generate: invalid room size range [%d,%d]", cfg.RoomMinSize, cfg.RoomMaxSize)
	case cfg.RoomMaxSize >= cfg.MapWidth || cfg.RoomMaxSize >= cfg.MapHeight:
		return fmt.Errorf("generate: room size %d does not fit a %dx%d map", cfg.RoomMaxSize, cfg.MapWidth, cfg.MapHeight)
	}
	return nil
}

// Generate builds a map of non-overlapping rooms joined by L-shaped
// corridors and decides where the player, stairs, monsters and items go.
// Rejected room attempts are skipped, not retried.
func Generate(cfg *Config) (*Level, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	lvl := &Level{Map: gamemap.New(cfg.MapWidth, cfg.MapHeight)}
	p := newPlacer(lvl, cfg)

	for i := 0; i < cfg.MaxRooms; i++ {
		w := cfg.RoomMinSize + cfg.Rand.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		h := cfg.RoomMinSize + cfg.Rand.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		x := cfg.Rand.Intn(cfg.MapWidth - w)
		y := cfg.Rand.Intn(cfg.MapHeight - h)
		room := gamemap.NewRect(x, y, w, h)

		if overlapsAny(room, lvl.Rooms) {
			continue
		}

		carveRoom(lvl.Map, room)
		cx, cy := room.Center()
		if len(lvl.Rooms) == 0 {
			lvl.StartX, lvl.StartY = cx, cy
			p.claim(cx, cy)
		} else {
			px, py := lvl.Rooms[len(lvl.Rooms)-1].Center()
			carveCorridor(lvl.Map, px, py, cx, cy, cfg.Rand)
		}
		p.populate(room)
		lvl.Rooms = append(lvl.Rooms, room)
	}

	if len(lvl.Rooms) == 0 {
		return nil, ErrNoRooms
	}
	lvl.StairsX, lvl.StairsY = lvl.Rooms[len(lvl.Rooms)-1].Center()
	return lvl, nil
}

func overlapsAny(r gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom empties the interior of r, leaving its border as wall.
func carveRoom(gmap *gamemap.GameMap, r gamemap.Rect) {
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			gmap.Set(x, y, gamemap.MakeEmpty())
		}
	}
}
