// Package session holds the state of one game in progress and its
// persistence.
package session

import (
	"tombs/internal/ecs"
	"tombs/internal/gamemap"
	"tombs/internal/message"

	"github.com/google/uuid"
)

// MaxInventory is the number of inventory slots, one per menu letter.
const MaxInventory = 26

// Session is everything that survives a save/load round trip.
type Session struct {
	RunID     uuid.UUID
	Map       *gamemap.GameMap
	Messages  message.Log
	Inventory []*ecs.Entity
	Depth     int
	Turn      int
	World     *ecs.World
}

// New returns an empty session at depth 1 with a fresh run id.
func New() *Session {
	return &Session{
		RunID: uuid.New(),
		Depth: 1,
		World: ecs.NewWorld(),
	}
}

// Player is shorthand for s.World.Player().
func (s *Session) Player() *ecs.Entity {
	return s.World.Player()
}

// Log appends a message to the session log.
func (s *Session) Log(text string, color message.Color) {
	s.Messages.Add(text, color)
}

// InventoryFull reports whether every slot is taken.
func (s *Session) InventoryFull() bool {
	return len(s.Inventory) >= MaxInventory
}

// Equipped returns every equipped item in the inventory.
func (s *Session) Equipped() []*ecs.Entity {
	var out []*ecs.Entity
	for _, it := range s.Inventory {
		if it.Equipment != nil && it.Equipment.Equipped {
			out = append(out, it)
		}
	}
	return out
}
