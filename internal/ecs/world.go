package ecs

import "fmt"

// World is the ordered entity roster for the current level. The player is
// always Entities[0]; every other entry may be inserted or removed freely.
type World struct {
	NextID   EntityID
	PlayerID EntityID
	Entities []*Entity
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{NextID: 1}
}

func (w *World) mint() EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// CreateEntity mints a new entity and appends it to the roster.
func (w *World) CreateEntity() *Entity {
	e := w.Detached()
	w.Entities = append(w.Entities, e)
	return e
}

// Detached mints a new entity that is not part of the roster, such as an
// item created straight into the inventory.
func (w *World) Detached() *Entity {
	return &Entity{ID: w.mint()}
}

// CreatePlayer mints the player entity. The roster must be empty so the
// player lands at index 0.
func (w *World) CreatePlayer() *Entity {
	if len(w.Entities) != 0 {
		panic(fmt.Sprintf("ecs: player created into non-empty roster (%d entities)", len(w.Entities)))
	}
	e := w.CreateEntity()
	w.PlayerID = e.ID
	return e
}

// Add appends an existing entity to the roster.
func (w *World) Add(e *Entity) {
	if e.ID == NilEntity {
		e.ID = w.mint()
	}
	w.Entities = append(w.Entities, e)
}

// Len returns the roster size.
func (w *World) Len() int { return len(w.Entities) }

// Index returns the roster index of id, or -1.
func (w *World) Index(id EntityID) int {
	for i, e := range w.Entities {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the entity with the given id, or nil.
func (w *World) Get(id EntityID) *Entity {
	if i := w.Index(id); i >= 0 {
		return w.Entities[i]
	}
	return nil
}

// RemoveAt removes the entity at index i, preserving the order of the rest.
// Removing the player panics.
func (w *World) RemoveAt(i int) *Entity {
	e := w.Entities[i]
	if e.ID == w.PlayerID {
		panic("ecs: attempt to remove the player from the roster")
	}
	copy(w.Entities[i:], w.Entities[i+1:])
	w.Entities[len(w.Entities)-1] = nil
	w.Entities = w.Entities[:len(w.Entities)-1]
	return e
}

// DestroyEntity removes the entity with the given id if present.
func (w *World) DestroyEntity(id EntityID) *Entity {
	if i := w.Index(id); i >= 0 {
		return w.RemoveAt(i)
	}
	return nil
}

// Player returns the player entity, panicking if it is not at index 0.
func (w *World) Player() *Entity {
	if len(w.Entities) == 0 || w.Entities[0].ID != w.PlayerID {
		panic("ecs: player is not at roster index 0")
	}
	return w.Entities[0]
}

// IsPlayer reports whether e is the player.
func (w *World) IsPlayer(e *Entity) bool {
	return e != nil && e.ID == w.PlayerID
}

// Pair returns the two distinct entities at indices i and j for code that
// updates both in one step, such as an attacker and its target. Asking for
// the same index twice is a programming error and panics.
func (w *World) Pair(i, j int) (*Entity, *Entity) {
	if i == j {
		panic(fmt.Sprintf("ecs: Pair called with identical indices %d", i))
	}
	return w.Entities[i], w.Entities[j]
}

// KeepPlayerOnly discards every entity except the player.
func (w *World) KeepPlayerOnly() {
	p := w.Player()
	for i := 1; i < len(w.Entities); i++ {
		w.Entities[i] = nil
	}
	w.Entities = append(w.Entities[:0], p)
}

// Query returns, in roster order, every entity carrying all of caps.
func (w *World) Query(caps Capability) []*Entity {
	var result []*Entity
	for _, e := range w.Entities {
		if e.Has(caps) {
			result = append(result, e)
		}
	}
	return result
}

// BlockingAt returns the first blocking entity on (x, y), or nil.
func (w *World) BlockingAt(x, y int) *Entity {
	for _, e := range w.Entities {
		if e.Blocks && e.At(x, y) {
			return e
		}
	}
	return nil
}

// At returns every entity standing on (x, y) in roster order.
func (w *World) At(x, y int) []*Entity {
	var result []*Entity
	for _, e := range w.Entities {
		if e.At(x, y) {
			result = append(result, e)
		}
	}
	return result
}
