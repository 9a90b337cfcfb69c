package ecs

import "tombs/internal/component"

// EntityID uniquely identifies an entity for the lifetime of a run.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// Capability is a bit set naming optional components.
type Capability uint8

const (
	CapFighter Capability = 1 << iota
	CapAI
	CapItem
	CapEquipment
)

// Entity is any object on the map or in the inventory. Capabilities are
// optional pointer fields; nil means the entity lacks that facet.
type Entity struct {
	ID            EntityID
	Pos           component.Position
	Render        component.Renderable
	Name          string
	Blocks        bool
	Alive         bool
	Level         int
	AlwaysVisible bool
	Stairs        bool // descends to the next level

	Fighter   *component.Fighter
	AI        *component.AI
	Item      *component.Item
	Equipment *component.Equipment
}

// Caps returns the set of capabilities the entity currently carries.
func (e *Entity) Caps() Capability {
	var c Capability
	if e.Fighter != nil {
		c |= CapFighter
	}
	if e.AI != nil {
		c |= CapAI
	}
	if e.Item != nil {
		c |= CapItem
	}
	if e.Equipment != nil {
		c |= CapEquipment
	}
	return c
}

// Has reports whether e carries every capability in c.
func (e *Entity) Has(c Capability) bool {
	return e.Caps()&c == c
}

// At reports whether e stands on (x, y).
func (e *Entity) At(x, y int) bool {
	return e.Pos.X == x && e.Pos.Y == y
}
