package system

import (
	"fmt"

	"tombs/internal/component"
	"tombs/internal/ecs"
	"tombs/internal/message"
	"tombs/internal/session"
)

// UseResult is the outcome of using an inventory item.
type UseResult int

const (
	UsedUp      UseResult = iota // effect applied, item consumed
	UsedAndKept                  // effect applied, item stays
	Cancelled                    // nothing changed
)

func (r UseResult) String() string {
	switch r {
	case UsedUp:
		return "used up"
	case UsedAndKept:
		return "used and kept"
	default:
		return "cancelled"
	}
}

// ItemAt returns the roster index of the first item lying on (x, y), or -1.
func ItemAt(s *session.Session, x, y int) int {
	for i, e := range s.World.Entities {
		if e.Item != nil && e.At(x, y) {
			return i
		}
	}
	return -1
}

// PickUp moves the item at roster index idx into the inventory. Gear whose
// slot is free is equipped on the spot. A full inventory rejects the item
// and leaves everything unchanged. It reports whether the item was taken.
func PickUp(s *session.Session, idx int) bool {
	item := s.World.Entities[idx]
	if s.InventoryFull() {
		s.Log(fmt.Sprintf("Your inventory is full! cannot pick up %s!", item.Name), message.Red)
		return false
	}
	s.World.RemoveAt(idx)
	s.Inventory = append(s.Inventory, item)
	s.Log(fmt.Sprintf("You picked up %s!", item.Name), message.Green)

	if eq := item.Equipment; eq != nil && EquippedInSlot(s, eq.Slot) < 0 {
		Equip(s, item)
	}
	return true
}

// Drop takes inventory item i out, unequipping it first, and puts it back
// on the map under the player.
func Drop(s *session.Session, i int) {
	item := s.Inventory[i]
	s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
	if item.Equipment != nil && item.Equipment.Equipped {
		Unequip(s, item)
	}
	p := s.Player()
	item.Pos = p.Pos
	s.World.Add(item)
	s.Log(fmt.Sprintf("You dropped a %s.", item.Name), message.Yellow)
}

// Use applies inventory item i. Consumed items leave the inventory; a
// cancelled use changes nothing and logs "Cancelled".
func Use(s *session.Session, i int, v Viewer, t Targeter) UseResult {
	if i < 0 || i >= len(s.Inventory) {
		return Cancelled
	}
	item := s.Inventory[i]
	if item.Item == nil {
		s.Log(fmt.Sprintf("The %s cannot be used!", item.Name), message.White)
		return Cancelled
	}

	var res UseResult
	switch item.Item.Kind {
	case component.ItemHeal:
		res = CastHeal(s)
	case component.ItemLightning:
		res = CastLightning(s, v)
	case component.ItemConfuse:
		res = CastConfuse(s, v, t)
	case component.ItemFireball:
		res = CastFireball(s, v, t)
	default:
		res = ToggleEquipment(s, i)
	}

	switch res {
	case UsedUp:
		s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
	case Cancelled:
		s.Log("Cancelled", message.White)
	}
	return res
}

// EquippedInSlot returns the inventory index of the item equipped in slot,
// or -1.
func EquippedInSlot(s *session.Session, slot component.Slot) int {
	for i, it := range s.Inventory {
		if eq := it.Equipment; eq != nil && eq.Equipped && eq.Slot == slot {
			return i
		}
	}
	return -1
}

// ToggleEquipment equips inventory item i, displacing whatever occupies its
// slot, or unequips it if it is already worn. Gear is never used up.
func ToggleEquipment(s *session.Session, i int) UseResult {
	item := s.Inventory[i]
	eq := item.Equipment
	if eq == nil {
		return Cancelled
	}
	if eq.Equipped {
		Unequip(s, item)
		return UsedAndKept
	}
	if old := EquippedInSlot(s, eq.Slot); old >= 0 {
		Unequip(s, s.Inventory[old])
	}
	Equip(s, item)
	return UsedAndKept
}

// Equip marks item as worn.
func Equip(s *session.Session, item *ecs.Entity) {
	eq := item.Equipment
	if eq == nil || eq.Equipped {
		return
	}
	eq.Equipped = true
	s.Log(fmt.Sprintf("Equipped %s on %s.", item.Name, eq.Slot), message.LightGreen)
}

// Unequip marks item as no longer worn.
func Unequip(s *session.Session, item *ecs.Entity) {
	eq := item.Equipment
	if eq == nil || !eq.Equipped {
		return
	}
	eq.Equipped = false
	s.Log(fmt.Sprintf("Unequipped %s on %s.", item.Name, eq.Slot), message.LightYellow)
}
