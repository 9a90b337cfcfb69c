package system

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tombs/internal/component"
	"tombs/internal/session"
)

func TestItemAt(t *testing.T) {
	s := newSession()
	addMonster(s, "orc", 6, 5, 10, 0, 3, 35)
	addItem(s, "potion", component.ItemHeal, 6, 5)
	assert.Equal(t, 2, ItemAt(s, 6, 5))
	assert.Equal(t, -1, ItemAt(s, 7, 5))
}

func TestPickUpPreservesRosterOrder(t *testing.T) {
	s := newSession()
	a := addMonster(s, "orc", 9, 9, 10, 0, 3, 35)
	potion := addItem(s, "potion", component.ItemHeal, 5, 5)
	b := addMonster(s, "troll", 10, 9, 10, 0, 3, 35)

	require.True(t, PickUp(s, 2))
	assert.Same(t, a, s.World.Entities[1])
	assert.Same(t, b, s.World.Entities[2])
	assert.Equal(t, 3, s.World.Len())
	assert.Same(t, potion, s.Inventory[0])
	assert.Equal(t, "You picked up potion!", lastText(s))
}

func TestPickUpFullInventory(t *testing.T) {
	s := newSession()
	for i := 0; i < session.MaxInventory; i++ {
		inventoryItem(s, fmt.Sprintf("scroll %d", i), component.ItemLightning)
	}
	addItem(s, "potion", component.ItemHeal, 5, 5)

	assert.False(t, PickUp(s, 1))
	assert.Len(t, s.Inventory, session.MaxInventory)
	assert.Equal(t, 2, s.World.Len())
	assert.Equal(t, "Your inventory is full! cannot pick up potion!", lastText(s))
}

func TestPickUpAutoEquipsIntoEmptySlot(t *testing.T) {
	s := newSession()
	sword := addGear(s, "sword", component.SlotRightHand, 3, 0, 5, 5)
	require.True(t, PickUp(s, 1))
	assert.True(t, sword.Equipment.Equipped)
	assert.Equal(t, "Equipped sword on right hand.", lastText(s))

	other := addGear(s, "sword", component.SlotRightHand, 3, 0, 5, 5)
	require.True(t, PickUp(s, 1))
	assert.False(t, other.Equipment.Equipped, "occupied slot is left alone")
	assert.Equal(t, 5, Power(s, s.Player()))
}

func TestDrop(t *testing.T) {
	s := newSession()
	s.Player().Pos = component.Position{X: 8, Y: 3}
	dagger := inventoryItem(s, "dagger", component.ItemSword)
	dagger.Equipment = &component.Equipment{Slot: component.SlotLeftHand, Equipped: true, PowerBonus: 2}

	Drop(s, 0)

	assert.Empty(t, s.Inventory)
	assert.False(t, dagger.Equipment.Equipped)
	assert.Equal(t, component.Position{X: 8, Y: 3}, dagger.Pos)
	assert.Same(t, dagger, s.World.Entities[s.World.Len()-1])
	assert.Equal(t, "You dropped a dagger.", lastText(s))
	assert.Contains(t, texts(s), "Unequipped dagger on left hand.")
	assert.Equal(t, 2, Power(s, s.Player()))
}

func TestToggleEquipmentSwapsSlotOccupant(t *testing.T) {
	s := newSession()
	dagger := inventoryItem(s, "dagger", component.ItemSword)
	dagger.Equipment = &component.Equipment{Slot: component.SlotLeftHand, Equipped: true, PowerBonus: 2}
	shield := inventoryItem(s, "shield", component.ItemShield)
	shield.Equipment = &component.Equipment{Slot: component.SlotLeftHand, DefenseBonus: 1}

	assert.Equal(t, UsedAndKept, Use(s, 1, seeAll{}, &scriptedTargeter{}))
	assert.True(t, shield.Equipment.Equipped)
	assert.False(t, dagger.Equipment.Equipped)
	assert.Equal(t, 1, EquippedInSlot(s, component.SlotLeftHand))
	assert.Len(t, s.Inventory, 2)

	assert.Equal(t, UsedAndKept, Use(s, 1, seeAll{}, &scriptedTargeter{}))
	assert.False(t, shield.Equipment.Equipped)
	assert.Equal(t, -1, EquippedInSlot(s, component.SlotLeftHand))
	assert.Equal(t, "Unequipped shield on left hand.", lastText(s))
}

func TestUseHealingPotion(t *testing.T) {
	s := newSession()
	inventoryItem(s, "healing potion", component.ItemHeal)

	assert.Equal(t, Cancelled, Use(s, 0, seeAll{}, &scriptedTargeter{}))
	assert.Len(t, s.Inventory, 1)
	assert.Equal(t, []string{"You are already at full health!", "Cancelled"}, texts(s))

	s.Player().Fighter.HP = 30
	assert.Equal(t, UsedUp, Use(s, 0, seeAll{}, &scriptedTargeter{}))
	assert.Empty(t, s.Inventory)
	assert.Equal(t, 70, s.Player().Fighter.HP)
}

func TestUseUnusable(t *testing.T) {
	s := newSession()
	rock := s.World.Detached()
	rock.Name = "rock"
	s.Inventory = append(s.Inventory, rock)

	assert.Equal(t, Cancelled, Use(s, 0, seeAll{}, &scriptedTargeter{}))
	assert.Equal(t, "The rock cannot be used!", lastText(s))
	assert.Equal(t, Cancelled, Use(s, 5, seeAll{}, &scriptedTargeter{}))
}
