package component

// Slot is a body location an equipment item occupies.
type Slot uint8

const (
	SlotLeftHand Slot = iota
	SlotRightHand
	SlotHead
	SlotChest
	SlotLegs
	SlotFeet
	SlotHands
	SlotBack
	SlotLeftFinger
	SlotRightFinger
)

// NumSlots is the number of distinct equipment slots.
const NumSlots = 10

var slotNames = [NumSlots]string{
	"left hand", "right hand", "head", "chest", "legs",
	"feet", "hands", "back", "left finger", "right finger",
}

func (s Slot) String() string {
	if int(s) < len(slotNames) {
		return slotNames[s]
	}
	return "unknown slot"
}

// ParseSlot maps a display name back to its slot.
func ParseSlot(s string) (Slot, bool) {
	for i, n := range slotNames {
		if n == s {
			return Slot(i), true
		}
	}
	return 0, false
}

// Equipment makes an item wearable. At most one equipped item per slot is
// maintained by the inventory code, not by this struct.
type Equipment struct {
	Slot         Slot
	Equipped     bool
	MaxHPBonus   int
	PowerBonus   int
	DefenseBonus int
	MagicBonus   int
}
