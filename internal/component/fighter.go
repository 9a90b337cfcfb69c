package component

// DeathKind selects what happens when a fighter's hp drops to zero.
type DeathKind uint8

const (
	DeathPlayer DeathKind = iota
	DeathMonster
)

// Fighter is the combat capability. The Base* fields exclude equipment
// bonuses; use the system package to read effective values.
type Fighter struct {
	BaseMaxHP   int
	HP          int
	BaseDefense int
	BasePower   int
	BaseMagic   int
	XP          int
	OnDeath     DeathKind
}
