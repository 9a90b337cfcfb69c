package component

// ItemKind tags what an item does when used.
type ItemKind uint8

// The zero ItemKind is invalid.
const (
	ItemHeal ItemKind = iota + 1
	ItemLightning
	ItemConfuse
	ItemFireball
	ItemSword
	ItemShield
)

var itemKindNames = [...]string{"", "heal", "lightning", "confuse", "fireball", "sword", "shield"}

func (k ItemKind) String() string {
	if k > 0 && int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return "unknown"
}

// ParseItemKind maps the lowercase name used in data files back to a kind.
func ParseItemKind(s string) (ItemKind, bool) {
	for i, n := range itemKindNames {
		if n != "" && n == s {
			return ItemKind(i), true
		}
	}
	return 0, false
}

type Item struct {
	Kind ItemKind
}
