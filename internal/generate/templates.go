package generate

// MonsterTemplate describes one monster kind that may spawn.
type MonsterTemplate struct {
	Key     string `yaml:"key"`
	Name    string `yaml:"name"`
	Glyph   string `yaml:"glyph"`
	Color   string `yaml:"color"`
	HP      int    `yaml:"hp"`
	Defense int    `yaml:"defense"`
	Power   int    `yaml:"power"`
	XP      int    `yaml:"xp"`
	Weight  Table  `yaml:"weight"`
}

// EquipTemplate holds the bonuses of a wearable item.
type EquipTemplate struct {
	Slot    string `yaml:"slot"`
	MaxHP   int    `yaml:"max_hp"`
	Power   int    `yaml:"power"`
	Defense int    `yaml:"defense"`
	Magic   int    `yaml:"magic"`
}

// ItemTemplate describes one item kind that may spawn.
type ItemTemplate struct {
	Key       string         `yaml:"key"`
	Name      string         `yaml:"name"`
	Glyph     string         `yaml:"glyph"`
	Color     string         `yaml:"color"`
	Kind      string         `yaml:"kind"`
	Weight    Table          `yaml:"weight"`
	Equipment *EquipTemplate `yaml:"equipment,omitempty"`
}

// SpawnTables is the full depth-scaled population data.
type SpawnTables struct {
	MaxMonsters Table             `yaml:"max_monsters"`
	MaxItems    Table             `yaml:"max_items"`
	Monsters    []MonsterTemplate `yaml:"monsters"`
	Items       []ItemTemplate    `yaml:"items"`
}

// MonsterChoices returns the monster weights in effect at depth.
func (s *SpawnTables) MonsterChoices(depth int) []Weighted[MonsterTemplate] {
	out := make([]Weighted[MonsterTemplate], 0, len(s.Monsters))
	for _, m := range s.Monsters {
		out = append(out, Weighted[MonsterTemplate]{Value: m, Weight: m.Weight.At(depth)})
	}
	return out
}

// ItemChoices returns the item weights in effect at depth.
func (s *SpawnTables) ItemChoices(depth int) []Weighted[ItemTemplate] {
	out := make([]Weighted[ItemTemplate], 0, len(s.Items))
	for _, it := range s.Items {
		out = append(out, Weighted[ItemTemplate]{Value: it, Weight: it.Weight.At(depth)})
	}
	return out
}
