package assets

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"tombs/internal/component"
	"tombs/internal/generate"
)

//go:embed spawns.yaml
var spawnsYAML []byte

// LoadSpawnTables parses the embedded monster and item tables.
func LoadSpawnTables() (*generate.SpawnTables, error) {
	return ParseSpawnTables(spawnsYAML)
}

// ParseSpawnTables decodes spawn tables from YAML and checks that every
// item kind and equipment slot is known.
func ParseSpawnTables(data []byte) (*generate.SpawnTables, error) {
	var t generate.SpawnTables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse spawn tables: %w", err)
	}
	for _, m := range t.Monsters {
		if len([]rune(m.Glyph)) != 1 {
			return nil, fmt.Errorf("monster %q: glyph must be a single character", m.Key)
		}
	}
	for _, it := range t.Items {
		if len([]rune(it.Glyph)) != 1 {
			return nil, fmt.Errorf("item %q: glyph must be a single character", it.Key)
		}
		if _, ok := component.ParseItemKind(it.Kind); !ok {
			return nil, fmt.Errorf("item %q: unknown kind %q", it.Key, it.Kind)
		}
		if it.Equipment != nil {
			if _, ok := component.ParseSlot(it.Equipment.Slot); !ok {
				return nil, fmt.Errorf("item %q: unknown slot %q", it.Key, it.Equipment.Slot)
			}
		}
	}
	return &t, nil
}

// MustSpawnTables is LoadSpawnTables for callers that treat bad embedded
// data as a build defect.
func MustSpawnTables() *generate.SpawnTables {
	t, err := LoadSpawnTables()
	if err != nil {
		panic(err)
	}
	return t
}
