package generate

import "math/rand"

// Transition is one step of a depth-indexed table: from Level onward the
// table yields Value until a later transition takes over.
type Transition struct {
	Level int `yaml:"level"`
	Value int `yaml:"value"`
}

// Table is a list of transitions sorted by ascending Level.
type Table []Transition

// At returns the value of the last transition whose Level is <= depth,
// or 0 when depth is below every transition.
func (t Table) At(depth int) int {
	for i := len(t) - 1; i >= 0; i-- {
		if depth >= t[i].Level {
			return t[i].Value
		}
	}
	return 0
}

// Weighted pairs an outcome with its selection weight.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// Choose picks one outcome with probability proportional to its weight.
// Entries with zero or negative weight are never chosen. ok is false when
// no entry has a positive weight.
func Choose[T any](rng *rand.Rand, choices []Weighted[T]) (v T, ok bool) {
	total := 0
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total == 0 {
		return v, false
	}
	n := rng.Intn(total)
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		if n < c.Weight {
			return c.Value, true
		}
		n -= c.Weight
	}
	// unreachable: n < total
	return v, false
}
