package component

// AIKind identifies an AI variant.
type AIKind uint8

const (
	AIBasic    AIKind = iota + 1 // chase and attack when seen by the player
	AIConfused                   // stumble randomly, then restore Previous
)

// AI is a recursive decision state. A Confused AI owns the AI it replaced
// and hands control back to it once NumTurns drops below zero.
type AI struct {
	Kind     AIKind
	Previous *AI
	NumTurns int
}

// Basic returns a fresh Basic AI.
func Basic() *AI {
	return &AI{Kind: AIBasic}
}

// Confuse wraps prev in a Confused AI lasting turns evaluations.
// A nil prev is treated as Basic.
func Confuse(prev *AI, turns int) *AI {
	if prev == nil {
		prev = Basic()
	}
	return &AI{Kind: AIConfused, Previous: prev, NumTurns: turns}
}

// Depth reports how many AI layers are stacked, counting this one.
func (a *AI) Depth() int {
	n := 0
	for cur := a; cur != nil; cur = cur.Previous {
		n++
	}
	return n
}
