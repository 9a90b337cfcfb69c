// Package message holds the in-game message log.
package message

import "github.com/gdamore/tcell/v2"

// Color is a terminal color.
type Color = tcell.Color

// Colors used for log lines and corpse glyphs.
var (
	White       = tcell.ColorWhite
	Red         = tcell.NewRGBColor(255, 0, 0)
	DarkRed     = tcell.NewRGBColor(127, 0, 0)
	Orange      = tcell.NewRGBColor(255, 127, 0)
	Yellow      = tcell.NewRGBColor(255, 255, 0)
	LightYellow = tcell.NewRGBColor(255, 255, 114)
	Green       = tcell.NewRGBColor(0, 255, 0)
	LightGreen  = tcell.NewRGBColor(114, 255, 114)
	LightBlue   = tcell.NewRGBColor(114, 114, 255)
	LightCyan   = tcell.NewRGBColor(114, 255, 255)
	Violet      = tcell.NewRGBColor(127, 0, 255)
	LightViolet = tcell.NewRGBColor(184, 114, 255)
)

// Entry is one line of the log.
type Entry struct {
	Text  string
	Color Color
}

// Log is an append-only list of messages, oldest first.
type Log struct {
	Entries []Entry
}

// Add appends a message.
func (l *Log) Add(text string, color Color) {
	l.Entries = append(l.Entries, Entry{Text: text, Color: color})
}

// Len returns the number of messages.
func (l *Log) Len() int { return len(l.Entries) }

// Last returns the most recent message, or the zero Entry if the log is empty.
func (l *Log) Last() Entry {
	if len(l.Entries) == 0 {
		return Entry{}
	}
	return l.Entries[len(l.Entries)-1]
}

// Recent calls fn for each message from newest to oldest until fn returns false.
func (l *Log) Recent(fn func(Entry) bool) {
	for i := len(l.Entries) - 1; i >= 0; i-- {
		if !fn(l.Entries[i]) {
			return
		}
	}
}
