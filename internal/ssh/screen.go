package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned for sessions opened without a terminal.
var ErrNoPTY = errors.New("ssh: session has no PTY")

// DefaultTerm is used when the client does not send an allowed TERM.
const DefaultTerm = "xterm-256color"

// allowedTerms lists the terminal types clients may select. TERM feeds a
// terminfo lookup, so arbitrary values are refused.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// termMu serializes os.Setenv("TERM") around screen creation, since tcell
// reads the terminal type from the process environment.
var termMu sync.Mutex

// Term returns the session's TERM if allowed, or DefaultTerm.
func Term(s gossh.Session) string {
	for _, env := range s.Environ() {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[term] {
			return term
		}
	}
	return DefaultTerm
}

// NewScreen creates and initializes a tcell screen drawing to s.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	tty := NewTty(s, pty, winCh)

	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", Term(s))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	restoreEnv("TERM", prev, had)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}

// restoreEnv puts key back to its previous value, unsetting it if it had none.
func restoreEnv(key, prev string, had bool) {
	if had {
		_ = os.Setenv(key, prev)
	} else {
		_ = os.Unsetenv(key)
	}
}

// maxNameLen bounds user names used as save directory names.
const maxNameLen = 32

// SafeName turns an SSH user name into a string usable as a directory
// name: letters, digits, '-' and '_' are kept, everything else dropped.
// An empty result becomes "anonymous".
func SafeName(user string) string {
	var b strings.Builder
	for _, r := range user {
		if b.Len() >= maxNameLen {
			break
		}
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "anonymous"
	}
	return b.String()
}
