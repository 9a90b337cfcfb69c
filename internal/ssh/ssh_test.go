package ssh

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSession implements the parts of gossh.Session the adapter uses.
type fakeSession struct {
	gossh.Session
	env    []string
	in     *bytes.Buffer
	out    bytes.Buffer
	closed bool
}

func (s *fakeSession) Read(b []byte) (int, error)  { return s.in.Read(b) }
func (s *fakeSession) Write(b []byte) (int, error) { return s.out.Write(b) }
func (s *fakeSession) Close() error                { s.closed = true; return nil }
func (s *fakeSession) Environ() []string           { return s.env }
func (s *fakeSession) Pty() (gossh.Pty, <-chan gossh.Window, bool) {
	return gossh.Pty{}, nil, false
}

func TestTtyReadWriteClose(t *testing.T) {
	s := &fakeSession{in: bytes.NewBufferString("k")}
	tty := NewTty(s, gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}, nil)

	buf := make([]byte, 4)
	n, err := tty.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "k", string(buf[:n]))

	_, err = tty.Write([]byte("frame"))
	require.NoError(t, err)
	assert.Equal(t, "frame", s.out.String())

	require.NoError(t, tty.Close())
	assert.True(t, s.closed)
}

func TestTtyResize(t *testing.T) {
	winCh := make(chan gossh.Window)
	tty := NewTty(&fakeSession{}, gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}, winCh)

	ws, err := tty.WindowSize()
	require.NoError(t, err)
	assert.Equal(t, tcell.WindowSize{Width: 80, Height: 24}, ws)

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })
	winCh <- gossh.Window{Width: 120, Height: 40}

	select {
	case <-resized:
	case <-time.After(time.Second):
		t.Fatal("resize callback not called")
	}
	ws, _ = tty.WindowSize()
	assert.Equal(t, 120, ws.Width)
	assert.Equal(t, 40, ws.Height)
	close(winCh)
}

func TestTerm(t *testing.T) {
	cases := []struct {
		name string
		env  []string
		want string
	}{
		{"allowed", []string{"LANG=C", "TERM=tmux"}, "tmux"},
		{"unknown falls back", []string{"TERM=evil-term"}, DefaultTerm},
		{"path traversal", []string{"TERM=../../../etc/passwd"}, DefaultTerm},
		{"missing", nil, DefaultTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Term(&fakeSession{env: tc.env}))
		})
	}
}

func TestNewScreenRequiresPTY(t *testing.T) {
	_, err := NewScreen(&fakeSession{})
	assert.ErrorIs(t, err, ErrNoPTY)
}

func TestRestoreEnv(t *testing.T) {
	const key = "TOMBS_TEST_TERM"

	t.Setenv(key, "xterm")
	require.NoError(t, os.Setenv(key, "tmux"))
	restoreEnv(key, "xterm", true)
	assert.Equal(t, "xterm", os.Getenv(key))

	require.NoError(t, os.Setenv(key, "tmux"))
	restoreEnv(key, "", false)
	_, ok := os.LookupEnv(key)
	assert.False(t, ok, "a variable that was unset stays unset")
}

func TestSafeName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "alice", "alice"},
		{"keeps dash and underscore", "dark_knight-2", "dark_knight-2"},
		{"strips path characters", "../../etc", "etc"},
		{"strips control chars", "he\x00ll\x1bo", "hello"},
		{"strips non-ascii", "日本bob", "bob"},
		{"empty", "", "anonymous"},
		{"nothing usable", "../..", "anonymous"},
		{"truncated", "abcdefghijklmnopqrstuvwxyz0123456789", "abcdefghijklmnopqrstuvwxyz012345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SafeName(tc.input))
		})
	}
}
