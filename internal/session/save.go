package session

import (
	"bytes"
	"compress/zlib"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultSaveName is the fixed file name of the save slot.
const DefaultSaveName = "savegame"

// ErrNoSave is returned by Load when there is no save file.
var ErrNoSave = fmt.Errorf("no saved game: %w", fs.ErrNotExist)

// Encode writes s as zlib-compressed gob data.
func Encode(w io.Writer, s *Session) error {
	zw := zlib.NewWriter(w)
	if err := gob.NewEncoder(zw).Encode(s); err != nil {
		zw.Close()
		return fmt.Errorf("encode session: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compress session: %w", err)
	}
	return nil
}

// Decode reads a session written by Encode and checks that the roster is
// usable: a map, a world, and the player at index 0.
func Decode(r io.Reader) (*Session, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decompress session: %w", err)
	}
	defer zr.Close()
	s := &Session{}
	if err := gob.NewDecoder(zr).Decode(s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) check() error {
	switch {
	case s.Map == nil:
		return errors.New("session: save has no map")
	case s.World == nil || len(s.World.Entities) == 0:
		return errors.New("session: save has no entities")
	case s.World.Entities[0].ID != s.World.PlayerID:
		return errors.New("session: player is not the first entity")
	}
	return nil
}

// Save writes s to path. The data goes to a temporary file first and is
// renamed into place so a failed write never clobbers the previous save.
func Save(path string, s *Session) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

// Load reads the session stored at path. A missing file yields ErrNoSave.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// DataDir returns the directory where saves and run logs are stored.
// It is $XDG_DATA_HOME/tombs,
// defaulting to ~/.local/share/tombs.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tombs"), nil
}
