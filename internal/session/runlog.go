package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunRecord summarises a finished run.
type RunRecord struct {
	RunID   uuid.UUID `json:"run_id"`
	Depth   int       `json:"depth"`
	Level   int       `json:"level"`
	XP      int       `json:"xp"`
	Turns   int       `json:"turns"`
	Died    bool      `json:"died"`
	EndedAt time.Time `json:"ended_at"`
}

// Record builds the run summary for s.
func (s *Session) Record(died bool, now time.Time) RunRecord {
	rec := RunRecord{RunID: s.RunID, Depth: s.Depth, Turns: s.Turn, Died: died, EndedAt: now}
	if len(s.World.Entities) > 0 {
		p := s.World.Entities[0]
		rec.Level = p.Level
		if p.Fighter != nil {
			rec.XP = p.Fighter.XP
		}
	}
	return rec
}

// AppendRunLog appends rec as a single JSON line to runs.jsonl in dir.
func AppendRunLog(dir string, rec RunRecord) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode run record: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}
