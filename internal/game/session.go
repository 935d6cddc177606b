package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"mengya/internal/level"
)

// SessionFile is the session log in the data directory.
const SessionFile = "sessions.jsonl"

// Session records one play-through.
type Session struct {
	Player    string    `json:"player"`
	Started   time.Time `json:"started"`
	Ended     time.Time `json:"ended"`
	Levels    []string  `json:"levels"`    // levels entered, first visit order
	Collected []string  `json:"collected"` // items put in the backpack, in order
	Finished  bool      `json:"finished"`  // left through the dormitory gate
}

func (s *Session) visit(id level.ID) {
	name := id.String()
	if !slices.Contains(s.Levels, name) {
		s.Levels = append(s.Levels, name)
	}
}

func (s *Session) collect(item string) {
	s.Collected = append(s.Collected, item)
}

// saveSession appends s as a single JSON line to the session log in dir.
func saveSession(dir string, s Session) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, SessionFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
