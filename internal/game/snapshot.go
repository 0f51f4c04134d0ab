package game

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/auto2048/internal/board"
)

// Snapshot captures a position together with the session counters
// around it. Snapshots are written as YAML so they can be inspected and
// edited by hand before feeding them back to the analyzer.
type Snapshot struct {
	Seed   int64   `yaml:"seed"`
	Moves  int     `yaml:"moves"`
	Target int     `yaml:"target"`
	Won    bool    `yaml:"won"`
	Board  [][]int `yaml:"board"`
}

// Snapshot returns the current session state as a snapshot.
func (g *Game) Snapshot() Snapshot {
	rows := make([][]int, board.Size)
	for y := range board.Size {
		rows[y] = make([]int, board.Size)
		copy(rows[y], g.board[y][:])
	}
	return Snapshot{
		Seed:   g.opts.Seed,
		Moves:  g.moves,
		Target: g.opts.Target,
		Won:    g.won,
		Board:  rows,
	}
}

// ToBoard converts the snapshot grid back into a board, rejecting
// malformed dimensions and tile values.
func (s Snapshot) ToBoard() (board.Board, error) {
	var b board.Board
	if len(s.Board) != board.Size {
		return b, fmt.Errorf("snapshot board has %d rows, want %d", len(s.Board), board.Size)
	}
	for y, row := range s.Board {
		if len(row) != board.Size {
			return b, fmt.Errorf("snapshot row %d has %d cells, want %d", y, len(row), board.Size)
		}
		copy(b[y][:], row)
	}
	if !board.Valid(b) {
		return b, fmt.Errorf("snapshot board holds values that are not empty or powers of two")
	}
	return b, nil
}

// SaveSnapshot writes the snapshot as YAML, creating parent directories
// as needed.
func SaveSnapshot(path string, s Snapshot) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a YAML snapshot from disk. The board inside is
// validated lazily by ToBoard so callers get position errors with
// context.
func LoadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return s, nil
}
