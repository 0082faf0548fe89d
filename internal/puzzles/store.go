package puzzles

// Store persists generated puzzles in a sqlite database. It replaces the
// old read-only JSON loader: puzzles are written by the generator tooling
// and read back by the API.

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"sudoku-engine/internal/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS puzzles (
	id         TEXT PRIMARY KEY,
	dimension  INTEGER NOT NULL,
	difficulty TEXT NOT NULL,
	givens     TEXT NOT NULL,
	solution   TEXT NOT NULL,
	clues      INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_puzzles_difficulty ON puzzles(difficulty, created_at);
`

// Store wraps the puzzle database. Safe for concurrent readers; writes are
// serialized by sqlite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the puzzle database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open puzzle db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize puzzle db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Save inserts a puzzle, assigning an ID and creation time when absent.
func (s *Store) Save(p core.Puzzle) (core.Puzzle, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO puzzles (id, dimension, difficulty, givens, solution, clues, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Dimension, string(p.Difficulty), p.Givens, p.Solution, p.Clues, p.CreatedAt,
	)
	if err != nil {
		return core.Puzzle{}, fmt.Errorf("failed to save puzzle: %w", err)
	}
	return p, nil
}

// Get returns the puzzle with the given ID.
func (s *Store) Get(id string) (core.Puzzle, error) {
	row := s.db.QueryRow(
		`SELECT id, dimension, difficulty, givens, solution, clues, created_at
		 FROM puzzles WHERE id = ?`, id)
	return scanPuzzle(row)
}

// Recent returns up to limit puzzles, newest first, optionally filtered by
// difficulty (empty string matches all).
func (s *Store) Recent(difficulty core.Difficulty, limit int) ([]core.Puzzle, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows *sql.Rows
	var err error
	if difficulty == "" {
		rows, err = s.db.Query(
			`SELECT id, dimension, difficulty, givens, solution, clues, created_at
			 FROM puzzles ORDER BY created_at DESC LIMIT ?`, limit)
	} else {
		rows, err = s.db.Query(
			`SELECT id, dimension, difficulty, givens, solution, clues, created_at
			 FROM puzzles WHERE difficulty = ? ORDER BY created_at DESC LIMIT ?`,
			string(difficulty), limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzles: %w", err)
	}
	defer rows.Close()

	var out []core.Puzzle
	for rows.Next() {
		p, err := scanPuzzle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Count returns the number of stored puzzles.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM puzzles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count puzzles: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPuzzle(row scanner) (core.Puzzle, error) {
	var p core.Puzzle
	var diff string
	err := row.Scan(&p.ID, &p.Dimension, &diff, &p.Givens, &p.Solution, &p.Clues, &p.CreatedAt)
	if err != nil {
		return core.Puzzle{}, fmt.Errorf("failed to read puzzle: %w", err)
	}
	p.Difficulty = core.Difficulty(diff)
	return p, nil
}
