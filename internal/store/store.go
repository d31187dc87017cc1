// Package store handles SQLite persistence of finished journeys.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/starletters/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotFound is returned when a journey id does not exist.
var ErrNotFound = errors.New("journey not found")

// Store wraps SQLite access for journey history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS journeys (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL,
			letters_read INTEGER NOT NULL,
			categories_completed INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			hugs INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_journeys_finished_at ON journeys(finished_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertJourney stores a finished journey and returns its id.
func (s *Store) InsertJourney(ctx context.Context, j model.Journey) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO journeys (started_at, finished_at, letters_read, categories_completed, skipped, hugs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		j.StartedAt.Format(time.RFC3339Nano),
		j.FinishedAt.Format(time.RFC3339Nano),
		j.LettersRead,
		j.CategoriesCompleted,
		boolToInt(j.Skipped),
		j.Hugs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// IncrementHugs adds one hug to a stored journey.
func (s *Store) IncrementHugs(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `UPDATE journeys SET hugs = hugs + 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

// ListJourneys returns journeys ordered oldest first, filtered by cfg.
func (s *Store) ListJourneys(ctx context.Context, cfg model.HistoryConfig) ([]model.Journey, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "finished_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, started_at, finished_at, letters_read, categories_completed, skipped, hugs
		FROM journeys
		WHERE %s
		ORDER BY finished_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var journeys []model.Journey
	for rows.Next() {
		var j model.Journey
		var startedAt, finishedAt string
		var skipped int
		if err := rows.Scan(&j.ID, &startedAt, &finishedAt, &j.LettersRead, &j.CategoriesCompleted, &skipped, &j.Hugs); err != nil {
			return nil, err
		}
		if j.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if j.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt); err != nil {
			return nil, err
		}
		j.Skipped = skipped != 0
		journeys = append(journeys, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(journeys) > cfg.Last {
		journeys = journeys[len(journeys)-cfg.Last:]
	}
	return journeys, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
