// Package journal persists one record per update run in a local SQLite
// database so past runs can be reviewed later.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one recorded update run
type Entry struct {
	ID         string
	StartedAt  time.Time
	RepoPath   string
	Remote     string
	Branch     string
	Message    string
	Staged     bool
	Committed  bool
	Pushed     bool
	DurationMS int64
	Output     string
}

// Journal stores update runs in a SQLite database
type Journal struct {
	db *sql.DB
}

// Open opens the journal database at path, creating the file and its parent
// directory when they do not exist yet
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	journal := &Journal{db: db}
	if err := journal.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	return journal, nil
}

// initialize creates the schema when it does not exist yet. Timestamps are
// stored as Unix milliseconds so ordering never depends on string formats.
func (j *Journal) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		started_at  INTEGER NOT NULL,
		repo_path   TEXT NOT NULL,
		remote      TEXT NOT NULL,
		branch      TEXT NOT NULL,
		message     TEXT NOT NULL,
		staged      INTEGER NOT NULL DEFAULT 0,
		committed   INTEGER NOT NULL DEFAULT 0,
		pushed      INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		output      TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
	`

	if _, err := j.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize journal schema: %w", err)
	}

	return nil
}

// Record inserts one run into the journal, assigning it a fresh identifier
// when the entry does not carry one yet
func (j *Journal) Record(entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	_, err := j.db.Exec(
		`INSERT INTO runs (id, started_at, repo_path, remote, branch, message,
			staged, committed, pushed, duration_ms, output)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.StartedAt.UnixMilli(), entry.RepoPath, entry.Remote,
		entry.Branch, entry.Message, entry.Staged, entry.Committed,
		entry.Pushed, entry.DurationMS, entry.Output,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	return nil
}

// Recent returns up to limit runs, newest first
func (j *Journal) Recent(limit int) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT id, started_at, repo_path, remote, branch, message,
			staged, committed, pushed, duration_ms, output
		 FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var startedAt int64
		if err := rows.Scan(&entry.ID, &startedAt, &entry.RepoPath, &entry.Remote,
			&entry.Branch, &entry.Message, &entry.Staged, &entry.Committed,
			&entry.Pushed, &entry.DurationMS, &entry.Output); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		entry.StartedAt = time.UnixMilli(startedAt)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Close closes the underlying database
func (j *Journal) Close() error {
	return j.db.Close()
}
