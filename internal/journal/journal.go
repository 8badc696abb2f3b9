// Package journal persists per-file transfer outcomes in a local sqlite
// database so failed or partially restored files can be inspected after
// a run.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Statuses recorded per file
const (
	StatusOK       = "ok"       // content and metadata both applied
	StatusMetadata = "metadata" // content written, restoration incomplete
	StatusFailed   = "failed"   // content transfer failed
)

// Record is the outcome of transferring one file
type Record struct {
	ID         int64
	Path       string // relative name within the transfer
	Bytes      int64
	Status     string
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Journal handles transfer history persistence
type Journal struct {
	db *sql.DB
}

// Open creates or opens the journal database under dataDir
func Open(dataDir string) (*Journal, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "lanbridge.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single connection avoids "database is locked" errors
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set database pragmas: %w", err)
	}

	j := &Journal{db: db}
	if err := j.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return j, nil
}

func (j *Journal) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS transfers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL,
		bytes INTEGER DEFAULT 0,
		status TEXT NOT NULL,
		error TEXT,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_transfers_path_time ON transfers(path, started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_transfers_status ON transfers(status);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Append records the outcome of one file transfer
func (j *Journal) Append(r Record) error {
	switch r.Status {
	case StatusOK, StatusMetadata, StatusFailed:
	default:
		return fmt.Errorf("invalid status: %s", r.Status)
	}

	query := `
		INSERT INTO transfers (path, bytes, status, error, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := j.db.Exec(query, r.Path, r.Bytes, r.Status, r.Error, r.StartedAt, r.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return nil
}

// Recent retrieves the most recent records, newest first
func (j *Journal) Recent(limit int) ([]Record, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	query := `
		SELECT id, path, bytes, status, error, started_at, finished_at
		FROM transfers
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`

	rows, err := j.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Path, &r.Bytes, &r.Status, &r.Error,
			&r.StartedAt, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}

// LastForPath retrieves the most recent record for a relative path, or
// nil if the path has never been transferred
func (j *Journal) LastForPath(path string) (*Record, error) {
	query := `
		SELECT id, path, bytes, status, error, started_at, finished_at
		FROM transfers
		WHERE path = ?
		ORDER BY started_at DESC, id DESC
		LIMIT 1
	`

	var r Record
	err := j.db.QueryRow(query, path).Scan(&r.ID, &r.Path, &r.Bytes, &r.Status,
		&r.Error, &r.StartedAt, &r.FinishedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query last record: %w", err)
	}

	return &r, nil
}

// Close releases the database
func (j *Journal) Close() error {
	return j.db.Close()
}
