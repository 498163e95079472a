// internal/souls/sqlite.go
//
// SQLite implementation of Store, used for the Hall of Souls
// leaderboard served by the viewer.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout,
//     foreign keys).
//   - Applying embedded migrations (idempotent, recorded in
//     _migrations).
//   - Record/Top/Purge/Dump over the souls table.

package souls

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// migrations are applied in order and recorded by name, so adding a
// new entry to the tail is safe on existing databases.
var migrations = []struct {
	name string
	sql  string
}{
	{"0001_souls", `
		CREATE TABLE IF NOT EXISTS souls (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			escaped_at TEXT NOT NULL,
			health     INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_souls_rank
			ON souls(health DESC, escaped_at ASC);
	`},
}

// Open opens (and creates if missing) the SQLite database file.
//
//   - Ensures the parent directory exists for relative DSNs
//     (e.g. ./data/souls.db).
//   - Configures busy timeout and WAL journaling mode.
//   - Enforces foreign keys.
func Open(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies the embedded migrations that have not run yet.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}
	for _, m := range migrations {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, m.name).Scan(&done)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.name, err)
		}
		log.Info().Str("migration", m.name).Msg("applied")
	}
	return nil
}

// SQLiteStore persists souls in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens the database at dsn and brings the schema up
// to date.
func OpenSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Record inserts one escape row.
func (s *SQLiteStore) Record(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO souls (id, name, escaped_at, health) VALUES (?,?,?,?)`,
		e.ID, e.Name, e.EscapedAt.UTC().Format(time.RFC3339), e.Health,
	)
	if err != nil {
		return fmt.Errorf("insert soul: %w", err)
	}
	return nil
}

// Top fetches the leaderboard: most life force remaining first,
// earliest escape breaking ties. Default limit is 20.
func (s *SQLiteStore) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, escaped_at, health
		FROM souls
		ORDER BY health DESC, escaped_at ASC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &e.Name, &ts, &e.Health); err != nil {
			return nil, err
		}
		e.EscapedAt, _ = time.Parse(time.RFC3339, ts)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Purge deletes every soul and reports how many were released.
func (s *SQLiteStore) Purge(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM souls`)
	if err != nil {
		return 0, fmt.Errorf("purge souls: %w", err)
	}
	return res.RowsAffected()
}

// Dump formats the leaderboard for terminal display.
func (s *SQLiteStore) Dump(ctx context.Context) (string, error) {
	top, err := s.Top(ctx, 20)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, e := range top {
		fmt.Fprintf(&b, "%2d. %-24s %3d/100  %s\n",
			i+1, e.Name, e.Health, e.EscapedAt.Format("2006-01-02 15:04:05"))
	}
	return b.String(), nil
}
