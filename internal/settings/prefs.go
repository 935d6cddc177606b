package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// PrefsFile is the preference database name inside the data directory.
const PrefsFile = "prefs.db"

// Prefs is a small key/value store of player preferences backed by SQLite.
type Prefs struct {
	db *sql.DB
}

// OpenPrefs opens (creating if needed) the preference database at path.
func OpenPrefs(path string) (*Prefs, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create prefs directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open prefs: %w", err)
	}
	// :memory: databases are per connection.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping prefs: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS prefs (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create prefs schema: %w", err)
	}
	return &Prefs{db: db}, nil
}

func (p *Prefs) Close() error { return p.db.Close() }

// Float returns the value stored under key, or def when the key is absent.
func (p *Prefs) Float(ctx context.Context, key string, def float64) (float64, error) {
	var raw string
	err := p.db.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("read %s: %w", key, err)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def, fmt.Errorf("parse %s=%q: %w", key, raw, err)
	}
	return v, nil
}

// SetFloat stores v under key.
func (p *Prefs) SetFloat(ctx context.Context, key string, v float64) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, strconv.FormatFloat(v, 'f', -1, 64))
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
