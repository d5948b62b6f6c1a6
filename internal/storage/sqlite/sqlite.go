package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/storage"
	_ "github.com/tursodatabase/go-libsql"
)

// Backend implements storage.Backend using SQLite via Turso/libSQL.
type Backend struct {
	db *sql.DB
}

// New creates a new SQLite storage backend.
func New(dataDir string) (*Backend, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, "devoto.db")
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// Enable WAL mode
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Backend{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			id          TEXT PRIMARY KEY,
			tracker     TEXT NOT NULL,
			day         TEXT NOT NULL,
			category    TEXT NOT NULL DEFAULT '',
			items       TEXT NOT NULL DEFAULT '[]',
			note        TEXT NOT NULL DEFAULT '',
			verse       TEXT NOT NULL DEFAULT '',
			favorite    INTEGER NOT NULL DEFAULT 0,
			created_at  TEXT NOT NULL,
			modified_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entries_tracker_day ON entries(tracker, day);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (b *Backend) Close() error {
	return b.db.Close()
}

// Persist writes an entry, inserting or replacing by ID.
func (b *Backend) Persist(e entry.Entry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}

	items, err := json.Marshal(e.Items)
	if err != nil {
		return fmt.Errorf("%w: encoding items: %v", storage.ErrStorage, err)
	}

	favorite := 0
	if e.Favorite {
		favorite = 1
	}

	_, err = b.db.Exec(
		`INSERT OR REPLACE INTO entries
			(id, tracker, day, category, items, note, verse, favorite, created_at, modified_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		string(e.Tracker),
		entry.DayKey(e.Date),
		string(e.Category),
		string(items),
		e.Note,
		e.Verse,
		favorite,
		e.CreatedAt.UTC().Format(time.RFC3339),
		e.ModifiedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("%w: writing entry: %v", storage.ErrStorage, err)
	}
	return nil
}

// LoadAll returns every persisted entry for the tracker, date ascending.
func (b *Backend) LoadAll(tracker entry.Tracker) ([]entry.Entry, error) {
	rows, err := b.db.Query(
		`SELECT id, tracker, day, category, items, note, verse, favorite, created_at, modified_at
		 FROM entries WHERE tracker = ? ORDER BY day ASC, created_at ASC`,
		string(tracker),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: loading entries: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	entries := []entry.Entry{}
	for rows.Next() {
		var e entry.Entry
		var trackerStr, dayStr, categoryStr, itemsStr, createdStr, modifiedStr string
		var favorite int
		if err := rows.Scan(&e.ID, &trackerStr, &dayStr, &categoryStr, &itemsStr,
			&e.Note, &e.Verse, &favorite, &createdStr, &modifiedStr); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", storage.ErrStorage, err)
		}

		e.Tracker = entry.Tracker(trackerStr)
		e.Category = entry.Category(categoryStr)
		e.Favorite = favorite != 0

		day, err := time.ParseInLocation("2006-01-02", dayStr, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing day: %v", storage.ErrStorage, err)
		}
		e.Date = day

		if err := json.Unmarshal([]byte(itemsStr), &e.Items); err != nil {
			return nil, fmt.Errorf("%w: decoding items: %v", storage.ErrStorage, err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("%w: parsing created_at: %v", storage.ErrStorage, err)
		}
		if e.ModifiedAt, err = time.Parse(time.RFC3339, modifiedStr); err != nil {
			return nil, fmt.Errorf("%w: parsing modified_at: %v", storage.ErrStorage, err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Remove deletes an entry permanently.
func (b *Backend) Remove(id string) error {
	result, err := b.db.Exec("DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%w: deleting entry: %v", storage.ErrStorage, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking delete result: %v", storage.ErrStorage, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
