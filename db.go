package gbctc

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

// Cache stores conversion results keyed by the SHA-1 of the source file.
type Cache struct {
	db *sql.DB
}

// NewCache opens, or creates, the cache database at file.
func NewCache(file string) (*Cache, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	// Workers write concurrently so serialize access
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, reduce INTEGER NOT NULL, result BLOB NOT NULL, UNIQUE(sha1, reduce))"); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{
		db: db,
	}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Find returns the cached result for the given SHA-1, or nil if there
// isn't one.
func (c *Cache) Find(sha string, reduce bool) (*Result, error) {
	var b []byte
	switch err := c.db.QueryRow("SELECT result FROM conversion WHERE sha1 = ? AND reduce = ?", sha, reduce).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		r := new(Result)
		if err := r.UnmarshalBinary(b); err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, err
	}
}

// Add stores r for the given SHA-1, replacing any existing result.
func (c *Cache) Add(sha string, reduce bool, r *Result) error {
	b, err := r.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := c.db.Exec("INSERT OR REPLACE INTO conversion (sha1, reduce, result) VALUES (?, ?, ?)", sha, reduce, b); err != nil {
		return err
	}
	return nil
}
