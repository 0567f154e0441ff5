package pixelanimator

import (
	"crypto/sha1"
	"database/sql"
	"fmt"

	"github.com/bodgit/pixelanimator/pixelmap"
	_ "github.com/mattn/go-sqlite3"
)

// DB caches previously converted pixelmaps so converting the same image
// with the same parameters again skips decoding and encoding.
type DB struct {
	db *sql.DB
}

// NewDB opens or creates the cache database in file.
func NewDB(file string) (*DB, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS pixelmap (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, data BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *DB) Close() error {
	return db.db.Close()
}

// cacheKey identifies a conversion by the raw input bytes and every
// parameter that changes the output
func cacheKey(input []byte, o *pixelmap.Options, colors int) string {
	h := sha1.New()
	h.Write(input)
	h.Write([]byte{o.Delay, o.Repeat, byte(colors >> 8), byte(colors)})
	return fmt.Sprintf("%X", h.Sum(nil))
}

// Find returns the cached pixelmap for key, or nil if there isn't one.
func (db *DB) Find(key string) ([]byte, error) {
	var data []byte
	switch err := db.db.QueryRow("SELECT data FROM pixelmap WHERE sha1 = ?", key).Scan(&data); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return data, nil
	default:
		return nil, err
	}
}

// Add stores the pixelmap b under key, replacing any existing entry.
func (db *DB) Add(key string, width int, b []byte) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO pixelmap (sha1, width, data) VALUES (?, ?, ?)", key, width, b); err != nil {
		return err
	}
	return nil
}

// Length returns the number of cached pixelmaps.
func (db *DB) Length() (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM pixelmap").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
