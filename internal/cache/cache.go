// Package cache memoizes conversion results. Conversion is a pure function of
// the input bytes and options, so a result can be reused for identical input.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

type Cache struct {
	db     *sql.DB
	driver string
}

// Open connects to the database and creates the results table when missing.
// driver is "sqlite3" or "postgres".
func Open(ctx context.Context, driver, dsn string) (*Cache, error) {
	switch driver {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("unsupported cache driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s cache: %w", driver, err)
	}
	if driver == "sqlite3" {
		db.SetMaxOpenConns(1)
	}
	c := &Cache{db: db, driver: driver}
	if err := c.initSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) initSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
	key TEXT PRIMARY KEY,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	document TEXT NOT NULL
	)`,
	}
	for _, q := range stmts {
		if _, err := c.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("creating cache schema: %w", err)
		}
	}
	return nil
}

// Key derives the cache key of an input under the given options fingerprint.
func Key(data []byte, fingerprint string) string {
	h := sha256.New()
	h.Write([]byte(fingerprint))
	h.Write([]byte{0})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the stored document for key. The boolean is false on a miss.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	var doc string
	err := c.db.QueryRowContext(ctx, c.rebind(`SELECT document FROM conversions WHERE key = ?`), key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading cache: %w", err)
	}
	return doc, true, nil
}

// Put stores doc under key. An existing entry is kept since it holds the same
// document.
func (c *Cache) Put(ctx context.Context, key, doc string) error {
	q := `INSERT INTO conversions(key, document) VALUES(?, ?) ON CONFLICT (key) DO NOTHING`
	if _, err := c.db.ExecContext(ctx, c.rebind(q), key, doc); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// rebind rewrites ? placeholders into $n for postgres.
func (c *Cache) rebind(q string) string {
	if c.driver != "postgres" {
		return q
	}
	var (
		b strings.Builder
		n int
	)
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
