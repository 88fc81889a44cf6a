// Package sqlite implements a Store for the contacts registry on an
// in-memory SQLite database. Nothing is written to disk; the database is
// dropped when the Store is closed.
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Store implements types.Store using SQLite as the query engine.
type Store struct {
	mu     sync.Mutex
	name   string
	db     *sql.DB
	closed bool
}

var _ types.Store = (*Store)(nil)

// Open creates a fresh in-memory database and its schema. Each Store gets a
// database name of its own so that two Stores in one process never share
// records.
func Open() (*Store, error) {
	name := "contacts-" + uuid.NewString()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A shared-cache memory database disappears with its last connection;
	// a single long-lived connection keeps it alive.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}

	return &Store{name: name, db: db}, nil
}

// Name returns the in-memory database name.
func (s *Store) Name() string { return s.name }

// Close drops the database. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
