// Package storage persists journal entries in a local SQLite file.
package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"faith-walk/internal/logger"
	"faith-walk/internal/models"
)

const (
	component  = "Store"
	entryTable = "entries"
)

//go:embed schema.sql
var schemaSQL string

// Store is the single point of contact with the journal database.
// It holds one connection, opened by Open and released by Close.
type Store struct {
	mu   sync.Mutex
	path string
	db   *sqlx.DB
	log  logger.Logger
}

// Open opens or creates the database at path and ensures the entry table exists.
func Open(path string, log logger.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if log == nil {
		log = logger.NewNop()
	}

	s := &Store{path: filepath.Clean(path), log: log}
	db, err := s.connect()
	if err != nil {
		return nil, err
	}
	s.db = db

	s.log.Info(component, "storage opened", map[string]interface{}{"path": s.path})
	return s, nil
}

func (s *Store) connect() (*sqlx.DB, error) {
	dsn := s.path + "?_pragma=busy_timeout(5000)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure entry table: %w", err)
	}
	return db, nil
}

// Path returns the cleaned database file path.
func (s *Store) Path() string {
	return s.path
}

// Connected reports whether the store currently holds an open connection.
func (s *Store) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db != nil
}

// Close releases the connection. Closing twice without Reconnect fails.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return fmt.Errorf("close: %w", ErrNotConnected)
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("close sqlite db: %w", err)
	}

	s.log.Info(component, "storage closed", nil)
	return nil
}

// Reconnect reopens a closed store at its original path.
func (s *Store) Reconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return fmt.Errorf("reconnect: %w", ErrAlreadyConnected)
	}
	db, err := s.connect()
	if err != nil {
		return err
	}
	s.db = db

	s.log.Info(component, "storage reconnected", map[string]interface{}{"path": s.path})
	return nil
}

func (s *Store) conn(op string) (*sqlx.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotConnected)
	}
	return s.db, nil
}

func columns() []string {
	fields := models.Fields()
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Column()
	}
	return cols
}

func values(entry models.Entry) []interface{} {
	vals := entry.Values()
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}

// Insert writes every field except the id and returns the id storage assigned.
func (s *Store) Insert(ctx context.Context, entry models.Entry) (int64, error) {
	db, err := s.conn("insert entry")
	if err != nil {
		return models.UnsetID, err
	}

	query, args, err := sq.Insert(entryTable).
		Columns(columns()...).
		Values(values(entry)...).
		ToSql()
	if err != nil {
		return models.UnsetID, fmt.Errorf("build insert: %w", err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.UnsetID, fmt.Errorf("insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.UnsetID, fmt.Errorf("insert entry id: %w", err)
	}

	s.log.Debug(component, "entry inserted", map[string]interface{}{"id": id})
	return id, nil
}

// Update overwrites every field of a persisted entry by id.
func (s *Store) Update(ctx context.Context, entry models.Entry) error {
	if !entry.IsPersisted() {
		return fmt.Errorf("update entry: %w", ErrInvalidID)
	}
	db, err := s.conn("update entry")
	if err != nil {
		return err
	}

	set := make(map[string]interface{}, len(models.Fields()))
	for _, f := range models.Fields() {
		set[f.Column()] = entry.Get(f)
	}
	query, args, err := sq.Update(entryTable).
		SetMap(set).
		Where(sq.Eq{"id": entry.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update entry %d: %w", entry.ID, err)
	}
	if err := expectOneRow(res, entry.ID); err != nil {
		return fmt.Errorf("update entry: %w", err)
	}

	s.log.Debug(component, "entry updated", map[string]interface{}{"id": entry.ID})
	return nil
}

// Delete removes the entry with the given id. A missing row reports ErrNotFound.
func (s *Store) Delete(ctx context.Context, id int64) error {
	db, err := s.conn("delete entry")
	if err != nil {
		return err
	}

	query, args, err := sq.Delete(entryTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete entry %d: %w", id, err)
	}
	if err := expectOneRow(res, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.Debug(component, "entry deleted", map[string]interface{}{"id": id})
	return nil
}

// Get returns a single entry by id.
func (s *Store) Get(ctx context.Context, id int64) (models.Entry, error) {
	db, err := s.conn("get entry")
	if err != nil {
		return models.Entry{}, err
	}

	query, args, err := sq.Select(append([]string{"id"}, columns()...)...).
		From(entryTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Entry{}, fmt.Errorf("build get: %w", err)
	}

	var entry models.Entry
	if err := db.GetContext(ctx, &entry, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, fmt.Errorf("get entry %d: %w", id, ErrNotFound)
		}
		return models.Entry{}, fmt.Errorf("get entry %d: %w", id, err)
	}
	return entry, nil
}

// List returns every stored entry in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Entry, error) {
	db, err := s.conn("list entries")
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Select(append([]string{"id"}, columns()...)...).
		From(entryTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	entries := []models.Entry{}
	if err := db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Clear removes every entry. Ids already handed out are not reused.
func (s *Store) Clear(ctx context.Context) error {
	db, err := s.conn("clear entries")
	if err != nil {
		return err
	}

	query, args, err := sq.Delete(entryTable).ToSql()
	if err != nil {
		return fmt.Errorf("build clear: %w", err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}

	s.log.Info(component, "entries cleared", nil)
	return nil
}

func expectOneRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return nil
}
