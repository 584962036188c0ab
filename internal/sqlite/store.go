// Package sqlite implements a PartsStore on an in-memory SQLite database.
// The database lives only as long as the Store; nothing is written to disk.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

// Compile-time interface check: Store must implement PartsStore.
var _ types.PartsStore = (*Store)(nil)

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("store is closed")

// Store implements types.PartsStore with SQLite as the query engine.
type Store struct {
	mu    sync.RWMutex
	db    *sql.DB
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID v7 generator used by Add.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// Open creates a fresh in-memory database, applies the schema and loads seed
// in order. The caller must Close the store.
func Open(seed []types.PartRecord, opts ...Option) (*Store, error) {
	seed, err := types.PrepareSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("loading seed: %w", err)
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Each connection to :memory: is a separate database; pin to one.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}

	s := &Store{db: db, newID: types.NewID}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.loadSeed(seed); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanPart hydrates a row selected with partColumns.
func scanPart(row scanner) (types.PartRecord, error) {
	var p types.PartRecord
	var date sql.NullString
	if err := row.Scan(&p.ID, &p.Department, &p.ItemCode, &p.PartName, &p.Description,
		&p.UnitPrice, &p.TicketCount, &date, &p.SerialNumber, &p.Supplier); err != nil {
		return types.PartRecord{}, err
	}
	if date.Valid && date.String != "" {
		t, err := time.Parse(types.DateLayout, date.String)
		if err != nil {
			return types.PartRecord{}, fmt.Errorf("parsing date_acquired %q: %w", date.String, err)
		}
		p.DateAcquired = t
	}
	return p, nil
}

// dateValue converts the acquisition date to a nullable column value.
func dateValue(p types.PartRecord) sql.NullString {
	if !p.HasDateAcquired() {
		return sql.NullString{}
	}
	return sql.NullString{String: p.DateAcquiredString(), Valid: true}
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertPart(ex execer, p types.PartRecord) error {
	_, err := ex.Exec(
		"INSERT INTO parts ("+partColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		p.ID, p.Department, p.ItemCode, p.PartName, p.Description,
		p.UnitPrice, p.TicketCount, dateValue(p), p.SerialNumber, p.Supplier,
	)
	return err
}

// getLocked reads one part. The caller must hold mu.
func (s *Store) getLocked(id string) (types.PartRecord, error) {
	row := s.db.QueryRow("SELECT "+partColumns+" FROM parts WHERE part_id = ?", id)
	p, err := scanPart(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.PartRecord{}, fmt.Errorf("part %q: %w", id, types.ErrNotFound)
		}
		return types.PartRecord{}, fmt.Errorf("getting part %s: %w", id, err)
	}
	return p, nil
}

// existsLocked reports whether id is taken. The caller must hold mu.
func (s *Store) existsLocked(id string) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM parts WHERE part_id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking part existence: %w", err)
	}
	return true, nil
}

// fetchLocked returns parts in insertion order, optionally restricted to one
// department. The caller must hold mu.
func (s *Store) fetchLocked(department string) ([]types.PartRecord, error) {
	query := "SELECT " + partColumns + " FROM parts"
	var args []any
	if department != "" && department != types.AllDepartments {
		query += " WHERE department = ?"
		args = append(args, department)
	}
	query += " ORDER BY seq"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching parts: %w", err)
	}
	defer rows.Close()

	results := []types.PartRecord{}
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning part: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// List returns every part in insertion order.
func (s *Store) List() ([]types.PartRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrClosed
	}
	return s.fetchLocked("")
}

// Get returns the part with the given ID or ErrNotFound.
func (s *Store) Get(id string) (types.PartRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return types.PartRecord{}, ErrClosed
	}
	return s.getLocked(id)
}

// Add validates draft and inserts a new part with a fresh ID.
func (s *Store) Add(draft types.FormDraft) (types.PartRecord, error) {
	if err := draft.Validate(); err != nil {
		return types.PartRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return types.PartRecord{}, ErrClosed
	}

	var lookupErr error
	id := types.AllocateID(s.newID, func(id string) bool {
		taken, err := s.existsLocked(id)
		if err != nil {
			lookupErr = err
			return false
		}
		return taken
	})
	if lookupErr != nil {
		return types.PartRecord{}, lookupErr
	}

	p, err := types.NewPartFromDraft(id, draft)
	if err != nil {
		return types.PartRecord{}, err
	}
	if err := insertPart(s.db, p); err != nil {
		return types.PartRecord{}, fmt.Errorf("inserting part: %w", err)
	}
	return p, nil
}

// Update replaces the editable fields of the part with the given ID.
func (s *Store) Update(id string, draft types.FormDraft) (types.PartRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return types.PartRecord{}, ErrClosed
	}

	current, err := s.getLocked(id)
	if err != nil {
		return types.PartRecord{}, err
	}
	updated, err := current.UpdatedFromDraft(draft)
	if err != nil {
		return types.PartRecord{}, err
	}

	_, err = s.db.Exec(
		`UPDATE parts SET department = ?, item_code = ?, part_name = ?, description = ?,
		unit_price = ?, date_acquired = ?, serial_number = ?, supplier = ? WHERE part_id = ?`,
		updated.Department, updated.ItemCode, updated.PartName, updated.Description,
		updated.UnitPrice, dateValue(updated), updated.SerialNumber, updated.Supplier, id,
	)
	if err != nil {
		return types.PartRecord{}, fmt.Errorf("updating part %s: %w", id, err)
	}
	return updated, nil
}

// Remove deletes the part with the given ID. Absent IDs are ignored.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return ErrClosed
	}
	if _, err := s.db.Exec("DELETE FROM parts WHERE part_id = ?", id); err != nil {
		return fmt.Errorf("deleting part %s: %w", id, err)
	}
	return nil
}

// Query returns the parts matching filter in insertion order. The department
// predicate runs in SQL. The search predicate runs in Go because SQLite's
// lower() and LIKE fold ASCII only.
func (s *Store) Query(filter types.Filter) ([]types.PartRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrClosed
	}
	parts, err := s.fetchLocked(filter.Department)
	if err != nil {
		return nil, err
	}
	return types.Filter{SearchTerm: filter.SearchTerm}.Apply(parts), nil
}
