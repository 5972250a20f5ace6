package record

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store persists records in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a record store at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		keywords TEXT NOT NULL DEFAULT '[]',
		group_idx INTEGER,
		group_name TEXT
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragma: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert adds a record to the store, assigning a fresh ID when blank.
func (s *Store) Insert(r *Record) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	keywords, err := json.Marshal(r.Keywords)
	if err != nil {
		return fmt.Errorf("encode keywords: %w", err)
	}

	var idx interface{}
	if r.GroupIndex != nil {
		idx = *r.GroupIndex
	}
	var name interface{}
	if r.GroupName != "" {
		name = r.GroupName
	}

	_, err = s.db.Exec(
		"INSERT INTO records (id, name, keywords, group_idx, group_name) VALUES (?, ?, ?, ?, ?)",
		r.ID, r.Name, string(keywords), idx, name,
	)
	if err != nil {
		return fmt.Errorf("insert record %s: %w", r.ID, err)
	}
	return nil
}

// LoadAll returns every record in insertion order.
func (s *Store) LoadAll() ([]Record, error) {
	rows, err := s.db.Query(
		"SELECT id, name, keywords, group_idx, group_name FROM records ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var keywords string
		var idx sql.NullInt64
		var groupName sql.NullString

		if err := rows.Scan(&r.ID, &r.Name, &keywords, &idx, &groupName); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if err := json.Unmarshal([]byte(keywords), &r.Keywords); err != nil {
			return nil, fmt.Errorf("decode keywords for %s: %w", r.ID, err)
		}
		if idx.Valid {
			v := int(idx.Int64)
			r.GroupIndex = &v
		}
		if groupName.Valid {
			r.GroupName = groupName.String
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SaveAssignments replaces the stored partition assignment. Every record's
// assignment columns are cleared first, then the given records are assigned
// their group index and name in one transaction. assign holds 0-based indices
// into groupNames, one per entry of ids.
func (s *Store) SaveAssignments(groupNames []string, assign []int, ids []string) error {
	if len(assign) != len(ids) {
		return fmt.Errorf("assignment count %d does not match record count %d", len(assign), len(ids))
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}

	// Remove-then-add: clear the assignment field everywhere so records
	// outside ids do not keep a stale assignment.
	if _, err := tx.Exec("UPDATE records SET group_idx = NULL, group_name = NULL"); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear assignments: %w", err)
	}

	stmt, err := tx.Prepare("UPDATE records SET group_idx = ?, group_name = ? WHERE id = ?")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare save: %w", err)
	}
	defer stmt.Close()

	for i, id := range ids {
		idx := assign[i]
		if idx < 0 || idx >= len(groupNames) {
			tx.Rollback()
			return fmt.Errorf("record %s: group index %d out of range", id, idx)
		}
		if _, err := stmt.Exec(idx, groupNames[idx], id); err != nil {
			tx.Rollback()
			return fmt.Errorf("save assignment for %s: %w", id, err)
		}
	}

	return tx.Commit()
}
