// Package storage provides SQLite-based persistence for the level library.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/xxh3"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a level is not in the library.
var ErrNotFound = errors.New("storage: level not found")

// Store manages the SQLite database connection for the level library.
type Store struct {
	db *sql.DB
}

// LevelRecord is a stored level plan.
type LevelRecord struct {
	ID        string
	Name      string
	Plan      []string
	Checksum  uint64
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			plan TEXT NOT NULL,
			checksum INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_name ON levels(name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Checksum hashes a plan. Each row is prefixed with its length, so the row
// boundaries are part of the hash.
func Checksum(plan []string) uint64 {
	h := xxh3.New()
	var prefix []byte
	for _, row := range plan {
		prefix = binary.AppendUvarint(prefix[:0], uint64(len(row)))
		h.Write(prefix)
		h.WriteString(row)
	}
	return h.Sum64()
}

// encodePlan stores a plan as a YAML sequence so empty rows and rows with
// newlines survive a round trip.
func encodePlan(plan []string) (string, error) {
	if plan == nil {
		plan = []string{}
	}
	data, err := yaml.Marshal(plan)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodePlan(text string) ([]string, error) {
	var plan []string
	if err := yaml.Unmarshal([]byte(text), &plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// SaveLevel inserts or replaces a level. It reports whether anything was
// written: saving an identical plan under the same name is a no-op.
func (s *Store) SaveLevel(id, name string, plan []string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("storage: cannot save level: empty id")
	}

	encoded, err := encodePlan(plan)
	if err != nil {
		return false, fmt.Errorf("storage: cannot encode level %s: %w", id, err)
	}

	sum := Checksum(plan)
	var oldName string
	var oldSum int64
	err = s.db.QueryRow(
		"SELECT name, checksum FROM levels WHERE id = ?", id,
	).Scan(&oldName, &oldSum)
	switch {
	case err == nil:
		if uint64(oldSum) == sum && oldName == name {
			return false, nil
		}
	case errors.Is(err, sql.ErrNoRows):
	default:
		return false, fmt.Errorf("storage: cannot query level %s: %w", id, err)
	}

	// SQLite integers are signed; the checksum round-trips through int64.
	_, err = s.db.Exec(
		`INSERT INTO levels (id, name, plan, checksum, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   plan = excluded.plan,
		   checksum = excluded.checksum,
		   updated_at = excluded.updated_at`,
		id, name, encoded, int64(sum),
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save level %s: %w", id, err)
	}
	return true, nil
}

// Level retrieves a level by ID. Returns ErrNotFound if it does not exist.
func (s *Store) Level(id string) (*LevelRecord, error) {
	var rec LevelRecord
	var plan string
	var sum int64
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT id, name, plan, checksum, updated_at FROM levels WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.Name, &plan, &sum, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level %s: %w", id, err)
	}

	if rec.Plan, err = decodePlan(plan); err != nil {
		return nil, fmt.Errorf("storage: cannot decode level %s: %w", id, err)
	}
	rec.Checksum = uint64(sum)
	rec.UpdatedAt = parseTime(updatedAt)
	return &rec, nil
}

// ListLevels returns every level ordered by ID.
func (s *Store) ListLevels() ([]LevelRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, name, plan, checksum, updated_at FROM levels ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var records []LevelRecord
	for rows.Next() {
		var rec LevelRecord
		var plan string
		var sum int64
		var updatedAt any
		if err := rows.Scan(&rec.ID, &rec.Name, &plan, &sum, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if rec.Plan, err = decodePlan(plan); err != nil {
			return nil, fmt.Errorf("storage: cannot decode level %s: %w", rec.ID, err)
		}
		rec.Checksum = uint64(sum)
		rec.UpdatedAt = parseTime(updatedAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// CountLevels returns the number of stored levels.
func (s *Store) CountLevels() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM levels").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count levels: %w", err)
	}
	return n, nil
}

// DeleteLevel removes a level. Returns ErrNotFound if it does not exist.
func (s *Store) DeleteLevel(id string) error {
	res, err := s.db.Exec("DELETE FROM levels WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete level %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete level %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Seed is a level to store when the library is empty.
type Seed struct {
	ID   string
	Name string
	Plan []string
}

// SeedBuiltins stores seeds only when the library holds no levels, so levels
// a user deleted are not restored on the next start. Returns the number of
// levels written.
func (s *Store) SeedBuiltins(seeds []Seed) (int, error) {
	n, err := s.CountLevels()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	written := 0
	for _, seed := range seeds {
		changed, err := s.SaveLevel(seed.ID, seed.Name, seed.Plan)
		if err != nil {
			return written, err
		}
		if changed {
			written++
		}
	}
	return written, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
