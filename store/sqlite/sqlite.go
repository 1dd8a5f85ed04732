/*
Package sqlite provides a SQLite-backed stay record store.

PURPOSE:
  Persists the flat stay-record table the engine consumes. The store is a
  dumb row source: it knows nothing about resolution, windows, or metrics.

LOAD-ONCE CONTRACT:
  Records are loaded with LoadAll exactly once, at startup or after seeding,
  into the engine's read-only in-memory table. Queries never re-read the
  database; re-parsing the full source per query is specifically what this
  design avoids.

APPEND-ONLY:
  Stay records are immutable facts about the past. There is no UPDATE or
  DELETE path; corrections arrive as new records and the resolver's dedup
  priority picks the winner.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging): multiple readers don't
  block, single writer at a time, better crash recovery.

USAGE:
  store, err := sqlite.New("./data/stays.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  records, err := store.LoadAll(ctx)
  engine := occupancy.NewEngine(records, config)

SEE ALSO:
  - store/store.go: the RecordStore interface this implements
  - store/memory.go: in-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/spark/occupancy-engine/occupancy"
)

// Store implements store.RecordStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Stay records (append-only)
	CREATE TABLE IF NOT EXISTS stay_records (
		record_id TEXT PRIMARY KEY,
		room_number TEXT NOT NULL,
		room_type TEXT NOT NULL,
		arrival_date TEXT NOT NULL,
		departure_date TEXT NOT NULL,
		status TEXT NOT NULL,
		monthly_rate TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	-- Window pre-filter support (room type + interval overlap)
	CREATE INDEX IF NOT EXISTS idx_stays_type_arrival
		ON stay_records(room_type, arrival_date, departure_date);

	-- Per-room candidate grouping
	CREATE INDEX IF NOT EXISTS idx_stays_room
		ON stay_records(room_number);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// RECORD STORE IMPLEMENTATION
// =============================================================================

const dateFormat = "2006-01-02"

// LoadAll returns every stay record in the table. Rows with unparsable dates
// or rates come back as incomplete records (zero dates, zero rate) rather
// than failing the whole load; the engine drops and counts them.
func (s *Store) LoadAll(ctx context.Context) ([]occupancy.StayRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT record_id, room_number, room_type, arrival_date, departure_date,
		       status, monthly_rate, created_at
		FROM stay_records
		ORDER BY record_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load stay records: %w", err)
	}
	defer rows.Close()

	var records []occupancy.StayRecord
	for rows.Next() {
		var (
			r                                      occupancy.StayRecord
			status, arrival, departure, rate, made string
		)
		if err := rows.Scan(&r.RecordID, &r.RoomNumber, &r.RoomType,
			&arrival, &departure, &status, &rate, &made); err != nil {
			return nil, fmt.Errorf("failed to scan stay record: %w", err)
		}

		r.Status = occupancy.Status(status)
		r.MonthlyRate = decimal.Zero
		if d, err := occupancy.ParseDate(arrival); err == nil {
			r.Arrival = d
		}
		if d, err := occupancy.ParseDate(departure); err == nil {
			r.Departure = d
		}
		if v, err := decimal.NewFromString(rate); err == nil {
			r.MonthlyRate = v
		}
		if t, err := time.Parse(time.RFC3339, made); err == nil {
			r.CreatedAt = t
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// InsertRecords appends stay records. Append-only: duplicate record IDs are
// rejected by the primary key, never overwritten.
func (s *Store) InsertRecords(ctx context.Context, records []occupancy.StayRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stay_records
			(record_id, room_number, room_type, arrival_date, departure_date,
			 status, monthly_rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			r.RecordID,
			r.RoomNumber,
			r.RoomType,
			r.Arrival.Time().Format(dateFormat),
			r.Departure.Time().Format(dateFormat),
			string(r.Status),
			r.MonthlyRate.String(),
			r.CreatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to insert record %s: %w", r.RecordID, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of stored stay records.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stay_records`).Scan(&n)
	return n, err
}
