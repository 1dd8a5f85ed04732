// Package store defines the record source contract and an in-memory
// implementation. The engine treats the source as an external collaborator
// producing a flat stream of stay records; how rows are stored or serialized
// is the source's business, never the engine's.
package store

import (
	"context"

	"github.com/spark/occupancy-engine/occupancy"
)

// RecordStore supplies stay records and accepts seed data.
//
// LoadAll is called once at startup (or after seeding) to populate the
// engine's in-memory table. Queries never touch the store: the one-time load
// is what keeps computation free of I/O.
type RecordStore interface {
	// LoadAll returns every stay record in the store.
	LoadAll(ctx context.Context) ([]occupancy.StayRecord, error)

	// InsertRecords appends records. Records are immutable once written;
	// there is no update or delete path.
	InsertRecords(ctx context.Context, records []occupancy.StayRecord) error
}
