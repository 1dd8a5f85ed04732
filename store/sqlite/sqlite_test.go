package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spark/occupancy-engine/occupancy"
	"github.com/spark/occupancy-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func record(id string) occupancy.StayRecord {
	return occupancy.StayRecord{
		RecordID:    id,
		RoomNumber:  "A101",
		RoomType:    "1B",
		Arrival:     occupancy.NewDate(2025, time.August, 1),
		Departure:   occupancy.NewDate(2025, time.August, 10),
		Status:      occupancy.StatusInHouse,
		MonthlyRate: decimal.RequireFromString("3000.50"),
		CreatedAt:   time.Date(2025, time.July, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_InsertAndLoadAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertRecords(ctx, []occupancy.StayRecord{record("r-1"), record("r-2")}))

	records, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	got := records[0]
	assert.Equal(t, "r-1", got.RecordID)
	assert.Equal(t, "A101", got.RoomNumber)
	assert.Equal(t, "1B", got.RoomType)
	assert.Equal(t, "2025-08-01", got.Arrival.String())
	assert.Equal(t, "2025-08-10", got.Departure.String())
	assert.Equal(t, occupancy.StatusInHouse, got.Status)
	assert.True(t, decimal.RequireFromString("3000.50").Equal(got.MonthlyRate))
	assert.Equal(t, time.Date(2025, time.July, 30, 12, 0, 0, 0, time.UTC), got.CreatedAt)
	assert.True(t, got.Complete())
}

func TestStore_DuplicateRecordIDRejected(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertRecords(ctx, []occupancy.StayRecord{record("r-1")}))
	err := store.InsertRecords(ctx, []occupancy.StayRecord{record("r-1")})
	assert.Error(t, err, "append-only: primary key rejects duplicate IDs")

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_InsertBatchIsAtomic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertRecords(ctx, []occupancy.StayRecord{record("r-1")}))

	// second batch contains a duplicate: nothing from it may land
	err := store.InsertRecords(ctx, []occupancy.StayRecord{record("r-2"), record("r-1")})
	require.Error(t, err)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_EmptyLoad(t *testing.T) {
	store := newTestStore(t)

	records, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
