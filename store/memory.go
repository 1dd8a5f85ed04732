package store

import (
	"context"
	"sync"

	"github.com/spark/occupancy-engine/occupancy"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu      sync.RWMutex
	records []occupancy.StayRecord
}

func NewMemory(records ...occupancy.StayRecord) *Memory {
	m := &Memory{}
	m.records = append(m.records, records...)
	return m
}

func (m *Memory) LoadAll(_ context.Context) ([]occupancy.StayRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]occupancy.StayRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *Memory) InsertRecords(_ context.Context, records []occupancy.StayRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, records...)
	return nil
}
