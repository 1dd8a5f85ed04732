/*
snapshot.go - End-of-window point-in-time state

PURPOSE:
  One application of the snapshot resolver at a single day, reported
  independently of the window's accumulated counters.

WHY SEPARATE:
  "How occupied were we over August?" and "how occupied are we on August 31?"
  are different questions. The period average (room-nights / days) and this
  point-in-time count must never be merged or used interchangeably: a room
  vacant for the first half of the window and occupied for the second shows
  a low period average but a fully-occupied end-of-window snapshot.
*/
package occupancy

// Snapshot is the occupancy state at exactly one day.
type Snapshot struct {
	AsOf          Date
	OccupiedCount int
	PaidCount     int
}

// SnapshotAt resolves occupancy for a single day. Pass roomType == "" for a
// building-wide snapshot. Called by the engine with asOf = window end.
func SnapshotAt(records []StayRecord, roomType string, asOf Date, filter StatusFilter) Snapshot {
	pool := filterCandidates(records, roomType, Window{Start: asOf, End: asOf})

	snap := Snapshot{AsOf: asOf}
	for _, winner := range ResolveDay(asOf, pool, filter) {
		snap.OccupiedCount++
		if winner.HasRent() {
			snap.PaidCount++
		}
	}
	return snap
}
