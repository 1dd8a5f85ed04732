/*
resolver.go - One winner per room per day

PURPOSE:
  The snapshot resolver answers "who, if anyone, occupies room X on day D?"
  when the record source contains overlapping or duplicate records for the
  same room (cancelled rebookings, re-entries, migration artifacts).

PRIORITY RULE:
  Among all candidates covering a room on a day, the winner maximizes

      (has positive rent, created_at, record_id)

  in lexicographic order:
    1. A paid record always outranks an unpaid one, regardless of recency.
    2. Among records of equal paid-status, the most recently created wins.
    3. On a full tie, the lexicographically larger record ID wins.

  The record-ID key is an explicit total-order tie-break. Resolution must
  never depend on input order or sort stability: the same candidate set in
  any order yields the same winner.

INVARIANT:
  After resolution there is at most one record per room per day. A room with
  zero covering candidates is vacant that day (absent from the result map).

SEE ALSO:
  - aggregate.go: runs the resolver once per day of a window
  - snapshot.go: runs it once, at the window's last day
*/
package occupancy

// outranks reports whether a beats b under the dedup priority rule.
// It is a strict total order over records with distinct IDs.
func outranks(a, b StayRecord) bool {
	ap, bp := a.HasRent(), b.HasRent()
	if ap != bp {
		return ap
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.RecordID > b.RecordID
}

// ResolveDay selects the single occupying record per room for one day.
//
// Candidates are tested against the half-open interval [Arrival, Departure)
// and the status filter; anything not covering the day, not passing the
// filter, or incomplete is ignored. The result maps room number to the one
// winning record; rooms with no covering candidate are absent.
//
// Pure function: no side effects, independent of input order.
func ResolveDay(day Date, records []StayRecord, filter StatusFilter) map[string]StayRecord {
	winners := make(map[string]StayRecord)
	for _, r := range records {
		if !r.Complete() || !filter.Allows(r.Status) || !r.Covers(day) {
			continue
		}
		current, taken := winners[r.RoomNumber]
		if !taken || outranks(r, current) {
			winners[r.RoomNumber] = r
		}
	}
	return winners
}
