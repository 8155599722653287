package schedule

import (
	"time"

	"github.com/google/uuid"
)

// NextRoundRobin selects the member following lastAssigned in cyclic order.
// No history or a previous assignee that is no longer eligible both resolve
// to the first member. Returns false when members is empty; rotation state
// lives in persisted booking history, not in memory, so concurrent
// instances derive the same answer from the same rows.
func NextRoundRobin(members []uuid.UUID, lastAssigned *uuid.UUID) (uuid.UUID, bool) {
	if len(members) == 0 {
		return uuid.Nil, false
	}
	if lastAssigned == nil {
		return members[0], true
	}
	for i, m := range members {
		if m == *lastAssigned {
			return members[(i+1)%len(members)], true
		}
	}
	return members[0], true
}

// LeastLoaded selects the member with the strictly lowest event count for
// the target week. Ties break to the earliest member in list order, so
// repeated calls with identical input are deterministic. Members missing
// from counts are treated as having zero events.
func LeastLoaded(members []uuid.UUID, counts map[uuid.UUID]int) (uuid.UUID, bool) {
	if len(members) == 0 {
		return uuid.Nil, false
	}
	best := members[0]
	bestCount := counts[best]
	for _, m := range members[1:] {
		if counts[m] < bestCount {
			best = m
			bestCount = counts[m]
		}
	}
	return best, true
}

// WeekBounds returns the half-open [start, end) of the calendar week
// containing t, in t's location. Weeks start on Monday.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())

	offset := (int(midnight.Weekday()) - int(time.Monday) + 7) % 7
	start := midnight.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

// DayBounds returns the half-open [start, end) of the calendar day
// containing t, in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
