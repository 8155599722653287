package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// BusyInterval is an existing calendar commitment projected from the
// event store. Intervals are half-open: [Start, End).
type BusyInterval struct {
	Start      time.Time
	End        time.Time
	AssigneeID uuid.UUID
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not count: a slot starting exactly when a busy interval
// ends is free.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// BusySet indexes busy intervals for overlap queries. Intervals are
// sorted by start once; each query is a binary search plus a prefix
// max-end lookup, so filtering n slots against m intervals costs
// O((n+m) log m) instead of the naive O(n*m).
type BusySet struct {
	intervals []BusyInterval
	// maxEnd[i] is the latest End among intervals[0..i]. Starts are sorted
	// but ends are not, so the neighbor left of the insertion point is not
	// enough on its own; the running max covers intervals that start early
	// and run long.
	maxEnd []time.Time
}

func NewBusySet(intervals []BusyInterval) *BusySet {
	if len(intervals) == 0 {
		return &BusySet{}
	}
	sorted := make([]BusyInterval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	maxEnd := make([]time.Time, len(sorted))
	maxEnd[0] = sorted[0].End
	for i := 1; i < len(sorted); i++ {
		maxEnd[i] = maxEnd[i-1]
		if sorted[i].End.After(maxEnd[i]) {
			maxEnd[i] = sorted[i].End
		}
	}
	return &BusySet{intervals: sorted, maxEnd: maxEnd}
}

func (s *BusySet) Len() int {
	return len(s.intervals)
}

// Blocks reports whether any busy interval overlaps [start, end).
func (s *BusySet) Blocks(start, end time.Time) bool {
	if len(s.intervals) == 0 {
		return false
	}
	// First interval starting at or after the slot end; it and everything
	// after it begin too late to overlap.
	i := sort.Search(len(s.intervals), func(i int) bool {
		return !s.intervals[i].Start.Before(end)
	})
	if i == 0 {
		return false
	}
	return s.maxEnd[i-1].After(start)
}

// FilterAvailable returns the slots that do not overlap any busy interval,
// preserving input order. An empty busy list returns the input unchanged.
func FilterAvailable(slots []CandidateSlot, busy []BusyInterval) []CandidateSlot {
	if len(busy) == 0 || len(slots) == 0 {
		return slots
	}
	set := NewBusySet(busy)

	available := make([]CandidateSlot, 0, len(slots))
	for _, slot := range slots {
		if !set.Blocks(slot.Start, slot.End) {
			available = append(available, slot)
		}
	}
	return available
}
