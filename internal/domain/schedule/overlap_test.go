//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	return time.Date(2026, 9, 7, hour, minute, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		expect         bool
	}{
		{"identical intervals", at(t, 10, 0), at(t, 10, 30), at(t, 10, 0), at(t, 10, 30), true},
		{"partial overlap at start", at(t, 9, 45), at(t, 10, 15), at(t, 10, 0), at(t, 10, 30), true},
		{"partial overlap at end", at(t, 10, 15), at(t, 10, 45), at(t, 10, 0), at(t, 10, 30), true},
		{"containment", at(t, 10, 5), at(t, 10, 25), at(t, 10, 0), at(t, 10, 30), true},
		{"touching at end does not overlap", at(t, 9, 30), at(t, 10, 0), at(t, 10, 0), at(t, 10, 30), false},
		{"touching at start does not overlap", at(t, 10, 30), at(t, 11, 0), at(t, 10, 0), at(t, 10, 30), false},
		{"fully disjoint", at(t, 8, 0), at(t, 8, 30), at(t, 10, 0), at(t, 10, 30), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, schedule.Overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
			// Overlap is symmetric.
			assert.Equal(t, tc.expect, schedule.Overlaps(tc.s2, tc.e2, tc.s1, tc.e1))
		})
	}
}

func TestBusySet(t *testing.T) {
	t.Run("empty set blocks nothing", func(t *testing.T) {
		set := schedule.NewBusySet(nil)
		assert.Equal(t, 0, set.Len())
		assert.False(t, set.Blocks(at(t, 9, 0), at(t, 9, 30)))
	})

	t.Run("early long interval still blocks late slots", func(t *testing.T) {
		// The second interval starts later but ends earlier; the running
		// max-end must keep the first one in play.
		set := schedule.NewBusySet([]schedule.BusyInterval{
			{Start: at(t, 9, 0), End: at(t, 12, 0)},
			{Start: at(t, 9, 30), End: at(t, 10, 0)},
		})

		assert.True(t, set.Blocks(at(t, 11, 0), at(t, 11, 30)))
		assert.False(t, set.Blocks(at(t, 12, 0), at(t, 12, 30)))
	})

	t.Run("unsorted input is handled", func(t *testing.T) {
		set := schedule.NewBusySet([]schedule.BusyInterval{
			{Start: at(t, 14, 0), End: at(t, 15, 0)},
			{Start: at(t, 9, 0), End: at(t, 10, 0)},
		})

		assert.True(t, set.Blocks(at(t, 9, 30), at(t, 10, 30)))
		assert.True(t, set.Blocks(at(t, 14, 30), at(t, 15, 30)))
		assert.False(t, set.Blocks(at(t, 11, 0), at(t, 12, 0)))
	})
}

func TestFilterAvailable(t *testing.T) {
	grid := func() []schedule.CandidateSlot {
		ranges := []schedule.ClockRange{mustRange(t, "09:00", "12:00")}
		return schedule.GenerateSlots(at(t, 0, 0), ranges, 30*time.Minute, 15*time.Minute, time.UTC)
	}

	t.Run("empty busy list returns input unchanged", func(t *testing.T) {
		slots := grid()
		filtered := schedule.FilterAvailable(slots, nil)
		assert.Equal(t, len(slots), len(filtered))
	})

	t.Run("busy interval removes every overlapping start", func(t *testing.T) {
		busy := []schedule.BusyInterval{
			{Start: at(t, 10, 0), End: at(t, 10, 30), AssigneeID: uuid.New()},
		}

		filtered := schedule.FilterAvailable(grid(), busy)

		starts := make(map[time.Time]bool, len(filtered))
		for _, s := range filtered {
			starts[s.Start] = true
		}
		// 09:45 and 10:15 starts would overlap the busy block.
		assert.False(t, starts[at(t, 9, 45)])
		assert.False(t, starts[at(t, 10, 0)])
		assert.False(t, starts[at(t, 10, 15)])
		// Touching slots on both sides stay bookable.
		assert.True(t, starts[at(t, 9, 30)])
		assert.True(t, starts[at(t, 10, 30)])
	})

	t.Run("input order is preserved", func(t *testing.T) {
		busy := []schedule.BusyInterval{
			{Start: at(t, 10, 0), End: at(t, 10, 30)},
		}

		filtered := schedule.FilterAvailable(grid(), busy)

		require.NotEmpty(t, filtered)
		for i := 1; i < len(filtered); i++ {
			assert.True(t, filtered[i-1].Start.Before(filtered[i].Start))
		}
	})

	t.Run("fully booked day yields no slots", func(t *testing.T) {
		busy := []schedule.BusyInterval{
			{Start: at(t, 8, 0), End: at(t, 13, 0)},
		}

		filtered := schedule.FilterAvailable(grid(), busy)
		assert.Empty(t, filtered)
	})
}
