//go:build unit

package schedule_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClockRange(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		errIs      error
	}{
		{name: "valid range", start: "09:00", end: "17:00"},
		{name: "single minute range", start: "09:00", end: "09:01"},
		{name: "midnight to end of day", start: "00:00", end: "23:59"},
		{name: "start equals end", start: "09:00", end: "09:00", errIs: schedule.ErrInvalidRange},
		{name: "start after end", start: "17:00", end: "09:00", errIs: schedule.ErrInvalidRange},
		{name: "hour out of range", start: "24:00", end: "25:00", errIs: schedule.ErrInvalidClockTime},
		{name: "minute out of range", start: "09:60", end: "10:00", errIs: schedule.ErrInvalidClockTime},
		{name: "not a clock time", start: "morning", end: "evening", errIs: schedule.ErrInvalidClockTime},
		{name: "trailing am/pm suffix", start: "12:30pm", end: "17:00", errIs: schedule.ErrInvalidClockTime},
		{name: "trailing garbage", start: "09:00x", end: "17:00", errIs: schedule.ErrInvalidClockTime},
		{name: "empty string", start: "", end: "10:00", errIs: schedule.ErrInvalidClockTime},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := schedule.NewClockRange(tc.start, tc.end)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, r.StartString())
			assert.Equal(t, tc.end, r.EndString())
		})
	}
}

func TestWeeklyHoursValidate(t *testing.T) {
	t.Run("ordered non-overlapping ranges pass", func(t *testing.T) {
		hours := schedule.WeeklyHours{
			time.Monday: {mustRange(t, "09:00", "12:00"), mustRange(t, "13:00", "17:00")},
		}
		assert.NoError(t, hours.Validate())
	})

	t.Run("back to back ranges pass", func(t *testing.T) {
		hours := schedule.WeeklyHours{
			time.Monday: {mustRange(t, "09:00", "12:00"), mustRange(t, "12:00", "17:00")},
		}
		assert.NoError(t, hours.Validate())
	})

	t.Run("overlapping ranges fail", func(t *testing.T) {
		hours := schedule.WeeklyHours{
			time.Monday: {mustRange(t, "09:00", "13:00"), mustRange(t, "12:00", "17:00")},
		}
		assert.ErrorIs(t, hours.Validate(), schedule.ErrRangesNotSorted)
	})

	t.Run("out of order ranges fail", func(t *testing.T) {
		hours := schedule.WeeklyHours{
			time.Monday: {mustRange(t, "13:00", "17:00"), mustRange(t, "09:00", "12:00")},
		}
		assert.ErrorIs(t, hours.Validate(), schedule.ErrRangesNotSorted)
	})

	t.Run("empty hours pass", func(t *testing.T) {
		assert.NoError(t, schedule.WeeklyHours{}.Validate())
	})
}

func TestWeeklyHoursJSON(t *testing.T) {
	t.Run("round trip preserves hours", func(t *testing.T) {
		hours := schedule.WeeklyHours{
			time.Monday:    {mustRange(t, "09:00", "12:00"), mustRange(t, "13:00", "17:00")},
			time.Wednesday: {mustRange(t, "10:00", "16:00")},
		}

		data, err := json.Marshal(hours)
		require.NoError(t, err)

		var decoded schedule.WeeklyHours
		require.NoError(t, json.Unmarshal(data, &decoded))

		if diff := cmp.Diff(hours, decoded); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("weekday names are case insensitive", func(t *testing.T) {
		raw := []byte(`{"Monday":[{"start":"09:00","end":"17:00"}]}`)

		var decoded schedule.WeeklyHours
		require.NoError(t, json.Unmarshal(raw, &decoded))
		require.Len(t, decoded.ForDay(time.Monday), 1)
	})

	t.Run("unknown weekday is rejected", func(t *testing.T) {
		raw := []byte(`{"funday":[{"start":"09:00","end":"17:00"}]}`)

		var decoded schedule.WeeklyHours
		assert.ErrorIs(t, json.Unmarshal(raw, &decoded), schedule.ErrUnknownWeekday)
	})

	t.Run("invalid range inside a day is rejected", func(t *testing.T) {
		raw := []byte(`{"monday":[{"start":"17:00","end":"09:00"}]}`)

		var decoded schedule.WeeklyHours
		assert.ErrorIs(t, json.Unmarshal(raw, &decoded), schedule.ErrInvalidRange)
	})

	t.Run("missing weekday means closed", func(t *testing.T) {
		raw := []byte(`{"monday":[{"start":"09:00","end":"17:00"}]}`)

		var decoded schedule.WeeklyHours
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Empty(t, decoded.ForDay(time.Tuesday))
	})
}
