package schedule

import "time"

const DefaultStepMinutes = 15

// CandidateSlot is an offerable meeting time. Slots are ephemeral values;
// they are generated per availability request and never persisted.
type CandidateSlot struct {
	Start    time.Time
	End      time.Time
	Label    string
	Timezone string
}

// GenerateSlots expands a day's open-hours ranges into candidate slots of
// the given duration. Slot starts advance by step, not by duration, so a
// 30-minute meeting is still offered at 09:15 even though that start does
// not align to a duration boundary. The day is anchored to midnight of
// the link's reference zone.
func GenerateSlots(day time.Time, ranges []ClockRange, duration time.Duration, step time.Duration, loc *time.Location) []CandidateSlot {
	if duration <= 0 || len(ranges) == 0 {
		return nil
	}
	if step <= 0 {
		step = DefaultStepMinutes * time.Minute
	}

	year, month, dayNum := day.In(loc).Date()
	midnight := time.Date(year, month, dayNum, 0, 0, 0, 0, loc)

	var slots []CandidateSlot
	for _, r := range ranges {
		rangeStart := midnight.Add(time.Duration(r.Start) * time.Minute)
		rangeEnd := midnight.Add(time.Duration(r.End) * time.Minute)

		for t := rangeStart; !t.Add(duration).After(rangeEnd); t = t.Add(step) {
			end := t.Add(duration)
			slots = append(slots, CandidateSlot{
				Start:    t,
				End:      end,
				Label:    t.Format("3:04 PM"),
				Timezone: loc.String(),
			})
		}
	}
	return slots
}
