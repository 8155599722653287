package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidClockTime = errors.New("invalid clock time, expected HH:MM")
	ErrInvalidRange     = errors.New("range start must be before range end")
	ErrRangesNotSorted  = errors.New("ranges must be ordered and non-overlapping")
	ErrUnknownWeekday   = errors.New("unknown weekday name")
)

// ClockRange is an open-hours range within a single day, expressed as
// minutes from midnight in the link's reference zone.
type ClockRange struct {
	Start int
	End   int
}

func NewClockRange(start, end string) (ClockRange, error) {
	s, err := parseClockTime(start)
	if err != nil {
		return ClockRange{}, err
	}
	e, err := parseClockTime(end)
	if err != nil {
		return ClockRange{}, err
	}
	if s >= e {
		return ClockRange{}, ErrInvalidRange
	}
	return ClockRange{Start: s, End: e}, nil
}

func (r ClockRange) StartString() string { return formatClockTime(r.Start) }
func (r ClockRange) EndString() string   { return formatClockTime(r.End) }

// parseClockTime converts "HH:MM" to minutes from midnight. time.Parse
// consumes the whole string, so trailing garbage like "09:00x" is rejected.
func parseClockTime(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidClockTime
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WeeklyHours maps each weekday to its ordered open-hours ranges.
// A missing weekday means the day is closed.
type WeeklyHours map[time.Weekday][]ClockRange

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func (w WeeklyHours) ForDay(day time.Weekday) []ClockRange {
	return w[day]
}

func (w WeeklyHours) Validate() error {
	for _, ranges := range w {
		prevEnd := -1
		for _, r := range ranges {
			if r.Start >= r.End {
				return ErrInvalidRange
			}
			if r.Start < prevEnd {
				return ErrRangesNotSorted
			}
			prevEnd = r.End
		}
	}
	return nil
}

type clockRangeDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MarshalJSON serializes hours as {"monday":[{"start":"09:00","end":"17:00"}],...}
// which is also the wire and storage representation.
func (w WeeklyHours) MarshalJSON() ([]byte, error) {
	out := make(map[string][]clockRangeDTO, len(w))
	for name, day := range weekdayNames {
		ranges, ok := w[day]
		if !ok {
			continue
		}
		dtos := make([]clockRangeDTO, len(ranges))
		for i, r := range ranges {
			dtos[i] = clockRangeDTO{Start: r.StartString(), End: r.EndString()}
		}
		out[name] = dtos
	}
	return json.Marshal(out)
}

func (w *WeeklyHours) UnmarshalJSON(data []byte) error {
	var raw map[string][]clockRangeDTO
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	hours, err := weeklyHoursFromDTO(raw)
	if err != nil {
		return err
	}
	*w = hours
	return nil
}

func weeklyHoursFromDTO(raw map[string][]clockRangeDTO) (WeeklyHours, error) {
	hours := make(WeeklyHours, len(raw))
	for name, dtos := range raw {
		day, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, ErrUnknownWeekday
		}
		ranges := make([]ClockRange, 0, len(dtos))
		for _, dto := range dtos {
			r, err := NewClockRange(dto.Start, dto.End)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, r)
		}
		hours[day] = ranges
	}
	if err := hours.Validate(); err != nil {
		return nil, err
	}
	return hours, nil
}

// ParseWeeklyHours builds WeeklyHours from the wire representation,
// validating times and ordering.
func ParseWeeklyHours(raw map[string][]struct{ Start, End string }) (WeeklyHours, error) {
	dto := make(map[string][]clockRangeDTO, len(raw))
	for name, ranges := range raw {
		dtos := make([]clockRangeDTO, len(ranges))
		for i, r := range ranges {
			dtos[i] = clockRangeDTO{Start: r.Start, End: r.End}
		}
		dto[name] = dtos
	}
	return weeklyHoursFromDTO(dto)
}
