package booking

import (
	"errors"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("link name cannot be empty")
	ErrInvalidDuration = errors.New("meeting duration must be positive")
	ErrInvalidPolicy   = errors.New("invalid assignment policy")
	ErrInvalidTimezone = errors.New("unknown timezone")
	ErrInvalidCap      = errors.New("booking caps must be positive when set")
	ErrInvalidNotice   = errors.New("notice and advance windows must be non-negative")
)

// Link is a shareable scheduling page configuration. Links are never hard
// deleted; deactivation flips the active flag.
type Link struct {
	id             uuid.UUID
	slug           string
	ownerID        uuid.UUID
	name           string
	durationMin    int
	hours          schedule.WeeklyHours
	timezone       string
	bufferBefore   int
	bufferAfter    int
	minNoticeHours int
	maxAdvanceDays int
	policy         Policy
	memberIDs      []uuid.UUID
	maxPerDay      *int
	maxPerWeek     *int
	active         bool
	createdAt      time.Time
	updatedAt      time.Time
}

type LinkParams struct {
	Slug           string
	OwnerID        uuid.UUID
	Name           string
	DurationMin    int
	Hours          schedule.WeeklyHours
	Timezone       string
	BufferBefore   int
	BufferAfter    int
	MinNoticeHours int
	MaxAdvanceDays int
	Policy         Policy
	MemberIDs      []uuid.UUID
	MaxPerDay      *int
	MaxPerWeek     *int
}

func NewLink(p LinkParams) (*Link, error) {
	if p.Name == "" {
		return nil, ErrEmptyName
	}
	if p.DurationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if !p.Policy.IsValid() {
		return nil, ErrInvalidPolicy
	}
	if _, err := time.LoadLocation(p.Timezone); err != nil {
		return nil, ErrInvalidTimezone
	}
	if err := p.Hours.Validate(); err != nil {
		return nil, err
	}
	if p.MinNoticeHours < 0 || p.MaxAdvanceDays < 0 {
		return nil, ErrInvalidNotice
	}
	if (p.MaxPerDay != nil && *p.MaxPerDay <= 0) || (p.MaxPerWeek != nil && *p.MaxPerWeek <= 0) {
		return nil, ErrInvalidCap
	}

	return &Link{
		id:             uuid.New(),
		slug:           p.Slug,
		ownerID:        p.OwnerID,
		name:           p.Name,
		durationMin:    p.DurationMin,
		hours:          p.Hours,
		timezone:       p.Timezone,
		bufferBefore:   p.BufferBefore,
		bufferAfter:    p.BufferAfter,
		minNoticeHours: p.MinNoticeHours,
		maxAdvanceDays: p.MaxAdvanceDays,
		policy:         p.Policy,
		memberIDs:      p.MemberIDs,
		maxPerDay:      p.MaxPerDay,
		maxPerWeek:     p.MaxPerWeek,
		active:         true,
	}, nil
}

func ReconstructLink(
	id uuid.UUID,
	p LinkParams,
	active bool,
	createdAt, updatedAt time.Time,
) *Link {
	return &Link{
		id:             id,
		slug:           p.Slug,
		ownerID:        p.OwnerID,
		name:           p.Name,
		durationMin:    p.DurationMin,
		hours:          p.Hours,
		timezone:       p.Timezone,
		bufferBefore:   p.BufferBefore,
		bufferAfter:    p.BufferAfter,
		minNoticeHours: p.MinNoticeHours,
		maxAdvanceDays: p.MaxAdvanceDays,
		policy:         p.Policy,
		memberIDs:      p.MemberIDs,
		maxPerDay:      p.MaxPerDay,
		maxPerWeek:     p.MaxPerWeek,
		active:         active,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (l *Link) ID() uuid.UUID               { return l.id }
func (l *Link) Slug() string                { return l.slug }
func (l *Link) OwnerID() uuid.UUID          { return l.ownerID }
func (l *Link) Name() string                { return l.name }
func (l *Link) DurationMin() int            { return l.durationMin }
func (l *Link) Hours() schedule.WeeklyHours { return l.hours }
func (l *Link) Timezone() string            { return l.timezone }
func (l *Link) BufferBefore() int           { return l.bufferBefore }
func (l *Link) BufferAfter() int            { return l.bufferAfter }
func (l *Link) MinNoticeHours() int         { return l.minNoticeHours }
func (l *Link) MaxAdvanceDays() int         { return l.maxAdvanceDays }
func (l *Link) Policy() Policy              { return l.policy }
func (l *Link) MemberIDs() []uuid.UUID      { return l.memberIDs }
func (l *Link) MaxPerDay() *int             { return l.maxPerDay }
func (l *Link) MaxPerWeek() *int            { return l.maxPerWeek }
func (l *Link) IsActive() bool              { return l.active }
func (l *Link) CreatedAt() time.Time        { return l.createdAt }
func (l *Link) UpdatedAt() time.Time        { return l.updatedAt }

func (l *Link) Duration() time.Duration {
	return time.Duration(l.durationMin) * time.Minute
}

func (l *Link) Location() *time.Location {
	loc, err := time.LoadLocation(l.timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (l *Link) Deactivate() {
	l.active = false
}

// WithinWindow reports whether any part of the given day is inside the
// bookable window [now + minNotice, now + maxAdvance]. The boundary check
// runs before slot generation and short-circuits to an empty result.
func (l *Link) WithinWindow(now, day time.Time) bool {
	dayStart, dayEnd := dayBoundsIn(day, l.Location())

	earliest := now.Add(time.Duration(l.minNoticeHours) * time.Hour)
	if !dayEnd.After(earliest) {
		return false
	}
	latest := now.AddDate(0, 0, l.maxAdvanceDays)
	return !dayStart.After(latest)
}

// EarliestStart is the first bookable instant given the minimum notice.
func (l *Link) EarliestStart(now time.Time) time.Time {
	return now.Add(time.Duration(l.minNoticeHours) * time.Hour)
}

func dayBoundsIn(day time.Time, loc *time.Location) (time.Time, time.Time) {
	year, month, dayNum := day.In(loc).Date()
	start := time.Date(year, month, dayNum, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
