//go:build unit || e2e

package builder

import (
	"time"

	dombooking "github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/internal/domain/schedule"
	reqdto "github.com/hificopy/axolopcrm-sub008/internal/handler/dto/request"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/commands"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"

	"github.com/google/uuid"
)

// WeekdayHours builds Monday-Friday hours with a single open range.
func WeekdayHours(start, end string) schedule.WeeklyHours {
	r, err := schedule.NewClockRange(start, end)
	if err != nil {
		panic(err)
	}
	return schedule.WeeklyHours{
		time.Monday:    {r},
		time.Tuesday:   {r},
		time.Wednesday: {r},
		time.Thursday:  {r},
		time.Friday:    {r},
	}
}

type LinkBuilder struct {
	ID             uuid.UUID
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
	Policy         dombooking.Policy
	MemberIDs      []uuid.UUID
	MaxPerDay      *int
	MaxPerWeek     *int
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewLinkBuilder() *LinkBuilder {
	now := time.Now()
	return &LinkBuilder{
		ID:             uuid.New(),
		Slug:           "intro-call",
		OwnerID:        uuid.New(),
		Name:           "Intro Call",
		DurationMin:    30,
		Hours:          WeekdayHours("09:00", "17:00"),
		Timezone:       "UTC",
		MinNoticeHours: 0,
		MaxAdvanceDays: 30,
		Policy:         dombooking.PolicyOwner,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *LinkBuilder) With(mutate func(*LinkBuilder)) *LinkBuilder {
	mutate(b)
	return b
}

// Build methods

func (b *LinkBuilder) BuildParams() dombooking.LinkParams {
	return dombooking.LinkParams{
		Slug:           b.Slug,
		OwnerID:        b.OwnerID,
		Name:           b.Name,
		DurationMin:    b.DurationMin,
		Hours:          b.Hours,
		Timezone:       b.Timezone,
		BufferBefore:   b.BufferBefore,
		BufferAfter:    b.BufferAfter,
		MinNoticeHours: b.MinNoticeHours,
		MaxAdvanceDays: b.MaxAdvanceDays,
		Policy:         b.Policy,
		MemberIDs:      b.MemberIDs,
		MaxPerDay:      b.MaxPerDay,
		MaxPerWeek:     b.MaxPerWeek,
	}
}

func (b *LinkBuilder) BuildDomain() (*dombooking.Link, error) {
	return dombooking.NewLink(b.BuildParams())
}

// BuildReconstructed returns a link with a stable ID, as the read side
// would hand it back.
func (b *LinkBuilder) BuildReconstructed() *dombooking.Link {
	return dombooking.ReconstructLink(b.ID, b.BuildParams(), b.Active, b.CreatedAt, b.UpdatedAt)
}

func (b *LinkBuilder) BuildCreateRequestDTO() reqdto.CreateLinkRequest {
	return reqdto.CreateLinkRequest{
		Name:           b.Name,
		DurationMin:    b.DurationMin,
		Hours:          b.Hours,
		Timezone:       b.Timezone,
		BufferBefore:   b.BufferBefore,
		BufferAfter:    b.BufferAfter,
		MinNoticeHours: b.MinNoticeHours,
		MaxAdvanceDays: b.MaxAdvanceDays,
		Policy:         b.Policy.String(),
		MemberIDs:      b.MemberIDs,
		MaxPerDay:      b.MaxPerDay,
		MaxPerWeek:     b.MaxPerWeek,
	}
}

func (b *LinkBuilder) BuildCreateParams() commands.CreateLinkParams {
	return commands.CreateLinkParams{
		Name:           b.Name,
		DurationMin:    b.DurationMin,
		Hours:          b.Hours,
		Timezone:       b.Timezone,
		BufferBefore:   b.BufferBefore,
		BufferAfter:    b.BufferAfter,
		MinNoticeHours: b.MinNoticeHours,
		MaxAdvanceDays: b.MaxAdvanceDays,
		Policy:         b.Policy,
		MemberIDs:      b.MemberIDs,
		MaxPerDay:      b.MaxPerDay,
		MaxPerWeek:     b.MaxPerWeek,
	}
}

func (b *LinkBuilder) BuildView() *queries.LinkView {
	return &queries.LinkView{
		ID:             b.ID,
		Slug:           b.Slug,
		OwnerID:        b.OwnerID,
		Name:           b.Name,
		DurationMin:    b.DurationMin,
		Hours:          b.Hours,
		Timezone:       b.Timezone,
		MinNoticeHours: b.MinNoticeHours,
		MaxAdvanceDays: b.MaxAdvanceDays,
		Policy:         b.Policy.String(),
		MemberIDs:      b.MemberIDs,
		MaxPerDay:      b.MaxPerDay,
		MaxPerWeek:     b.MaxPerWeek,
		Active:         b.Active,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *LinkBuilder) BuildPublicView() *queries.PublicLinkView {
	return &queries.PublicLinkView{
		Slug:           b.Slug,
		Name:           b.Name,
		DurationMin:    b.DurationMin,
		Hours:          b.Hours,
		Timezone:       b.Timezone,
		MinNoticeHours: b.MinNoticeHours,
		MaxAdvanceDays: b.MaxAdvanceDays,
	}
}

// Fluent builder methods

func (b *LinkBuilder) WithSlug(slug string) *LinkBuilder {
	b.Slug = slug
	return b
}

func (b *LinkBuilder) WithOwnerID(ownerID uuid.UUID) *LinkBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *LinkBuilder) WithName(name string) *LinkBuilder {
	b.Name = name
	return b
}

func (b *LinkBuilder) WithDurationMin(minutes int) *LinkBuilder {
	b.DurationMin = minutes
	return b
}

func (b *LinkBuilder) WithHours(hours schedule.WeeklyHours) *LinkBuilder {
	b.Hours = hours
	return b
}

func (b *LinkBuilder) WithTimezone(tz string) *LinkBuilder {
	b.Timezone = tz
	return b
}

func (b *LinkBuilder) WithMinNoticeHours(hours int) *LinkBuilder {
	b.MinNoticeHours = hours
	return b
}

func (b *LinkBuilder) WithMaxAdvanceDays(days int) *LinkBuilder {
	b.MaxAdvanceDays = days
	return b
}

func (b *LinkBuilder) WithPolicy(policy dombooking.Policy) *LinkBuilder {
	b.Policy = policy
	return b
}

func (b *LinkBuilder) WithMemberIDs(ids ...uuid.UUID) *LinkBuilder {
	b.MemberIDs = ids
	return b
}

func (b *LinkBuilder) WithMaxPerDay(limit int) *LinkBuilder {
	b.MaxPerDay = &limit
	return b
}

func (b *LinkBuilder) WithMaxPerWeek(limit int) *LinkBuilder {
	b.MaxPerWeek = &limit
	return b
}

func (b *LinkBuilder) AsInactive() *LinkBuilder {
	b.Active = false
	return b
}
