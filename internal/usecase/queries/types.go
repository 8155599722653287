package queries

import (
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/internal/domain/schedule"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SlotView struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Label    string    `json:"label"`
	Timezone string    `json:"timezone"`
}

type LinkView struct {
	ID             uuid.UUID            `json:"id"`
	Slug           string               `json:"slug"`
	OwnerID        uuid.UUID            `json:"owner_id"`
	Name           string               `json:"name"`
	DurationMin    int                  `json:"duration_min"`
	Hours          schedule.WeeklyHours `json:"hours"`
	Timezone       string               `json:"timezone"`
	MinNoticeHours int                  `json:"min_notice_hours"`
	MaxAdvanceDays int                  `json:"max_advance_days"`
	Policy         string               `json:"policy"`
	MemberIDs      []uuid.UUID          `json:"member_ids,omitempty"`
	MaxPerDay      *int                 `json:"max_per_day,omitempty"`
	MaxPerWeek     *int                 `json:"max_per_week,omitempty"`
	Active         bool                 `json:"active"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// PublicLinkView is the unauthenticated shape: enough for a booking page,
// nothing about the team behind the link.
type PublicLinkView struct {
	Slug           string               `json:"slug"`
	Name           string               `json:"name"`
	DurationMin    int                  `json:"duration_min"`
	Hours          schedule.WeeklyHours `json:"hours"`
	Timezone       string               `json:"timezone"`
	MinNoticeHours int                  `json:"min_notice_hours"`
	MaxAdvanceDays int                  `json:"max_advance_days"`
}

type BookingView struct {
	ID           uuid.UUID  `json:"id"`
	LinkID       uuid.UUID  `json:"link_id"`
	BookerName   string     `json:"booker_name"`
	BookerEmail  string     `json:"booker_email"`
	BookerPhone  *string    `json:"booker_phone,omitempty"`
	Company      *string    `json:"company,omitempty"`
	ScheduledAt  time.Time  `json:"scheduled_at"`
	Timezone     string     `json:"timezone"`
	AssigneeID   uuid.UUID  `json:"assignee_id"`
	Status       string     `json:"status"`
	EventID      *uuid.UUID `json:"event_id,omitempty"`
	CancelReason *string    `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type EventView struct {
	ID       uuid.UUID `json:"id"`
	OwnerID  uuid.UUID `json:"owner_id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Status   string    `json:"status"`
}

func LinkViewFromEntity(l *booking.Link) *LinkView {
	return &LinkView{
		ID:             l.ID(),
		Slug:           l.Slug(),
		OwnerID:        l.OwnerID(),
		Name:           l.Name(),
		DurationMin:    l.DurationMin(),
		Hours:          l.Hours(),
		Timezone:       l.Timezone(),
		MinNoticeHours: l.MinNoticeHours(),
		MaxAdvanceDays: l.MaxAdvanceDays(),
		Policy:         l.Policy().String(),
		MemberIDs:      l.MemberIDs(),
		MaxPerDay:      l.MaxPerDay(),
		MaxPerWeek:     l.MaxPerWeek(),
		Active:         l.IsActive(),
		CreatedAt:      l.CreatedAt(),
		UpdatedAt:      l.UpdatedAt(),
	}
}

func PublicLinkViewFromEntity(l *booking.Link) *PublicLinkView {
	return &PublicLinkView{
		Slug:           l.Slug(),
		Name:           l.Name(),
		DurationMin:    l.DurationMin(),
		Hours:          l.Hours(),
		Timezone:       l.Timezone(),
		MinNoticeHours: l.MinNoticeHours(),
		MaxAdvanceDays: l.MaxAdvanceDays(),
	}
}

func BookingViewFromEntity(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:           b.ID(),
		LinkID:       b.LinkID(),
		BookerName:   b.BookerName(),
		BookerEmail:  b.BookerEmail(),
		BookerPhone:  b.BookerPhone(),
		Company:      b.Company(),
		ScheduledAt:  b.ScheduledAt(),
		Timezone:     b.Timezone(),
		AssigneeID:   b.AssigneeID(),
		Status:       b.Status().String(),
		EventID:      b.EventID(),
		CancelReason: b.CancelReason(),
		CreatedAt:    b.CreatedAt(),
		UpdatedAt:    b.UpdatedAt(),
	}
}

func EventViewFromEntity(e *booking.CalendarEvent) *EventView {
	return &EventView{
		ID:       e.ID,
		OwnerID:  e.OwnerID,
		Title:    e.Title,
		StartsAt: e.StartsAt,
		EndsAt:   e.EndsAt,
		Status:   e.Status.String(),
	}
}
