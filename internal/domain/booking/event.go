package booking

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEvent is the assignee-owned calendar row backing a booking.
// Events for a user are the source of the busy-interval projection that
// availability filtering reads. The storage layer enforces uniqueness on
// (owner, start) for active events, which is what turns a lost booking
// race into a conflict instead of a double booking.
type CalendarEvent struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	BookingID uuid.UUID
	Title     string
	StartsAt  time.Time
	EndsAt    time.Time
	Status    Status
	CreatedAt time.Time
}

func NewCalendarEvent(ownerID, bookingID uuid.UUID, title string, startsAt, endsAt time.Time) *CalendarEvent {
	return &CalendarEvent{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		BookingID: bookingID,
		Title:     title,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		Status:    StatusConfirmed,
	}
}
