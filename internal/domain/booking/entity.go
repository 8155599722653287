package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBookerName  = errors.New("booker name cannot be empty")
	ErrEmptyBookerEmail = errors.New("booker email cannot be empty")
	ErrNoAssignee       = errors.New("booking must have an assignee")
	ErrPastScheduleTime = errors.New("scheduled time cannot be in the past")
)

// Booking is a confirmed appointment taken through a link. Bookings are never
// deleted; cancellation is the only mutation.
type Booking struct {
	id           uuid.UUID
	linkID       uuid.UUID
	bookerName   string
	bookerEmail  string
	bookerPhone  *string
	company      *string
	scheduledAt  time.Time
	timezone     string
	assigneeID   uuid.UUID
	status       Status
	eventID      *uuid.UUID
	cancelReason *string
	createdAt    time.Time
	updatedAt    time.Time
}

type BookerDetails struct {
	Name    string
	Email   string
	Phone   *string
	Company *string
}

func NewBooking(
	link *Link,
	details BookerDetails,
	scheduledAt time.Time,
	timezone string,
	assigneeID uuid.UUID,
	now time.Time,
) (*Booking, error) {
	name := strings.TrimSpace(details.Name)
	if name == "" {
		return nil, ErrEmptyBookerName
	}
	email := strings.TrimSpace(details.Email)
	if email == "" {
		return nil, ErrEmptyBookerEmail
	}
	if assigneeID == uuid.Nil {
		return nil, ErrNoAssignee
	}
	if scheduledAt.Before(now) {
		return nil, ErrPastScheduleTime
	}

	return &Booking{
		id:          uuid.New(),
		linkID:      link.ID(),
		bookerName:  name,
		bookerEmail: email,
		bookerPhone: details.Phone,
		company:     details.Company,
		scheduledAt: scheduledAt,
		timezone:    timezone,
		assigneeID:  assigneeID,
		status:      StatusConfirmed,
	}, nil
}

func ReconstructBooking(
	id, linkID uuid.UUID,
	details BookerDetails,
	scheduledAt time.Time,
	timezone string,
	assigneeID uuid.UUID,
	status Status,
	eventID *uuid.UUID,
	cancelReason *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		linkID:       linkID,
		bookerName:   details.Name,
		bookerEmail:  details.Email,
		bookerPhone:  details.Phone,
		company:      details.Company,
		scheduledAt:  scheduledAt,
		timezone:     timezone,
		assigneeID:   assigneeID,
		status:       status,
		eventID:      eventID,
		cancelReason: cancelReason,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) LinkID() uuid.UUID      { return b.linkID }
func (b *Booking) BookerName() string     { return b.bookerName }
func (b *Booking) BookerEmail() string    { return b.bookerEmail }
func (b *Booking) BookerPhone() *string   { return b.bookerPhone }
func (b *Booking) Company() *string       { return b.company }
func (b *Booking) ScheduledAt() time.Time { return b.scheduledAt }
func (b *Booking) Timezone() string       { return b.timezone }
func (b *Booking) AssigneeID() uuid.UUID  { return b.assigneeID }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) EventID() *uuid.UUID    { return b.eventID }
func (b *Booking) CancelReason() *string  { return b.cancelReason }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) AttachEvent(eventID uuid.UUID) {
	id := eventID
	b.eventID = &id
}

// Cancel marks the booking cancelled. Cancelling an already-cancelled
// booking is a no-op, not an error; the final state is identical either way.
func (b *Booking) Cancel(reason *string) bool {
	if b.status == StatusCancelled {
		return false
	}
	b.status = StatusCancelled
	b.cancelReason = reason
	return true
}
