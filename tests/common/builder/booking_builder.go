//go:build unit || e2e

package builder

import (
	"time"

	dombooking "github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	reqdto "github.com/hificopy/axolopcrm-sub008/internal/handler/dto/request"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	LinkID      uuid.UUID
	BookerName  string
	BookerEmail string
	BookerPhone *string
	Company     *string
	ScheduledAt time.Time
	Timezone    string
	AssigneeID  uuid.UUID
	Status      dombooking.Status
	EventID     *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:          uuid.New(),
		LinkID:      uuid.New(),
		BookerName:  "Ada Lovelace",
		BookerEmail: "ada@example.com",
		ScheduledAt: now.Add(48 * time.Hour).Truncate(time.Hour),
		Timezone:    "UTC",
		AssigneeID:  uuid.New(),
		Status:      dombooking.StatusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods

func (b *BookingBuilder) BuildDomain(link *dombooking.Link, now time.Time) (*dombooking.Booking, error) {
	return dombooking.NewBooking(
		link,
		dombooking.BookerDetails{
			Name:    b.BookerName,
			Email:   b.BookerEmail,
			Phone:   b.BookerPhone,
			Company: b.Company,
		},
		b.ScheduledAt,
		b.Timezone,
		b.AssigneeID,
		now,
	)
}

func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		b.ID, b.LinkID,
		dombooking.BookerDetails{
			Name:    b.BookerName,
			Email:   b.BookerEmail,
			Phone:   b.BookerPhone,
			Company: b.Company,
		},
		b.ScheduledAt,
		b.Timezone,
		b.AssigneeID,
		b.Status,
		b.EventID,
		nil,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Name:        b.BookerName,
		Email:       b.BookerEmail,
		Phone:       b.BookerPhone,
		Company:     b.Company,
		ScheduledAt: b.ScheduledAt,
		Timezone:    b.Timezone,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		LinkID:      b.LinkID,
		BookerName:  b.BookerName,
		BookerEmail: b.BookerEmail,
		BookerPhone: b.BookerPhone,
		Company:     b.Company,
		ScheduledAt: b.ScheduledAt,
		Timezone:    b.Timezone,
		AssigneeID:  b.AssigneeID,
		Status:      b.Status.String(),
		EventID:     b.EventID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// Fluent builder methods

func (b *BookingBuilder) WithLinkID(linkID uuid.UUID) *BookingBuilder {
	b.LinkID = linkID
	return b
}

func (b *BookingBuilder) WithBookerName(name string) *BookingBuilder {
	b.BookerName = name
	return b
}

func (b *BookingBuilder) WithBookerEmail(email string) *BookingBuilder {
	b.BookerEmail = email
	return b
}

func (b *BookingBuilder) WithScheduledAt(t time.Time) *BookingBuilder {
	b.ScheduledAt = t
	return b
}

func (b *BookingBuilder) WithTimezone(tz string) *BookingBuilder {
	b.Timezone = tz
	return b
}

func (b *BookingBuilder) WithAssigneeID(id uuid.UUID) *BookingBuilder {
	b.AssigneeID = id
	return b
}

func (b *BookingBuilder) WithEventID(id uuid.UUID) *BookingBuilder {
	b.EventID = &id
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = dombooking.StatusCancelled
	return b
}
