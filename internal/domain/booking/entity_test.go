//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)
	link := builder.NewLinkBuilder().BuildReconstructed()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			WithScheduledAt(now.Add(48*time.Hour)).
			BuildDomain(link, now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, link.ID(), actual.LinkID())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.EventID())
	})

	t.Run("booker validation", func(t *testing.T) {
		runBookingCases(t, link, now, []bookingCase{
			{
				name:   "empty name",
				mutate: func(b *builder.BookingBuilder) { b.WithBookerName("") },
				errIs:  booking.ErrEmptyBookerName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.BookingBuilder) { b.WithBookerName("   ") },
				errIs:  booking.ErrEmptyBookerName,
			},
			{
				name:   "empty email",
				mutate: func(b *builder.BookingBuilder) { b.WithBookerEmail("") },
				errIs:  booking.ErrEmptyBookerEmail,
			},
			{
				name:   "no assignee",
				mutate: func(b *builder.BookingBuilder) { b.WithAssigneeID(uuid.Nil) },
				errIs:  booking.ErrNoAssignee,
			},
			{
				name:   "scheduled in the past",
				mutate: func(b *builder.BookingBuilder) { b.WithScheduledAt(now.Add(-time.Hour)) },
				errIs:  booking.ErrPastScheduleTime,
			},
		})
	})

	t.Run("booker name is trimmed", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			WithBookerName("  Ada Lovelace  ").
			WithScheduledAt(now.Add(time.Hour)).
			BuildDomain(link, now)
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", actual.BookerName())
	})
}

func TestBookingCancel(t *testing.T) {
	t.Run("cancelling a confirmed booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()
		reason := "booker asked"

		require.True(t, b.Cancel(&reason))

		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.False(t, b.IsActive())
		require.NotNil(t, b.CancelReason())
		assert.Equal(t, reason, *b.CancelReason())
	})

	t.Run("second cancel is a no-op", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()
		first := "first reason"
		second := "second reason"

		require.True(t, b.Cancel(&first))
		require.False(t, b.Cancel(&second))

		// State from the first cancel wins.
		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.CancelReason())
		assert.Equal(t, first, *b.CancelReason())
	})

	t.Run("cancel without a reason", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildReconstructed()

		require.True(t, b.Cancel(nil))
		assert.Nil(t, b.CancelReason())
	})
}

func TestBookingAttachEvent(t *testing.T) {
	b := builder.NewBookingBuilder().BuildReconstructed()
	eventID := uuid.New()

	b.AttachEvent(eventID)

	require.NotNil(t, b.EventID())
	assert.Equal(t, eventID, *b.EventID())
}

func TestNewCalendarEvent(t *testing.T) {
	owner := uuid.New()
	bookingID := uuid.New()
	start := time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	e := booking.NewCalendarEvent(owner, bookingID, "Intro Call with Ada", start, end)

	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, owner, e.OwnerID)
	assert.Equal(t, bookingID, e.BookingID)
	assert.Equal(t, booking.StatusConfirmed, e.Status)
	assert.Equal(t, start, e.StartsAt)
	assert.Equal(t, end, e.EndsAt)
}

func runBookingCases(t *testing.T, link *booking.Link, now time.Time, cases []bookingCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithScheduledAt(now.Add(time.Hour))
			c.mutate(b)
			actual, err := b.BuildDomain(link, now)

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
