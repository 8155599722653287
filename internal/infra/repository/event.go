package repository

import (
	"context"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/internal/infra"

	"github.com/google/uuid"
)

type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

const insertEventSQL = `
INSERT INTO calendar_events (id, owner_id, booking_id, title, starts_at, ends_at, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *EventRepository) Create(ctx context.Context, db infra.DBTX, e *booking.CalendarEvent) error {
	_, err := db.Exec(ctx, insertEventSQL,
		e.ID, e.OwnerID, e.BookingID, e.Title, e.StartsAt, e.EndsAt, e.Status.String(),
	)
	if err != nil {
		// The partial unique index on (owner_id, starts_at) fires when a
		// concurrent booking won the same instant.
		if infra.IsUniqueViolation(err) {
			return infra.WrapRepoErr("calendar slot already taken", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create calendar event", err)
	}
	return nil
}

const cancelEventSQL = `
UPDATE calendar_events SET status = 'cancelled' WHERE id = $1`

func (r *EventRepository) CancelByID(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, cancelEventSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel calendar event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("calendar event not found", nil, infra.KindNotFound)
	}
	return nil
}
