package repository

import (
	"context"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/internal/infra"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const insertBookingSQL = `
INSERT INTO bookings (
	id, link_id, booker_name, booker_email, booker_phone, company,
	scheduled_at, timezone, assignee_id, status, event_id
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
)`

func (r *BookingRepository) Create(ctx context.Context, db infra.DBTX, b *booking.Booking) error {
	_, err := db.Exec(ctx, insertBookingSQL,
		b.ID(), b.LinkID(), b.BookerName(), b.BookerEmail(), b.BookerPhone(), b.Company(),
		b.ScheduledAt(), b.Timezone(), b.AssigneeID(), b.Status().String(), b.EventID(),
	)
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("link does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

const updateBookingStatusSQL = `
UPDATE bookings SET status = $2, cancel_reason = $3, updated_at = now()
WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, db infra.DBTX, id uuid.UUID, status booking.Status, cancelReason *string) error {
	tag, err := db.Exec(ctx, updateBookingStatusSQL, id, status.String(), cancelReason)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
