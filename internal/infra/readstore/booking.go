package readstore

import (
	"context"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/internal/infra"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const selectBookingColumns = `
	id, link_id, booker_name, booker_email, booker_phone, company,
	scheduled_at, timezone, assignee_id, status, event_id, cancel_reason,
	created_at, updated_at`

func (s *BookingReadStore) ViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return queries.BookingViewFromEntity(b), nil
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := s.db.QueryRow(ctx, `SELECT`+selectBookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return b, nil
}

func (s *BookingReadStore) ListByLink(ctx context.Context, linkID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT`+selectBookingColumns+` FROM bookings WHERE link_id = $1 ORDER BY scheduled_at DESC`, linkID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by link", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		b, scanErr := scanBooking(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", scanErr)
		}
		views = append(views, queries.BookingViewFromEntity(b))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func (s *BookingReadStore) CountForLink(ctx context.Context, linkID uuid.UUID, from, to time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings
		 WHERE link_id = $1 AND status <> 'cancelled'
		   AND scheduled_at >= $2 AND scheduled_at < $3`,
		linkID, from, to).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return count, nil
}

// LastAssignee returns the assignee of the newest booking on the link, or
// nil when the link has never been booked. Cancelled bookings still count:
// rotation position is about who was offered last, not who showed up.
func (s *BookingReadStore) LastAssignee(ctx context.Context, linkID uuid.UUID) (*uuid.UUID, error) {
	var assignee uuid.UUID
	err := s.db.QueryRow(ctx,
		`SELECT assignee_id FROM bookings WHERE link_id = $1 ORDER BY created_at DESC LIMIT 1`,
		linkID).Scan(&assignee)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find last assignee", err)
	}
	return &assignee, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, linkID, assigneeID            uuid.UUID
		name, email, timezone, status     string
		phone, company, cancelReason      *string
		eventID                           *uuid.UUID
		scheduledAt, createdAt, updatedAt time.Time
	)
	err := row.Scan(
		&id, &linkID, &name, &email, &phone, &company,
		&scheduledAt, &timezone, &assigneeID, &status, &eventID, &cancelReason,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, linkID,
		booking.BookerDetails{Name: name, Email: email, Phone: phone, Company: company},
		scheduledAt, timezone, assigneeID,
		booking.Status(status), eventID, cancelReason,
		createdAt, updatedAt,
	), nil
}
