package shared

import (
	"context"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/internal/domain/schedule"
	"github.com/hificopy/axolopcrm-sub008/internal/infra"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full read-write transaction with retry on serialization
	// failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: validation reads outside a transaction.
	CommandReads() CommandReads
}

type Tx interface {
	Links() LinkRepository
	Bookings() BookingRepository
	Events() EventRepository
	Outbox() OutboxRepository
	Audit() AuditRepository
	// Reads are bound to this transaction and see its uncommitted writes.
	Reads() CommandReads
	// LockLink serializes booking commits per link for the lifetime of
	// the transaction (advisory lock). Assignment resolution reads the
	// link's booking history, so it must run under this lock.
	LockLink(ctx context.Context, linkID uuid.UUID) error
	// LockAssignee serializes booking commits per assignee for the
	// lifetime of the transaction (advisory lock). Always taken after
	// the link lock to keep lock ordering consistent.
	LockAssignee(ctx context.Context, assigneeID uuid.UUID) error
	DB() infra.DBTX
}

// CommandReads are the reads the write side needs for validation and
// assignment resolution.
type CommandReads interface {
	LinkBySlug(ctx context.Context, slug string) (*booking.Link, error)
	LinkByID(ctx context.Context, id uuid.UUID) (*booking.Link, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// BookingCount counts non-cancelled bookings for a link scheduled in
	// [from, to).
	BookingCount(ctx context.Context, linkID uuid.UUID, from, to time.Time) (int, error)
	// LastAssignee returns the assignee of the most recently created
	// booking for a link, nil when the link has no booking history.
	LastAssignee(ctx context.Context, linkID uuid.UUID) (*uuid.UUID, error)
	// BusyIntervals projects active calendar events for the given owners
	// overlapping [from, to).
	BusyIntervals(ctx context.Context, ownerIDs []uuid.UUID, from, to time.Time) ([]schedule.BusyInterval, error)
	// WeekEventCounts counts active events per owner with a start in
	// [weekStart, weekEnd).
	WeekEventCounts(ctx context.Context, ownerIDs []uuid.UUID, weekStart, weekEnd time.Time) (map[uuid.UUID]int, error)
}

type LinkRepository interface {
	Create(ctx context.Context, db infra.DBTX, link *booking.Link) error
	Update(ctx context.Context, db infra.DBTX, link *booking.Link) error
}

type BookingRepository interface {
	Create(ctx context.Context, db infra.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, db infra.DBTX, id uuid.UUID, status booking.Status, cancelReason *string) error
}

type EventRepository interface {
	Create(ctx context.Context, db infra.DBTX, e *booking.CalendarEvent) error
	CancelByID(ctx context.Context, db infra.DBTX, id uuid.UUID) error
}

type OutboxRepository interface {
	CreateJob(ctx context.Context, db infra.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type AuditRepository interface {
	Append(ctx context.Context, db infra.DBTX, actor, action string, entityID uuid.UUID, metadata []byte) error
}
