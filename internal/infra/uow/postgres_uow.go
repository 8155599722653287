package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/internal/domain/schedule"
	"github.com/hificopy/axolopcrm-sub008/internal/infra"
	"github.com/hificopy/axolopcrm-sub008/internal/infra/readstore"
	"github.com/hificopy/axolopcrm-sub008/internal/infra/repository"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/errs"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx infra.DBTX

	// Lazy-initialized repositories
	linkRepo     shared.LinkRepository
	bookingRepo  shared.BookingRepository
	eventRepo    shared.EventRepository
	outboxRepo   shared.OutboxRepository
	auditRepo    shared.AuditRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() infra.DBTX {
	return t.dbtx
}

func (t *pgTx) Links() shared.LinkRepository {
	if t.linkRepo == nil {
		t.linkRepo = repository.NewLinkRepository()
	}
	return t.linkRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository()
	}
	return t.bookingRepo
}

func (t *pgTx) Events() shared.EventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewEventRepository()
	}
	return t.eventRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository()
	}
	return t.outboxRepo
}

func (t *pgTx) Audit() shared.AuditRepository {
	if t.auditRepo == nil {
		t.auditRepo = repository.NewAuditRepository()
	}
	return t.auditRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.dbtx)
	}
	return t.commandReads
}

// LockLink takes a transaction-scoped advisory lock keyed on the link.
// Released automatically at commit or rollback.
func (t *pgTx) LockLink(ctx context.Context, linkID uuid.UUID) error {
	if err := t.advisoryLock(ctx, linkID); err != nil {
		return infra.WrapRepoErr("failed to acquire link lock", err)
	}
	return nil
}

// LockAssignee takes a transaction-scoped advisory lock keyed on the
// assignee. Released automatically at commit or rollback.
func (t *pgTx) LockAssignee(ctx context.Context, assigneeID uuid.UUID) error {
	if err := t.advisoryLock(ctx, assigneeID); err != nil {
		return infra.WrapRepoErr("failed to acquire assignee lock", err)
	}
	return nil
}

func (t *pgTx) advisoryLock(ctx context.Context, key uuid.UUID) error {
	_, err := t.dbtx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`,
		key.String())
	return err
}

// commandReads binds the write side's validation reads to a DBTX: the pool
// outside a transaction, the open transaction inside one.
type commandReads struct {
	links    *readstore.LinkReadStore
	bookings *readstore.BookingReadStore
	busy     *readstore.BusyReadStore
}

func newCommandReads(dbtx infra.DBTX) shared.CommandReads {
	return &commandReads{
		links:    readstore.NewLinkReadStore(dbtx),
		bookings: readstore.NewBookingReadStore(dbtx),
		busy:     readstore.NewBusyReadStore(dbtx),
	}
}

func (r *commandReads) LinkBySlug(ctx context.Context, slug string) (*booking.Link, error) {
	return r.links.BySlug(ctx, slug)
}

func (r *commandReads) LinkByID(ctx context.Context, id uuid.UUID) (*booking.Link, error) {
	return r.links.ByID(ctx, id)
}

func (r *commandReads) SlugExists(ctx context.Context, slug string) (bool, error) {
	return r.links.SlugExists(ctx, slug)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.bookings.FindByID(ctx, id)
}

func (r *commandReads) BookingCount(ctx context.Context, linkID uuid.UUID, from, to time.Time) (int, error) {
	return r.bookings.CountForLink(ctx, linkID, from, to)
}

func (r *commandReads) LastAssignee(ctx context.Context, linkID uuid.UUID) (*uuid.UUID, error) {
	return r.bookings.LastAssignee(ctx, linkID)
}

func (r *commandReads) BusyIntervals(ctx context.Context, ownerIDs []uuid.UUID, from, to time.Time) ([]schedule.BusyInterval, error) {
	return r.busy.BusyIntervals(ctx, ownerIDs, from, to)
}

func (r *commandReads) WeekEventCounts(ctx context.Context, ownerIDs []uuid.UUID, weekStart, weekEnd time.Time) (map[uuid.UUID]int, error) {
	return r.busy.WeekEventCounts(ctx, ownerIDs, weekStart, weekEnd)
}
