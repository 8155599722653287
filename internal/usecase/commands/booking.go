package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/internal/domain/schedule"
	"github.com/hificopy/axolopcrm-sub008/internal/infra"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/clock"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/errs"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrLinkNotFound            = errs.New("booking link not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrOutOfWindow             = errs.New("scheduled time outside bookable window")
	ErrOutsideHours            = errs.New("scheduled time outside open hours")
	ErrSlotTaken               = errs.New("slot no longer available")
	ErrLimitReached            = errs.New("booking limit reached")
	ErrAssignmentFailed        = errs.New("no eligible assignee")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	Slug        string
	Name        string
	Email       string
	Phone       *string
	Company     *string
	ScheduledAt time.Time
	Timezone    string
}

type CreateBookingResult struct {
	Booking *queries.BookingView
	Event   *queries.EventView
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, reason *string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow         shared.UnitOfWork
	invalidator AvailabilityInvalidator
	clock       clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	invalidator AvailabilityInvalidator,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:         uow,
		invalidator: invalidator,
		clock:       clk,
	}
}

func (u *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error) {
	now := u.clock.Now()

	link, err := u.findActiveLink(ctx, u.uow.CommandReads(), params.Slug)
	if err != nil {
		return nil, err
	}

	start := params.ScheduledAt
	end := start.Add(link.Duration())

	if start.Before(link.EarliestStart(now)) || !link.WithinWindow(now, start) {
		return nil, ErrOutOfWindow
	}
	if !withinOpenHours(link, start) {
		return nil, ErrOutsideHours
	}

	var newBooking *booking.Booking
	var event *booking.CalendarEvent

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Rotation and load state come from the link's booking history,
		// so the history read and the commit must be serialized per link:
		// without this lock two concurrent round-robin bookings both see
		// the same last assignee and resolve the same member twice.
		if lockErr := tx.LockLink(ctx, link.ID()); lockErr != nil {
			return errs.Mark(lockErr, ErrDatabaseOperationFailed)
		}

		assignee, fellBack, resolveErr := u.resolveAssignee(ctx, tx.Reads(), link, start)
		if resolveErr != nil {
			return resolveErr
		}

		b, newErr := booking.NewBooking(
			link,
			booking.BookerDetails{
				Name:    params.Name,
				Email:   params.Email,
				Phone:   params.Phone,
				Company: params.Company,
			},
			start,
			params.Timezone,
			assignee,
			now,
		)
		if newErr != nil {
			return errs.Mark(newErr, ErrDomainValidation)
		}
		newBooking = b

		event = booking.NewCalendarEvent(assignee, newBooking.ID(), link.Name()+" with "+newBooking.BookerName(), start, end)
		newBooking.AttachEvent(event.ID)

		// Serialize commits per assignee so two requests for the same slot
		// cannot both pass the checks below. Members can be shared across
		// links, so the link lock alone does not cover this.
		if lockErr := tx.LockAssignee(ctx, assignee); lockErr != nil {
			return errs.Mark(lockErr, ErrDatabaseOperationFailed)
		}

		busy, readErr := tx.Reads().BusyIntervals(ctx, []uuid.UUID{assignee}, start, end)
		if readErr != nil {
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}
		for _, b := range busy {
			if schedule.Overlaps(start, end, b.Start, b.End) {
				return ErrSlotTaken
			}
		}

		if limitErr := u.checkLimits(ctx, tx.Reads(), link, start); limitErr != nil {
			return limitErr
		}

		if createErr := tx.Bookings().Create(ctx, tx.DB(), newBooking); createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		if createErr := tx.Events().Create(ctx, tx.DB(), event); createErr != nil {
			// Unique index on (owner, starts_at) is the storage-level
			// backstop behind the advisory lock.
			if infra.IsKind(createErr, infra.KindConflict) {
				return ErrSlotTaken
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}

		if outboxErr := u.enqueueNotification(ctx, tx, "booking_confirmed", newBooking.ID(), event.ID); outboxErr != nil {
			return errs.Mark(outboxErr, ErrDatabaseOperationFailed)
		}

		meta, _ := json.Marshal(map[string]any{
			"slug":           link.Slug(),
			"assignee_id":    assignee,
			"owner_fallback": fellBack,
		})
		if auditErr := tx.Audit().Append(ctx, tx.DB(), newBooking.BookerEmail(), "booking.created", newBooking.ID(), meta); auditErr != nil {
			return errs.Mark(auditErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.invalidateAvailability(ctx, link.Slug())

	return &CreateBookingResult{
		Booking: queries.BookingViewFromEntity(newBooking),
		Event:   queries.EventViewFromEntity(event),
	}, nil
}

func (u *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, reason *string) (*queries.BookingView, error) {
	var view *queries.BookingView
	var slug string

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if link, linkErr := tx.Reads().LinkByID(ctx, b.LinkID()); linkErr == nil {
			slug = link.Slug()
		}

		if !b.Cancel(reason) {
			// Already cancelled: report the existing state, write nothing.
			view = queries.BookingViewFromEntity(b)
			return nil
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b.ID(), booking.StatusCancelled, b.CancelReason()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if b.EventID() != nil {
			if err := tx.Events().CancelByID(ctx, tx.DB(), *b.EventID()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		var eventID uuid.UUID
		if b.EventID() != nil {
			eventID = *b.EventID()
		}
		if err := u.enqueueNotification(ctx, tx, "booking_cancelled", b.ID(), eventID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		meta, _ := json.Marshal(map[string]any{"reason": reason})
		if err := tx.Audit().Append(ctx, tx.DB(), b.BookerEmail(), "booking.cancelled", b.ID(), meta); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		view = queries.BookingViewFromEntity(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if slug != "" {
		u.invalidateAvailability(ctx, slug)
	}
	return view, nil
}

func (u *bookingCommandsImpl) findActiveLink(ctx context.Context, reads shared.CommandReads, slug string) (*booking.Link, error) {
	link, err := reads.LinkBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !link.IsActive() {
		return nil, ErrLinkNotFound
	}
	return link, nil
}

// resolveAssignee branches on the link's policy; rotation and load state
// are derived from persisted history, so the caller must hold the link
// lock for concurrent bookings to agree on the rotation position.
// An empty eligible list under a multi-person policy falls back to the
// link owner rather than failing the booking.
func (u *bookingCommandsImpl) resolveAssignee(ctx context.Context, reads shared.CommandReads, link *booking.Link, scheduledAt time.Time) (uuid.UUID, bool, error) {
	switch link.Policy() {
	case booking.PolicyOwner:
		return link.OwnerID(), false, nil

	case booking.PolicyRoundRobin:
		members := link.MemberIDs()
		if len(members) == 0 {
			u.logOwnerFallback(link)
			return link.OwnerID(), true, nil
		}
		last, err := reads.LastAssignee(ctx, link.ID())
		if err != nil {
			return uuid.Nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		next, ok := schedule.NextRoundRobin(members, last)
		if !ok {
			return uuid.Nil, false, ErrAssignmentFailed
		}
		return next, false, nil

	case booking.PolicyLoadBalanced:
		members := link.MemberIDs()
		if len(members) == 0 {
			u.logOwnerFallback(link)
			return link.OwnerID(), true, nil
		}
		weekStart, weekEnd := schedule.WeekBounds(scheduledAt.In(link.Location()))
		counts, err := reads.WeekEventCounts(ctx, members, weekStart, weekEnd)
		if err != nil {
			return uuid.Nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		least, ok := schedule.LeastLoaded(members, counts)
		if !ok {
			return uuid.Nil, false, ErrAssignmentFailed
		}
		return least, false, nil

	default:
		return uuid.Nil, false, ErrAssignmentFailed
	}
}

// checkLimits re-runs the day/week cap counts inside the commit
// transaction. The availability query already filtered on them, but the
// counts may have moved between offer and commit.
func (u *bookingCommandsImpl) checkLimits(ctx context.Context, reads shared.CommandReads, link *booking.Link, scheduledAt time.Time) error {
	local := scheduledAt.In(link.Location())

	if limit := link.MaxPerDay(); limit != nil {
		dayStart, dayEnd := schedule.DayBounds(local)
		count, err := reads.BookingCount(ctx, link.ID(), dayStart, dayEnd)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if count >= *limit {
			return ErrLimitReached
		}
	}
	if limit := link.MaxPerWeek(); limit != nil {
		weekStart, weekEnd := schedule.WeekBounds(local)
		count, err := reads.BookingCount(ctx, link.ID(), weekStart, weekEnd)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if count >= *limit {
			return ErrLimitReached
		}
	}
	return nil
}

func withinOpenHours(link *booking.Link, start time.Time) bool {
	local := start.In(link.Location())
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, link.Location())

	startMin := int(local.Sub(midnight) / time.Minute)
	endMin := startMin + link.DurationMin()

	for _, r := range link.Hours().ForDay(local.Weekday()) {
		if startMin >= r.Start && endMin <= r.End {
			return true
		}
	}
	return false
}

func (u *bookingCommandsImpl) enqueueNotification(ctx context.Context, tx shared.Tx, topic string, bookingID, eventID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"event_id":   eventID,
		"type":       topic,
	})
	if err != nil {
		return err
	}
	return tx.Outbox().CreateJob(ctx, tx.DB(), "email", topic, payload, u.clock.Now())
}

func (u *bookingCommandsImpl) invalidateAvailability(ctx context.Context, slug string) {
	if u.invalidator == nil {
		return
	}
	if err := u.invalidator.Invalidate(ctx, slug); err != nil {
		slog.Warn("failed to invalidate availability cache", "slug", slug, "error", err.Error())
	}
}

func (u *bookingCommandsImpl) logOwnerFallback(link *booking.Link) {
	slog.Warn("assignment policy has no eligible members, falling back to owner",
		"link_id", link.ID().String(),
		"policy", link.Policy().String())
}
