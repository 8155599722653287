package queries

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/internal/domain/schedule"
	"github.com/hificopy/axolopcrm-sub008/internal/infra"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/clock"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrLinkNotFound    = errs.New("booking link not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrInvalidDate     = errs.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTimezone = errs.New("unknown timezone")
	ErrQueryFailed     = errs.New("query failed")
)

const dateLayout = "2006-01-02"

// LinkReadStore is the read side for links. Implementations reconstruct
// the domain entity so policy and window logic stay in one place.
type LinkReadStore interface {
	BySlug(ctx context.Context, slug string) (*booking.Link, error)
	ByID(ctx context.Context, id uuid.UUID) (*booking.Link, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*LinkView, error)
}

type BookingReadStore interface {
	ViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByLink(ctx context.Context, linkID uuid.UUID) ([]*BookingView, error)
	// CountForLink counts non-cancelled bookings scheduled in [from, to).
	CountForLink(ctx context.Context, linkID uuid.UUID, from, to time.Time) (int, error)
}

type BusyReadStore interface {
	// BusyIntervals projects active calendar events for the given owners
	// overlapping [from, to).
	BusyIntervals(ctx context.Context, ownerIDs []uuid.UUID, from, to time.Time) ([]schedule.BusyInterval, error)
}

// AvailabilityCache is a short-TTL cache for computed slot lists.
// A nil-slice, nil-error return means miss.
type AvailabilityCache interface {
	Get(ctx context.Context, key string) ([]SlotView, error)
	Set(ctx context.Context, key string, slots []SlotView) error
	Invalidate(ctx context.Context, slug string) error
}

type AvailabilityQueries interface {
	// Get runs slot generation, overlap filtering and limit enforcement
	// for one day of one link. A day outside the link's bookable window
	// is a success with zero slots, not an error.
	Get(ctx context.Context, slug, date, tz string) ([]SlotView, error)
}

type availabilityQueriesImpl struct {
	links       LinkReadStore
	bookings    BookingReadStore
	busy        BusyReadStore
	cache       AvailabilityCache
	clock       clock.Clock
	stepMinutes int
}

func NewAvailabilityQueries(
	links LinkReadStore,
	bookings BookingReadStore,
	busy BusyReadStore,
	cache AvailabilityCache,
	clk clock.Clock,
	stepMinutes int,
) AvailabilityQueries {
	if stepMinutes <= 0 {
		stepMinutes = schedule.DefaultStepMinutes
	}
	return &availabilityQueriesImpl{
		links:       links,
		bookings:    bookings,
		busy:        busy,
		cache:       cache,
		clock:       clk,
		stepMinutes: stepMinutes,
	}
}

func (q *availabilityQueriesImpl) Get(ctx context.Context, slug, date, tz string) ([]SlotView, error) {
	link, err := q.links.BySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	if !link.IsActive() {
		return nil, ErrLinkNotFound
	}

	displayLoc := link.Location()
	if tz != "" {
		loc, locErr := time.LoadLocation(tz)
		if locErr != nil {
			return nil, ErrInvalidTimezone
		}
		displayLoc = loc
	}

	// The requested date names a calendar day of the link's reference
	// zone; only the display of the resulting slots follows the caller's
	// timezone.
	day, err := time.ParseInLocation(dateLayout, date, link.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}

	cacheKey := availabilityCacheKey(slug, date, displayLoc.String())
	if cached := q.cacheGet(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	slots, err := q.compute(ctx, link, day, displayLoc)
	if err != nil {
		return nil, err
	}

	q.cacheSet(ctx, cacheKey, slots)
	return slots, nil
}

func (q *availabilityQueriesImpl) compute(ctx context.Context, link *booking.Link, day time.Time, displayLoc *time.Location) ([]SlotView, error) {
	now := q.clock.Now()
	if !link.WithinWindow(now, day) {
		return []SlotView{}, nil
	}

	candidates := schedule.GenerateSlots(
		day,
		link.Hours().ForDay(day.In(link.Location()).Weekday()),
		link.Duration(),
		time.Duration(q.stepMinutes)*time.Minute,
		link.Location(),
	)

	// A day can straddle the notice boundary; drop the starts that are
	// already too close.
	earliest := link.EarliestStart(now)
	candidates = trimBefore(candidates, earliest)
	if len(candidates) == 0 {
		return []SlotView{}, nil
	}

	busy, err := q.busy.BusyIntervals(ctx, targetCalendars(link), candidates[0].Start, candidates[len(candidates)-1].End)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	available := schedule.FilterAvailable(candidates, busy)

	available, err = q.applyLimits(ctx, available, link, day)
	if err != nil {
		return nil, err
	}

	views := make([]SlotView, len(available))
	for i, s := range available {
		start := s.Start.In(displayLoc)
		views[i] = SlotView{
			Start:    start,
			End:      s.End.In(displayLoc),
			Label:    start.Format("3:04 PM"),
			Timezone: displayLoc.String(),
		}
	}
	return views, nil
}

// applyLimits closes the whole day once a configured cap is met: day cap
// first, then week cap. No partial trimming.
func (q *availabilityQueriesImpl) applyLimits(ctx context.Context, slots []schedule.CandidateSlot, link *booking.Link, day time.Time) ([]schedule.CandidateSlot, error) {
	if link.MaxPerDay() == nil && link.MaxPerWeek() == nil {
		return slots, nil
	}
	local := day.In(link.Location())

	if limit := link.MaxPerDay(); limit != nil {
		dayStart, dayEnd := schedule.DayBounds(local)
		count, err := q.bookings.CountForLink(ctx, link.ID(), dayStart, dayEnd)
		if err != nil {
			return nil, errs.Mark(err, ErrQueryFailed)
		}
		if count >= *limit {
			return []schedule.CandidateSlot{}, nil
		}
	}
	if limit := link.MaxPerWeek(); limit != nil {
		weekStart, weekEnd := schedule.WeekBounds(local)
		count, err := q.bookings.CountForLink(ctx, link.ID(), weekStart, weekEnd)
		if err != nil {
			return nil, errs.Mark(err, ErrQueryFailed)
		}
		if count >= *limit {
			return []schedule.CandidateSlot{}, nil
		}
	}
	return slots, nil
}

// targetCalendars lists the calendars whose events block a slot. A slot
// is only offered when every calendar that could receive the booking is
// free for it.
func targetCalendars(link *booking.Link) []uuid.UUID {
	if link.Policy().MultiPerson() && len(link.MemberIDs()) > 0 {
		return link.MemberIDs()
	}
	return []uuid.UUID{link.OwnerID()}
}

func trimBefore(slots []schedule.CandidateSlot, earliest time.Time) []schedule.CandidateSlot {
	for i, s := range slots {
		if !s.Start.Before(earliest) {
			return slots[i:]
		}
	}
	return nil
}

func (q *availabilityQueriesImpl) cacheGet(ctx context.Context, key string) []SlotView {
	if q.cache == nil {
		return nil
	}
	slots, err := q.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("availability cache read failed", "key", key, "error", err.Error())
		return nil
	}
	return slots
}

func (q *availabilityQueriesImpl) cacheSet(ctx context.Context, key string, slots []SlotView) {
	if q.cache == nil {
		return
	}
	if err := q.cache.Set(ctx, key, slots); err != nil {
		slog.Warn("availability cache write failed", "key", key, "error", err.Error())
	}
}

func availabilityCacheKey(slug, date, tz string) string {
	return fmt.Sprintf("availability:%s:%s:%s", slug, date, tz)
}
