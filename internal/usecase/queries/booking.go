package queries

import (
	"context"

	"github.com/hificopy/axolopcrm-sub008/internal/infra"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListByLink lists bookings for a link, restricted to its owner.
	ListByLink(ctx context.Context, ownerID, linkID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	links    LinkReadStore
}

func NewBookingQueries(bookings BookingReadStore, links LinkReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, links: links}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.ViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByLink(ctx context.Context, ownerID, linkID uuid.UUID) ([]*BookingView, error) {
	link, err := q.links.ByID(ctx, linkID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	if link.OwnerID() != ownerID {
		return nil, ErrLinkNotFound
	}

	views, err := q.bookings.ListByLink(ctx, linkID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
