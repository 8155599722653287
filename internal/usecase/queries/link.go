package queries

import (
	"context"

	"github.com/hificopy/axolopcrm-sub008/internal/infra"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/errs"

	"github.com/google/uuid"
)

type LinkQueries interface {
	GetBySlug(ctx context.Context, slug string) (*PublicLinkView, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*LinkView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*LinkView, error)
}

type linkQueriesImpl struct {
	store LinkReadStore
}

func NewLinkQueries(store LinkReadStore) LinkQueries {
	return &linkQueriesImpl{store: store}
}

func (q *linkQueriesImpl) GetBySlug(ctx context.Context, slug string) (*PublicLinkView, error) {
	link, err := q.store.BySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	if !link.IsActive() {
		return nil, ErrLinkNotFound
	}
	return PublicLinkViewFromEntity(link), nil
}

func (q *linkQueriesImpl) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*LinkView, error) {
	link, err := q.store.ByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	if link.OwnerID() != ownerID {
		return nil, ErrLinkNotFound
	}
	return LinkViewFromEntity(link), nil
}

func (q *linkQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*LinkView, error) {
	views, err := q.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
