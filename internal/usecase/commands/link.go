package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/internal/domain/schedule"
	"github.com/hificopy/axolopcrm-sub008/internal/infra"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/errs"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/shared"

	"github.com/google/uuid"
	slugify "github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	ErrForbidden      = errs.New("link does not belong to the caller")
	ErrSlugExhausted  = errs.New("could not allocate a unique slug")
	ErrLinkValidation = errs.New("link validation error")
)

const (
	slugSuffixLen      = 6
	slugAllocAttempts  = 3
	slugSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

type CreateLinkParams struct {
	Name           string
	DurationMin    int
	Hours          schedule.WeeklyHours
	Timezone       string
	BufferBefore   int
	BufferAfter    int
	MinNoticeHours int
	MaxAdvanceDays int
	Policy         booking.Policy
	MemberIDs      []uuid.UUID
	MaxPerDay      *int
	MaxPerWeek     *int
}

type UpdateLinkParams struct {
	Name            *string
	DurationMin     *int
	Hours           schedule.WeeklyHours // nil keeps current
	Timezone        *string
	BufferBefore    *int
	BufferAfter     *int
	MinNoticeHours  *int
	MaxAdvanceDays  *int
	Policy          *booking.Policy
	MemberIDs       []uuid.UUID // nil keeps current
	MaxPerDay       *int
	ClearMaxPerDay  bool
	MaxPerWeek      *int
	ClearMaxPerWeek bool
}

type LinkCommands interface {
	CreateLink(ctx context.Context, ownerID uuid.UUID, params CreateLinkParams) (*queries.LinkView, error)
	UpdateLink(ctx context.Context, ownerID, linkID uuid.UUID, params UpdateLinkParams) (*queries.LinkView, error)
	DeactivateLink(ctx context.Context, ownerID, linkID uuid.UUID) error
}

type linkCommandsImpl struct {
	uow         shared.UnitOfWork
	invalidator AvailabilityInvalidator
}

func NewLinkCommands(uow shared.UnitOfWork, invalidator AvailabilityInvalidator) LinkCommands {
	return &linkCommandsImpl{uow: uow, invalidator: invalidator}
}

func (u *linkCommandsImpl) CreateLink(ctx context.Context, ownerID uuid.UUID, params CreateLinkParams) (*queries.LinkView, error) {
	linkSlug, err := u.allocateSlug(ctx, params.Name)
	if err != nil {
		return nil, err
	}

	link, err := booking.NewLink(booking.LinkParams{
		Slug:           linkSlug,
		OwnerID:        ownerID,
		Name:           params.Name,
		DurationMin:    params.DurationMin,
		Hours:          params.Hours,
		Timezone:       params.Timezone,
		BufferBefore:   params.BufferBefore,
		BufferAfter:    params.BufferAfter,
		MinNoticeHours: params.MinNoticeHours,
		MaxAdvanceDays: params.MaxAdvanceDays,
		Policy:         params.Policy,
		MemberIDs:      params.MemberIDs,
		MaxPerDay:      params.MaxPerDay,
		MaxPerWeek:     params.MaxPerWeek,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrLinkValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if createErr := tx.Links().Create(ctx, tx.DB(), link); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrSlugExhausted
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		meta, _ := json.Marshal(map[string]any{"slug": link.Slug()})
		return tx.Audit().Append(ctx, tx.DB(), ownerID.String(), "link.created", link.ID(), meta)
	})
	if err != nil {
		return nil, err
	}

	return queries.LinkViewFromEntity(link), nil
}

func (u *linkCommandsImpl) UpdateLink(ctx context.Context, ownerID, linkID uuid.UUID, params UpdateLinkParams) (*queries.LinkView, error) {
	var updated *booking.Link

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := u.ownedLink(ctx, tx.Reads(), ownerID, linkID)
		if err != nil {
			return err
		}

		merged := mergeLinkParams(current, params)
		if _, validateErr := booking.NewLink(merged); validateErr != nil {
			return errs.Mark(validateErr, ErrLinkValidation)
		}
		link := booking.ReconstructLink(current.ID(), merged, current.IsActive(), current.CreatedAt(), current.UpdatedAt())

		if err := tx.Links().Update(ctx, tx.DB(), link); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		meta, _ := json.Marshal(map[string]any{"slug": link.Slug()})
		if err := tx.Audit().Append(ctx, tx.DB(), ownerID.String(), "link.updated", link.ID(), meta); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		updated = link
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.invalidate(ctx, updated.Slug())
	return queries.LinkViewFromEntity(updated), nil
}

func (u *linkCommandsImpl) DeactivateLink(ctx context.Context, ownerID, linkID uuid.UUID) error {
	var slug string

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		link, err := u.ownedLink(ctx, tx.Reads(), ownerID, linkID)
		if err != nil {
			return err
		}
		link.Deactivate()
		if err := tx.Links().Update(ctx, tx.DB(), link); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Audit().Append(ctx, tx.DB(), ownerID.String(), "link.deactivated", link.ID(), nil); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		slug = link.Slug()
		return nil
	})
	if err != nil {
		return err
	}

	u.invalidate(ctx, slug)
	return nil
}

// allocateSlug derives a slug from the link name and resolves collisions
// with a short random suffix.
func (u *linkCommandsImpl) allocateSlug(ctx context.Context, name string) (string, error) {
	base := slugify.Make(name)
	if base == "" {
		base = "link"
	}

	candidate := base
	for attempt := 0; attempt < slugAllocAttempts; attempt++ {
		exists, err := u.uow.CommandReads().SlugExists(ctx, candidate)
		if err != nil {
			return "", errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !exists {
			return candidate, nil
		}
		suffix, err := gonanoid.Generate(slugSuffixAlphabet, slugSuffixLen)
		if err != nil {
			return "", errs.Mark(err, ErrDatabaseOperationFailed)
		}
		candidate = base + "-" + suffix
	}
	return "", ErrSlugExhausted
}

func (u *linkCommandsImpl) ownedLink(ctx context.Context, reads shared.CommandReads, ownerID, linkID uuid.UUID) (*booking.Link, error) {
	link, err := reads.LinkByID(ctx, linkID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if link.OwnerID() != ownerID {
		return nil, ErrForbidden
	}
	return link, nil
}

func (u *linkCommandsImpl) invalidate(ctx context.Context, slug string) {
	if u.invalidator == nil || slug == "" {
		return
	}
	if err := u.invalidator.Invalidate(ctx, slug); err != nil {
		// Stale cache entries expire on their own TTL.
		slog.Warn("failed to invalidate availability cache", "slug", slug, "error", err.Error())
	}
}

func mergeLinkParams(current *booking.Link, p UpdateLinkParams) booking.LinkParams {
	merged := booking.LinkParams{
		Slug:           current.Slug(),
		OwnerID:        current.OwnerID(),
		Name:           current.Name(),
		DurationMin:    current.DurationMin(),
		Hours:          current.Hours(),
		Timezone:       current.Timezone(),
		BufferBefore:   current.BufferBefore(),
		BufferAfter:    current.BufferAfter(),
		MinNoticeHours: current.MinNoticeHours(),
		MaxAdvanceDays: current.MaxAdvanceDays(),
		Policy:         current.Policy(),
		MemberIDs:      current.MemberIDs(),
		MaxPerDay:      current.MaxPerDay(),
		MaxPerWeek:     current.MaxPerWeek(),
	}

	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.DurationMin != nil {
		merged.DurationMin = *p.DurationMin
	}
	if p.Hours != nil {
		merged.Hours = p.Hours
	}
	if p.Timezone != nil {
		merged.Timezone = *p.Timezone
	}
	if p.BufferBefore != nil {
		merged.BufferBefore = *p.BufferBefore
	}
	if p.BufferAfter != nil {
		merged.BufferAfter = *p.BufferAfter
	}
	if p.MinNoticeHours != nil {
		merged.MinNoticeHours = *p.MinNoticeHours
	}
	if p.MaxAdvanceDays != nil {
		merged.MaxAdvanceDays = *p.MaxAdvanceDays
	}
	if p.Policy != nil {
		merged.Policy = *p.Policy
	}
	if p.MemberIDs != nil {
		merged.MemberIDs = p.MemberIDs
	}
	if p.MaxPerDay != nil {
		merged.MaxPerDay = p.MaxPerDay
	}
	if p.ClearMaxPerDay {
		merged.MaxPerDay = nil
	}
	if p.MaxPerWeek != nil {
		merged.MaxPerWeek = p.MaxPerWeek
	}
	if p.ClearMaxPerWeek {
		merged.MaxPerWeek = nil
	}
	return merged
}
