package repository

import (
	"context"
	"encoding/json"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/internal/infra"
)

type LinkRepository struct{}

func NewLinkRepository() *LinkRepository {
	return &LinkRepository{}
}

const insertLinkSQL = `
INSERT INTO booking_links (
	id, slug, owner_id, name, duration_min, hours, timezone,
	buffer_before_min, buffer_after_min, min_notice_hours, max_advance_days,
	policy, member_ids, max_per_day, max_per_week, active
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
)`

func (r *LinkRepository) Create(ctx context.Context, db infra.DBTX, link *booking.Link) error {
	hours, memberIDs, err := encodeLinkJSON(link)
	if err != nil {
		return infra.WrapRepoErr("failed to encode link", err)
	}

	_, err = db.Exec(ctx, insertLinkSQL,
		link.ID(), link.Slug(), link.OwnerID(), link.Name(), link.DurationMin(),
		hours, link.Timezone(),
		link.BufferBefore(), link.BufferAfter(), link.MinNoticeHours(), link.MaxAdvanceDays(),
		link.Policy().String(), memberIDs, link.MaxPerDay(), link.MaxPerWeek(), link.IsActive(),
	)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return infra.WrapRepoErr("slug already taken", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create link", err)
	}
	return nil
}

const updateLinkSQL = `
UPDATE booking_links SET
	name = $2, duration_min = $3, hours = $4, timezone = $5,
	buffer_before_min = $6, buffer_after_min = $7,
	min_notice_hours = $8, max_advance_days = $9,
	policy = $10, member_ids = $11, max_per_day = $12, max_per_week = $13,
	active = $14, updated_at = now()
WHERE id = $1`

func (r *LinkRepository) Update(ctx context.Context, db infra.DBTX, link *booking.Link) error {
	hours, memberIDs, err := encodeLinkJSON(link)
	if err != nil {
		return infra.WrapRepoErr("failed to encode link", err)
	}

	tag, err := db.Exec(ctx, updateLinkSQL,
		link.ID(), link.Name(), link.DurationMin(), hours, link.Timezone(),
		link.BufferBefore(), link.BufferAfter(),
		link.MinNoticeHours(), link.MaxAdvanceDays(),
		link.Policy().String(), memberIDs, link.MaxPerDay(), link.MaxPerWeek(),
		link.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update link", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("link not found", nil, infra.KindNotFound)
	}
	return nil
}

func encodeLinkJSON(link *booking.Link) (hours, memberIDs []byte, err error) {
	hours, err = json.Marshal(link.Hours())
	if err != nil {
		return nil, nil, err
	}
	memberIDs, err = json.Marshal(link.MemberIDs())
	if err != nil {
		return nil, nil, err
	}
	return hours, memberIDs, nil
}
