package readstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/booking"
	"github.com/hificopy/axolopcrm-sub008/internal/domain/schedule"
	"github.com/hificopy/axolopcrm-sub008/internal/infra"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LinkReadStore struct {
	db infra.DBTX
}

func NewLinkReadStore(db infra.DBTX) *LinkReadStore {
	return &LinkReadStore{db: db}
}

const selectLinkColumns = `
	id, slug, owner_id, name, duration_min, hours, timezone,
	buffer_before_min, buffer_after_min, min_notice_hours, max_advance_days,
	policy, member_ids, max_per_day, max_per_week, active, created_at, updated_at`

func (s *LinkReadStore) BySlug(ctx context.Context, slug string) (*booking.Link, error) {
	row := s.db.QueryRow(ctx, `SELECT`+selectLinkColumns+` FROM booking_links WHERE slug = $1`, slug)
	link, err := scanLink(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("link not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find link by slug", err)
	}
	return link, nil
}

func (s *LinkReadStore) ByID(ctx context.Context, id uuid.UUID) (*booking.Link, error) {
	row := s.db.QueryRow(ctx, `SELECT`+selectLinkColumns+` FROM booking_links WHERE id = $1`, id)
	link, err := scanLink(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("link not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find link by ID", err)
	}
	return link, nil
}

func (s *LinkReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.LinkView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT`+selectLinkColumns+` FROM booking_links WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list links by owner", err)
	}
	defer rows.Close()

	views := make([]*queries.LinkView, 0)
	for rows.Next() {
		link, scanErr := scanLink(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan link row", scanErr)
		}
		views = append(views, queries.LinkViewFromEntity(link))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate link rows", err)
	}
	return views, nil
}

func (s *LinkReadStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM booking_links WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slug existence", err)
	}
	return exists, nil
}

func scanLink(row pgx.Row) (*booking.Link, error) {
	var (
		id, ownerID                                              uuid.UUID
		slug, name, timezone, policy                             string
		durationMin, bufBefore, bufAfter, noticeHrs, advanceDays int
		hoursRaw, memberRaw                                      []byte
		maxPerDay, maxPerWeek                                    *int
		active                                                   bool
		createdAt, updatedAt                                     time.Time
	)
	err := row.Scan(
		&id, &slug, &ownerID, &name, &durationMin, &hoursRaw, &timezone,
		&bufBefore, &bufAfter, &noticeHrs, &advanceDays,
		&policy, &memberRaw, &maxPerDay, &maxPerWeek, &active, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	var hours schedule.WeeklyHours
	if err := json.Unmarshal(hoursRaw, &hours); err != nil {
		return nil, err
	}
	var memberIDs []uuid.UUID
	if err := json.Unmarshal(memberRaw, &memberIDs); err != nil {
		return nil, err
	}

	return booking.ReconstructLink(id, booking.LinkParams{
		Slug:           slug,
		OwnerID:        ownerID,
		Name:           name,
		DurationMin:    durationMin,
		Hours:          hours,
		Timezone:       timezone,
		BufferBefore:   bufBefore,
		BufferAfter:    bufAfter,
		MinNoticeHours: noticeHrs,
		MaxAdvanceDays: advanceDays,
		Policy:         booking.Policy(policy),
		MemberIDs:      memberIDs,
		MaxPerDay:      maxPerDay,
		MaxPerWeek:     maxPerWeek,
	}, active, createdAt, updatedAt), nil
}
