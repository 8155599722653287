package readstore

import (
	"context"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/domain/schedule"
	"github.com/hificopy/axolopcrm-sub008/internal/infra"

	"github.com/google/uuid"
)

// BusyReadStore projects confirmed calendar events into the busy intervals
// the overlap filter consumes.
type BusyReadStore struct {
	db infra.DBTX
}

func NewBusyReadStore(db infra.DBTX) *BusyReadStore {
	return &BusyReadStore{db: db}
}

func (s *BusyReadStore) BusyIntervals(ctx context.Context, ownerIDs []uuid.UUID, from, to time.Time) ([]schedule.BusyInterval, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx,
		`SELECT owner_id, starts_at, ends_at FROM calendar_events
		 WHERE status = 'confirmed'
		   AND owner_id = ANY($1::uuid[])
		   AND starts_at < $3 AND ends_at > $2
		 ORDER BY starts_at`,
		uuidStrings(ownerIDs), from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query busy intervals", err)
	}
	defer rows.Close()

	intervals := make([]schedule.BusyInterval, 0)
	for rows.Next() {
		var iv schedule.BusyInterval
		if err := rows.Scan(&iv.AssigneeID, &iv.Start, &iv.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan busy interval", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate busy intervals", err)
	}
	return intervals, nil
}

// WeekEventCounts counts confirmed events starting in [weekStart, weekEnd)
// per owner. Owners with no events are absent from the map.
func (s *BusyReadStore) WeekEventCounts(ctx context.Context, ownerIDs []uuid.UUID, weekStart, weekEnd time.Time) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return counts, nil
	}

	rows, err := s.db.Query(ctx,
		`SELECT owner_id, COUNT(*) FROM calendar_events
		 WHERE status = 'confirmed'
		   AND owner_id = ANY($1::uuid[])
		   AND starts_at >= $2 AND starts_at < $3
		 GROUP BY owner_id`,
		uuidStrings(ownerIDs), weekStart, weekEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query week event counts", err)
	}
	defer rows.Close()

	for rows.Next() {
		var owner uuid.UUID
		var count int
		if err := rows.Scan(&owner, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event count", err)
		}
		counts[owner] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate event counts", err)
	}
	return counts, nil
}

// pgx encodes []string cleanly; the cast back to uuid[] happens in SQL.
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
