//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all public tables so each subtest starts from an
// empty database. The table list is discovered once and cached.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}

// CountRows returns the number of rows in the given table. The table name
// comes from test code, never from input.
func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count)
	require.NoError(t, err)
	return count
}

// BookingAssignee reads the assignee of a booking straight from storage.
func BookingAssignee(t *testing.T, db DBLike, bookingID uuid.UUID) uuid.UUID {
	t.Helper()

	var assignee uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT assignee_id FROM bookings WHERE id = $1", bookingID).Scan(&assignee)
	require.NoError(t, err)
	return assignee
}

// ConfirmedEventCount counts confirmed calendar events for an owner.
func ConfirmedEventCount(t *testing.T, db DBLike, ownerID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM calendar_events WHERE owner_id = $1 AND status = 'confirmed'", ownerID).Scan(&count)
	require.NoError(t, err)
	return count
}
