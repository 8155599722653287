package repository

import (
	"context"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/infra"
)

// OutboxRepository stores notification jobs in the same transaction as the
// state change they announce. A separate worker drains the table.
type OutboxRepository struct{}

func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{}
}

const insertJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at)
VALUES ($1, $2, $3, $4)`

func (r *OutboxRepository) CreateJob(ctx context.Context, db infra.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := db.Exec(ctx, insertJobSQL, kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
