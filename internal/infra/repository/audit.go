package repository

import (
	"context"

	"github.com/hificopy/axolopcrm-sub008/internal/infra"

	"github.com/google/uuid"
)

type AuditRepository struct{}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

const insertAuditSQL = `
INSERT INTO audit_log (actor, action, entity_id, metadata)
VALUES ($1, $2, $3, $4)`

func (r *AuditRepository) Append(ctx context.Context, db infra.DBTX, actor, action string, entityID uuid.UUID, metadata []byte) error {
	_, err := db.Exec(ctx, insertAuditSQL, actor, action, entityID, metadata)
	if err != nil {
		return infra.WrapRepoErr("failed to append audit entry", err)
	}
	return nil
}
