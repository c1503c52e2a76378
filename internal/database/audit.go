package database

import (
	"context"

	"review-api/internal/models"

	"gorm.io/gorm"
)

// CreateAuditLog writes one journal entry on behalf of actor.
func CreateAuditLog(ctx context.Context, db *gorm.DB, actor models.Employee, entity, entityID, action, details string) error {
	record := models.AuditLog{
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		Entity:     entity,
		EntityID:   entityID,
		Action:     action,
		Details:    details,
	}
	return db.WithContext(ctx).Create(&record).Error
}
