package service

import (
	"context"
	"fmt"
	"log"

	"review-api/internal/database"
	"review-api/internal/models"

	"gorm.io/gorm"
)

const defaultAuditLimit = 200

type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Record is best effort: a failed journal write is logged, never returned.
func (s *AuditService) Record(ctx context.Context, actor models.Employee, entity, entityID, action, details string) {
	if err := database.CreateAuditLog(ctx, s.db, actor, entity, entityID, action, details); err != nil {
		log.Printf("failed to write audit log (%s %s %s): %v", action, entity, entityID, err)
	}
}

// List returns the newest entries first.
func (s *AuditService) List(ctx context.Context, limit int) ([]AuditLogDTO, error) {
	if limit <= 0 || limit > defaultAuditLimit {
		limit = defaultAuditLimit
	}

	var logs []models.AuditLog
	if err := s.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("load audit logs: %w", err)
	}

	result := make([]AuditLogDTO, 0, len(logs))
	for _, entry := range logs {
		result = append(result, AuditLogDTO{
			ID:         entry.ID,
			ActorID:    entry.ActorID,
			ActorEmail: entry.ActorEmail,
			Entity:     entry.Entity,
			EntityID:   entry.EntityID,
			Action:     entry.Action,
			Details:    entry.Details,
			CreatedAt:  entry.CreatedAt,
		})
	}
	return result, nil
}
