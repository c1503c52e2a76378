package models

import "time"

// AuditLog is a journal entry for a mutation made through the API. Actor and
// target are plain columns so entries outlive the rows they describe.
type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	ActorID    string `gorm:"type:varchar(36);index"`
	ActorEmail string `gorm:"size:255"`

	Entity   string `gorm:"size:50;not null"` // "employee", "review", "feedback"
	EntityID string `gorm:"type:varchar(36);index"`
	Action   string `gorm:"size:50;not null"` // "create", "update", "delete", "assign", "submit"
	Details  string `gorm:"type:text"`
}
