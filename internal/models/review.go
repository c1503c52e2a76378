package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a performance review written about one employee.
type Review struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	EmployeeID string   `gorm:"type:varchar(36);not null;index"`
	Employee   Employee `gorm:"constraint:OnDelete:CASCADE"`

	Body string `gorm:"type:text;not null"`

	Assignments []ReviewAssignment `gorm:"constraint:OnDelete:CASCADE"`
}

func (r *Review) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ReviewAssignment links a review to an employee who still owes feedback on
// it. The row is removed when that feedback is submitted.
type ReviewAssignment struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time

	ReviewID   string   `gorm:"type:varchar(36);not null;uniqueIndex:idx_assignment_review_reviewer"`
	ReviewerID string   `gorm:"type:varchar(36);not null;uniqueIndex:idx_assignment_review_reviewer;index"`
	Reviewer   Employee `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`
}

func (a *ReviewAssignment) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type Feedback struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time

	ReviewID   string   `gorm:"type:varchar(36);not null;index"`
	Review     Review   `gorm:"constraint:OnDelete:CASCADE"`
	ReviewerID string   `gorm:"type:varchar(36);not null;index"`
	Reviewer   Employee `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`

	Body string `gorm:"type:text;not null"`
}

func (f *Feedback) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
