package service

import (
	"context"
	"time"

	"review-api/internal/models"
)

type CreateEmployeeInput struct {
	Name     string
	Email    string
	Password string
	IsAdmin  bool
}

type UpdateEmployeeInput struct {
	Name     *string
	Email    *string
	Password *string
	IsAdmin  *bool
}

type CreateReviewInput struct {
	EmployeeID string
	Review     string
}

type UpdateReviewInput struct {
	EmployeeID *string
	Review     *string
}

type CreateFeedbackInput struct {
	ReviewID string
	Feedback string
}

type EmployeeDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

type ReviewDTO struct {
	ID         string        `json:"id"`
	EmployeeID string        `json:"employeeId"`
	Review     string        `json:"review"`
	Reviewers  []EmployeeDTO `json:"reviewers"`
}

// AssignedReviewDTO is a review as seen by one of its reviewers.
type AssignedReviewDTO struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employeeName"`
	Review       string `json:"review"`
}

type FeedbackDTO struct {
	ID         string `json:"id"`
	ReviewID   string `json:"reviewId"`
	ReviewerID string `json:"reviewerId"`
	Feedback   string `json:"feedback"`
}

type TokenDTO struct {
	AccessToken string `json:"accessToken"`
}

type AuditLogDTO struct {
	ID         uint      `json:"id"`
	ActorID    string    `json:"actorId"`
	ActorEmail string    `json:"actorEmail"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entityId"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (TokenDTO, error)
}

type EmployeeManager interface {
	Create(ctx context.Context, input CreateEmployeeInput) (EmployeeDTO, error)
	List(ctx context.Context) ([]EmployeeDTO, error)
	Get(ctx context.Context, id string) (models.Employee, error)
	Update(ctx context.Context, id string, input UpdateEmployeeInput) (EmployeeDTO, error)
	Delete(ctx context.Context, id string) (EmployeeDTO, error)
}

type ReviewManager interface {
	CreateReview(ctx context.Context, input CreateReviewInput) (ReviewDTO, error)
	UpdateReview(ctx context.Context, id string, input UpdateReviewInput) (ReviewDTO, error)
	DeleteReview(ctx context.Context, id string) (ReviewDTO, error)
	GetReviews(ctx context.Context) ([]ReviewDTO, error)
	GetReview(ctx context.Context, id string) (ReviewDTO, error)
	AssignReviewers(ctx context.Context, reviewID string, reviewerIDs []string) error
}

type FeedbackManager interface {
	GetUserReviews(ctx context.Context, reviewerID string) ([]AssignedReviewDTO, error)
	CreateFeedback(ctx context.Context, reviewerID string, input CreateFeedbackInput) (FeedbackDTO, error)
	GetFeedbacks(ctx context.Context, reviewerID string) ([]FeedbackDTO, error)
	GetReviewFeedbacks(ctx context.Context, reviewID string) ([]FeedbackDTO, error)
}

type AuditJournal interface {
	Record(ctx context.Context, actor models.Employee, entity, entityID, action, details string)
	List(ctx context.Context, limit int) ([]AuditLogDTO, error)
}
