package service

import (
	"context"
	"errors"
	"fmt"

	"review-api/internal/apperror"
	"review-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const notAssignedMessage = "You are not assigned to this review."

var errAssignmentGone = errors.New("assignment already retracted")

type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// GetUserReviews lists the reviews the reviewer still has to give feedback on.
func (s *FeedbackService) GetUserReviews(ctx context.Context, reviewerID string) ([]AssignedReviewDTO, error) {
	assigned := s.db.Model(&models.ReviewAssignment{}).
		Select("review_id").
		Where("reviewer_id = ?", reviewerID)

	var reviews []models.Review
	if err := s.db.WithContext(ctx).
		Preload("Employee").
		Where("id IN (?)", assigned).
		Order("created_at ASC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("load assigned reviews: %w", err)
	}

	result := make([]AssignedReviewDTO, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, AssignedReviewDTO{
			ID:           review.ID,
			EmployeeName: review.Employee.Name,
			Review:       review.Body,
		})
	}
	return result, nil
}

// CreateFeedback records the reviewer's feedback and retracts the
// assignment in the same transaction, so a second submission for the same
// review fails.
func (s *FeedbackService) CreateFeedback(ctx context.Context, reviewerID string, input CreateFeedbackInput) (FeedbackDTO, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.ReviewAssignment{}).
		Where("review_id = ? AND reviewer_id = ?", input.ReviewID, reviewerID).
		Count(&count).Error; err != nil {
		return FeedbackDTO{}, fmt.Errorf("check assignment: %w", err)
	}
	if count == 0 {
		return FeedbackDTO{}, apperror.BadRequest(notAssignedMessage)
	}

	feedback := models.Feedback{
		ReviewID:   input.ReviewID,
		ReviewerID: reviewerID,
		Body:       input.Feedback,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&feedback).Error; err != nil {
			return err
		}

		result := tx.Where("review_id = ? AND reviewer_id = ?", input.ReviewID, reviewerID).
			Delete(&models.ReviewAssignment{})
		if result.Error != nil {
			return result.Error
		}
		// a concurrent submission got here first
		if result.RowsAffected == 0 {
			return errAssignmentGone
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errAssignmentGone) || isForeignKeyViolation(err) {
			return FeedbackDTO{}, apperror.BadRequest(notAssignedMessage)
		}
		return FeedbackDTO{}, fmt.Errorf("submit feedback: %w", err)
	}

	return feedbackToDTO(feedback), nil
}

func (s *FeedbackService) GetFeedbacks(ctx context.Context, reviewerID string) ([]FeedbackDTO, error) {
	return s.findFeedbacks(ctx, "reviewer_id = ?", reviewerID)
}

func (s *FeedbackService) GetReviewFeedbacks(ctx context.Context, reviewID string) ([]FeedbackDTO, error) {
	return s.findFeedbacks(ctx, "review_id = ?", reviewID)
}

func (s *FeedbackService) findFeedbacks(ctx context.Context, condition string, arg string) ([]FeedbackDTO, error) {
	var feedbacks []models.Feedback
	if err := s.db.WithContext(ctx).Where(condition, arg).Order("created_at ASC").Find(&feedbacks).Error; err != nil {
		return nil, fmt.Errorf("load feedback: %w", err)
	}

	result := make([]FeedbackDTO, 0, len(feedbacks))
	for _, feedback := range feedbacks {
		result = append(result, feedbackToDTO(feedback))
	}
	return result, nil
}

func feedbackToDTO(feedback models.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:         feedback.ID,
		ReviewID:   feedback.ReviewID,
		ReviewerID: feedback.ReviewerID,
		Feedback:   feedback.Body,
	}
}
