package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"review-api/internal/apperror"
	"review-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) CreateReview(ctx context.Context, input CreateReviewInput) (ReviewDTO, error) {
	review := models.Review{
		EmployeeID: input.EmployeeID,
		Body:       input.Review,
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&review).Error; err != nil {
		if isForeignKeyViolation(err) {
			return ReviewDTO{}, apperror.BadRequest("Employee not found.")
		}
		return ReviewDTO{}, fmt.Errorf("create review: %w", err)
	}

	return reviewToDTO(review), nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, id string, input UpdateReviewInput) (ReviewDTO, error) {
	if err := s.ensureReviewExists(ctx, id); err != nil {
		return ReviewDTO{}, err
	}

	updates := map[string]interface{}{}
	if input.Review != nil {
		updates["body"] = *input.Review
	}
	if input.EmployeeID != nil {
		updates["employee_id"] = *input.EmployeeID
	}

	if len(updates) > 0 {
		err := s.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			if isForeignKeyViolation(err) {
				return ReviewDTO{}, apperror.BadRequest("Employee not found.")
			}
			return ReviewDTO{}, fmt.Errorf("update review: %w", err)
		}
	}

	return s.GetReview(ctx, id)
}

// DeleteReview removes the review together with its assignments and
// feedback, and returns the review as it was.
func (s *ReviewService) DeleteReview(ctx context.Context, id string) (ReviewDTO, error) {
	review, err := s.GetReview(ctx, id)
	if err != nil {
		return ReviewDTO{}, err
	}

	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return ReviewDTO{}, fmt.Errorf("delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ReviewDTO{}, apperror.NotFound("Review not found.")
	}

	return review, nil
}

func (s *ReviewService) GetReviews(ctx context.Context) ([]ReviewDTO, error) {
	var reviews []models.Review
	if err := s.withReviewers(ctx).Order("created_at ASC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	result := make([]ReviewDTO, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, reviewToDTO(review))
	}
	return result, nil
}

func (s *ReviewService) GetReview(ctx context.Context, id string) (ReviewDTO, error) {
	var review models.Review
	if err := s.withReviewers(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReviewDTO{}, apperror.NotFound("Review not found.")
		}
		return ReviewDTO{}, fmt.Errorf("load review: %w", err)
	}
	return reviewToDTO(review), nil
}

// AssignReviewers creates one assignment per reviewer. If any reviewer is
// already assigned to the review nothing is created.
func (s *ReviewService) AssignReviewers(ctx context.Context, reviewID string, reviewerIDs []string) error {
	reviewerIDs = uniqueIDs(reviewerIDs)
	if len(reviewerIDs) == 0 {
		return nil
	}

	if err := s.ensureReviewExists(ctx, reviewID); err != nil {
		return err
	}

	var known []string
	if err := s.db.WithContext(ctx).Model(&models.Employee{}).
		Where("id IN ?", reviewerIDs).
		Pluck("id", &known).Error; err != nil {
		return fmt.Errorf("load reviewers: %w", err)
	}
	if missing := difference(reviewerIDs, known); len(missing) > 0 {
		return apperror.BadRequest(fmt.Sprintf("Reviewer(s) with ID(s) %s do not exist.", strings.Join(missing, ", ")))
	}

	assignments := make([]models.ReviewAssignment, 0, len(reviewerIDs))
	for _, reviewerID := range reviewerIDs {
		assignments = append(assignments, models.ReviewAssignment{
			ReviewID:   reviewID,
			ReviewerID: reviewerID,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assigned []string
		if err := tx.Model(&models.ReviewAssignment{}).
			Where("review_id = ? AND reviewer_id IN ?", reviewID, reviewerIDs).
			Order("created_at ASC").
			Pluck("reviewer_id", &assigned).Error; err != nil {
			return fmt.Errorf("check existing assignments: %w", err)
		}
		if len(assigned) > 0 {
			return alreadyAssignedError(assigned)
		}

		return tx.Omit(clause.Associations).Create(&assignments).Error
	})
	if err != nil {
		var appErr *apperror.Error
		switch {
		case errors.As(err, &appErr):
			return err
		case isUniqueViolation(err):
			// a concurrent request assigned one of them first
			return alreadyAssignedError(nil)
		case isForeignKeyViolation(err):
			return apperror.BadRequest("Review or reviewer no longer exists.")
		}
		return fmt.Errorf("create assignments: %w", err)
	}

	return nil
}

func (s *ReviewService) ensureReviewExists(ctx context.Context, id string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check review existence: %w", err)
	}
	if count == 0 {
		return apperror.NotFound("Review not found.")
	}
	return nil
}

func (s *ReviewService) withReviewers(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Assignments.Reviewer")
}

func alreadyAssignedError(reviewerIDs []string) error {
	if len(reviewerIDs) == 0 {
		return apperror.BadRequest("One or more reviewers are already assigned to this review.")
	}
	return apperror.BadRequest(fmt.Sprintf(
		"Reviewer(s) with ID(s) %s are already assigned to this review.",
		strings.Join(reviewerIDs, ", "),
	))
}

func reviewToDTO(review models.Review) ReviewDTO {
	reviewers := make([]EmployeeDTO, 0, len(review.Assignments))
	for _, assignment := range review.Assignments {
		reviewers = append(reviewers, employeeToDTO(assignment.Reviewer))
	}

	return ReviewDTO{
		ID:         review.ID,
		EmployeeID: review.EmployeeID,
		Review:     review.Body,
		Reviewers:  reviewers,
	}
}

// uniqueIDs drops blanks and repeats, keeping first-seen order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func difference(want, have []string) []string {
	present := make(map[string]struct{}, len(have))
	for _, id := range have {
		present[id] = struct{}{}
	}

	var missing []string
	for _, id := range want {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
