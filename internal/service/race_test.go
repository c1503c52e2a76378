package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"review-api/internal/apperror"
	"review-api/internal/models"
)

// beforeFirstCreate runs fn once, right before the first insert into table.
// fn gets a handle on the same connection, so inside a transaction it sees
// and writes through that transaction, like a request that won the race.
func beforeFirstCreate(t *testing.T, db *gorm.DB, table string, fn func(tx *gorm.DB) error) {
	t.Helper()

	fired := false
	err := db.Callback().Create().Before("gorm:create").Register("test:before_create_"+table, func(tx *gorm.DB) {
		if fired || tx.Statement.Table != table {
			return
		}
		fired = true
		if err := fn(tx.Session(&gorm.Session{NewDB: true})); err != nil {
			_ = tx.AddError(err)
		}
	})
	require.NoError(t, err)
}

func TestCreateFeedback_AssignmentRetractedConcurrently(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db)
	ctx := context.Background()

	subject := createEmployee(t, db, "subject", false)
	reviewer := createEmployee(t, db, "reviewer", false)
	review := createReview(t, db, subject, "text")
	require.NoError(t, NewReviewService(db).AssignReviewers(ctx, review.ID, []string{reviewer.ID}))

	// the other submission retracts the assignment after our check passed
	beforeFirstCreate(t, db, "feedbacks", func(tx *gorm.DB) error {
		return tx.Where("review_id = ? AND reviewer_id = ?", review.ID, reviewer.ID).
			Delete(&models.ReviewAssignment{}).Error
	})

	_, err := svc.CreateFeedback(ctx, reviewer.ID, CreateFeedbackInput{ReviewID: review.ID, Feedback: "late"})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeBadRequest, apperror.GetCode(err))
	assert.EqualError(t, err, "You are not assigned to this review.")

	var feedbacks int64
	require.NoError(t, db.Model(&models.Feedback{}).Count(&feedbacks).Error)
	assert.Zero(t, feedbacks, "feedback insert must roll back")
}

func TestAssignReviewers_UniqueViolationAtInsert(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)
	ctx := context.Background()

	subject := createEmployee(t, db, "subject", false)
	r1 := createEmployee(t, db, "r1", false)
	r2 := createEmployee(t, db, "r2", false)
	review := createReview(t, db, subject, "text")

	// another request assigns r2 between our check and our insert
	beforeFirstCreate(t, db, "review_assignments", func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&models.ReviewAssignment{
			ReviewID:   review.ID,
			ReviewerID: r2.ID,
		}).Error
	})

	err := svc.AssignReviewers(ctx, review.ID, []string{r1.ID, r2.ID})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeBadRequest, apperror.GetCode(err))
	assert.EqualError(t, err, "One or more reviewers are already assigned to this review.")

	var assignments int64
	require.NoError(t, db.Model(&models.ReviewAssignment{}).Count(&assignments).Error)
	assert.Zero(t, assignments, "no assignment may survive the rollback")
}
