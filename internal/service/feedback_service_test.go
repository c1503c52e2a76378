package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-api/internal/apperror"
)

func TestCreateFeedback_RetractsOnlyThatAssignment(t *testing.T) {
	db := newTestDB(t)
	reviews := NewReviewService(db)
	svc := NewFeedbackService(db)
	ctx := context.Background()

	subject := createEmployee(t, db, "subject", false)
	reviewer := createEmployee(t, db, "reviewer", false)
	first := createReview(t, db, subject, "first")
	second := createReview(t, db, subject, "second")
	require.NoError(t, reviews.AssignReviewers(ctx, first.ID, []string{reviewer.ID}))
	require.NoError(t, reviews.AssignReviewers(ctx, second.ID, []string{reviewer.ID}))

	assigned, err := svc.GetUserReviews(ctx, reviewer.ID)
	require.NoError(t, err)
	require.Len(t, assigned, 2)
	assert.Equal(t, "subject", assigned[0].EmployeeName)

	feedback, err := svc.CreateFeedback(ctx, reviewer.ID, CreateFeedbackInput{
		ReviewID: first.ID,
		Feedback: "ok",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, feedback.ID)
	assert.Equal(t, first.ID, feedback.ReviewID)
	assert.Equal(t, reviewer.ID, feedback.ReviewerID)
	assert.Equal(t, "ok", feedback.Feedback)

	// a second submission for the same review is refused
	_, err = svc.CreateFeedback(ctx, reviewer.ID, CreateFeedbackInput{
		ReviewID: first.ID,
		Feedback: "again",
	})
	assert.Equal(t, apperror.CodeBadRequest, apperror.GetCode(err))
	assert.EqualError(t, err, "You are not assigned to this review.")

	assigned, err = svc.GetUserReviews(ctx, reviewer.ID)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, second.ID, assigned[0].ID)

	mine, err := svc.GetFeedbacks(ctx, reviewer.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestCreateFeedback_NotAssigned(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db)
	ctx := context.Background()

	subject := createEmployee(t, db, "subject", false)
	outsider := createEmployee(t, db, "outsider", false)
	review := createReview(t, db, subject, "text")

	_, err := svc.CreateFeedback(ctx, outsider.ID, CreateFeedbackInput{ReviewID: review.ID, Feedback: "x"})
	assert.Equal(t, apperror.CodeBadRequest, apperror.GetCode(err))

	_, err = svc.CreateFeedback(ctx, outsider.ID, CreateFeedbackInput{ReviewID: "missing", Feedback: "x"})
	assert.Equal(t, apperror.CodeBadRequest, apperror.GetCode(err))
}

func TestGetReviewFeedbacks(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db)
	ctx := context.Background()

	subject := createEmployee(t, db, "subject", false)
	r1 := createEmployee(t, db, "r1", false)
	r2 := createEmployee(t, db, "r2", false)
	review := createReview(t, db, subject, "text")
	other := createReview(t, db, subject, "other")
	require.NoError(t, NewReviewService(db).AssignReviewers(ctx, review.ID, []string{r1.ID, r2.ID}))
	require.NoError(t, NewReviewService(db).AssignReviewers(ctx, other.ID, []string{r1.ID}))

	for _, reviewer := range []string{r1.ID, r2.ID} {
		_, err := svc.CreateFeedback(ctx, reviewer, CreateFeedbackInput{ReviewID: review.ID, Feedback: "fine"})
		require.NoError(t, err)
	}
	_, err := svc.CreateFeedback(ctx, r1.ID, CreateFeedbackInput{ReviewID: other.ID, Feedback: "meh"})
	require.NoError(t, err)

	feedbacks, err := svc.GetReviewFeedbacks(ctx, review.ID)
	require.NoError(t, err)
	assert.Len(t, feedbacks, 2)

	feedbacks, err = svc.GetReviewFeedbacks(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, feedbacks)
}

func TestAuditJournal(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuditService(db)
	ctx := context.Background()

	admin := createEmployee(t, db, "admin", true)
	svc.Record(ctx, admin, "employee", "e-1", "create", "name=X")
	svc.Record(ctx, admin, "review", "r-1", "delete", "")

	logs, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "delete", logs[0].Action)
	assert.Equal(t, admin.Email, logs[1].ActorEmail)

	logs, err = svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
