package handlers

import (
	"net/http"
	"strings"

	"review-api/internal/service"

	"github.com/gin-gonic/gin"
)

type createReviewRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Review     string `json:"review" binding:"required"`
}

type updateReviewRequest struct {
	EmployeeID *string `json:"employeeId" binding:"omitempty,min=1"`
	Review     *string `json:"review" binding:"omitempty,min=1"`
}

type assignReviewersRequest struct {
	ReviewerIDs []string `json:"reviewerIds" binding:"required,dive,required"`
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviews.CreateReview(c.Request.Context(), service.CreateReviewInput{
		EmployeeID: req.EmployeeID,
		Review:     req.Review,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.audit.Record(c.Request.Context(), actor(c), "review", review.ID, "create",
		"created review for employee "+review.EmployeeID)

	c.JSON(http.StatusCreated, review)
}

func (h *Handler) GetReviews(c *gin.Context) {
	reviews, err := h.reviews.GetReviews(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) UpdateReview(c *gin.Context) {
	var req updateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviews.UpdateReview(c.Request.Context(), c.Param("id"), service.UpdateReviewInput{
		EmployeeID: req.EmployeeID,
		Review:     req.Review,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.audit.Record(c.Request.Context(), actor(c), "review", review.ID, "update", reviewChanges(req))

	c.JSON(http.StatusOK, review)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	review, err := h.reviews.DeleteReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.audit.Record(c.Request.Context(), actor(c), "review", review.ID, "delete",
		"deleted review for employee "+review.EmployeeID)

	c.JSON(http.StatusOK, review)
}

// AssignReviewers answers with the review and its reviewers after the
// assignment.
func (h *Handler) AssignReviewers(c *gin.Context) {
	var req assignReviewersRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	reviewID := c.Param("id")

	if err := h.reviews.AssignReviewers(ctx, reviewID, req.ReviewerIDs); err != nil {
		_ = c.Error(err)
		return
	}

	review, err := h.reviews.GetReview(ctx, reviewID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.audit.Record(ctx, actor(c), "review", reviewID, "assign",
		"assigned reviewers "+strings.Join(req.ReviewerIDs, ", "))

	c.JSON(http.StatusCreated, review)
}

// reviewChanges names the fields an update request supplied.
func reviewChanges(req updateReviewRequest) string {
	var changed []string
	if req.Review != nil {
		changed = append(changed, "review")
	}
	if req.EmployeeID != nil {
		changed = append(changed, "employeeId="+*req.EmployeeID)
	}
	if len(changed) == 0 {
		return "no changes"
	}
	return "updated " + strings.Join(changed, ", ")
}
