package handlers

import (
	"net/http"

	"review-api/internal/service"

	"github.com/gin-gonic/gin"
)

type createFeedbackRequest struct {
	ReviewID string `json:"reviewId" binding:"required"`
	Feedback string `json:"feedback" binding:"required"`
}

// GetUserReviews lists the reviews the caller is still assigned to.
func (h *Handler) GetUserReviews(c *gin.Context) {
	reviews, err := h.feedback.GetUserReviews(c.Request.Context(), actor(c).ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) CreateFeedback(c *gin.Context) {
	var req createFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	reviewer := actor(c)
	feedback, err := h.feedback.CreateFeedback(c.Request.Context(), reviewer.ID, service.CreateFeedbackInput{
		ReviewID: req.ReviewID,
		Feedback: req.Feedback,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.audit.Record(c.Request.Context(), reviewer, "feedback", feedback.ID, "submit",
		"feedback on review "+feedback.ReviewID)

	c.JSON(http.StatusCreated, feedback)
}

func (h *Handler) GetMyFeedbacks(c *gin.Context) {
	feedbacks, err := h.feedback.GetFeedbacks(c.Request.Context(), actor(c).ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, feedbacks)
}

func (h *Handler) GetReviewFeedbacks(c *gin.Context) {
	feedbacks, err := h.feedback.GetReviewFeedbacks(c.Request.Context(), c.Param("reviewId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, feedbacks)
}
