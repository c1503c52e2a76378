package server

import (
	"net/http"

	"review-api/internal/auth"
	"review-api/internal/config"
	"review-api/internal/handlers"
	"review-api/internal/middleware"
	"review-api/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	employees := service.NewEmployeeService(db)

	h := handlers.NewHandler(
		service.NewAuthService(db, tokens),
		employees,
		service.NewReviewService(db),
		service.NewFeedbackService(db),
		service.NewAuditService(db),
	)

	r := gin.New()
	r.Use(gin.Logger(), middleware.Recovery(), middleware.ErrorHandler())
	r.NoRoute(middleware.NotFound())

	// AUTH
	r.POST("/auth/login", h.Login)

	// ADMIN
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin(tokens, employees))

	admin.GET("/employees", h.ListEmployees)
	admin.POST("/employees", h.CreateEmployee)
	admin.PUT("/employees/:id", h.UpdateEmployee)
	admin.DELETE("/employees/:id", h.DeleteEmployee)

	admin.POST("/reviews", h.CreateReview)
	admin.GET("/reviews", h.GetReviews)
	admin.PUT("/reviews/:id", h.UpdateReview)
	admin.DELETE("/reviews/:id", h.DeleteReview)
	admin.POST("/reviews/:id/assign", h.AssignReviewers)

	admin.GET("/audit", h.ListAuditLogs)

	// FEEDBACK
	feedback := r.Group("/feedback")
	feedback.Use(middleware.RequireUser(tokens, employees))

	feedback.GET("", h.GetUserReviews)
	feedback.POST("", h.CreateFeedback)
	feedback.GET("/me", h.GetMyFeedbacks)
	feedback.GET("/review/:reviewId", h.GetReviewFeedbacks)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
