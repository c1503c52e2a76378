package middleware

import (
	"fmt"
	"log"
	"net/http"

	"review-api/internal/apperror"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// ErrorHandler renders the last error pushed with c.Error as
// {statusCode, message}.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.HTTPStatus(err)
		message := apperror.PublicMessage(err)

		if status == http.StatusInternalServerError {
			log.Printf("request failed: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		} else {
			log.Printf("request failed: status=%d path=%s message=%s", status, c.Request.URL.Path, message)
		}

		WriteError(c, status, message)
	}
}

func WriteError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		StatusCode: status,
		Message:    message,
	})
}

// Recovery turns a panic into a 500 in the usual error shape.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic recovered: %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		_ = c.Error(fmt.Errorf("panic: %v", recovered))
		WriteError(c, http.StatusInternalServerError, "Internal server error")
	})
}

// NotFound answers unknown routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		WriteError(c, http.StatusNotFound, fmt.Sprintf("Cannot %s %s", c.Request.Method, c.Request.URL.Path))
	}
}
