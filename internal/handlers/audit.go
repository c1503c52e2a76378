package handlers

import (
	"net/http"
	"strconv"

	"review-api/internal/apperror"

	"github.com/gin-gonic/gin"
)

// ListAuditLogs returns the latest journal entries. ?limit= caps the count
// (at most 200).
func (h *Handler) ListAuditLogs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			_ = c.Error(apperror.BadRequest("limit must be a positive integer"))
			return
		}
		limit = n
	}

	logs, err := h.audit.List(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
