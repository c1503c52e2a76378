package handlers

import (
	"review-api/internal/service"
)

type Handler struct {
	auth      service.Authenticator
	employees service.EmployeeManager
	reviews   service.ReviewManager
	feedback  service.FeedbackManager
	audit     service.AuditJournal
}

func NewHandler(
	auth service.Authenticator,
	employees service.EmployeeManager,
	reviews service.ReviewManager,
	feedback service.FeedbackManager,
	audit service.AuditJournal,
) *Handler {
	registerJSONFieldNames()

	return &Handler{
		auth:      auth,
		employees: employees,
		reviews:   reviews,
		feedback:  feedback,
		audit:     audit,
	}
}
