package middleware

import (
	"review-api/internal/models"

	"github.com/gin-gonic/gin"
)

const currentEmployeeKey = "CurrentEmployee"

// CurrentEmployee returns the employee attached by Authenticate.
func CurrentEmployee(c *gin.Context) (models.Employee, bool) {
	value, ok := c.Get(currentEmployeeKey)
	if !ok {
		return models.Employee{}, false
	}
	employee, ok := value.(models.Employee)
	return employee, ok
}
