package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"review-api/internal/apperror"
	"review-api/internal/middleware"
	"review-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var fieldNamesOnce sync.Once

// registerJSONFieldNames makes validation errors name fields the way the
// client sent them.
func registerJSONFieldNames() {
	fieldNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
}

// bindJSON decodes and validates the body. On failure the error is queued
// for the error handler and false is returned.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(bindError(err))
		return false
	}
	return true
}

func bindError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			messages = append(messages, fieldMessage(fe))
		}
		return apperror.Validation(messages...)
	}
	return apperror.BadRequest("Invalid request body")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s should not be empty", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be an email", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be longer than or equal to %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// actor is the employee the guard authenticated. Routes without a guard get
// the zero value.
func actor(c *gin.Context) models.Employee {
	employee, _ := middleware.CurrentEmployee(c)
	return employee
}
