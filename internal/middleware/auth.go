package middleware

import (
	"context"
	"errors"
	"strings"

	"review-api/internal/apperror"
	"review-api/internal/auth"
	"review-api/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	tokenNotFoundMessage = "Authorization token not found"
	tokenExpiredMessage  = "Token expired"
	invalidTokenMessage  = "Invalid token or user not found"
	adminOnlyMessage     = "Admin privileges required"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type EmployeeLoader interface {
	Get(ctx context.Context, id string) (models.Employee, error)
}

// Authenticate verifies the bearer token, loads the employee it was issued
// for and lets the request through only if allow accepts that employee.
// The employee is stored in the context for the handlers.
func Authenticate(verifier TokenVerifier, loader EmployeeLoader, allow func(models.Employee) bool, denyMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abort(c, apperror.Unauthorized(tokenNotFoundMessage))
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				abort(c, apperror.Unauthorized(tokenExpiredMessage))
				return
			}
			abort(c, apperror.Unauthorized(invalidTokenMessage))
			return
		}

		employee, err := loader.Get(c.Request.Context(), claims.Subject)
		if err != nil {
			if apperror.GetCode(err) == apperror.CodeNotFound {
				abort(c, apperror.Unauthorized(invalidTokenMessage))
				return
			}
			abort(c, err)
			return
		}

		if !allow(employee) {
			abort(c, apperror.Unauthorized(denyMessage))
			return
		}

		c.Set(currentEmployeeKey, employee)
		c.Next()
	}
}

// RequireAdmin guards the /admin routes.
func RequireAdmin(verifier TokenVerifier, loader EmployeeLoader) gin.HandlerFunc {
	return Authenticate(verifier, loader, func(e models.Employee) bool {
		return e.IsAdmin
	}, adminOnlyMessage)
}

// RequireUser accepts any employee holding a valid token.
func RequireUser(verifier TokenVerifier, loader EmployeeLoader) gin.HandlerFunc {
	return Authenticate(verifier, loader, func(models.Employee) bool {
		return true
	}, invalidTokenMessage)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
