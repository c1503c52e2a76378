package service

import (
	"context"
	"errors"
	"fmt"

	"review-api/internal/apperror"
	"review-api/internal/auth"
	"review-api/internal/models"

	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	tokens *auth.TokenIssuer
}

func NewAuthService(db *gorm.DB, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{
		db:     db,
		tokens: tokens,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (TokenDTO, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenDTO{}, apperror.Unauthorized("Invalid credentials")
		}
		return TokenDTO{}, fmt.Errorf("load employee: %w", err)
	}

	if !auth.CheckPassword(employee.Password, password) {
		return TokenDTO{}, apperror.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Issue(employee.ID, employee.Email)
	if err != nil {
		return TokenDTO{}, fmt.Errorf("sign token: %w", err)
	}

	return TokenDTO{AccessToken: token}, nil
}
