package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"review-api/internal/auth"
	"review-api/internal/models"

	"gorm.io/gorm"
)

type SeedAccount struct {
	Name     string
	Email    string
	Password string
	IsAdmin  bool
}

type SeedResult struct {
	Account SeedAccount
	Created bool
}

// DemoAccounts are the non-admin employees every fresh install gets.
var DemoAccounts = []SeedAccount{
	{Name: "John Doe", Email: "john.doe@company.com", Password: "password123"},
	{Name: "Jane Smith", Email: "jane.smith@company.com", Password: "password456"},
	{Name: "Emily Johnson", Email: "emily.johnson@company.com", Password: "password789"},
}

// Seed creates the admin account and the demo employees. Accounts whose
// email already exists are left untouched, so it is safe to run on every
// start.
func Seed(ctx context.Context, db *gorm.DB, adminEmail, adminPassword string) ([]SeedResult, error) {
	accounts := append([]SeedAccount{{
		Name:     "Admin User",
		Email:    adminEmail,
		Password: adminPassword,
		IsAdmin:  true,
	}}, DemoAccounts...)

	results := make([]SeedResult, 0, len(accounts))
	for _, account := range accounts {
		created, err := seedAccount(ctx, db, account)
		if err != nil {
			return results, fmt.Errorf("seed %s: %w", account.Email, err)
		}
		if created {
			log.Printf("created seed employee: %s (admin=%t)", account.Email, account.IsAdmin)
		}
		results = append(results, SeedResult{Account: account, Created: created})
	}

	return results, nil
}

func seedAccount(ctx context.Context, db *gorm.DB, account SeedAccount) (bool, error) {
	var existing models.Employee
	err := db.WithContext(ctx).Where("email = ?", account.Email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := auth.HashPassword(account.Password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	employee := models.Employee{
		Name:     account.Name,
		Email:    account.Email,
		Password: hash,
		IsAdmin:  account.IsAdmin,
	}
	if err := db.WithContext(ctx).Create(&employee).Error; err != nil {
		return false, err
	}
	return true, nil
}
