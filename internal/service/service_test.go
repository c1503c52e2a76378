package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"review-api/internal/config"
	"review-api/internal/database"
	"review-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.Config{
		DBDriver:          config.DriverSQLite,
		DBDSN:             filepath.Join(t.TempDir(), "test.db"),
		DBConnectAttempts: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// createEmployee inserts an employee directly, skipping password hashing.
func createEmployee(t *testing.T, db *gorm.DB, name string, isAdmin bool) models.Employee {
	t.Helper()

	employee := models.Employee{
		Name:     name,
		Email:    name + "@company.com",
		Password: "not-a-hash",
		IsAdmin:  isAdmin,
	}
	require.NoError(t, db.Create(&employee).Error)
	return employee
}

func createReview(t *testing.T, db *gorm.DB, subject models.Employee, text string) ReviewDTO {
	t.Helper()

	review, err := NewReviewService(db).CreateReview(context.Background(), CreateReviewInput{
		EmployeeID: subject.ID,
		Review:     text,
	})
	require.NoError(t, err)
	return review
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
