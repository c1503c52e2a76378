package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"review-api/internal/auth"
	"review-api/internal/config"
	"review-api/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(&config.Config{
		DBDriver:          config.DriverSQLite,
		DBDSN:             filepath.Join(t.TempDir(), "seed.db"),
		DBConnectAttempts: 1,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"app.db", "app.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"file:app.db?cache=shared", "file:app.db?cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"app.db?_pragma=busy_timeout(1000)", "app.db?_pragma=busy_timeout(1000)&_pragma=foreign_keys(1)"},
		{"app.db?_pragma=foreign_keys(0)", "app.db?_pragma=foreign_keys(0)&_pragma=busy_timeout(5000)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sqliteDSN(tt.dsn), tt.dsn)
	}
}

func TestOpen_EnforcesForeignKeysWithCustomQuery(t *testing.T) {
	db, err := Open(&config.Config{
		DBDriver:          config.DriverSQLite,
		DBDSN:             filepath.Join(t.TempDir(), "fk.db") + "?_pragma=busy_timeout(1000)",
		DBConnectAttempts: 1,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	orphan := models.Review{EmployeeID: "no-such-employee", Body: "text"}
	err = db.Omit(clause.Associations).Create(&orphan).Error
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	results, err := Seed(ctx, db, "admin@company.com", "adminpassword")
	require.NoError(t, err)
	require.Len(t, results, 1+len(DemoAccounts))
	for _, r := range results {
		assert.True(t, r.Created, r.Account.Email)
	}

	var admin models.Employee
	require.NoError(t, db.Where("email = ?", "admin@company.com").First(&admin).Error)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "Admin User", admin.Name)
	assert.True(t, auth.CheckPassword(admin.Password, "adminpassword"))

	results, err = Seed(ctx, db, "admin@company.com", "adminpassword")
	require.NoError(t, err)
	for _, r := range results {
		assert.False(t, r.Created, r.Account.Email)
	}

	var count int64
	require.NoError(t, db.Model(&models.Employee{}).Count(&count).Error)
	assert.EqualValues(t, 4, count)
}

func TestCreateAuditLog(t *testing.T) {
	db := openTestDB(t)

	actor := models.Employee{ID: "a-1", Email: "admin@company.com"}
	require.NoError(t, CreateAuditLog(context.Background(), db, actor, "review", "r-1", "delete", "deleted"))

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "a-1", entry.ActorID)
	assert.Equal(t, "admin@company.com", entry.ActorEmail)
	assert.Equal(t, "delete", entry.Action)
}
