package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"review-api/internal/config"
	"review-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured store, retrying while the database is
// still starting up.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.New(
			log.New(os.Stdout, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	for i := 1; i <= cfg.DBConnectAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, cfg.DBConnectAttempts)

		db, err = gorm.Open(dialector(cfg), gormCfg)
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		if i < cfg.DBConnectAttempts {
			time.Sleep(cfg.DBConnectDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to db after %d attempts: %w", cfg.DBConnectAttempts, err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}
		// one writer at a time, otherwise concurrent transactions hit SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func dialector(cfg *config.Config) gorm.Dialector {
	if cfg.DBDriver == config.DriverSQLite {
		return sqlite.Open(sqliteDSN(cfg.DBDSN))
	}
	return postgres.Open(cfg.DBDSN)
}

// sqliteDSN turns on foreign keys, which SQLite leaves off per connection,
// and sets a busy timeout unless the DSN already chooses its own.
func sqliteDSN(dsn string) string {
	var pragmas []string
	if !strings.Contains(dsn, "foreign_keys") {
		pragmas = append(pragmas, "_pragma=foreign_keys(1)")
	}
	if !strings.Contains(dsn, "busy_timeout") {
		pragmas = append(pragmas, "_pragma=busy_timeout(5000)")
	}
	if len(pragmas) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(pragmas, "&")
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Employee{},
		&models.Review{},
		&models.ReviewAssignment{},
		&models.Feedback{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
