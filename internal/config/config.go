package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver          string
	DBDSN             string
	DBConnectAttempts int
	DBConnectDelay    time.Duration

	ServerPort string
	GinMode    string

	JWTSecret string
	TokenTTL  time.Duration

	SeedOnStart   bool
	AdminEmail    string
	AdminPassword string
}

// Load reads .env, the environment and, when configFile is not empty, a
// YAML file. Environment variables win over the file.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("db_driver", DriverPostgres)
	v.SetDefault("db_connect_attempts", 10)
	v.SetDefault("db_connect_delay", 2*time.Second)
	v.SetDefault("server_port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("token_ttl", 24*time.Hour)
	v.SetDefault("seed_on_start", true)
	v.SetDefault("admin_email", "admin@company.com")
	v.SetDefault("admin_password", "adminpassword")

	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		DBDriver:          strings.ToLower(strings.TrimSpace(v.GetString("db_driver"))),
		DBDSN:             v.GetString("db_dsn"),
		DBConnectAttempts: v.GetInt("db_connect_attempts"),
		DBConnectDelay:    v.GetDuration("db_connect_delay"),
		ServerPort:        v.GetString("server_port"),
		GinMode:           v.GetString("gin_mode"),
		JWTSecret:         v.GetString("jwt_secret"),
		TokenTTL:          v.GetDuration("token_ttl"),
		SeedOnStart:       v.GetBool("seed_on_start"),
		AdminEmail:        v.GetString("admin_email"),
		AdminPassword:     v.GetString("admin_password"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBDSN == "" {
		return errors.New("DB_DSN is not set")
	}
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER must be one of: %s, %s", DriverPostgres, DriverSQLite)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.DBConnectAttempts < 1 {
		c.DBConnectAttempts = 1
	}
	if c.ServerPort == "" {
		c.ServerPort = "8080"
	}
	return nil
}
