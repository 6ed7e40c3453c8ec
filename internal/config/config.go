// internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"invoice-dao/pkg/db" // Import db package for its Config struct

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	Env        string `validate:"oneof=development test staging production"`
	LogLevel   string `validate:"oneof=trace debug info warn error"`
	ServerPort string `validate:"required,numeric"`
	DB         db.Config
}

// LoadConfig loads configuration from environment variables, optionally seeded
// from a .env or config.env file in the working directory. Environment variables win.
// It returns an error if any value is missing or invalid.
func LoadConfig() (*AppConfig, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // a missing file is fine

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &AppConfig{
		Env:        v.GetString("APP_ENV"),
		LogLevel:   strings.ToLower(v.GetString("LOG_LEVEL")),
		ServerPort: v.GetString("SERVER_PORT"),
		DB: db.Config{
			Driver:          v.GetString("DB_DRIVER"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			Isolation:       strings.ToLower(v.GetString("DB_ISOLATION")),
			AutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", "8080")

	v.SetDefault("DB_DRIVER", db.DriverPQ)
	v.SetDefault("DB_HOST", "localhost") // local development
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "user")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "invoicedb")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("DB_ISOLATION", "read_committed")
	v.SetDefault("DB_AUTO_MIGRATE", false)
}
