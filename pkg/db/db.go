// pkg/db/db.go
package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Supported database/sql driver names.
const (
	DriverPQ  = "postgres" // github.com/lib/pq
	DriverPGX = "pgx"      // github.com/jackc/pgx/v5/stdlib
)

// Config holds database connection configuration.
type Config struct {
	Driver          string        `validate:"oneof=postgres pgx"`
	Host            string        `validate:"required"`
	Port            int           `validate:"min=1,max=65535"`
	User            string        `validate:"required"`
	Password        string
	DBName          string        `validate:"required"`
	SSLMode         string        `validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int           `validate:"min=0"`
	MaxIdleConns    int           `validate:"min=0"`
	ConnMaxLifetime time.Duration
	Isolation       string        `validate:"omitempty,oneof=read_committed repeatable_read serializable"`
	AutoMigrate     bool
}

// DSN returns the key/value connection string understood by both lib/pq and pgx.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ParseIsolation maps a configured isolation name to a database/sql level.
// Anything weaker than read committed is refused.
func ParseIsolation(name string) (sql.IsolationLevel, error) {
	switch name {
	case "", "read_committed":
		return sql.LevelReadCommitted, nil
	case "repeatable_read":
		return sql.LevelRepeatableRead, nil
	case "serializable":
		return sql.LevelSerializable, nil
	default:
		return sql.LevelDefault, fmt.Errorf("unsupported isolation level %q", name)
	}
}
