package config

import (
	"fmt"
	"time"
)

// DatabaseConfig holds connection and pool settings for PostgreSQL.
// Loaded through Load alongside the rest of the process configuration.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	PoolMaxOpen     int
	PoolMaxIdle     int
	PoolMaxLifetime time.Duration
	PoolMaxIdleTime time.Duration
}

// DefaultDatabaseConfig returns the built-in database defaults. Password
// intentionally has none; Validate rejects an empty one.
func DefaultDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Host:            "localhost",
		Port:            5432,
		User:            "waflow",
		Name:            "waflow",
		SSLMode:         "disable",
		PoolMaxOpen:     25,
		PoolMaxIdle:     10,
		PoolMaxLifetime: time.Hour,
		PoolMaxIdleTime: 15 * time.Minute,
	}
}

// DSN renders the keyword/value connection string shared by the pooled
// client and the dedicated LISTEN connection.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Validate rejects configurations that cannot produce a working pool.
func (c *DatabaseConfig) Validate() error {
	if c.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.PoolMaxOpen < 1 {
		return fmt.Errorf("DB_POOL_MAX_OPEN must be at least 1")
	}
	if c.PoolMaxIdle < 0 || c.PoolMaxIdle > c.PoolMaxOpen {
		return fmt.Errorf("DB_POOL_MAX_IDLE must be between 0 and DB_POOL_MAX_OPEN (%d)", c.PoolMaxOpen)
	}
	return nil
}
