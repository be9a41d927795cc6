// Package config holds the per-concern configuration structs of the core
// with built-in defaults and environment overrides. Runtime-mutable
// settings (Turbo state, verify token) live in the settings table and are
// loaded through the settings service, not here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config aggregates the process-level configuration.
type Config struct {
	Database   *DatabaseConfig
	Dispatcher *DispatcherConfig
	Retention  *RetentionConfig

	// PodID identifies this replica in claim/heartbeat columns.
	PodID string
}

// Load builds the process configuration from defaults plus environment
// overrides. Absent variables mean defaults; only values that cannot
// work (no DB password, inverted pool bounds) fail the load.
func Load() (*Config, error) {
	cfg := &Config{
		Database:   DefaultDatabaseConfig(),
		Dispatcher: DefaultDispatcherConfig(),
		Retention:  DefaultRetentionConfig(),
		PodID:      podID(),
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func podID() string {
	if v := os.Getenv("POD_ID"); v != "" {
		return v
	}
	host, err := os.Hostname()
	if err != nil {
		return "waflow-local"
	}
	return host
}

func applyEnvOverrides(cfg *Config) error {
	envString("DB_HOST", &cfg.Database.Host)
	envString("DB_USER", &cfg.Database.User)
	envString("DB_PASSWORD", &cfg.Database.Password)
	envString("DB_NAME", &cfg.Database.Name)
	envString("DB_SSLMODE", &cfg.Database.SSLMode)
	if err := envInt("DB_PORT", &cfg.Database.Port); err != nil {
		return err
	}
	if err := envInt("DB_POOL_MAX_OPEN", &cfg.Database.PoolMaxOpen); err != nil {
		return err
	}
	if err := envInt("DB_POOL_MAX_IDLE", &cfg.Database.PoolMaxIdle); err != nil {
		return err
	}
	if err := envDuration("DB_POOL_MAX_LIFETIME", &cfg.Database.PoolMaxLifetime); err != nil {
		return err
	}
	if err := envDuration("DB_POOL_MAX_IDLE_TIME", &cfg.Database.PoolMaxIdleTime); err != nil {
		return err
	}

	if err := envInt("DISPATCHER_WORKER_COUNT", &cfg.Dispatcher.WorkerCount); err != nil {
		return err
	}
	if err := envInt("DISPATCHER_REQUEUE_BUDGET", &cfg.Dispatcher.RateLimitedRequeueBudget); err != nil {
		return err
	}
	if err := envDuration("DISPATCHER_POLL_INTERVAL", &cfg.Dispatcher.PollInterval); err != nil {
		return err
	}
	if err := envDuration("DISPATCHER_SENDING_TIMEOUT", &cfg.Dispatcher.SendingTimeout); err != nil {
		return err
	}
	if err := envDuration("RETENTION_TRACE_EVENTS", &cfg.Retention.TraceEventRetention); err != nil {
		return err
	}
	if err := envDuration("RETENTION_STATUS_EVENTS", &cfg.Retention.StatusEventRetention); err != nil {
		return err
	}
	return nil
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func envDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}
