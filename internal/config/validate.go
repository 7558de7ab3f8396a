package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))

	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for driver %q", d.Driver)
		}
		if d.MaxConns <= 0 {
			return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
		}
		if d.MinConns < 0 || d.MinConns > d.MaxConns {
			return fmt.Errorf("min_conns must be between 0 and max_conns (got %d, max %d)", d.MinConns, d.MaxConns)
		}
	case DriverSQLite:
		if d.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for driver %q", d.Driver)
		}
	default:
		return fmt.Errorf("unknown driver %q (want %q or %q)", d.Driver, DriverPostgres, DriverSQLite)
	}

	return nil
}
