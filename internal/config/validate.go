package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be in [0, max_conns] (got %d)", c.Database.MinConns)
	}

	if err := c.Engine.validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	if err := c.FactorCache.validate(); err != nil {
		return fmt.Errorf("factor_cache: %w", err)
	}

	return nil
}

func (e *EngineConfig) validate() error {
	if e.RecoveryReadAttempts < 1 {
		return fmt.Errorf("recovery_read_attempts must be >= 1 (got %d)", e.RecoveryReadAttempts)
	}
	if e.RecoveryReadDelay <= 0 {
		return fmt.Errorf("recovery_read_delay must be > 0 (got %v)", e.RecoveryReadDelay)
	}
	return nil
}

func (f *FactorCacheConfig) validate() error {
	if !f.Enabled {
		return nil
	}
	if f.Size <= 0 {
		return fmt.Errorf("size must be > 0 (got %d)", f.Size)
	}
	if f.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %v)", f.TTL)
	}
	return nil
}
