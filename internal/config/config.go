package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Log         LogConfig         `yaml:"log"`
	Engine      EngineConfig      `yaml:"engine"`
	FactorCache FactorCacheConfig `yaml:"factor_cache"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer-token validation settings. Tokens are issued by the
// identity service; this process only verifies them.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"greencampus"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// EngineConfig tunes the calculation engine.
type EngineConfig struct {
	// RecoveryReadAttempts is how many times the winner of a uniqueness race
	// is looked up before the conflict is reported as inconsistent state.
	RecoveryReadAttempts int           `yaml:"recovery_read_attempts" env:"ENGINE_RECOVERY_READ_ATTEMPTS" env-default:"3"`
	RecoveryReadDelay    time.Duration `yaml:"recovery_read_delay"    env:"ENGINE_RECOVERY_READ_DELAY"    env-default:"25ms"`
}

// FactorCacheConfig controls the read-through cache in front of the factor
// catalog. Only successful resolutions are cached. While enabled, a newly
// published factor version may be ignored for up to TTL; send the server
// SIGHUP after publishing to drop cached entries at once.
type FactorCacheConfig struct {
	Enabled bool          `yaml:"enabled" env:"FACTOR_CACHE_ENABLED" env-default:"false"`
	Size    int           `yaml:"size"    env:"FACTOR_CACHE_SIZE"    env-default:"1024"`
	TTL     time.Duration `yaml:"ttl"     env:"FACTOR_CACHE_TTL"     env-default:"5m"`
}
