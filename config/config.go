package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Timelock TimelockConfig `mapstructure:"timelock"`
	Relay    RelayConfig    `mapstructure:"relay"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// TimelockConfig holds the security timing parameters, fixed at deployment.
// SecurityWindow is derived, not configured: recovery_period - security_period.
type TimelockConfig struct {
	SecurityPeriod time.Duration `mapstructure:"security_period"`
	RecoveryPeriod time.Duration `mapstructure:"recovery_period"`
	LockPeriod     time.Duration `mapstructure:"lock_period"`
}

// SecurityWindow returns the confirmation window for pending guardian changes.
func (t TimelockConfig) SecurityWindow() time.Duration {
	return t.RecoveryPeriod - t.SecurityPeriod
}

// Validate enforces the deployment-time invariants:
// lock_period >= recovery_period and recovery_period > security_period > 0
// (so that the derived security window is positive).
func (t TimelockConfig) Validate() error {
	if t.SecurityPeriod <= 0 {
		return fmt.Errorf("security_period must be positive, got %s", t.SecurityPeriod)
	}
	if t.RecoveryPeriod <= t.SecurityPeriod {
		return fmt.Errorf("recovery_period (%s) must exceed security_period (%s)", t.RecoveryPeriod, t.SecurityPeriod)
	}
	if t.LockPeriod < t.RecoveryPeriod {
		return fmt.Errorf("lock_period (%s) must be >= recovery_period (%s)", t.LockPeriod, t.RecoveryPeriod)
	}
	return nil
}

// RelayConfig holds gas-refund accounting parameters.
type RelayConfig struct {
	BaseGas    uint64 `mapstructure:"base_gas"`     // fixed overhead charged per relayed operation
	GasPerCall uint64 `mapstructure:"gas_per_call"` // additional overhead per batched call
}

// AdminConfig holds credentials for the global-owner (registry admin) API.
type AdminConfig struct {
	Owner     string        `mapstructure:"owner"` // global owner address (0x hex)
	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTExpiry time.Duration `mapstructure:"jwt_expiry"`
	JWTIssuer string        `mapstructure:"jwt_issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SWC (Smart Wallet Core).
// Nested keys use underscore: SWC_DATABASE_HOST, SWC_TIMELOCK_LOCK_PERIOD, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wallet_core")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("timelock.security_period", "24h")
	v.SetDefault("timelock.recovery_period", "36h")
	v.SetDefault("timelock.lock_period", "120h")
	v.SetDefault("relay.base_gas", 30000)
	v.SetDefault("relay.gas_per_call", 8000)
	v.SetDefault("admin.owner", "")
	v.SetDefault("admin.jwt_secret", "")
	v.SetDefault("admin.jwt_expiry", "24h")
	v.SetDefault("admin.jwt_issuer", "smart-wallet-core")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SWC_DATABASE_HOST -> database.host
	v.SetEnvPrefix("SWC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Timelock.Validate(); err != nil {
		return nil, fmt.Errorf("invalid timelock configuration: %w", err)
	}

	return &cfg, nil
}
