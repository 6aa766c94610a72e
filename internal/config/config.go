package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	GateBackendRedis  = "redis"
	GateBackendMemory = "memory"
)

// Config holds all configuration for our application. Every section is squashed so that the flat
// environment keys map straight onto the nested structs.
type Config struct {
	Server    ServerConfig    `mapstructure:",squash"`
	Database  DatabaseConfig  `mapstructure:",squash"`
	Redis     RedisConfig     `mapstructure:",squash"`
	Scheduler SchedulerConfig `mapstructure:",squash"`
	Logging   LoggingConfig   `mapstructure:",squash"`
	Business  BusinessConfig  `mapstructure:",squash"`
	Health    HealthConfig    `mapstructure:",squash"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"SERVER_PORT"`
	Host         string        `mapstructure:"SERVER_HOST"`
	Env          string        `mapstructure:"ENV"`
	ReadTimeout  time.Duration `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"SERVER_WRITE_TIMEOUT"`
}

type DatabaseConfig struct {
	URL             string        `mapstructure:"DATABASE_URL"`
	MaxOpenConns    int           `mapstructure:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `mapstructure:"DATABASE_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `mapstructure:"DATABASE_CONN_MAX_LIFETIME"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"REDIS_ADDR"`
	Password  string `mapstructure:"REDIS_PASSWORD"`
	DB        int    `mapstructure:"REDIS_DB"`
	KeyPrefix string `mapstructure:"REDIS_KEY_PREFIX"`
}

type SchedulerConfig struct {
	SweepInterval time.Duration `mapstructure:"SWEEP_INTERVAL"`
	DailyInterval time.Duration `mapstructure:"SWEEP_DAILY_INTERVAL"`
	SweepCron     string        `mapstructure:"SWEEP_CRON"`
	DailyCron     string        `mapstructure:"SWEEP_DAILY_CRON"`
	GateBackend   string        `mapstructure:"SWEEP_GATE"`
	Timezone      string        `mapstructure:"SCHEDULER_TIMEZONE"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"LOG_LEVEL"`
	Format string `mapstructure:"LOG_FORMAT"`
}

type BusinessConfig struct {
	CreditEpsilon string `mapstructure:"BUSINESS_CREDIT_EPSILON"`
}

type HealthConfig struct {
	Timeout time.Duration `mapstructure:"HEALTH_CHECK_TIMEOUT"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("ENV", "development")
	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "15s")

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 25)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "5m")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "accrual")

	v.SetDefault("SWEEP_INTERVAL", "60s")
	v.SetDefault("SWEEP_DAILY_INTERVAL", "24h")
	v.SetDefault("SWEEP_CRON", "0 * * * * *")
	v.SetDefault("SWEEP_DAILY_CRON", "0 0 0 * * *")
	v.SetDefault("SWEEP_GATE", GateBackendRedis)
	v.SetDefault("SCHEDULER_TIMEZONE", "UTC")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("BUSINESS_CREDIT_EPSILON", "0.01")

	v.SetDefault("HEALTH_CHECK_TIMEOUT", "5s")
}

// Load reads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Don't fail if .env file doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	epsilon, err := decimal.NewFromString(c.Business.CreditEpsilon)
	if err != nil {
		return fmt.Errorf("BUSINESS_CREDIT_EPSILON must be a valid decimal: %w", err)
	}
	if epsilon.IsNegative() {
		return fmt.Errorf("BUSINESS_CREDIT_EPSILON must not be negative")
	}

	if c.Scheduler.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be a positive duration")
	}

	if c.Scheduler.DailyInterval <= 0 {
		return fmt.Errorf("SWEEP_DAILY_INTERVAL must be a positive duration")
	}

	switch c.Scheduler.GateBackend {
	case GateBackendRedis, GateBackendMemory:
	default:
		return fmt.Errorf("SWEEP_GATE must be %q or %q", GateBackendRedis, GateBackendMemory)
	}

	if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
		return fmt.Errorf("SCHEDULER_TIMEZONE must be a valid IANA zone: %w", err)
	}

	if c.Health.Timeout <= 0 {
		return fmt.Errorf("HEALTH_CHECK_TIMEOUT must be a positive duration")
	}

	return nil
}

// GetCreditEpsilon returns the minimum profit delta that triggers a ledger credit
func (c *Config) GetCreditEpsilon() decimal.Decimal {
	epsilon, _ := decimal.NewFromString(c.Business.CreditEpsilon)
	return epsilon
}

// GetLocation returns the time zone used to stamp daily ledger entries
func (c *Config) GetLocation() *time.Location {
	loc, err := time.LoadLocation(c.Scheduler.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}
