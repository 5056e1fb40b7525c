package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Commission CommissionConfig `mapstructure:"commission"`
	Platform   PlatformConfig   `mapstructure:"platform"`
	Delivery   DeliveryConfig   `mapstructure:"delivery"`
	Jobs       JobsConfig       `mapstructure:"jobs"`
	Log        LogConfig        `mapstructure:"log"`
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

// CommissionRate is a named platform commission rate.
type CommissionRate struct {
	Name   string  `mapstructure:"name"`
	Rate   float64 `mapstructure:"rate"` // percent, e.g. 10.0
	Active bool    `mapstructure:"active"`
}

// RateBps converts the percentage rate to basis points.
func (c CommissionRate) RateBps() int64 {
	return int64(math.Round(c.Rate * 100))
}

// CommissionConfig holds the configured commission rates.
// At most one rate may be active; this is enforced at load time.
type CommissionConfig struct {
	Rates []CommissionRate `mapstructure:"rates"`
}

// Active returns the single active rate, or nil when none is configured.
func (c CommissionConfig) Active() *CommissionRate {
	for i := range c.Rates {
		if c.Rates[i].Active {
			return &c.Rates[i]
		}
	}
	return nil
}

// PlatformConfig identifies the platform's own wallet, the credit side
// of every commission record.
type PlatformConfig struct {
	WalletID string `mapstructure:"wallet_id"`
}

type DeliveryConfig struct {
	BaseFee          int64         `mapstructure:"base_fee"`     // minor units
	PerKmRate        int64         `mapstructure:"per_km_rate"`  // minor units per km
	GeocodeBaseLat   float64       `mapstructure:"geocode_base_lat"`
	GeocodeBaseLng   float64       `mapstructure:"geocode_base_lng"`
	DriverCandidates int           `mapstructure:"driver_candidates"`
	LiveLocationTTL  time.Duration `mapstructure:"live_location_ttl"`
}

type JobsConfig struct {
	DriverAssignmentSpec string `mapstructure:"driver_assignment_spec"` // cron spec
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MKT_.
// Nested keys use underscore: MKT_DATABASE_HOST, MKT_LOG_LEVEL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "marketplace")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("delivery.base_fee", 50000)
	v.SetDefault("delivery.per_km_rate", 10000)
	v.SetDefault("delivery.geocode_base_lat", 48.8566)
	v.SetDefault("delivery.geocode_base_lng", 2.3522)
	v.SetDefault("delivery.driver_candidates", 5)
	v.SetDefault("delivery.live_location_ttl", "2m")
	v.SetDefault("jobs.driver_assignment_spec", "@every 30s")
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

	// Environment variables: MKT_DATABASE_HOST -> database.host
	v.SetEnvPrefix("MKT")
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate enforces invariants that must hold before the core starts,
// notably the single-active-commission-rate precondition.
func (c *Config) validate() error {
	active := 0
	for _, r := range c.Commission.Rates {
		if r.Rate < 0 || r.Rate > 100 {
			return fmt.Errorf("commission rate %q out of range: %v", r.Name, r.Rate)
		}
		if r.Active {
			active++
		}
	}
	if active > 1 {
		return fmt.Errorf("%d commission rates are active, at most one allowed", active)
	}
	if c.Delivery.BaseFee < 0 || c.Delivery.PerKmRate < 0 {
		return fmt.Errorf("delivery fees must be non-negative")
	}
	if c.Delivery.DriverCandidates <= 0 {
		return fmt.Errorf("delivery.driver_candidates must be positive")
	}
	return nil
}
