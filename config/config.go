package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig      `mapstructure:"server"`
	Database   DatabaseConfig    `mapstructure:"database"`
	Redis      RedisConfig       `mapstructure:"redis"`
	Log        LogConfig         `mapstructure:"log"`
	Worker     WorkerConfig      `mapstructure:"worker"`
	Migration  MigrationConfig   `mapstructure:"migration"`
	Processors []ProcessorConfig `mapstructure:"processors"`
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

// RedisConfig is optional. An empty Host disables the intake guard and rate limiting.
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

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// WorkerConfig bounds the background payment worker.
type WorkerConfig struct {
	QueueSize        int           `mapstructure:"queue_size"`
	MaxInFlight      int           `mapstructure:"max_in_flight"`
	RetryWait        time.Duration `mapstructure:"retry_wait"`
	IntakeTTL        time.Duration `mapstructure:"intake_ttl"`
	ProcessorTimeout time.Duration `mapstructure:"processor_timeout"`
	ShutdownGrace    time.Duration `mapstructure:"shutdown_grace"`
}

// MigrationConfig controls how the payments schema is applied.
type MigrationConfig struct {
	OnStart bool  `mapstructure:"on_start"`
	LockKey int64 `mapstructure:"lock_key"`
}

// ProcessorConfig names an external payment processor and its endpoint.
type ProcessorConfig struct {
	Name     string `mapstructure:"name"`
	Endpoint string `mapstructure:"endpoint"`
}

// ProcessorNames returns the configured processor names in order.
func (c *Config) ProcessorNames() []string {
	names := make([]string, 0, len(c.Processors))
	for _, p := range c.Processors {
		names = append(names, p.Name)
	}
	return names
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PAYLOG_.
// Nested keys use underscore: PAYLOG_DATABASE_HOST, PAYLOG_WORKER_MAX_IN_FLIGHT, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 9999)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "payments")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 32)
	v.SetDefault("database.min_conns", 4)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("worker.queue_size", 10000)
	v.SetDefault("worker.max_in_flight", 64)
	v.SetDefault("worker.retry_wait", "100ms")
	v.SetDefault("worker.intake_ttl", "10m")
	v.SetDefault("worker.processor_timeout", "5s")
	v.SetDefault("worker.shutdown_grace", "10s")
	v.SetDefault("migration.on_start", true)
	v.SetDefault("migration.lock_key", 7340034)
	v.SetDefault("processors", []map[string]string{
		{"name": "default", "endpoint": "http://payment-processor-default:8080/payments"},
		{"name": "fallback", "endpoint": "http://payment-processor-fallback:8080/payments"},
	})

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PAYLOG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("PAYLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
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

func (c *Config) validate() error {
	if len(c.Processors) == 0 {
		return fmt.Errorf("config: at least one processor is required")
	}
	for i, p := range c.Processors {
		if p.Name == "" || p.Endpoint == "" {
			return fmt.Errorf("config: processor %d needs both name and endpoint", i)
		}
	}
	if c.Worker.MaxInFlight < 1 {
		return fmt.Errorf("config: worker.max_in_flight must be positive")
	}
	if c.Worker.QueueSize < 1 {
		return fmt.Errorf("config: worker.queue_size must be positive")
	}
	return nil
}
