// Package config loads the process configuration from defaults, an
// optional YAML or TOML file and LOOTSHEET_ environment variables.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
)

// EnvPrefix prefixes every environment override, e.g. LOOTSHEET_REDIS_ADDR
const EnvPrefix = "LOOTSHEET"

// Config is the process configuration
type Config struct {
	GRPC      GRPCConfig      `mapstructure:"grpc"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	SRD       SRDConfig       `mapstructure:"srd"`
	Batch     BatchConfig     `mapstructure:"batch"`
	Curation  CurationConfig  `mapstructure:"curation"`
}

// GRPCConfig configures the gRPC listener
type GRPCConfig struct {
	Port int `mapstructure:"port"`
}

// HTTPConfig configures the JSON gateway
type HTTPConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// RedisConfig points at the store
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
	TLS      bool   `mapstructure:"tls"`
}

// AuthConfig signs caller tokens
type AuthConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

// LogConfig configures slog output
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File enables a rotating log file next to stderr output
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// TelemetryConfig enables OTLP tracing when Endpoint is set
type TelemetryConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// SRDConfig configures the item catalog
type SRDConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// BatchConfig tunes multi-token operations
type BatchConfig struct {
	Parallelism int `mapstructure:"parallelism"`
}

// CurationConfig holds the defaults used when a conversion leaves options unset
type CurationConfig struct {
	ChanceOfDamagedItems   float64 `mapstructure:"chance_of_damaged_items"`
	DamagedItemsMultiplier float64 `mapstructure:"damaged_items_multiplier"`
	RemoveDamagedItems     bool    `mapstructure:"remove_damaged_items"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("grpc.port", 50051)
	v.SetDefault("http.enabled", false)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.tls", false)
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.ttl", 7*24*time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.service_name", "rpg-lootsheet")
	v.SetDefault("srd.enabled", true)
	v.SetDefault("srd.base_url", "https://www.dnd5eapi.co/api/")
	v.SetDefault("srd.timeout", 30*time.Second)
	v.SetDefault("srd.cache_ttl", 24*time.Hour)
	v.SetDefault("batch.parallelism", 0)
	v.SetDefault("curation.chance_of_damaged_items", 0.0)
	v.SetDefault("curation.damaged_items_multiplier", 0.5)
	v.SetDefault("curation.remove_damaged_items", false)
}

// Load reads the configuration. An empty path skips the file; the format
// follows the file extension.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.InvalidArgumentf("failed to read config %s: %v", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.InvalidArgumentf("failed to decode config: %v", err)
	}
	return &cfg, nil
}

// Validate checks the values the server needs
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc.port", c.GRPC.Port, 1, 65535, vb)
	if c.HTTP.Enabled {
		errors.ValidateRequired("http.addr", c.HTTP.Addr, vb)
	}
	errors.ValidateRequired("redis.addr", c.Redis.Addr, vb)
	errors.ValidateRequired("auth.secret", c.Auth.Secret, vb)
	errors.ValidateEnum("log.level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log.format", strings.ToLower(c.Log.Format), []string{"json", "text"}, vb)
	if c.Batch.Parallelism < 0 {
		vb.InvalidField("batch.parallelism", "must not be negative")
	}
	if c.Curation.ChanceOfDamagedItems < 0 || c.Curation.ChanceOfDamagedItems > 1 {
		vb.InvalidField("curation.chance_of_damaged_items", "must be between 0 and 1")
	}

	return vb.Build()
}
