package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	Port                    string `mapstructure:"PORT"`
	LogLevel                string `mapstructure:"LOG_LEVEL"`
	UserAgent               string `mapstructure:"USER_AGENT"`
	FetchTimeoutSeconds     int    `mapstructure:"FETCH_TIMEOUT_SECONDS"`
	LinkCheckTimeoutSeconds int    `mapstructure:"LINK_CHECK_TIMEOUT_SECONDS"`
	MetricsAddr             string `mapstructure:"METRICS_ADDR"`

	PostgresURL       string `mapstructure:"POSTGRES_URL"`
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisDB           int    `mapstructure:"REDIS_DB"`
	HistoryMaxEntries int64  `mapstructure:"HISTORY_MAX_ENTRIES"`

	ShutdownTimeoutSeconds int `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS"`
}

// Load reads configuration from an optional .env file and environment variables.
func Load() (*Config, error) {
	return load(viper.New(), ".env")
}

func load(v *viper.Viper, envFile string) (*Config, error) {
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	// The .env file is optional; deployments configure through the environment.
	_ = v.ReadInConfig()

	v.SetDefault("PORT", "10000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("USER_AGENT", "Mozilla/5.0")
	v.SetDefault("FETCH_TIMEOUT_SECONDS", 0)
	v.SetDefault("LINK_CHECK_TIMEOUT_SECONDS", 5)
	v.SetDefault("METRICS_ADDR", "")
	v.SetDefault("POSTGRES_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("HISTORY_MAX_ENTRIES", 1000)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FetchTimeout is the page fetch timeout. Zero means no timeout.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

func (c *Config) LinkCheckTimeout() time.Duration {
	return time.Duration(c.LinkCheckTimeoutSeconds) * time.Second
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
