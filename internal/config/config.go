package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the simulation services
type Config struct {
	Simulation SimulationConfig `mapstructure:",squash"`
	Cache      CacheConfig      `mapstructure:",squash"`
}

type SimulationConfig struct {
	MaxMonths                  int     `mapstructure:"SIMULATION_MAX_MONTHS"`
	RecommendInterestThreshold float64 `mapstructure:"RECOMMEND_INTEREST_THRESHOLD"`
	MaxDebtsPerRequest         int     `mapstructure:"MAX_DEBTS_PER_REQUEST"`
	MaxDebtBalance             float64 `mapstructure:"MAX_DEBT_BALANCE"`
	MaxAPR                     float64 `mapstructure:"MAX_APR"`
}

type CacheConfig struct {
	Enabled       bool   `mapstructure:"CACHE_ENABLED"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	TTL           string `mapstructure:"CACHE_TTL"`
}

// Load reads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Optional .env for local development
	_ = godotenv.Load()

	// Set defaults
	viper.SetDefault("SIMULATION_MAX_MONTHS", 600)
	viper.SetDefault("RECOMMEND_INTEREST_THRESHOLD", 1000.0)
	viper.SetDefault("MAX_DEBTS_PER_REQUEST", 50)
	viper.SetDefault("MAX_DEBT_BALANCE", 100_000_000.0)
	viper.SetDefault("MAX_APR", 1000.0)
	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("CACHE_TTL", "1h")

	// Read from environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Simulation.MaxMonths <= 0 {
		return fmt.Errorf("SIMULATION_MAX_MONTHS must be greater than 0")
	}

	if c.Simulation.RecommendInterestThreshold < 0 {
		return fmt.Errorf("RECOMMEND_INTEREST_THRESHOLD must not be negative")
	}

	if c.Simulation.MaxDebtsPerRequest <= 0 {
		return fmt.Errorf("MAX_DEBTS_PER_REQUEST must be greater than 0")
	}

	if c.Cache.Enabled && c.Cache.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required when CACHE_ENABLED is true")
	}

	if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
		return fmt.Errorf("CACHE_TTL must be a valid duration: %w", err)
	}

	return nil
}

// GetCacheTTL returns the cache TTL as duration
func (c *Config) GetCacheTTL() time.Duration {
	ttl, _ := time.ParseDuration(c.Cache.TTL)
	return ttl
}
