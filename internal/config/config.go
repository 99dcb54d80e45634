package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	Reward    RewardConfig    `mapstructure:"reward"`
	Sweeper   SweeperConfig   `mapstructure:"sweeper"`
	Assistant AssistantConfig `mapstructure:"assistant"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// RewardConfig holds the daily reward configuration: the prize table,
// the coupon validity window, the fixed value of a free-item discount
// and the reference timezone used for calendar-day comparisons.
type RewardConfig struct {
	Timezone           string       `mapstructure:"timezone"`
	CouponValidityDays int          `mapstructure:"couponValidityDays"`
	FreeItemValue      float64      `mapstructure:"freeItemValue"`
	CodeAttempts       int          `mapstructure:"codeAttempts"`
	Prizes             []PrizeEntry `mapstructure:"prizes"`
}

// PrizeEntry is one configured prize table row
type PrizeEntry struct {
	Name        string         `mapstructure:"name"`
	Outcome     string         `mapstructure:"outcome"`
	Description string         `mapstructure:"description"`
	Weight      int            `mapstructure:"weight"`
	Discount    *DiscountEntry `mapstructure:"discount"`
}

// DiscountEntry is the discount shape of a winning prize entry
type DiscountEntry struct {
	Kind  string  `mapstructure:"kind"`
	Value float64 `mapstructure:"value"`
}

// SweeperConfig holds expired-coupon housekeeping configuration
type SweeperConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

// AssistantConfig holds the AI assistant service configuration
type AssistantConfig struct {
	URL             string `mapstructure:"url"`
	APIKey          string `mapstructure:"api_key"`
	Model           string `mapstructure:"model"`
	MaxOutputTokens int    `mapstructure:"maxOutputTokens"`
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the server address for binding
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv("BURGER_REWARDS_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}
