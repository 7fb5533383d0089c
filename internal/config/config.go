package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL   string        `mapstructure:"DATABASE_URL"`
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	Port          string        `mapstructure:"PORT"`
	ClientAPIKeys string        `mapstructure:"CLIENT_API_KEYS"`
	AdminAPIKeys  string        `mapstructure:"ADMIN_API_KEYS"`
	RedisURL      string        `mapstructure:"REDIS_URL"`
	TokenTTL      time.Duration `mapstructure:"TOKEN_TTL"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("TOKEN_TTL", "168h")
	// Unmarshal only sees env keys viper knows about.
	for _, key := range []string{"DATABASE_URL", "JWT_SECRET", "CLIENT_API_KEYS", "ADMIN_API_KEYS", "REDIS_URL"} {
		_ = viper.BindEnv(key)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

// ClientKeys returns the configured client API keys.
func (c *Config) ClientKeys() []string { return splitKeys(c.ClientAPIKeys) }

// AdminKeys returns the configured superuser API keys.
func (c *Config) AdminKeys() []string { return splitKeys(c.AdminAPIKeys) }

func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
