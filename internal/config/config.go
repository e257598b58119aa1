package config

import (
	"fmt"
	"os"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Auth     AuthConfig
	Market   MarketConfig
	Mail     MailConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// AuthConfig holds OTP and session configuration.
// SessionKey is a base64 fernet key; when unset a process-local key is generated,
// which invalidates outstanding tokens on restart.
type AuthConfig struct {
	SessionKey    string
	SessionTTL    time.Duration
	OTPTTL        time.Duration
	OTPPerMinute  float64
	OTPCodeLength int
}

// MarketConfig holds price refresh configuration.
// PriceSource selects between the in-process simulator and a live market feed.
type MarketConfig struct {
	RefreshInterval time.Duration
	PriceSource     string // "simulated" or "live"
}

// MailConfig holds OTP email delivery configuration.
// When the mailgun fields are empty, codes are written to the log instead.
type MailConfig struct {
	MailgunDomain string
	MailgunAPIKey string
	Sender        string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/crypto_portal.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Auth: AuthConfig{
			SessionKey:    getEnv("SESSION_KEY", ""),
			SessionTTL:    getEnvDuration("SESSION_TTL", 24*time.Hour),
			OTPTTL:        getEnvDuration("OTP_TTL", 10*time.Minute),
			OTPPerMinute:  1,
			OTPCodeLength: 6,
		},
		Market: MarketConfig{
			RefreshInterval: getEnvDuration("PRICE_REFRESH_INTERVAL", 60*time.Second),
			PriceSource:     getEnv("PRICE_SOURCE", "simulated"),
		},
		Mail: MailConfig{
			MailgunDomain: getEnv("MAILGUN_DOMAIN", ""),
			MailgunAPIKey: getEnv("MAILGUN_API_KEY", ""),
			Sender:        getEnv("MAIL_SENDER", "no-reply@cryptoassets.local"),
		},
	}

	if config.Auth.SessionKey == "" {
		key := &fernet.Key{}
		if err := key.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}
		config.Auth.SessionKey = key.Encode()
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration gets a duration environment variable or returns a default value.
// Malformed values fall back to the default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
