// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the storefront service.
type Config struct {
	Server   ServerConfig
	Spanner  SpannerConfig
	Checkout CheckoutConfig
	AMQP     AMQPConfig
	LogLevel string
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	GinMode         string
}

// SpannerConfig points at the Cloud Spanner database.
type SpannerConfig struct {
	Database string
}

// CheckoutConfig configures order handoff.
type CheckoutConfig struct {
	// MailRecipient is the store inbox mailto links address.
	MailRecipient string
}

// AMQPConfig configures the optional RabbitMQ order queue. An empty URL
// disables broker dispatch; orders are logged instead.
type AMQPConfig struct {
	URL   string
	Queue string
}

// Load reads configuration from the environment. Missing variables fall
// back to local-development defaults.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
			GinMode:         getEnv("GIN_MODE", "debug"),
		},
		Spanner: SpannerConfig{
			Database: getEnv("SPANNER_DATABASE",
				"projects/test-project/instances/dev-instance/databases/storefront-db"),
		},
		Checkout: CheckoutConfig{
			MailRecipient: getEnv("CHECKOUT_MAIL_RECIPIENT", "hello@shell.rivieraapps.com"),
		},
		AMQP: AMQPConfig{
			URL:   getEnv("AMQP_URL", ""),
			Queue: getEnv("AMQP_QUEUE", "storefront_orders"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
