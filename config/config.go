package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Backend API.
	BackendBaseURL    string `mapstructure:"BACKEND_BASE_URL"`
	APITimeoutSeconds int    `mapstructure:"API_TIMEOUT_SECONDS"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Booking confirmation polling.
	PollIntervalMS int `mapstructure:"POLL_INTERVAL_MS"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB    int    `mapstructure:"REDIS_AUTH_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Payment gateway selection and credentials.
	PaymentProvider      string `mapstructure:"PAYMENT_PROVIDER"`
	RazorpayKeyID        string `mapstructure:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret    string `mapstructure:"RAZORPAY_KEY_SECRET"`
	CashfreeClientID     string `mapstructure:"CASHFREE_CLIENT_ID"`
	CashfreeClientSecret string `mapstructure:"CASHFREE_CLIENT_SECRET"`
	CashfreeBaseURL      string `mapstructure:"CASHFREE_BASE_URL"`
	StripeKey            string `mapstructure:"STRIPE_KEY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("API_TIMEOUT_SECONDS", 25)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("POLL_INTERVAL_MS", 3000)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_SESSION_DB", 2)
	viper.SetDefault("PAYMENT_PROVIDER", "razorpay")
	viper.SetDefault("CASHFREE_BASE_URL", "https://sandbox.cashfree.com/pg")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// PollInterval returns the booking status poll interval as a duration.
func PollInterval() time.Duration {
	ms := AppConfig.PollIntervalMS
	if ms <= 0 {
		ms = 3000
	}
	return time.Duration(ms) * time.Millisecond
}

// APITimeout returns the per-request timeout for backend calls.
func APITimeout() time.Duration {
	s := AppConfig.APITimeoutSeconds
	if s <= 0 {
		s = 25
	}
	return time.Duration(s) * time.Second
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
