package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	AppEnv   string
	LogLevel string

	// Base URL of the marketplace API, e.g. http://192.168.27.154:5001.
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Flat fee added to every cart total.
	DeliveryFee decimal.Decimal

	// Path of the file holding stored session values.
	SessionPath string

	StubPort   int
	StubSecret string
}

func Load() Config {
	// A missing .env is fine, real env vars still apply.
	_ = godotenv.Load()

	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:5001"),
		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 10*time.Second),
		DeliveryFee: getEnvDecimal("DELIVERY_FEE", "5.50"),
		SessionPath: getEnv("SESSION_PATH", ".dealsquare-session.json"),
		StubPort:    getEnvInt("STUB_PORT", 5001),
		StubSecret:  getEnv("STUB_SECRET", "dev-only-secret"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}

func getEnvDecimal(key, def string) decimal.Decimal {
	v := os.Getenv(key)

	if v == "" {
		v = def
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.RequireFromString(def)
	}

	return d
}
