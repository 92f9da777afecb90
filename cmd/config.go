package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const defaultTimezone = "Asia/Seoul"

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	RabbitMQURL             string
	RabbitMQExchange        string
	Timezone                string
	LogLevel                string
	LogFormat               string
	DeliveryRefreshSchedule string
	AlertDigestSchedule     string
}

// LoadConfig reads the environment after loading envFile into it. A missing
// env file is not an error; variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := Config{
		HTTPPort:                envOr("HTTP_PORT", "8080"),
		DBHost:                  envOr("DB_HOST", "localhost"),
		DBPort:                  envOr("DB_PORT", "5432"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBSslMode:               envOr("DB_SSLMODE", "disable"),
		RabbitMQURL:             os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:        envOr("RABBITMQ_EXCHANGE", "orders.events"),
		Timezone:                envOr("TIMEZONE", defaultTimezone),
		LogLevel:                envOr("LOG_LEVEL", "info"),
		LogFormat:               envOr("LOG_FORMAT", "json"),
		DeliveryRefreshSchedule: envOr("DELIVERY_REFRESH_SCHEDULE", "0 5 0 * * *"),
		AlertDigestSchedule:     envOr("ALERT_DIGEST_SCHEDULE", "0 0 8 * * *"),
	}

	if cfg.DBUser == "" || cfg.DBName == "" {
		return Config{}, errors.New("DB_USER and DB_NAME must be set")
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// Location is the business time zone that decides which calendar day
// "today" is.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
