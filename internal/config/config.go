package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the measuring service.
// It includes the environment, server port, number of workers, interval
// for processing, per-poll batch limit, and database configuration.
//
// Fields:
// - Env: The current environment (e.g., local, dev, prod).
// - Port: The port for the measuring service monitoring server.
// - Workers: The number of concurrent workers for processing segments.
// - Interval: The duration between processing intervals.
// - BatchLimit: The maximum number of segments fetched per poll.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env        string         `yaml:"env"`                  // Env is the current environment: local, dev, prod.
	Port       int            `yaml:"measurer.port"`        // Port is the measurer monitoring server port.
	Workers    int            `yaml:"measurer.workers"`     // The number of concurrent workers for processing segments.
	Interval   time.Duration  `yaml:"measurer.interval"`    // The duration between processing intervals.
	BatchLimit int            `yaml:"measurer.batch_limit"` // The maximum number of segments fetched per poll.
	Database   PostgresConfig `yaml:"postgres"`             // Database holds the postgres database configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     string `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Name     string `yaml:"db_name"`                     // Name is the name of the database.
}

// MustLoad loads the configuration from the environment and returns a Config struct.
func MustLoad() *Config {
	_ = godotenv.Load()

	interval, err := time.ParseDuration(setDefaultEnv("GEOKIT_INTERVAL", "10m"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	healthPort, err := strconv.Atoi(setDefaultEnv("GEOKIT_HEALTH_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	workers, err := strconv.Atoi(setDefaultEnv("GEOKIT_WORKERS", "10"))
	if err != nil {
		panic("failed to parse workers from configuration, must be an integer type")
	}

	batchLimit, err := strconv.Atoi(setDefaultEnv("GEOKIT_BATCH_LIMIT", "100"))
	if err != nil {
		panic("failed to parse batch limit from configuration, must be an integer type")
	}

	return &Config{
		Env:        setDefaultEnv("GEOKIT_ENV", "production"),
		Port:       healthPort,
		Workers:    workers,
		Interval:   interval,
		BatchLimit: batchLimit,
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
