package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimeout  time.Duration
	DBLogLevel string
	ServerPort string
	GinMode    string
}

// Load reads the process environment (and an optional .env file).
// Connection parameters have no defaults: a missing one is an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	var problems []string

	required := func(key string) string {
		value, ok := os.LookupEnv(key)
		if !ok || strings.TrimSpace(value) == "" {
			problems = append(problems, key+" is not set")
		}
		return value
	}

	cfg := &Config{
		DBHost:     required("DB_HOST"),
		DBPort:     required("DB_PORT"),
		DBUser:     required("DB_USER"),
		DBPassword: required("DB_PASS"),
		DBName:     required("DB_NAME"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBLogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		ServerPort: getEnv("PORT", "3000"),
		GinMode:    getEnv("GIN_MODE", "debug"),
	}

	if cfg.DBPort != "" {
		if _, err := strconv.ParseUint(cfg.DBPort, 10, 16); err != nil {
			problems = append(problems, "DB_PORT must be a port number")
		}
	}

	timeout, err := time.ParseDuration(getEnv("DB_TIMEOUT", "5s"))
	if err != nil || timeout <= 0 {
		problems = append(problems, "DB_TIMEOUT must be a positive duration")
	}
	cfg.DBTimeout = timeout

	switch cfg.DBLogLevel {
	case "silent", "error", "warn", "info":
	default:
		problems = append(problems, "DB_LOG_LEVEL must be one of silent, error, warn, info")
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

// DSN returns the keyword/value connection string understood by pgx.
func (c *Config) DSN() string {
	seconds := int(c.DBTimeout.Round(time.Second).Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d statement_timeout=%d",
		quoteDSN(c.DBHost), quoteDSN(c.DBPort), quoteDSN(c.DBUser), quoteDSN(c.DBPassword),
		quoteDSN(c.DBName), quoteDSN(c.DBSSLMode),
		seconds, c.DBTimeout.Milliseconds(),
	)
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quoteDSN single-quotes a keyword value, escaping backslashes and quotes.
func quoteDSN(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
