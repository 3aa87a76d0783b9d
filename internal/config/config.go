package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Policy   PolicyConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// PolicyConfig carries injectable business policy. BalanceFloors maps an
// account-type ID to the minimum balance an account of that type must
// retain after any debit (and meet at opening).
type PolicyConfig struct {
	BalanceFloors   map[int]decimal.Decimal
	DefaultFloor    decimal.Decimal
	WithdrawalQuota int
	DepositQuota    int
}

type SecurityConfig struct {
	BCryptCost         int
	RateLimitPerSecond int
	RateLimitBurst     int
	PasswordMinLength  int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "banking_user"),
			Password:        getEnv("DB_PASSWORD", "banking_password"),
			Name:            getEnv("DB_NAME", "banking_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Policy: PolicyConfig{
			BalanceFloors:   parseBalanceFloors(getEnv("MIN_BALANCE_FLOORS", "1:1000,2:0")),
			DefaultFloor:    decimal.Zero,
			WithdrawalQuota: getIntEnv("ACCOUNT_WITHDRAWAL_QUOTA", 10),
			DepositQuota:    getIntEnv("ACCOUNT_DEPOSIT_QUOTA", 10),
		},
		Security: SecurityConfig{
			BCryptCost:         getIntEnv("BCRYPT_COST", 12),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			PasswordMinLength:  getIntEnv("PASSWORD_MIN_LENGTH", 8),
		},
	}

	return config
}

// MinBalance returns the balance floor for an account type, falling back to
// the default floor for unconfigured types
func (p *PolicyConfig) MinBalance(accountTypeID int) decimal.Decimal {
	if floor, ok := p.BalanceFloors[accountTypeID]; ok {
		return floor
	}
	return p.DefaultFloor
}

// parseBalanceFloors parses a "typeID:floor,typeID:floor" mapping.
// Malformed entries are skipped with a warning rather than failing startup.
func parseBalanceFloors(raw string) map[int]decimal.Decimal {
	floors := make(map[int]decimal.Decimal)

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 {
			log.Printf("Warning: skipping malformed balance floor entry %q", entry)
			continue
		}

		typeID, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			log.Printf("Warning: skipping balance floor with invalid type ID %q", parts[0])
			continue
		}

		floor, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Printf("Warning: skipping balance floor with invalid amount %q", parts[1])
			continue
		}

		floors[typeID] = floor
	}

	return floors
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
