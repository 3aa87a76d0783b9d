package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 12, cfg.Security.BCryptCost)
	assert.Equal(t, 8, cfg.Security.PasswordMinLength)
	assert.Equal(t, 10, cfg.Policy.WithdrawalQuota)

	// Default floors: savings keeps 1000, current can drain to zero
	assert.True(t, cfg.Policy.MinBalance(1).Equal(decimal.NewFromInt(1000)))
	assert.True(t, cfg.Policy.MinBalance(2).Equal(decimal.Zero))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MIN_BALANCE_FLOORS", "1:2500,2:100")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.True(t, cfg.Policy.MinBalance(1).Equal(decimal.NewFromInt(2500)))
	assert.True(t, cfg.Policy.MinBalance(2).Equal(decimal.NewFromInt(100)))
}

func TestParseBalanceFloors(t *testing.T) {
	floors := parseBalanceFloors("1:1000, 2:0, 3:500.50")

	require.Len(t, floors, 3)
	assert.True(t, floors[1].Equal(decimal.NewFromInt(1000)))
	assert.True(t, floors[2].Equal(decimal.Zero))
	assert.True(t, floors[3].Equal(decimal.NewFromFloat(500.50)))
}

func TestParseBalanceFloors_SkipsMalformedEntries(t *testing.T) {
	floors := parseBalanceFloors("1:1000,garbage,x:200,2:abc,,3:750")

	require.Len(t, floors, 2)
	assert.True(t, floors[1].Equal(decimal.NewFromInt(1000)))
	assert.True(t, floors[3].Equal(decimal.NewFromInt(750)))
}

func TestMinBalance_UnknownTypeFallsBack(t *testing.T) {
	policy := PolicyConfig{
		BalanceFloors: map[int]decimal.Decimal{1: decimal.NewFromInt(1000)},
		DefaultFloor:  decimal.Zero,
	}

	assert.True(t, policy.MinBalance(1).Equal(decimal.NewFromInt(1000)))
	assert.True(t, policy.MinBalance(99).Equal(decimal.Zero))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "banking_user",
		Password: "banking_password",
		Name:     "banking_db",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=banking_user password=banking_password dbname=banking_db sslmode=disable",
		cfg.DSN())
}

func TestEnvironmentHelpers(t *testing.T) {
	dev := Config{Server: ServerConfig{Environment: "development"}}
	assert.True(t, dev.IsDevelopment())
	assert.False(t, dev.IsProduction())

	prod := Config{Server: ServerConfig{Environment: "production"}}
	assert.True(t, prod.IsProduction())
	assert.False(t, prod.IsDevelopment())
}
