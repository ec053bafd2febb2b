package postgres

import (
	"testing"
	"time"

	"settlement-ledger/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "ledger",
		Password: "secret",
		DBName:   "settlement_ledger",
		SSLMode:  "disable",
	}
}

func TestPoolConfig_AppliesLimits(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.MaxConns = 20
	cfg.MinConns = 5
	cfg.ConnMaxLifetime = 30 * time.Minute

	poolCfg, err := poolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, int32(20), poolCfg.MaxConns)
	assert.Equal(t, int32(5), poolCfg.MinConns)
	assert.Equal(t, 30*time.Minute, poolCfg.MaxConnLifetime)
	assert.Equal(t, "settlement_ledger", poolCfg.ConnConfig.Database)
	assert.Equal(t, "ledger", poolCfg.ConnConfig.User)
}

func TestPoolConfig_SessionParams(t *testing.T) {
	poolCfg, err := poolConfig(testDatabaseConfig())
	require.NoError(t, err)

	assert.Equal(t, applicationName, poolCfg.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, "UTC", poolCfg.ConnConfig.RuntimeParams["timezone"])
}

func TestPoolConfig_IgnoresMinAboveMax(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.MaxConns = 4
	cfg.MinConns = 10

	poolCfg, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(4), poolCfg.MaxConns)
	assert.Zero(t, poolCfg.MinConns)
}

func TestPoolConfig_InvalidDSN(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.Port = -1

	_, err := poolConfig(cfg)
	assert.Error(t, err)
}
