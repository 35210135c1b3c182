package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FailsFastWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PATH", "test.db")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_FailsFastWithoutDBPath(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_PATH", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_PATH", "test.db")
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "168h0m0s", cfg.TokenTTL.String())
}

func TestOpenDatabase_InMemory(t *testing.T) {
	db, err := OpenDatabase(":memory:")
	require.NoError(t, err)

	for _, table := range []string{"admins", "users", "restaurants", "foods", "categories", "orders"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}
