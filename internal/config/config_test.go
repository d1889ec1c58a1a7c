package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	require.Equal(t, "projectmanagement", cfg.Mongo.Database)
	require.Equal(t, int64(900), cfg.JWT.AccessExpiry)
	require.Equal(t, int64(604800), cfg.JWT.RefreshExpiry)
	require.Equal(t, int64(1200), cfg.JWT.TempExpiry)
	require.Equal(t, 10, cfg.Bcrypt.Cost)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("MONGO_DB", "pm_test")
	t.Setenv("ACCESS_TOKEN_SECRET", "s1")
	t.Setenv("REFRESH_TOKEN_SECRET", "s2")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "60")
	t.Setenv("BCRYPT_COST", "4")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9999", cfg.Server.Port)
	require.Equal(t, "pm_test", cfg.Mongo.Database)
	require.Equal(t, "s1", cfg.JWT.AccessSecret)
	require.Equal(t, "s2", cfg.JWT.RefreshSecret)
	require.Equal(t, int64(60), cfg.JWT.AccessExpiry)
	require.Equal(t, 4, cfg.Bcrypt.Cost)
}
