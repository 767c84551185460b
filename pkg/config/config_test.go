package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sns-api/pkg/config"
)

func TestParseCORSOrigins_ArregloValido(t *testing.T) {
	got := config.ParseCORSOrigins(`["https://snsbd.com","https://admin.snsbd.com"]`)
	assert.Equal(t, []string{"https://snsbd.com", "https://admin.snsbd.com"}, got)
}

func TestParseCORSOrigins_MalFormado_UsaDefaults(t *testing.T) {
	for _, raw := range []string{"", "not-json", `{"a":1}`, "[]"} {
		got := config.ParseCORSOrigins(raw)
		assert.Equal(t, config.DefaultCORSOrigins, got, "entrada %q", raw)
	}
}

func TestLoad_DefaultsYEnv(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cr3t")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "45")
	t.Setenv("ALGORITHM", "hs512")
	t.Setenv("APP_PROVISION", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
	assert.Equal(t, 45, cfg.JWT.Expiration)
	assert.Equal(t, "HS512", cfg.JWT.Algorithm)
	assert.False(t, cfg.App.Provision)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "https://picsum.photos/400/300?random=1", cfg.Assets.DefaultProductImage)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RechazaSecretVacioYAlgoritmo(t *testing.T) {
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "", Algorithm: "HS256", Expiration: 30},
		DB:  config.DBConfig{Driver: "postgres"},
	}
	assert.Error(t, cfg.Validate())

	cfg.JWT.Secret = "x"
	cfg.JWT.Algorithm = "RS256"
	assert.Error(t, cfg.Validate())

	cfg.JWT.Algorithm = "HS256"
	assert.NoError(t, cfg.Validate())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "sns", Password: "p@ss word", DBName: "sns_db", SSLMode: "disable"}
	assert.Equal(t, "postgres://sns:p%40ss%20word@db:5432/sns_db?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
