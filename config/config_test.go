package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"knowledgebase/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigDefaults(t *testing.T) {
	config.InitConfig(t.TempDir())

	assert.Equal(t, "8080", config.GlobalConfig.Server.Port)
	assert.Equal(t, 24, config.GlobalConfig.JWT.ExpireHours)
	assert.Equal(t, "media", config.GlobalConfig.Media.Root)
	assert.Equal(t, "gemini-1.5-flash", config.GlobalConfig.AI.Model)
	assert.False(t, config.GlobalConfig.Moderation.RequireAdmin)
	assert.Empty(t, config.GlobalConfig.Redis.Addr)
}

func TestInitConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: "9090"
jwt:
  secret: file-secret
  expire_hours: 2
moderation:
  require_admin: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	config.InitConfig(dir)

	assert.Equal(t, "9090", config.GlobalConfig.Server.Port)
	assert.Equal(t, "file-secret", config.GlobalConfig.JWT.Secret)
	assert.Equal(t, 2, config.GlobalConfig.JWT.ExpireHours)
	assert.True(t, config.GlobalConfig.Moderation.RequireAdmin)
	// Unset keys keep their defaults.
	assert.Equal(t, "media", config.GlobalConfig.Media.Root)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("MODERATION_REQUIRE_ADMIN", "true")

	config.InitConfig(t.TempDir())

	assert.Equal(t, "7070", config.GlobalConfig.Server.Port)
	assert.Equal(t, "env-secret", config.GlobalConfig.JWT.Secret)
	assert.True(t, config.GlobalConfig.Moderation.RequireAdmin)
}

func TestInitJWT(t *testing.T) {
	config.InitConfig(t.TempDir())
	config.GlobalConfig.JWT.Secret = "abc"
	config.GlobalConfig.JWT.ExpireHours = 2

	config.InitJWT()
	assert.Equal(t, []byte("abc"), config.JWTSecret)
	assert.Equal(t, 2*time.Hour, config.JWTExpiration)

	// Non-positive hours fall back to a day.
	config.GlobalConfig.JWT.ExpireHours = 0
	config.InitJWT()
	assert.Equal(t, 24*time.Hour, config.JWTExpiration)
}
