package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_TTL_HOURS", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "socialmedia", cfg.MongoDatabase)
	assert.Equal(t, 72*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10*time.Minute, cfg.RelationCacheTTL)
	assert.Equal(t, "", cfg.RedisAddr)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ENV", "production")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_TTL_HOURS", "1")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
}
