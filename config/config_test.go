package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("TRUSTED_PROXIES", "")

	s := Load(":9999")

	assert.Equal(t, ":9999", s.HTTPAddr)
	assert.Equal(t, "memory", s.StoreBackend)
	assert.Equal(t, 24*time.Hour, s.TokenTTL)
	assert.False(t, s.KafkaEnabled)
	assert.Equal(t, []string{"127.0.0.1", "::1"}, s.TrustedProxies)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":7000")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("BCRYPT_COST", "not-a-number")
	t.Setenv("LOGIN_RATE", "2.5")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.5 , ,10.0.0.6")

	s := Load(":9999")

	assert.Equal(t, ":7000", s.HTTPAddr)
	assert.True(t, s.RedisEnabled)
	assert.Equal(t, 90*time.Second, s.CacheTTL)
	assert.Equal(t, 10, s.BcryptCost)
	assert.Equal(t, 2.5, s.LoginRate)
	assert.Equal(t, []string{"10.0.0.5", "10.0.0.6"}, s.TrustedProxies)
}

func TestNewLogger(t *testing.T) {
	entry := NewLogger("catalog-svc", "debug", "json")
	assert.Equal(t, logrus.DebugLevel, entry.Logger.GetLevel())
	assert.Equal(t, "catalog-svc", entry.Data["service"])
	_, isJSON := entry.Logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)

	fallback := NewLogger("x", "loud", "text")
	assert.Equal(t, logrus.InfoLevel, fallback.Logger.GetLevel())
}
