package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDecodeDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := decode(v)
	require.NoError(t, err)

	assert.Equal(t, ModeRAG, cfg.Mode)
	assert.Equal(t, BackendChromem, cfg.VectorBackend)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 4, cfg.TopK)
	assert.Equal(t, 12, cfg.PoolK)
	assert.Equal(t, 3, cfg.FilterFallbackFactor)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
}

func TestDecodeConvertsDurations(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := decode(v)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.RetryDelaySeconds)
	assert.Equal(t, 30*time.Second, cfg.LLMBackoffMax)
	assert.Equal(t, 30*time.Second, cfg.SearchTimeout)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 15*time.Minute, cfg.CleanupInterval)
}

func TestDecodeOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("CORS_ORIGINS", " http://a.test , ,http://b.test")
	v.Set("MODE", " MOCK ")
	v.Set("VECTOR_BACKEND", "PgVector")
	v.Set("FILTER_FALLBACK_FACTOR", 0)
	v.Set("TRUSTED_PROXIES", "10.0.0.1, 10.1.0.0/16")

	cfg, err := decode(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, ModeMock, cfg.Mode)
	assert.Equal(t, BackendPgvector, cfg.VectorBackend)
	assert.Equal(t, 1, cfg.FilterFallbackFactor)
	assert.Equal(t, []string{"10.0.0.1", "10.1.0.0/16"}, cfg.TrustedProxies)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("TOP_K", "9")
	t.Setenv("SEARCH_TIMEOUT", "5")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg, err := decode(v)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.TopK)
	assert.Equal(t, 5*time.Second, cfg.SearchTimeout)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zap.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zap.InfoLevel, ParseLevel("bogus"))
}
