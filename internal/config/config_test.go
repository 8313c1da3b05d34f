package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Game.MaxRounds)
	assert.Equal(t, 30*time.Second, cfg.Game.RoundInterval)
	assert.Equal(t, 2, cfg.Game.MinPlayers)
	assert.Equal(t, "https://sozluk.gov.tr", cfg.Dict.BaseURL)
	assert.Equal(t, 4*time.Second, cfg.Dict.LookupTimeout)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "0.0.0.0:3001", cfg.GetAddr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("MAX_ROUNDS", "5")
	t.Setenv("ROUND_INTERVAL_SECONDS", "10")
	t.Setenv("DICT_BASE_URL", "http://localhost:9999")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 5, cfg.Game.MaxRounds)
	assert.Equal(t, 10*time.Second, cfg.Game.RoundInterval)
	assert.Equal(t, "http://localhost:9999", cfg.Dict.BaseURL)
}

func TestLoadIgnoresBadInts(t *testing.T) {
	t.Setenv("MAX_ROUNDS", "lots")

	cfg := Load()
	assert.Equal(t, 10, cfg.Game.MaxRounds)
}
